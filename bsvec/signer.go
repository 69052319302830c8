// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bsvec

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Signer is the out-of-scope signing collaborator named in spec.md §6.1:
// given a 32-byte digest, it produces a DER-encoded signature. sighash.Sign
// takes one of these rather than a concrete key type so callers can supply
// an HSM-backed or hardware-wallet implementation in place of the default.
type Signer interface {
	SignDigest(digest [32]byte) (*Signature, error)
}

// deterministicSigner is the default Signer: RFC 6979 deterministic-k ECDSA
// over secp256k1, with canonical (low-S) signatures, via
// decred/dcrd/dcrec/secp256k1/v4/ecdsa.
type deterministicSigner struct {
	priv *PrivateKey
}

// NewSigner builds the default deterministic-k Signer for priv.
func NewSigner(priv *PrivateKey) Signer {
	return &deterministicSigner{priv: priv}
}

// SignDigest signs digest with RFC 6979 deterministic-k ECDSA, returning a
// low-S, DER-encoded signature.
func (s *deterministicSigner) SignDigest(digest [32]byte) (*Signature, error) {
	sig := ecdsa.Sign(s.priv.inner, digest[:])
	return &Signature{inner: sig}, nil
}
