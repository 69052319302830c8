// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bsvec

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
)

// Signature wraps a DER-encoded ECDSA signature over secp256k1.
type Signature struct {
	inner *ecdsa.Signature
}

// ParseDERSignature parses a strict DER-encoded signature from raw. Per the
// Open Questions decision recorded for Signature matching, no
// trailing sighash-type byte is stripped here: callers that need to strip
// one (a real transaction's scriptSig push) do so before calling this, and
// the template matcher (§4.G) calls it against the raw pushed bytes exactly
// as LooksLikeSignature does.
func ParseDERSignature(raw []byte) (*Signature, error) {
	sig, err := ecdsa.ParseDERSignature(raw)
	if err != nil {
		return nil, errors.Wrap(err, "parse DER signature")
	}
	return &Signature{inner: sig}, nil
}

// Serialize returns the DER encoding of sig.
func (sig *Signature) Serialize() []byte {
	return sig.inner.Serialize()
}

// Verify reports whether sig is a valid signature of hash under pub.
func (sig *Signature) Verify(hash []byte, pub *PublicKey) bool {
	return sig.inner.Verify(hash, pub.inner)
}

// LooksLikeSignature reports whether data parses as a strict DER-encoded
// ECDSA signature. This backs MatchToken::Signature (§3.4/§4.G): a script
// push "looks like a signature" iff this succeeds, with no sighash-type
// byte stripped off first.
func LooksLikeSignature(data []byte) bool {
	_, err := ParseDERSignature(data)
	return err == nil
}
