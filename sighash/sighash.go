// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sighash

import (
	"github.com/bsvctl/txcore/bsvec"
	"github.com/bsvctl/txcore/wire"
)

// bugDigest is the fixed 32-byte sequence - 31 zero bytes followed by 0x01
// - returned by the well-known SIGHASH_SINGLE consensus bug (§4.D). It must
// be reproduced exactly: any signature computed under this condition on
// mainnet commits to this value, not a real digest.
var bugDigest = func() wire.Hash256 {
	var h wire.Hash256
	h[31] = 0x01
	return h
}()

// Digest computes the 32-byte SIGHASH message for input nTxIn of tx (§4.D).
//
// Consensus bug reproduction: when flag is SINGLE|FORKID and nTxIn is
// greater than or equal to the number of outputs, the preimage/digest is
// bypassed entirely and bugDigest is returned. This is the historical
// Bitcoin SIGHASH_SINGLE bug and must be replicated for compatibility.
func Digest(tx *wire.Tx, nTxIn int, flag Flag, scriptCode []byte, value uint64, cache *HashCache) (wire.Hash256, error) {
	if flag == SingleForkID && nTxIn >= len(tx.TxOut) {
		return bugDigest, nil
	}

	preimage, err := BuildPreimage(tx, nTxIn, flag, scriptCode, value, cache)
	if err != nil {
		return wire.Hash256{}, err
	}
	return wire.Sha256d(preimage), nil
}

// Sign computes the SIGHASH digest for input nTxIn and signs it with
// signer, returning the DER-encoded signature with the single-byte SIGHASH
// flag appended (§4.D). The signer receives the already-hashed 32-byte
// digest and applies no further hashing; it is invoked with a single
// argument for that reason, unlike the interface described in §6.1 (which
// names hash-mode and low-s as signer-side settings - this package's
// bsvec.Signer already fixes those to "digest is pre-hashed" and
// "low-s", so they are not parameters here).
func Sign(signer bsvec.Signer, tx *wire.Tx, nTxIn int, flag Flag, scriptCode []byte, value uint64, cache *HashCache) ([]byte, error) {
	digest, err := Digest(tx, nTxIn, flag, scriptCode, value, cache)
	if err != nil {
		return nil, err
	}

	sig, err := signer.SignDigest(digest)
	if err != nil {
		return nil, &SignerFailureError{Cause: err}
	}

	der := sig.Serialize()
	out := make([]byte, 0, len(der)+1)
	out = append(out, der...)
	out = append(out, flag.Uint8())
	return out, nil
}
