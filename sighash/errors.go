// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sighash

import "fmt"

// IndexOutOfRangeError reports an input or output index beyond the
// transaction's size (§7).
type IndexOutOfRangeError struct {
	Index int
	Len   int
	What  string // "input" or "output"
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("sighash: %s index %d out of range (have %d)", e.What, e.Index, e.Len)
}

// SingleOverflowError reports that a SINGLE-mode flag was requested with
// n_tx_in greater than or equal to the number of outputs (§4.C.3, §7).
// BuildPreimage returns it for every SINGLE variant; Digest instead returns
// the SIGHASH_SINGLE bug digest for SINGLE|FORKID - see sighash.go.
type SingleOverflowError struct {
	NTxIn      int
	NumOutputs int
}

func (e *SingleOverflowError) Error() string {
	return fmt.Sprintf("sighash: SINGLE requested for input %d but transaction has only %d outputs",
		e.NTxIn, e.NumOutputs)
}

// SignerFailureError wraps an error reported by the external ECDSA signer
// collaborator (§7).
type SignerFailureError struct {
	Cause error
}

func (e *SignerFailureError) Error() string {
	return fmt.Sprintf("sighash: signer failed: %v", e.Cause)
}

func (e *SignerFailureError) Unwrap() error { return e.Cause }

// SerializationFailureError reports that a buffer write failed while
// assembling the preimage (§7: "buffer write failed, extremely unlikely on
// in-memory buffers"). BuildPreimage's []byte appends can't fail, so this
// is part of the named error taxonomy without a live call site in this
// package.
type SerializationFailureError struct {
	Cause error
}

func (e *SerializationFailureError) Error() string {
	return fmt.Sprintf("sighash: serialization failed: %v", e.Cause)
}

func (e *SerializationFailureError) Unwrap() error { return e.Cause }
