// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Tx is the slice of a bitcoin transaction that a SIGHASH preimage needs
// to read: version, inputs' outpoint/sequence, outputs' value/locking
// script, and locktime. It does not attempt general transaction
// (de)serialization, which is out of scope for this core (see spec.md
// §1, "serialization of whole transactions beyond what SIGHASH needs").
type Tx struct {
	Version  uint32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// InputAt returns the input at index n, or ok=false if n is out of range.
func (tx *Tx) InputAt(n int) (*TxIn, bool) {
	if n < 0 || n >= len(tx.TxIn) {
		return nil, false
	}
	return tx.TxIn[n], true
}

// OutputAt returns the output at index n, or ok=false if n is out of range.
func (tx *Tx) OutputAt(n int) (*TxOut, bool) {
	if n < 0 || n >= len(tx.TxOut) {
		return nil, false
	}
	return tx.TxOut[n], true
}
