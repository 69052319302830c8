// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "encoding/binary"

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// SequenceBytes returns the 4-byte little-endian encoding of the input's
// sequence number. This is TxInput.get_sequence_as_bytes() from the
// reference.
func (in *TxIn) SequenceBytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, in.Sequence)
	return b
}

// TxOut defines a bitcoin transaction output.
type TxOut struct {
	Value        uint64
	LockingScript []byte
}

// Bytes returns the standard Bitcoin transaction output serialization:
// an 8-byte little-endian value followed by a VarInt-prefixed locking
// script. This is TxOutput.to_bytes() from the reference.
func (o *TxOut) Bytes() []byte {
	buf := make([]byte, 8, 8+VarIntSerializeSize(uint64(len(o.LockingScript)))+len(o.LockingScript))
	binary.LittleEndian.PutUint64(buf, o.Value)
	buf = AppendVarInt(buf, uint64(len(o.LockingScript)))
	buf = append(buf, o.LockingScript...)
	return buf
}
