// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "encoding/binary"

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  Hash256
	Index uint32
}

// Bytes returns the 36-byte outpoint serialization: the 32-byte previous
// txid followed by the 4-byte little-endian output index. This is
// TxInput.get_outpoint_bytes() from the reference.
func (o OutPoint) Bytes() []byte {
	b := make([]byte, 36)
	copy(b[:32], o.Hash[:])
	binary.LittleEndian.PutUint32(b[32:], o.Index)
	return b
}
