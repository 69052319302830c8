// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "encoding/binary"

// VarInt is Bitcoin's variable-length integer encoding: the shortest of a
// single byte, or a one-byte prefix (0xfd/0xfe/0xff) followed by a 2, 4, or
// 8 byte little-endian integer.
type VarInt uint64

// VarIntSerializeSize returns the number of bytes it takes to serialize v
// as a VarInt.
func VarIntSerializeSize(v uint64) int {
	switch {
	case v < 0xfd:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// AppendVarInt appends the VarInt encoding of v to buf and returns the
// extended slice.
func AppendVarInt(buf []byte, v uint64) []byte {
	switch {
	case v < 0xfd:
		return append(buf, byte(v))
	case v <= 0xffff:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(v))
		return append(append(buf, 0xfd), b...)
	case v <= 0xffffffff:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(v))
		return append(append(buf, 0xfe), b...)
	default:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, v)
		return append(append(buf, 0xff), b...)
	}
}

// PushDataOpcode returns the OP_PUSHDATA{1,2,4} opcode appropriate to push
// a payload of the given length using a length-prefixed pushdata encoding,
// or ok=false if length fits a direct OP_DATA_n push (1..=75 bytes) and
// needs no pushdata opcode at all.
//
// This mirrors VarInt.get_pushdata_opcode from the reference: it answers
// "which OP_PUSHDATAn, if any, would a script template need for a payload
// of this length".
func PushDataOpcode(length int) (op byte, ok bool) {
	switch {
	case length <= 75:
		return 0, false
	case length <= 0xff:
		return OpPushData1, true
	case length <= 0xffff:
		return OpPushData2, true
	default:
		return OpPushData4, true
	}
}

// Opcode values needed to classify pushdata lengths. Kept here (rather than
// importing the script package) to avoid a cyclic dependency between wire
// and script; script declares the same values as script.OP_PUSHDATA1/2/4.
const (
	OpPushData1 = 0x4c
	OpPushData2 = 0x4d
	OpPushData4 = 0x4e
)
