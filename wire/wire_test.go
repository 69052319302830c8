// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256d(t *testing.T) {
	msg := []byte("hello")
	first := sha256.Sum256(msg)
	second := sha256.Sum256(first[:])

	got := Sha256d(msg)
	assert.Equal(t, Hash256(second), got)
}

func TestVarIntSerializeSize(t *testing.T) {
	assert.Equal(t, 1, VarIntSerializeSize(0))
	assert.Equal(t, 1, VarIntSerializeSize(252))
	assert.Equal(t, 3, VarIntSerializeSize(253))
	assert.Equal(t, 3, VarIntSerializeSize(0xffff))
	assert.Equal(t, 5, VarIntSerializeSize(0x10000))
	assert.Equal(t, 9, VarIntSerializeSize(0x100000000))
}

func TestAppendVarIntSmall(t *testing.T) {
	buf := AppendVarInt(nil, 42)
	assert.Equal(t, []byte{42}, buf)
}

func TestAppendVarInt16Bit(t *testing.T) {
	buf := AppendVarInt(nil, 0x1234)
	assert.Equal(t, []byte{0xfd, 0x34, 0x12}, buf)
}

func TestOutPointBytes(t *testing.T) {
	var h Hash256
	for i := range h {
		h[i] = byte(i)
	}
	op := OutPoint{Hash: h, Index: 1}
	b := op.Bytes()
	require.Len(t, b, 36)
	assert.Equal(t, h[:], b[:32])
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00}, b[32:])
}

func TestTxOutBytes(t *testing.T) {
	out := &TxOut{Value: 1, LockingScript: []byte{0xAA, 0xBB}}
	b := out.Bytes()
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0xAA, 0xBB}, b)
}

func TestTxInputAtOutOfRange(t *testing.T) {
	tx := &Tx{TxIn: []*TxIn{{}}}
	_, ok := tx.InputAt(1)
	assert.False(t, ok)

	in, ok := tx.InputAt(0)
	assert.True(t, ok)
	assert.NotNil(t, in)
}

func TestTxOutputAtOutOfRange(t *testing.T) {
	tx := &Tx{TxOut: []*TxOut{{}}}
	_, ok := tx.OutputAt(1)
	assert.False(t, ok)
}
