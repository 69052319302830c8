// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sighash

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsvctl/txcore/bsvec"
	"github.com/bsvctl/txcore/wire"
)

func outpoint(b byte, index uint32) wire.OutPoint {
	var h wire.Hash256
	h[0] = b
	return wire.OutPoint{Hash: h, Index: index}
}

func txWithInputsOutputs(numIn, numOut int) *wire.Tx {
	tx := &wire.Tx{Version: 1, LockTime: 0}
	for i := 0; i < numIn; i++ {
		tx.TxIn = append(tx.TxIn, &wire.TxIn{
			PreviousOutPoint: outpoint(byte(i+1), uint32(i)),
			Sequence:         0xffffffff,
		})
	}
	for i := 0; i < numOut; i++ {
		tx.TxOut = append(tx.TxOut, &wire.TxOut{
			Value:         uint64(1000 * (i + 1)),
			LockingScript: []byte{0x51},
		})
	}
	return tx
}

func TestPreimageVersionAndValue(t *testing.T) {
	tx := txWithInputsOutputs(1, 1)
	cache := NewHashCache()

	preimage, err := BuildPreimage(tx, 0, AllForkID, []byte{0x76, 0xa9}, 0x1122334455667788, cache)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(preimage[0:4]))

	// value sits after 4(version)+32(prevouts)+32(sequence)+36(outpoint)+
	// varint(len(scriptCode))+scriptCode = 4+32+32+36+1+2 = 107
	valueOffset := 4 + 32 + 32 + 36 + 1 + 2
	gotValue := binary.LittleEndian.Uint64(preimage[valueOffset : valueOffset+8])
	assert.Equal(t, uint64(0x1122334455667788), gotValue)
}

func TestPreimageTrailingFlagBytes(t *testing.T) {
	tx := txWithInputsOutputs(1, 1)
	cache := NewHashCache()

	preimage, err := BuildPreimage(tx, 0, AllAnyoneCanPayForkID, nil, 0, cache)
	require.NoError(t, err)

	tail := preimage[len(preimage)-4:]
	assert.Equal(t, AllAnyoneCanPayForkID.Uint32(), binary.LittleEndian.Uint32(tail))
}

func TestAnyoneCanPayZeroesPrevoutsAndSequence(t *testing.T) {
	tx := txWithInputsOutputs(3, 1)
	cache := NewHashCache()

	preimage, err := BuildPreimage(tx, 0, AllAnyoneCanPayForkID, nil, 0, cache)
	require.NoError(t, err)

	hashPrevouts := preimage[4:36]
	hashSequence := preimage[36:68]
	assert.Equal(t, make([]byte, 32), hashPrevouts)
	assert.Equal(t, make([]byte, 32), hashSequence)
}

func TestCacheReuseAcrossInputs(t *testing.T) {
	tx := txWithInputsOutputs(2, 2)
	cache := NewHashCache()

	p0, err := BuildPreimage(tx, 0, AllForkID, nil, 0, cache)
	require.NoError(t, err)
	p1, err := BuildPreimage(tx, 1, AllForkID, nil, 0, cache)
	require.NoError(t, err)

	assert.Equal(t, p0[4:36], p1[4:36], "hashPrevouts should be reused")
	assert.Equal(t, p0[36:68], p1[36:68], "hashSequence should be reused")

	outputsOffsetP0 := len(p0) - 4 - 4 - 32
	outputsOffsetP1 := len(p1) - 4 - 4 - 32
	assert.Equal(t, p0[outputsOffsetP0:outputsOffsetP0+32], p1[outputsOffsetP1:outputsOffsetP1+32],
		"hashOutputs should be reused under the ALL family")
}

func TestSingleOutputsHashIsIndexSpecificAndUncached(t *testing.T) {
	tx := txWithInputsOutputs(2, 2)
	cache := NewHashCache()

	p0, err := BuildPreimage(tx, 0, SingleForkID, nil, 0, cache)
	require.NoError(t, err)
	p1, err := BuildPreimage(tx, 1, SingleForkID, nil, 0, cache)
	require.NoError(t, err)

	outputsOffsetP0 := len(p0) - 4 - 4 - 32
	outputsOffsetP1 := len(p1) - 4 - 4 - 32
	assert.NotEqual(t, p0[outputsOffsetP0:outputsOffsetP0+32], p1[outputsOffsetP1:outputsOffsetP1+32],
		"hashOutputs must not be cached across differing n_tx_in under SINGLE (§9)")

	_, cached := cache.Get(FieldHashOutputs)
	assert.False(t, cached, "SINGLE must not populate the hashOutputs cache slot")
}

func TestSingleOverflowNonBugPath(t *testing.T) {
	tx := txWithInputsOutputs(2, 1)
	cache := NewHashCache()

	// SINGLE (no FORKID) with n_tx_in beyond outputs: not the bug path,
	// must surface SingleOverflowError instead of the fixed digest.
	_, err := BuildPreimage(tx, 1, SINGLE, nil, 0, cache)
	require.Error(t, err)
	var overflow *SingleOverflowError
	assert.ErrorAs(t, err, &overflow)
}

func TestSigHashSingleBugReproduction(t *testing.T) {
	tx := txWithInputsOutputs(2, 1)
	cache := NewHashCache()

	digest, err := Digest(tx, 1, SingleForkID, nil, 0, cache)
	require.NoError(t, err)

	want := wire.Hash256{}
	want[31] = 0x01
	assert.Equal(t, want, digest)
}

func TestDigestIdempotent(t *testing.T) {
	tx := txWithInputsOutputs(2, 2)
	cache := NewHashCache()

	d1, err := Digest(tx, 0, AllForkID, []byte{0x76, 0xa9}, 5000, cache)
	require.NoError(t, err)
	d2, err := Digest(tx, 0, AllForkID, []byte{0x76, 0xa9}, 5000, cache)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestSignAppendsFlagByte(t *testing.T) {
	tx := txWithInputsOutputs(1, 1)
	cache := NewHashCache()

	priv, err := bsvec.ParsePrivateKey(make32ByteKey(0x01))
	require.NoError(t, err)
	signer := bsvec.NewSigner(priv)

	sig, err := Sign(signer, tx, 0, AllForkID, []byte{0x76, 0xa9}, 1000, cache)
	require.NoError(t, err)

	assert.Equal(t, byte(AllForkID), sig[len(sig)-1])

	parsed, err := bsvec.ParseDERSignature(sig[:len(sig)-1])
	require.NoError(t, err)

	digest, err := Digest(tx, 0, AllForkID, []byte{0x76, 0xa9}, 1000, cache)
	require.NoError(t, err)
	assert.True(t, parsed.Verify(digest.Bytes(), priv.PubKey()))
}

func make32ByteKey(last byte) []byte {
	b := make([]byte, 32)
	b[31] = last
	return b
}

func TestIndexOutOfRange(t *testing.T) {
	tx := txWithInputsOutputs(1, 1)
	cache := NewHashCache()

	_, err := BuildPreimage(tx, 7, AllForkID, nil, 0, cache)
	require.Error(t, err)
	var oor *IndexOutOfRangeError
	assert.ErrorAs(t, err, &oor)
}
