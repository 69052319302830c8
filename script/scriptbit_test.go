// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forceHexDecode(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err, "could not decode hex %s", s)
	return b
}

func TestParseBareOpcodes(t *testing.T) {
	raw := []byte{byte(OP_DUP), byte(OP_HASH160), byte(OP_EQUALVERIFY), byte(OP_CHECKSIG)}

	s, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, s, 4)

	op, ok := s[0].IsOpCode()
	assert.True(t, ok)
	assert.Equal(t, OP_DUP, op)
}

func TestParseDirectPush(t *testing.T) {
	payload := forceHexDecode(t, "1111111111111111111111111111111111111111")
	raw := append([]byte{byte(len(payload))}, payload...)

	s, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, s, 1)

	data, ok := s[0].IsPush()
	assert.True(t, ok)
	assert.Equal(t, payload, data)
}

func TestParsePushData1(t *testing.T) {
	payload := make([]byte, 80)
	for i := range payload {
		payload[i] = 0xAB
	}
	raw := append([]byte{byte(OP_PUSHDATA1), byte(len(payload))}, payload...)

	s, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, s, 1)

	op, data, ok := s[0].IsPushData()
	assert.True(t, ok)
	assert.Equal(t, OP_PUSHDATA1, op)
	assert.Equal(t, payload, data)
}

func TestParseTruncatedPushIsMalformed(t *testing.T) {
	raw := []byte{0x05, 0x01, 0x02} // claims 5 bytes, only has 2

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrMalformedScript)
}

func TestBytesRoundTrip(t *testing.T) {
	payload := forceHexDecode(t, "deadbeef")
	raw := []byte{byte(OP_DUP), byte(len(payload))}
	raw = append(raw, payload...)
	raw = append(raw, byte(OP_EQUAL))

	s, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, s.Bytes())
}

func TestToAsmString(t *testing.T) {
	s := Script{NewOpCode(OP_DUP), NewOpCode(OP_HASH160), NewPush(forceHexDecode(t, "deadbeef"))}
	assert.Equal(t, "OP_DUP OP_HASH160 deadbeef", s.ToAsmString())
}
