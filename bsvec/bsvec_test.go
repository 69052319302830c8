// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bsvec

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

func testPrivateKey(t *testing.T) *PrivateKey {
	priv, err := ParsePrivateKey(forceHexDecode(t, "0000000000000000000000000000000000000000000000000000000000000001"))
	require.NoError(t, err)
	return priv
}

func TestParsePrivateKeyRejectsWrongLength(t *testing.T) {
	_, err := ParsePrivateKey([]byte{0x01, 0x02})
	assert.Error(t, err)
}

func TestPubKeyRoundTrip(t *testing.T) {
	priv := testPrivateKey(t)
	pub := priv.PubKey()
	compressed := pub.SerializeCompressed()
	assert.Len(t, compressed, 33)

	parsed, err := ParsePublicKey(compressed)
	require.NoError(t, err)
	assert.Equal(t, compressed, parsed.SerializeCompressed())
}

func TestLooksLikePublicKey(t *testing.T) {
	priv := testPrivateKey(t)
	compressed := priv.PubKey().SerializeCompressed()
	assert.True(t, LooksLikePublicKey(compressed))
	assert.False(t, LooksLikePublicKey(make([]byte, 33)))
	assert.False(t, LooksLikePublicKey([]byte{0x01, 0x02, 0x03}))
}

func TestSignAndVerify(t *testing.T) {
	priv := testPrivateKey(t)
	signer := NewSigner(priv)

	var digest [32]byte
	digest[0] = 0xAB

	sig, err := signer.SignDigest(digest)
	require.NoError(t, err)

	assert.True(t, sig.Verify(digest[:], priv.PubKey()))

	der := sig.Serialize()
	parsed, err := ParseDERSignature(der)
	require.NoError(t, err)
	assert.True(t, parsed.Verify(digest[:], priv.PubKey()))
}

func TestLooksLikeSignature(t *testing.T) {
	priv := testPrivateKey(t)
	signer := NewSigner(priv)
	var digest [32]byte
	digest[0] = 0x01

	sig, err := signer.SignDigest(digest)
	require.NoError(t, err)

	assert.True(t, LooksLikeSignature(sig.Serialize()))
	assert.False(t, LooksLikeSignature(forceHexDecode(t, "deadbeef")))
}
