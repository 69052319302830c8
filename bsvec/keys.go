// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bsvec wraps the out-of-scope-but-required elliptic-curve
// collaborators named in spec.md §6.1: a deterministic-k ECDSA signer over
// secp256k1, DER signature (de)serialization, and public key parsing. The
// wrapping is backed by github.com/decred/dcrd/dcrec/secp256k1/v4, the
// curve implementation the teacher repo already depends on for its own
// address system.
package bsvec

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	inner *secp256k1.PrivateKey
}

// ParsePrivateKey parses a 32-byte big-endian scalar into a PrivateKey.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != 32 {
		return nil, errors.Errorf("private key must be 32 bytes, got %d", len(b))
	}
	priv := secp256k1.PrivKeyFromBytes(b)
	return &PrivateKey{inner: priv}, nil
}

// PubKey returns the public key corresponding to priv.
func (priv *PrivateKey) PubKey() *PublicKey {
	return &PublicKey{inner: priv.inner.PubKey()}
}

// PublicKey wraps a secp256k1 public key.
type PublicKey struct {
	inner *secp256k1.PublicKey
}

// ParsePublicKey parses a compressed (33-byte) or uncompressed/hybrid
// (65-byte) public key encoding. This backs MatchToken::PublicKey (§3.4):
// a script push "looks like a public key" iff this succeeds.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, errors.Wrap(err, "parse public key")
	}
	return &PublicKey{inner: pk}, nil
}

// SerializeCompressed returns the 33-byte compressed encoding.
func (pk *PublicKey) SerializeCompressed() []byte {
	return pk.inner.SerializeCompressed()
}

// LooksLikePublicKey reports whether data parses as a valid secp256k1
// public key, without exposing the parsed value - exactly what the
// template matcher's PublicKey predicate (§4.G) needs.
func LooksLikePublicKey(data []byte) bool {
	_, err := ParsePublicKey(data)
	return err == nil
}
