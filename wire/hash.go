// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the small slice of the Bitcoin transaction wire
// format that a SIGHASH preimage needs: little-endian integers, VarInt
// lengths, outpoints, and the double-SHA-256 digest. It deliberately does
// not implement general transaction (de)serialization, witness data, or any
// policy checks - those are out of scope for this core.
package wire

import "crypto/sha256"

// HashSize is the number of bytes in a double-SHA-256 digest.
const HashSize = 32

// Hash256 is a double-SHA-256 digest, stored and serialized internally
// byte-for-byte as it appears on the wire (no endian flip).
type Hash256 [HashSize]byte

// Bytes returns a copy of the digest bytes.
func (h Hash256) Bytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// Sha256d returns the double-SHA-256 digest of b: SHA256(SHA256(b)).
func Sha256d(b []byte) Hash256 {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return Hash256(second)
}

// ZeroHash is the all-zero 32-byte digest used whenever a SIGHASH variant
// zeroes out one of the three reusable sub-digests.
var ZeroHash Hash256
