// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sighash

import (
	"encoding/binary"

	"github.com/bsvctl/txcore/wire"
)

// BuildPreimage assembles the SIGHASH preimage byte sequence for input
// nTxIn of tx, per §4.C. scriptCode is the script substituted into the
// signed input (typically the previous output's locking script, or a
// subset per BIP-143-style rules); value is the UTXO amount in satoshis
// with no range validation (§4.C).
//
// cache memoizes the three sub-digests that are reusable across inputs of
// tx; pass the same *HashCache across calls for the same transaction to
// get the reuse described in §4.C.1-3.
func BuildPreimage(tx *wire.Tx, nTxIn int, flag Flag, scriptCode []byte, value uint64, cache *HashCache) ([]byte, error) {
	in, ok := tx.InputAt(nTxIn)
	if !ok {
		return nil, &IndexOutOfRangeError{Index: nTxIn, Len: len(tx.TxIn), What: "input"}
	}

	hashPrevouts := computeHashPrevouts(tx, flag, cache)
	hashSequence := computeHashSequence(tx, flag, cache)
	hashOutputs, err := computeHashOutputs(tx, nTxIn, flag, cache)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 156+len(scriptCode))

	var versionBuf [4]byte
	binary.LittleEndian.PutUint32(versionBuf[:], tx.Version)
	buf = append(buf, versionBuf[:]...)

	buf = append(buf, hashPrevouts.Bytes()...)
	buf = append(buf, hashSequence.Bytes()...)

	buf = append(buf, in.PreviousOutPoint.Bytes()...)

	buf = wire.AppendVarInt(buf, uint64(len(scriptCode)))
	buf = append(buf, scriptCode...)

	var valueBuf [8]byte
	binary.LittleEndian.PutUint64(valueBuf[:], value)
	buf = append(buf, valueBuf[:]...)

	buf = append(buf, in.SequenceBytes()...)

	buf = append(buf, hashOutputs.Bytes()...)

	var lockTimeBuf [4]byte
	binary.LittleEndian.PutUint32(lockTimeBuf[:], tx.LockTime)
	buf = append(buf, lockTimeBuf[:]...)

	var flagBuf [4]byte
	binary.LittleEndian.PutUint32(flagBuf[:], flag.Uint32())
	buf = append(buf, flagBuf[:]...)

	return buf, nil
}

// computeHashPrevouts implements §4.C.1.
func computeHashPrevouts(tx *wire.Tx, flag Flag, cache *HashCache) wire.Hash256 {
	if flag.HasAnyoneCanPay() {
		return wire.ZeroHash
	}
	if d, ok := cache.Get(FieldHashPrevouts); ok {
		return d
	}

	var buf []byte
	for _, in := range tx.TxIn {
		buf = append(buf, in.PreviousOutPoint.Bytes()...)
	}
	digest := wire.Sha256d(buf)
	cache.Set(FieldHashPrevouts, digest)
	return digest
}

// computeHashSequence implements §4.C.2. A cached digest, once present, is
// returned for every flag. Otherwise only ALL / ALL|FORKID compute and
// cache a real digest; every other flag returns the zero hash uncached -
// preserved exactly per §9's note, even though caching the zero vector
// would be harmless.
func computeHashSequence(tx *wire.Tx, flag Flag, cache *HashCache) wire.Hash256 {
	if d, ok := cache.Get(FieldHashSequence); ok {
		return d
	}
	if flag != ALL && flag != AllForkID {
		return wire.ZeroHash
	}

	var buf []byte
	for _, in := range tx.TxIn {
		buf = append(buf, in.SequenceBytes()...)
	}
	digest := wire.Sha256d(buf)
	cache.Set(FieldHashSequence, digest)
	return digest
}

// computeHashOutputs implements §4.C.3. Per §9's "hashOutputs SINGLE
// caching oversight" note, this reimplementation deliberately does NOT
// cache in the SINGLE branches - only the ALL-family hash, which is
// index-invariant, is cached.
func computeHashOutputs(tx *wire.Tx, nTxIn int, flag Flag, cache *HashCache) (wire.Hash256, error) {
	if flag.IsSingle() {
		if nTxIn >= len(tx.TxOut) {
			return wire.Hash256{}, &SingleOverflowError{NTxIn: nTxIn, NumOutputs: len(tx.TxOut)}
		}
		out, ok := tx.OutputAt(nTxIn)
		if !ok {
			return wire.Hash256{}, &SingleOverflowError{NTxIn: nTxIn, NumOutputs: len(tx.TxOut)}
		}
		return wire.Sha256d(out.Bytes()), nil
	}

	if flag.IsAll() {
		if d, ok := cache.Get(FieldHashOutputs); ok {
			return d, nil
		}
		var buf []byte
		for _, out := range tx.TxOut {
			buf = append(buf, out.Bytes()...)
		}
		digest := wire.Sha256d(buf)
		cache.Set(FieldHashOutputs, digest)
		return digest, nil
	}

	return wire.ZeroHash, nil
}
