// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sighash

import "github.com/bsvctl/txcore/wire"

// CacheField names one of the three memoizable sub-digests (§3.2).
type CacheField uint8

const (
	FieldHashPrevouts CacheField = iota
	FieldHashSequence
	FieldHashOutputs
)

// HashCache memoizes the three sub-digests (hashPrevouts, hashSequence,
// hashOutputs) that may be reused across inputs of the same transaction
// (§3.2/§4.B). It holds no back-reference to its owning transaction - pure
// data, per §9's note that no cyclic ownership arises.
//
// There is no internal locking: per spec.md §5, concurrent signing across
// inputs of one transaction is the caller's responsibility (precompute the
// three digests, then share an immutable snapshot across workers).
type HashCache struct {
	hashPrevouts *wire.Hash256
	hashSequence *wire.Hash256
	hashOutputs  *wire.Hash256
}

// NewHashCache returns an empty cache.
func NewHashCache() *HashCache {
	return &HashCache{}
}

// Get returns the cached digest for field, if present.
func (c *HashCache) Get(field CacheField) (wire.Hash256, bool) {
	switch field {
	case FieldHashPrevouts:
		if c.hashPrevouts != nil {
			return *c.hashPrevouts, true
		}
	case FieldHashSequence:
		if c.hashSequence != nil {
			return *c.hashSequence, true
		}
	case FieldHashOutputs:
		if c.hashOutputs != nil {
			return *c.hashOutputs, true
		}
	}
	return wire.Hash256{}, false
}

// Set stores digest for field. Once set, a field is never mutated by the
// rest of this package (§3.2 invariant) - callers that need to recompute
// must build a fresh HashCache.
func (c *HashCache) Set(field CacheField, digest wire.Hash256) {
	switch field {
	case FieldHashPrevouts:
		c.hashPrevouts = &digest
	case FieldHashSequence:
		c.hashSequence = &digest
	case FieldHashOutputs:
		c.hashOutputs = &digest
	}
}
