// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bytes"

	"github.com/bsvctl/txcore/bsvec"
)

// MatchDataTypes tags the semantic role of a captured Match (§3.5). Per
// §4.G/§9, Signature, PublicKey, and PublicKeyHash captures are tagged Data
// rather than with their specific role - preserved here for compatibility with the
// reference's behavior, not "fixed", since spec.md calls this out
// explicitly as intentional-for-now.
type MatchDataTypes uint8

const (
	MatchKindData MatchDataTypes = iota
	MatchKindSignature
	MatchKindPublicKey
	MatchKindPublicKeyHash
)

func (k MatchDataTypes) String() string {
	switch k {
	case MatchKindData:
		return "Data"
	case MatchKindSignature:
		return "Signature"
	case MatchKindPublicKey:
		return "PublicKey"
	case MatchKindPublicKeyHash:
		return "PublicKeyHash"
	default:
		return "Unknown"
	}
}

// Match is one captured data slot produced by Script.Match (§3.5).
type Match struct {
	Kind MatchDataTypes
	Data []byte
}

// Match walks template and s in lock-step (§4.G) and either fails at the
// first mismatch or returns the ordered list of captures.
//
// The walk stops at min(len(template), len(s)): extra script bits beyond
// the template's length, or extra template tokens beyond the script's
// length, are both tolerated without error. This is surprising but is the
// reference's behavior and must be preserved for compatibility (§9).
func (s Script) Match(template Template) ([]Match, error) {
	if len(s) == 0 && len(template) != 0 {
		return nil, ErrEmptyScriptDoesntMatch
	}

	n := len(template)
	if len(s) < n {
		n = len(s)
	}

	matches := make([]Match, 0, n)
	for i := 0; i < n; i++ {
		tok := template[i]
		bit := s[i]

		if !tokenMatchesBit(tok, bit) {
			return nil, &MatchFailureError{Index: i, Expected: tok, Observed: bit}
		}

		if kind, data, captures := capture(tok, bit); captures {
			matches = append(matches, Match{Kind: kind, Data: data})
		}
	}

	return matches, nil
}

// Test is the boolean convenience form of Match (§4.G).
func (s Script) Test(template Template) bool {
	_, err := s.Match(template)
	return err == nil
}

// tokenMatchesBit implements the predicate table of §4.G.
func tokenMatchesBit(tok MatchToken, bit ScriptBit) bool {
	switch tok.kind {
	case tokenOpCode:
		op, ok := bit.IsOpCode()
		return ok && op == tok.op

	case tokenPush:
		data, ok := bit.IsPush()
		return ok && bytes.Equal(data, tok.data)

	case tokenPushData:
		op, data, ok := bit.IsPushData()
		return ok && op == tok.op && bytes.Equal(data, tok.data)

	case tokenData:
		data, ok := bit.PushedData()
		return ok && tok.constraint.satisfies(len(data), tok.lengthN)

	case tokenAnyData:
		_, ok := bit.PushedData()
		return ok

	case tokenSignature:
		data, ok := bit.IsPush()
		return ok && bsvec.LooksLikeSignature(data)

	case tokenPublicKey:
		data, ok := bit.IsPush()
		return ok && bsvec.LooksLikePublicKey(data)

	case tokenPublicKeyHash:
		data, ok := bit.IsPush()
		return ok && len(data) == 20

	default:
		return false
	}
}

// capture implements §4.G's capture rules: Data, AnyData, Signature,
// PublicKey, and PublicKeyHash all capture their payload; exact-match
// tokens capture nothing.
func capture(tok MatchToken, bit ScriptBit) (kind MatchDataTypes, data []byte, ok bool) {
	switch tok.kind {
	case tokenData, tokenAnyData:
		d, isPush := bit.PushedData()
		return MatchKindData, d, isPush
	case tokenSignature:
		d, isPush := bit.IsPush()
		return MatchKindData, d, isPush
	case tokenPublicKey:
		d, isPush := bit.IsPush()
		return MatchKindData, d, isPush
	case tokenPublicKeyHash:
		d, isPush := bit.IsPush()
		return MatchKindData, d, isPush
	default:
		return 0, nil, false
	}
}

