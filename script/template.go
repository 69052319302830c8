// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/bsvctl/txcore/wire"
)

// DataLengthConstraint is the comparison applied by a Data(n, ...) match
// token against a pushed payload's length (§3.4).
type DataLengthConstraint uint8

const (
	ConstraintEquals DataLengthConstraint = iota
	ConstraintGreaterThan
	ConstraintLessThan
	ConstraintGreaterThanOrEquals
	ConstraintLessThanOrEquals
)

func (c DataLengthConstraint) String() string {
	switch c {
	case ConstraintEquals:
		return "Equals"
	case ConstraintGreaterThan:
		return "GreaterThan"
	case ConstraintLessThan:
		return "LessThan"
	case ConstraintGreaterThanOrEquals:
		return "GreaterThanOrEquals"
	case ConstraintLessThanOrEquals:
		return "LessThanOrEquals"
	default:
		return "Unknown"
	}
}

// satisfies reports whether a payload of the given length meets c against n.
func (c DataLengthConstraint) satisfies(length, n int) bool {
	switch c {
	case ConstraintEquals:
		return length == n
	case ConstraintGreaterThan:
		return length > n
	case ConstraintLessThan:
		return length < n
	case ConstraintGreaterThanOrEquals:
		return length >= n
	case ConstraintLessThanOrEquals:
		return length <= n
	default:
		return false
	}
}

// matchTokenKind discriminates the MatchToken variants of §3.4.
type matchTokenKind uint8

const (
	tokenOpCode matchTokenKind = iota
	tokenPush
	tokenPushData
	tokenAnyData
	tokenData
	tokenSignature
	tokenPublicKey
	tokenPublicKeyHash
)

// MatchToken is one element of a parsed ScriptTemplate (§3.4): either an
// exact match against a literal opcode/push/pushdata, or a fuzzy,
// capturing match against any data push meeting some constraint.
type MatchToken struct {
	kind       matchTokenKind
	op         OpCode
	data       []byte
	lengthN    int
	constraint DataLengthConstraint
}

func matchOpCode(op OpCode) MatchToken    { return MatchToken{kind: tokenOpCode, op: op} }
func matchPush(data []byte) MatchToken    { return MatchToken{kind: tokenPush, data: data} }
func matchPushData(op OpCode, data []byte) MatchToken {
	return MatchToken{kind: tokenPushData, op: op, data: data}
}
func matchData(n int, c DataLengthConstraint) MatchToken {
	return MatchToken{kind: tokenData, lengthN: n, constraint: c}
}

// AnyData, Signature, PublicKey, and PublicKeyHash are the parameterless
// capturing tokens (§3.4); exposed so callers can build templates
// programmatically instead of only from ASM strings.
var (
	AnyData       = MatchToken{kind: tokenAnyData}
	Signature     = MatchToken{kind: tokenSignature}
	PublicKey     = MatchToken{kind: tokenPublicKey}
	PublicKeyHash = MatchToken{kind: tokenPublicKeyHash}
)

// OpCodeToken builds the exact-match MatchToken for a bare opcode.
func OpCodeToken(op OpCode) MatchToken { return matchOpCode(op) }

// String implements fmt.Stringer for diagnostics (MatchFailureError uses
// this to render the expected token).
func (t MatchToken) String() string {
	switch t.kind {
	case tokenOpCode:
		return fmt.Sprintf("OpCode(%s)", t.op)
	case tokenPush:
		return fmt.Sprintf("Push(%s)", hex.EncodeToString(t.data))
	case tokenPushData:
		return fmt.Sprintf("PushData(%s, %s)", t.op, hex.EncodeToString(t.data))
	case tokenAnyData:
		return "AnyData"
	case tokenData:
		return fmt.Sprintf("Data(%d, %s)", t.lengthN, t.constraint)
	case tokenSignature:
		return "Signature"
	case tokenPublicKey:
		return "PublicKey"
	case tokenPublicKeyHash:
		return "PublicKeyHash"
	default:
		return "Unknown"
	}
}

// Template is a parsed sequence of MatchToken (§4.E/4.F), ready to be
// matched against a parsed Script by Script.Match / Script.Test.
type Template []MatchToken

// TemplateFromASM parses an assembly-style template string into a Template
// (§4.F). Tokens are separated by single ASCII spaces and mapped in the order
// described by spec.md §4.E:
//
//  1. an unsigned decimal integer (0, or 1..16, the small-int opcodes)
//  2. a known opcode name, with OP_SIG/OP_PUBKEY/OP_PUBKEYHASH/OP_DATA
//     remapped to their capturing token
//  3. an OP_DATA<op>N constraint (>=, <=, =, >, < tried in that order)
//  4. a hex-decoded literal push, classified as Push or PushData by length
func TemplateFromASM(asm string) (Template, error) {
	fields := strings.Split(asm, " ")
	out := make(Template, 0, len(fields))
	for _, field := range fields {
		tok, err := tokenFromString(field)
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

// TemplateFromScript derives a Template from a concrete Script by rendering
// it to its ASM string and re-parsing that, mirroring
// ScriptTemplate::from_script_impl in the reference (§6.2).
func TemplateFromScript(s Script) (Template, error) {
	return TemplateFromASM(s.ToAsmString())
}

func tokenFromString(code string) (MatchToken, error) {
	// Rule 1: decimal small-int opcodes.
	if v, err := strconv.ParseUint(code, 10, 8); err == nil {
		switch {
		case v == 0:
			return matchOpCode(OP_0), nil
		case v >= 1 && v <= 16:
			return matchOpCode(OpCode(uint8(OP_1) + uint8(v-1))), nil
		}
		// Falls through to the other rules for any other numeric value
		// (not a recognized small-int opcode).
	}

	// Rule 2: known opcode name, with role remaps.
	if op, ok := OpCodeFromName(code); ok {
		switch op {
		case OP_SIG:
			return Signature, nil
		case OP_PUBKEY:
			return PublicKey, nil
		case OP_PUBKEYHASH:
			return PublicKeyHash, nil
		case OP_DATA:
			return AnyData, nil
		default:
			return matchOpCode(op), nil
		}
	}

	// Rule 3: OP_DATA<op>N length constraints. Order matters: >= and <=
	// must be tried before > and < so that e.g. "OP_DATA>=32" isn't
	// mis-split on the bare ">".
	if strings.HasPrefix(code, OP_DATA.String()) {
		for _, c := range []struct {
			op         string
			constraint DataLengthConstraint
		}{
			{">=", ConstraintGreaterThanOrEquals},
			{"<=", ConstraintLessThanOrEquals},
			{"=", ConstraintEquals},
			{">", ConstraintGreaterThan},
			{"<", ConstraintLessThan},
		} {
			if _, lengthStr, found := strings.Cut(code, c.op); found {
				n, err := strconv.Atoi(lengthStr)
				if err != nil {
					return MatchToken{}, &OpDataParseError{Token: code, Cause: err}
				}
				return matchData(n, c.constraint), nil
			}
		}
	}

	// Rule 4: literal hex push.
	data, err := hex.DecodeString(code)
	if err != nil {
		return MatchToken{}, &MalformedHexError{Token: code, Cause: err}
	}
	if op, ok := wirePushDataOpcode(len(data)); ok {
		return matchPushData(op, data), nil
	}
	return matchPush(data), nil
}

// wirePushDataOpcode mirrors VarInt::get_pushdata_opcode (§6.1): it names
// which OP_PUSHDATAn, if any, a payload of this length requires. It defers
// to wire.PushDataOpcode for the length thresholds so the two packages don't
// carry independent copies of the same classification.
func wirePushDataOpcode(length int) (OpCode, bool) {
	op, ok := wire.PushDataOpcode(length)
	return OpCode(op), ok
}
