// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import "fmt"

// OpCode is a single script opcode byte.
type OpCode byte

// Opcodes used directly by the data model (§3.3/§3.4) and by the standard
// script patterns the template language matches against. The full table
// mirrors the conventional btcsuite/thoughtd naming (OP_DUP, OP_HASH160,
// OP_DATA_N, ...) so that template strings such as "OP_DUP OP_HASH160
// OP_PUBKEYHASH OP_EQUALVERIFY OP_CHECKSIG" resolve the same way a reader
// familiar with that family of codebases would expect.
const (
	OP_0     OpCode = 0x00
	OP_FALSE OpCode = 0x00

	// OP_DATA_1 through OP_DATA_75 push the next 1-75 bytes onto the
	// stack; the opcode's numeric value equals the push length.
	OP_DATA_1  OpCode = 0x01
	OP_DATA_20 OpCode = 0x14
	OP_DATA_33 OpCode = 0x21
	OP_DATA_65 OpCode = 0x41
	OP_DATA_75 OpCode = 0x4b

	OP_PUSHDATA1 OpCode = 0x4c
	OP_PUSHDATA2 OpCode = 0x4d
	OP_PUSHDATA4 OpCode = 0x4e
	OP_1NEGATE   OpCode = 0x4f
	OP_RESERVED  OpCode = 0x50

	OP_1  OpCode = 0x51
	OP_2  OpCode = 0x52
	OP_3  OpCode = 0x53
	OP_4  OpCode = 0x54
	OP_5  OpCode = 0x55
	OP_6  OpCode = 0x56
	OP_7  OpCode = 0x57
	OP_8  OpCode = 0x58
	OP_9  OpCode = 0x59
	OP_10 OpCode = 0x5a
	OP_11 OpCode = 0x5b
	OP_12 OpCode = 0x5c
	OP_13 OpCode = 0x5d
	OP_14 OpCode = 0x5e
	OP_15 OpCode = 0x5f
	OP_16 OpCode = 0x60

	OP_NOP                 OpCode = 0x61
	OP_VER                 OpCode = 0x62
	OP_IF                  OpCode = 0x63
	OP_NOTIF               OpCode = 0x64
	OP_VERIF               OpCode = 0x65
	OP_VERNOTIF            OpCode = 0x66
	OP_ELSE                OpCode = 0x67
	OP_ENDIF               OpCode = 0x68
	OP_VERIFY              OpCode = 0x69
	OP_RETURN              OpCode = 0x6a
	OP_TOALTSTACK          OpCode = 0x6b
	OP_FROMALTSTACK        OpCode = 0x6c
	OP_2DROP               OpCode = 0x6d
	OP_2DUP                OpCode = 0x6e
	OP_3DUP                OpCode = 0x6f
	OP_2OVER               OpCode = 0x70
	OP_2ROT                OpCode = 0x71
	OP_2SWAP               OpCode = 0x72
	OP_IFDUP               OpCode = 0x73
	OP_DEPTH               OpCode = 0x74
	OP_DROP                OpCode = 0x75
	OP_DUP                 OpCode = 0x76
	OP_NIP                 OpCode = 0x77
	OP_OVER                OpCode = 0x78
	OP_PICK                OpCode = 0x79
	OP_ROLL                OpCode = 0x7a
	OP_ROT                 OpCode = 0x7b
	OP_SWAP                OpCode = 0x7c
	OP_TUCK                OpCode = 0x7d
	OP_CAT                 OpCode = 0x7e
	OP_SPLIT               OpCode = 0x7f
	OP_SIZE                OpCode = 0x82
	OP_INVERT              OpCode = 0x83
	OP_AND                 OpCode = 0x84
	OP_OR                  OpCode = 0x85
	OP_XOR                 OpCode = 0x86
	OP_EQUAL               OpCode = 0x87
	OP_EQUALVERIFY         OpCode = 0x88
	OP_1ADD                OpCode = 0x8b
	OP_1SUB                OpCode = 0x8c
	OP_2MUL                OpCode = 0x8d
	OP_2DIV                OpCode = 0x8e
	OP_NEGATE              OpCode = 0x8f
	OP_ABS                 OpCode = 0x90
	OP_NOT                 OpCode = 0x91
	OP_0NOTEQUAL           OpCode = 0x92
	OP_ADD                 OpCode = 0x93
	OP_SUB                 OpCode = 0x94
	OP_MUL                 OpCode = 0x95
	OP_DIV                 OpCode = 0x96
	OP_MOD                 OpCode = 0x97
	OP_LSHIFT              OpCode = 0x98
	OP_RSHIFT              OpCode = 0x99
	OP_BOOLAND             OpCode = 0x9a
	OP_BOOLOR              OpCode = 0x9b
	OP_NUMEQUAL            OpCode = 0x9c
	OP_NUMEQUALVERIFY      OpCode = 0x9d
	OP_NUMNOTEQUAL         OpCode = 0x9e
	OP_LESSTHAN            OpCode = 0x9f
	OP_GREATERTHAN         OpCode = 0xa0
	OP_LESSTHANOREQUAL     OpCode = 0xa1
	OP_GREATERTHANOREQUAL  OpCode = 0xa2
	OP_MIN                 OpCode = 0xa3
	OP_MAX                 OpCode = 0xa4
	OP_WITHIN              OpCode = 0xa5
	OP_RIPEMD160           OpCode = 0xa6
	OP_SHA1                OpCode = 0xa7
	OP_SHA256              OpCode = 0xa8
	OP_HASH160             OpCode = 0xa9
	OP_HASH256             OpCode = 0xaa
	OP_CODESEPARATOR       OpCode = 0xab
	OP_CHECKSIG            OpCode = 0xac
	OP_CHECKSIGVERIFY      OpCode = 0xad
	OP_CHECKMULTISIG       OpCode = 0xae
	OP_CHECKMULTISIGVERIFY OpCode = 0xaf
	OP_NOP1                OpCode = 0xb0
	OP_CHECKLOCKTIMEVERIFY OpCode = 0xb1
	OP_CHECKSEQUENCEVERIFY OpCode = 0xb2
	OP_NOP4                OpCode = 0xb3
	OP_NOP5                OpCode = 0xb4
	OP_NOP6                OpCode = 0xb5
	OP_NOP7                OpCode = 0xb6
	OP_NOP8                OpCode = 0xb7
	OP_NOP9                OpCode = 0xb8
	OP_NOP10               OpCode = 0xb9

	// OP_INVALIDOPCODE is the 0xff byte; the tokenizer yields it as a bare
	// opcode like any other unassigned byte. OpCodeFromName reports a failed
	// lookup through ok=false, not through this value.
	OP_INVALIDOPCODE OpCode = 0xff
)

// Template-language pseudo-opcodes. They are not real script opcodes (Parse
// yields one only for a raw 0xf0-0xf3 byte, which it keeps as a bare
// opcode); they exist only so the template parser
// (§4.E/4.F) can recognize the role-remapped tokens OP_SIG, OP_PUBKEY,
// OP_PUBKEYHASH, and OP_DATA by name, the same way the reference crate's
// OpCodes enum carries them as variants alongside the real opcodes.
const (
	OP_SIG        OpCode = 0xf0
	OP_PUBKEY     OpCode = 0xf1
	OP_PUBKEYHASH OpCode = 0xf2
	OP_DATA       OpCode = 0xf3
)

var opcodeNames = map[OpCode]string{
	OP_0: "OP_0", OP_DATA_1: "OP_DATA_1", OP_DATA_20: "OP_DATA_20",
	OP_DATA_33: "OP_DATA_33", OP_DATA_65: "OP_DATA_65", OP_DATA_75: "OP_DATA_75",
	OP_PUSHDATA1: "OP_PUSHDATA1", OP_PUSHDATA2: "OP_PUSHDATA2", OP_PUSHDATA4: "OP_PUSHDATA4",
	OP_1NEGATE: "OP_1NEGATE", OP_RESERVED: "OP_RESERVED",
	OP_1: "OP_1", OP_2: "OP_2", OP_3: "OP_3", OP_4: "OP_4", OP_5: "OP_5",
	OP_6: "OP_6", OP_7: "OP_7", OP_8: "OP_8", OP_9: "OP_9", OP_10: "OP_10",
	OP_11: "OP_11", OP_12: "OP_12", OP_13: "OP_13", OP_14: "OP_14", OP_15: "OP_15", OP_16: "OP_16",
	OP_NOP: "OP_NOP", OP_VER: "OP_VER", OP_IF: "OP_IF", OP_NOTIF: "OP_NOTIF",
	OP_VERIF: "OP_VERIF", OP_VERNOTIF: "OP_VERNOTIF", OP_ELSE: "OP_ELSE", OP_ENDIF: "OP_ENDIF",
	OP_VERIFY: "OP_VERIFY", OP_RETURN: "OP_RETURN",
	OP_TOALTSTACK: "OP_TOALTSTACK", OP_FROMALTSTACK: "OP_FROMALTSTACK",
	OP_2DROP: "OP_2DROP", OP_2DUP: "OP_2DUP", OP_3DUP: "OP_3DUP",
	OP_2OVER: "OP_2OVER", OP_2ROT: "OP_2ROT", OP_2SWAP: "OP_2SWAP",
	OP_IFDUP: "OP_IFDUP", OP_DEPTH: "OP_DEPTH", OP_DROP: "OP_DROP", OP_DUP: "OP_DUP",
	OP_NIP: "OP_NIP", OP_OVER: "OP_OVER", OP_PICK: "OP_PICK", OP_ROLL: "OP_ROLL",
	OP_ROT: "OP_ROT", OP_SWAP: "OP_SWAP", OP_TUCK: "OP_TUCK",
	OP_CAT: "OP_CAT", OP_SPLIT: "OP_SPLIT", OP_SIZE: "OP_SIZE",
	OP_INVERT: "OP_INVERT", OP_AND: "OP_AND", OP_OR: "OP_OR", OP_XOR: "OP_XOR",
	OP_EQUAL: "OP_EQUAL", OP_EQUALVERIFY: "OP_EQUALVERIFY",
	OP_1ADD: "OP_1ADD", OP_1SUB: "OP_1SUB", OP_2MUL: "OP_2MUL", OP_2DIV: "OP_2DIV",
	OP_NEGATE: "OP_NEGATE", OP_ABS: "OP_ABS", OP_NOT: "OP_NOT", OP_0NOTEQUAL: "OP_0NOTEQUAL",
	OP_ADD: "OP_ADD", OP_SUB: "OP_SUB", OP_MUL: "OP_MUL", OP_DIV: "OP_DIV", OP_MOD: "OP_MOD",
	OP_LSHIFT: "OP_LSHIFT", OP_RSHIFT: "OP_RSHIFT",
	OP_BOOLAND: "OP_BOOLAND", OP_BOOLOR: "OP_BOOLOR",
	OP_NUMEQUAL: "OP_NUMEQUAL", OP_NUMEQUALVERIFY: "OP_NUMEQUALVERIFY", OP_NUMNOTEQUAL: "OP_NUMNOTEQUAL",
	OP_LESSTHAN: "OP_LESSTHAN", OP_GREATERTHAN: "OP_GREATERTHAN",
	OP_LESSTHANOREQUAL: "OP_LESSTHANOREQUAL", OP_GREATERTHANOREQUAL: "OP_GREATERTHANOREQUAL",
	OP_MIN: "OP_MIN", OP_MAX: "OP_MAX", OP_WITHIN: "OP_WITHIN",
	OP_RIPEMD160: "OP_RIPEMD160", OP_SHA1: "OP_SHA1", OP_SHA256: "OP_SHA256",
	OP_HASH160: "OP_HASH160", OP_HASH256: "OP_HASH256", OP_CODESEPARATOR: "OP_CODESEPARATOR",
	OP_CHECKSIG: "OP_CHECKSIG", OP_CHECKSIGVERIFY: "OP_CHECKSIGVERIFY",
	OP_CHECKMULTISIG: "OP_CHECKMULTISIG", OP_CHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",
	OP_NOP1: "OP_NOP1", OP_CHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
	OP_CHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY",
	OP_NOP4: "OP_NOP4", OP_NOP5: "OP_NOP5", OP_NOP6: "OP_NOP6", OP_NOP7: "OP_NOP7",
	OP_NOP8: "OP_NOP8", OP_NOP9: "OP_NOP9", OP_NOP10: "OP_NOP10",
	OP_SIG: "OP_SIG", OP_PUBKEY: "OP_PUBKEY", OP_PUBKEYHASH: "OP_PUBKEYHASH", OP_DATA: "OP_DATA",
}

// namesToOpcode is the reverse of opcodeNames, built once at init time and
// used by the template parser's name lookup (§4.F rule 2).
var namesToOpcode = func() map[string]OpCode {
	m := make(map[string]OpCode, len(opcodeNames))
	for op, name := range opcodeNames {
		m[name] = op
	}
	// OP_DATA_N for every direct-push length (1..75) so OpCodeFromName can
	// resolve names this table doesn't enumerate individually.
	for n := OpCode(1); n <= OP_DATA_75; n++ {
		if _, ok := m[fmt.Sprintf("OP_DATA_%d", n)]; !ok {
			m[fmt.Sprintf("OP_DATA_%d", n)] = n
		}
	}
	return m
}()

// String implements fmt.Stringer, returning the canonical OP_ name. An
// OP_DATA_N the table doesn't spell out is rendered as "OP_DATA_<n>"; any
// other unnamed byte gets the hex fallback "OP_UNKNOWN(0x..)".
func (op OpCode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	if op >= OP_DATA_1 && op <= OP_DATA_75 {
		return fmt.Sprintf("OP_DATA_%d", op)
	}
	return fmt.Sprintf("OP_UNKNOWN(0x%02x)", byte(op))
}

// OpCodeFromName parses a textual opcode name (as it appears in a script's
// ASM form or a template string) back into its OpCode value. ok is false
// for an unrecognized name.
func OpCodeFromName(name string) (OpCode, bool) {
	op, ok := namesToOpcode[name]
	return op, ok
}

// IsDirectPush reports whether op is one of OP_DATA_1..OP_DATA_75, i.e. a
// direct length-prefixed push whose opcode value equals the push length.
func IsDirectPush(op OpCode) bool {
	return op >= OP_DATA_1 && op <= OP_DATA_75
}

// IsPushData reports whether op is one of OP_PUSHDATA1/2/4.
func IsPushData(op OpCode) bool {
	return op == OP_PUSHDATA1 || op == OP_PUSHDATA2 || op == OP_PUSHDATA4
}

// IsSmallInt reports whether op is OP_0 or OP_1..OP_16, the opcodes that
// push a small integer directly.
func IsSmallInt(op OpCode) bool {
	return op == OP_0 || (op >= OP_1 && op <= OP_16)
}
