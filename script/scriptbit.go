// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// ScriptBit is one tokenized element of a script (§3.3): either a bare
// opcode, a direct small push (OP_DATA_1..OP_DATA_75), or a length-prefixed
// pushdata (OP_PUSHDATA1/2/4). A Script is a sequence of these, which the
// matcher (match.go) walks position by position against a Template.
type ScriptBit struct {
	kind scriptBitKind
	op   OpCode
	data []byte
}

type scriptBitKind uint8

const (
	kindOpCode scriptBitKind = iota
	kindPush
	kindPushData
)

// NewOpCode builds the ScriptBit for a bare, non-data-push opcode.
func NewOpCode(op OpCode) ScriptBit { return ScriptBit{kind: kindOpCode, op: op} }

// NewPush builds the ScriptBit for a direct push of 1..=75 bytes.
func NewPush(data []byte) ScriptBit { return ScriptBit{kind: kindPush, data: data} }

// NewPushData builds the ScriptBit for an OP_PUSHDATA{1,2,4} push.
func NewPushData(op OpCode, data []byte) ScriptBit {
	return ScriptBit{kind: kindPushData, op: op, data: data}
}

// IsOpCode reports whether b is a bare opcode, returning it if so.
func (b ScriptBit) IsOpCode() (OpCode, bool) {
	if b.kind == kindOpCode {
		return b.op, true
	}
	return 0, false
}

// IsPush reports whether b is a direct push, returning its bytes if so.
func (b ScriptBit) IsPush() ([]byte, bool) {
	if b.kind == kindPush {
		return b.data, true
	}
	return nil, false
}

// IsPushData reports whether b is a pushdata push, returning its opcode
// and bytes if so.
func (b ScriptBit) IsPushData() (OpCode, []byte, bool) {
	if b.kind == kindPushData {
		return b.op, b.data, true
	}
	return 0, nil, false
}

// PushedData returns the payload bytes if b is any kind of push (direct or
// pushdata), and ok=false for a bare opcode. Template matching uses this
// for the Data and AnyData cases to avoid duplicating the Push/PushData
// switch; the Signature/PublicKey/PublicKeyHash cases accept direct pushes
// only and use IsPush.
func (b ScriptBit) PushedData() ([]byte, bool) {
	switch b.kind {
	case kindPush, kindPushData:
		return b.data, true
	default:
		return nil, false
	}
}

// String renders b as it would appear in an ASM-style script string: the
// opcode name for a bare opcode, or the hex of the pushed bytes otherwise.
func (b ScriptBit) String() string {
	switch b.kind {
	case kindOpCode:
		return b.op.String()
	default:
		return hex.EncodeToString(b.data)
	}
}

// Bytes returns the serialized form of b as it appears in a raw script.
func (b ScriptBit) Bytes() []byte {
	switch b.kind {
	case kindOpCode:
		return []byte{byte(b.op)}
	case kindPush:
		return append([]byte{byte(len(b.data))}, b.data...)
	case kindPushData:
		out := []byte{byte(b.op)}
		switch b.op {
		case OP_PUSHDATA1:
			out = append(out, byte(len(b.data)))
		case OP_PUSHDATA2:
			lb := make([]byte, 2)
			binary.LittleEndian.PutUint16(lb, uint16(len(b.data)))
			out = append(out, lb...)
		case OP_PUSHDATA4:
			lb := make([]byte, 4)
			binary.LittleEndian.PutUint32(lb, uint32(len(b.data)))
			out = append(out, lb...)
		}
		return append(out, b.data...)
	default:
		return nil
	}
}

// Script is an ordered sequence of ScriptBit, i.e. a tokenized Bitcoin
// script.
type Script []ScriptBit

// ErrMalformedScript is returned by Parse when a raw script's pushdata
// length prefix runs past the end of the script.
var ErrMalformedScript = errors.New("malformed script: truncated push")

// Parse tokenizes a raw script into its sequence of ScriptBit, the inverse
// of Script.Bytes. This is the "script tokenization"
// external collaborator named in spec.md §1 ("out of scope" as an
// interface, but it has to live somewhere concrete in this module since no
// upstream package is available to import).
func Parse(raw []byte) (Script, error) {
	var out Script
	i := 0
	for i < len(raw) {
		b := raw[i]
		op := OpCode(b)
		switch {
		case IsDirectPush(op):
			n := int(op)
			if i+1+n > len(raw) {
				return nil, errors.Wrapf(ErrMalformedScript, "%s needs %d bytes at offset %d", op, n, i)
			}
			out = append(out, NewPush(raw[i+1:i+1+n]))
			i += 1 + n

		case op == OP_PUSHDATA1:
			if i+2 > len(raw) {
				return nil, errors.Wrapf(ErrMalformedScript, "OP_PUSHDATA1 length byte missing at offset %d", i)
			}
			n := int(raw[i+1])
			if i+2+n > len(raw) {
				return nil, errors.Wrapf(ErrMalformedScript, "OP_PUSHDATA1 needs %d bytes at offset %d", n, i)
			}
			out = append(out, NewPushData(op, raw[i+2:i+2+n]))
			i += 2 + n

		case op == OP_PUSHDATA2:
			if i+3 > len(raw) {
				return nil, errors.Wrapf(ErrMalformedScript, "OP_PUSHDATA2 length bytes missing at offset %d", i)
			}
			n := int(binary.LittleEndian.Uint16(raw[i+1 : i+3]))
			if i+3+n > len(raw) {
				return nil, errors.Wrapf(ErrMalformedScript, "OP_PUSHDATA2 needs %d bytes at offset %d", n, i)
			}
			out = append(out, NewPushData(op, raw[i+3:i+3+n]))
			i += 3 + n

		case op == OP_PUSHDATA4:
			if i+5 > len(raw) {
				return nil, errors.Wrapf(ErrMalformedScript, "OP_PUSHDATA4 length bytes missing at offset %d", i)
			}
			n := int(binary.LittleEndian.Uint32(raw[i+1 : i+5]))
			if i+5+n > len(raw) {
				return nil, errors.Wrapf(ErrMalformedScript, "OP_PUSHDATA4 needs %d bytes at offset %d", n, i)
			}
			out = append(out, NewPushData(op, raw[i+5:i+5+n]))
			i += 5 + n

		default:
			out = append(out, NewOpCode(op))
			i++
		}
	}
	return out, nil
}

// Bytes serializes the script back to its raw byte form.
func (s Script) Bytes() []byte {
	var out []byte
	for _, bit := range s {
		out = append(out, bit.Bytes()...)
	}
	return out
}

// ToAsmString renders the script as an ASM-like string: opcode names and
// hex-encoded push payloads, space separated. This is Script.to_asm_string
// from the reference, used by TemplateFromScript to derive a template from
// a concrete script.
func (s Script) ToAsmString() string {
	parts := make([]string, len(s))
	for i, bit := range s {
		parts[i] = bit.String()
	}
	return strings.Join(parts, " ")
}
