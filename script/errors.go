// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"github.com/pkg/errors"
)

// The template-matching error taxonomy (§7: "TemplateParse" and
// "TemplateMatch"). Each is a distinct type rather than a sentinel so a
// caller can errors.As into it to recover the offending token, index, or
// underlying cause, matching the reference crate's thiserror enum
// (ScriptTemplateErrors) field-for-field.

// OpDataParseError reports that an OP_DATA<op>N token's length suffix
// failed to parse as an unsigned integer.
type OpDataParseError struct {
	Token string
	Cause error
}

func (e *OpDataParseError) Error() string {
	return fmt.Sprintf("failed to parse OP_DATA code %s: %v", e.Token, e.Cause)
}

func (e *OpDataParseError) Unwrap() error { return e.Cause }

// MalformedHexError reports that a template token was neither a number,
// nor a known opcode name, nor an OP_DATA constraint, and failed to
// hex-decode as a literal push.
type MalformedHexError struct {
	Token string
	Cause error
}

func (e *MalformedHexError) Error() string {
	return fmt.Sprintf("%s: %v", e.Token, e.Cause)
}

func (e *MalformedHexError) Unwrap() error { return e.Cause }

// MatchFailureError reports that the script bit at Index did not satisfy
// the predicate for the template token at the same position (§4.G).
type MatchFailureError struct {
	Index    int
	Expected MatchToken
	Observed ScriptBit
}

func (e *MatchFailureError) Error() string {
	return fmt.Sprintf("script did not match template at index %d. %s is not equal to %v",
		e.Index, e.Observed, e.Expected)
}

// ErrEmptyScriptDoesntMatch is returned when the script is empty but the
// template is not (§4.G).
var ErrEmptyScriptDoesntMatch = errors.New("script is empty but template is not")
