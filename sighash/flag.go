// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sighash implements the SIGHASH preimage and signing engine
// (spec.md §4.C/§4.D): a deterministic, consensus-critical byte serializer
// for the message an ECDSA signer signs for a given transaction input,
// across the family of SIGHASH flag combinations, with a memoization cache
// for the three sub-digests reused across inputs of the same transaction.
package sighash

import "fmt"

// Flag is the one-byte SIGHASH discriminator (§3.1). Its three orthogonal
// axes - outputs mode, ANYONECANPAY, FORKID - are represented here as a
// single named enum rather than three separate bitfields, matching the
// closed, enumerated set the reference recognizes (only eleven named values
// are legal; arbitrary bit combinations are not).
type Flag uint8

const (
	// ALL signs every output (the default outputs mode).
	ALL Flag = 0x01
	// NONE signs no outputs.
	NONE Flag = 0x02
	// SINGLE signs only the output at the same index as the input.
	SINGLE Flag = 0x03
	// ANYONECANPAY, alone, commits only the current input.
	ANYONECANPAY Flag = 0x80
	// FORKID is the replay-protection bit used by BSV/BCH.
	FORKID Flag = 0x40

	// The six FORKID composites. The reference's aliases for them (below)
	// use plural "Inputs" for all inputs committed and singular "Input" for
	// ANYONECANPAY; "Outputs" is ALL, "Output" is SINGLE, no suffix is NONE.
	AllForkID                Flag = 0x41 // ALL | FORKID
	NoneForkID               Flag = 0x42 // NONE | FORKID
	SingleForkID             Flag = 0x43 // SINGLE | FORKID
	AllAnyoneCanPayForkID    Flag = 0xC1 // ALL | ANYONECANPAY | FORKID
	NoneAnyoneCanPayForkID   Flag = 0xC2 // NONE | ANYONECANPAY | FORKID
	SingleAnyoneCanPayForkID Flag = 0xC3 // SINGLE | ANYONECANPAY | FORKID
)

// Aliases matching the original implementation's discriminant names
// (carried over in the SUPPLEMENTED FEATURES expansion): these name the
// same numeric values as the composites above, just by the
// inputs/outputs-axis vocabulary the source crate used.
const (
	InputsOutputs Flag = AllForkID                // 0x41
	Inputs        Flag = NoneForkID               // 0x42
	InputsOutput  Flag = SingleForkID             // 0x43
	InputOutputs  Flag = AllAnyoneCanPayForkID    // 0xc1
	Input         Flag = NoneAnyoneCanPayForkID   // 0xc2
	InputOutput   Flag = SingleAnyoneCanPayForkID // 0xc3
)

var nameToFlag = map[string]Flag{
	"ALL":                          ALL,
	"NONE":                         NONE,
	"SINGLE":                       SINGLE,
	"ANYONECANPAY":                 ANYONECANPAY,
	"FORKID":                       FORKID,
	"ALL|FORKID":                   AllForkID,
	"NONE|FORKID":                  NoneForkID,
	"SINGLE|FORKID":                SingleForkID,
	"ALL|ANYONECANPAY|FORKID":      AllAnyoneCanPayForkID,
	"NONE|ANYONECANPAY|FORKID":     NoneAnyoneCanPayForkID,
	"SINGLE|ANYONECANPAY|FORKID":   SingleAnyoneCanPayForkID,
}

var flagToName = map[Flag]string{
	ALL:                      "ALL",
	NONE:                     "NONE",
	SINGLE:                   "SINGLE",
	ANYONECANPAY:             "ANYONECANPAY",
	FORKID:                   "FORKID",
	AllForkID:                "ALL|FORKID",
	NoneForkID:               "NONE|FORKID",
	SingleForkID:             "SINGLE|FORKID",
	AllAnyoneCanPayForkID:    "ALL|ANYONECANPAY|FORKID",
	NoneAnyoneCanPayForkID:   "NONE|ANYONECANPAY|FORKID",
	SingleAnyoneCanPayForkID: "SINGLE|ANYONECANPAY|FORKID",
}

// FlagConversionError reports that a name or numeric value does not map to
// one of the eleven enumerated SIGHASH flags (§4.A, §7).
type FlagConversionError struct {
	Name     string
	Value    uint32
	HasValue bool
}

func (e *FlagConversionError) Error() string {
	if e.HasValue {
		return fmt.Sprintf("sighash: %#x is not a recognized SIGHASH flag", e.Value)
	}
	return fmt.Sprintf("sighash: %q is not a recognized SIGHASH flag name", e.Name)
}

// FlagFromName parses one of the eleven recognized textual names.
func FlagFromName(name string) (Flag, error) {
	f, ok := nameToFlag[name]
	if !ok {
		return 0, &FlagConversionError{Name: name}
	}
	return f, nil
}

// FlagFromUint32 validates that v is one of the eleven enumerated numeric
// values and returns the corresponding Flag.
func FlagFromUint32(v uint32) (Flag, error) {
	f := Flag(v)
	if v > 0xff {
		return 0, &FlagConversionError{Value: v, HasValue: true}
	}
	if _, ok := flagToName[f]; !ok {
		return 0, &FlagConversionError{Value: v, HasValue: true}
	}
	return f, nil
}

// Name renders f as its canonical textual name.
func (f Flag) Name() string {
	if n, ok := flagToName[f]; ok {
		return n
	}
	return "UNKNOWN"
}

// String implements fmt.Stringer.
func (f Flag) String() string { return f.Name() }

// Uint8 returns the raw flag byte (the value appended after a signature and
// used to key the preimage's trailing 4-byte extension).
func (f Flag) Uint8() uint8 { return uint8(f) }

// Uint32 zero-extends the flag byte to 32 bits, as used in preimage step 10
// (§4.C item 10).
func (f Flag) Uint32() uint32 { return uint32(f) }

// HasAnyoneCanPay reports whether the ANYONECANPAY bit is set.
func (f Flag) HasAnyoneCanPay() bool { return f&ANYONECANPAY != 0 }

// HasForkID reports whether the FORKID bit is set.
func (f Flag) HasForkID() bool { return f&FORKID != 0 }

// IsAll reports whether f's outputs mode is ALL.
func (f Flag) IsAll() bool { return f.baseMode() == ALL }

// IsNone reports whether f's outputs mode is NONE.
func (f Flag) IsNone() bool { return f.baseMode() == NONE }

// IsSingle reports whether f's outputs mode is SINGLE.
func (f Flag) IsSingle() bool { return f.baseMode() == SINGLE }

// baseMode extracts the ALL/NONE/SINGLE mode (1, 2, or 3 for the eleven
// named flags) by clearing the ANYONECANPAY and FORKID bits.
func (f Flag) baseMode() Flag {
	return Flag(uint8(f) &^ uint8(ANYONECANPAY) &^ uint8(FORKID))
}
