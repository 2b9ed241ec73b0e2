// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import "fmt"

// RoundingMode selects how a float32 is narrowed to bfloat16.
type RoundingMode uint8

const (
	// RoundTruncate discards the lower 16 bits (see Truncate).
	RoundTruncate RoundingMode = iota + 1
	// RoundNearest rounds ties up in the bit-pattern sense (see RoundToNearest).
	RoundNearest
	// RoundNearestEven rounds ties to even (see RoundToNearestEven).
	RoundNearestEven
)

// DefaultRounding is the mode used by arithmetic operations to narrow
// their float32 results.
const DefaultRounding = RoundNearestEven

var (
	roundingModeToString = [...]string{
		RoundTruncate:    "truncate",
		RoundNearest:     "nearest",
		RoundNearestEven: "nearest-even",
	}
	roundingModeToJSON = [...]string{
		RoundTruncate:    `"truncate"`,
		RoundNearest:     `"nearest"`,
		RoundNearestEven: `"nearest-even"`,
	}
	roundingModeNarrow = [...]func(float32) uint16{
		RoundTruncate:    Truncate,
		RoundNearest:     RoundToNearest,
		RoundNearestEven: RoundToNearestEven,
	}
)

// Validate returns an error if the RoundingMode is not valid, otherwise nil.
func (m RoundingMode) Validate() error {
	if m == 0 || m > RoundNearestEven {
		return fmt.Errorf("invalid RoundingMode(%d)", m)
	}
	return nil
}

// String returns a string representation of a RoundingMode.
func (m RoundingMode) String() string {
	if err := m.Validate(); err != nil {
		return err.Error()
	}
	return roundingModeToString[m]
}

// Narrow converts x to a bfloat16 bit pattern according to the mode.
// It panics if the RoundingMode value is invalid.
func (m RoundingMode) Narrow(x float32) uint16 {
	if err := m.Validate(); err != nil {
		panic(fmt.Errorf("cannot narrow with %w", err))
	}
	return roundingModeNarrow[m](x)
}

// ParseRoundingMode parses a RoundingMode from its string representation.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch s {
	case "truncate":
		return RoundTruncate, nil
	case "nearest":
		return RoundNearest, nil
	case "nearest-even":
		return RoundNearestEven, nil
	}
	return 0, fmt.Errorf("invalid RoundingMode string value %q", s)
}

// MarshalJSON satisfies json.Marshaler interface.
func (m RoundingMode) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(roundingModeToJSON[m]), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (m *RoundingMode) UnmarshalJSON(b []byte) error {
	s := string(b)
	switch s {
	case `"truncate"`:
		*m = RoundTruncate
	case `"nearest"`:
		*m = RoundNearest
	case `"nearest-even"`:
		*m = RoundNearestEven
	default:
		return fmt.Errorf("failed to JSON-unmarshal RoundingMode from value %q", s)
	}
	return nil
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(roundingModeToString[m]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	v, err := ParseRoundingMode(string(text))
	if err != nil {
		return fmt.Errorf("failed to text-unmarshal RoundingMode from value %q", text)
	}
	*m = v
	return nil
}
