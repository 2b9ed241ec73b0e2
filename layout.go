// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

// Bit layout of a bfloat16 pattern, most-significant bit first:
//
//	S | EEEEEEEE | MMMMMMM
//
// It is exactly the upper half of an IEEE-754 binary32 pattern, sharing
// its exponent width and bias.
const (
	// SignMask selects the sign bit.
	SignMask uint16 = 0x8000
	// ExponentMask selects the 8 exponent bits.
	ExponentMask uint16 = 0x7F80
	// MantissaMask selects the 7 mantissa bits.
	MantissaMask uint16 = 0x007F
	// QuietBit is the most-significant mantissa bit, set on quiet NaNs.
	QuietBit uint16 = 0x0040

	// ExponentBits is the width of the exponent field.
	ExponentBits = 8
	// MantissaBits is the width of the mantissa field.
	MantissaBits = 7
	// ExponentBias is added to the true exponent when encoding it.
	ExponentBias = 127
)

// Masks over the discarded lower half of a binary32 pattern.
const (
	roundBit   uint32 = 0x8000
	stickyMask uint32 = 0x7FFF
)

func isNaNBits(p uint16) bool {
	return p&ExponentMask == ExponentMask && p&MantissaMask != 0
}

func isInfBits(p uint16) bool {
	return p&^SignMask == ExponentMask
}
