// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import "math"

// Truncate narrows x to a bfloat16 bit pattern by discarding the lower
// 16 bits of its binary32 representation. The magnitude is never increased.
func Truncate(x float32) uint16 {
	b := math.Float32bits(x)
	if p, ok := narrowNaN(b); ok {
		return p
	}
	return uint16(b >> 16)
}

// RoundToNearest narrows x to a bfloat16 bit pattern, rounding up whenever
// the highest discarded bit is set, exact ties included.
//
// The increment is applied to the pattern as an unsigned integer: a full
// mantissa carries into the exponent, and the largest finite magnitude
// rounds to the infinity of the same sign. On negative values a tie
// therefore moves away from zero in the bit-pattern sense.
func RoundToNearest(x float32) uint16 {
	b := math.Float32bits(x)
	if p, ok := narrowNaN(b); ok {
		return p
	}
	hi := uint16(b >> 16)
	if b&roundBit != 0 {
		hi++
	}
	return hi
}

// RoundToNearestEven narrows x to a bfloat16 bit pattern, rounding to the
// nearest representable value and breaking exact ties towards the neighbor
// with an even mantissa.
func RoundToNearestEven(x float32) uint16 {
	b := math.Float32bits(x)
	if p, ok := narrowNaN(b); ok {
		return p
	}
	hi := uint16(b >> 16)
	if b&roundBit == 0 {
		return hi
	}
	if b&stickyMask != 0 || hi&1 != 0 {
		hi++
	}
	return hi
}

// Widen returns the float32 whose upper half is p and whose lower half is
// zero. The conversion is exact.
func Widen(p uint16) float32 {
	return math.Float32frombits(uint32(p) << 16)
}

// narrowNaN reports whether b encodes a NaN and, if so, returns its
// bfloat16 pattern. The upper half is kept as-is when it is still a NaN,
// otherwise the quiet bit is raised so that the payload living only in
// the discarded bits does not turn into an infinity.
func narrowNaN(b uint32) (uint16, bool) {
	if b&0x7FFFFFFF <= 0x7F800000 {
		return 0, false
	}
	hi := uint16(b >> 16)
	if hi&MantissaMask == 0 {
		hi |= QuietBit
	}
	return hi, true
}
