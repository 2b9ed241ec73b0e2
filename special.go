// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

// Canonical bit patterns of special and limit values.
const (
	positiveInfinityBits uint16 = 0x7F80
	negativeInfinityBits uint16 = 0xFF80
	quietNaNBits         uint16 = 0x7FC0
	signalingNaNBits     uint16 = 0x7FA0
	maxValueBits         uint16 = 0x7F7F
	lowestBits           uint16 = 0xFF7F
	smallestNormalBits   uint16 = 0x0080
	smallestNonzeroBits  uint16 = 0x0001
	epsilonBits          uint16 = 0x3C00
	roundErrorBits       uint16 = 0x3F00
)

// PositiveInfinity returns +Inf.
func PositiveInfinity() BF16 { return BF16{bits: positiveInfinityBits} }

// NegativeInfinity returns -Inf.
func NegativeInfinity() BF16 { return BF16{bits: negativeInfinityBits} }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) BF16 {
	if sign < 0 {
		return NegativeInfinity()
	}
	return PositiveInfinity()
}

// QuietNaN returns the canonical quiet NaN: all exponent bits and the
// most-significant mantissa bit set.
func QuietNaN() BF16 { return BF16{bits: quietNaNBits} }

// SignalingNaN returns a signaling NaN: all exponent bits set, a nonzero
// mantissa with the most-significant bit clear.
func SignalingNaN() BF16 { return BF16{bits: signalingNaNBits} }

// MaxValue returns the largest finite value (about 3.39e38).
func MaxValue() BF16 { return BF16{bits: maxValueBits} }

// Lowest returns the most negative finite value.
func Lowest() BF16 { return BF16{bits: lowestBits} }

// SmallestNormal returns the smallest positive normal value (about 1.18e-38).
func SmallestNormal() BF16 { return BF16{bits: smallestNormalBits} }

// SmallestNonzero returns the smallest positive subnormal value.
func SmallestNonzero() BF16 { return BF16{bits: smallestNonzeroBits} }

// Epsilon returns the difference between 1 and the next representable
// value (2^-7).
func Epsilon() BF16 { return BF16{bits: epsilonBits} }

// RoundError returns the maximum rounding error in units in the last
// place, 0.5.
func RoundError() BF16 { return BF16{bits: roundErrorBits} }
