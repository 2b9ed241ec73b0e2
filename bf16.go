// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import (
	"cmp"
	"strconv"
)

// BF16 is an immutable 16-bit brain floating-point value.
//
// The zero value is positive zero. Go's == operator on BF16 compares bit
// patterns; use Equal for IEEE-754 semantics, where NaN is unequal to
// everything, itself included, and -0 equals +0.
//
// There is no implicit conversion from numeric literals: values are built
// with FromFloat32 (or one of its siblings) and an explicit RoundingMode,
// or with FromBits.
type BF16 struct {
	bits uint16
}

// FromBits returns the BF16 whose bit pattern is p.
func FromBits(p uint16) BF16 {
	return BF16{bits: p}
}

// FromFloat32 narrows x to a BF16 using the given rounding mode.
// It panics if mode is invalid.
func FromFloat32(x float32, mode RoundingMode) BF16 {
	return BF16{bits: mode.Narrow(x)}
}

// FromFloat64 converts x to float32 first, then narrows it like FromFloat32.
func FromFloat64(x float64, mode RoundingMode) BF16 {
	return FromFloat32(float32(x), mode)
}

// FromInt converts i to float32 first, then narrows it like FromFloat32.
func FromInt(i int, mode RoundingMode) BF16 {
	return FromFloat32(float32(i), mode)
}

// Bits returns the raw bit pattern.
func (x BF16) Bits() uint16 {
	return x.bits
}

// Float32 returns the exact float32 value of x.
func (x BF16) Float32() float32 {
	return Widen(x.bits)
}

// Float64 returns the exact float64 value of x.
func (x BF16) Float64() float64 {
	return float64(Widen(x.bits))
}

// Signbit reports whether the sign bit is set (negative values, -0 and
// NaNs with the sign bit set).
func (x BF16) Signbit() bool {
	return x.bits&SignMask != 0
}

// Exponent returns the raw, biased exponent field.
func (x BF16) Exponent() uint8 {
	return uint8((x.bits & ExponentMask) >> MantissaBits)
}

// Mantissa returns the raw mantissa field.
func (x BF16) Mantissa() uint8 {
	return uint8(x.bits & MantissaMask)
}

func (x BF16) IsNaN() bool { return isNaNBits(x.bits) }

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func (x BF16) IsInf(sign int) bool {
	if !isInfBits(x.bits) {
		return false
	}
	return sign == 0 || (sign > 0) == !x.Signbit()
}

// IsZero reports whether x is +0 or -0.
func (x BF16) IsZero() bool {
	return x.bits&^SignMask == 0
}

// IsFinite reports whether x is neither an infinity nor a NaN.
func (x BF16) IsFinite() bool {
	return x.bits&ExponentMask != ExponentMask
}

// Equal reports whether x == y under IEEE-754 float32 semantics.
func (x BF16) Equal(y BF16) bool { return x.Float32() == y.Float32() }

// NotEqual reports whether x != y under IEEE-754 float32 semantics.
func (x BF16) NotEqual(y BF16) bool { return x.Float32() != y.Float32() }

// Less reports whether x < y.
func (x BF16) Less(y BF16) bool { return x.Float32() < y.Float32() }

// LessEqual reports whether x <= y.
func (x BF16) LessEqual(y BF16) bool { return x.Float32() <= y.Float32() }

// Greater reports whether x > y.
func (x BF16) Greater(y BF16) bool { return x.Float32() > y.Float32() }

// GreaterEqual reports whether x >= y.
func (x BF16) GreaterEqual(y BF16) bool { return x.Float32() >= y.Float32() }

// Cmp compares x and y, returning -1, 0 or +1.
//
// Unlike the comparison methods, Cmp is a total order suitable for
// sorting: a NaN is less than any non-NaN, a NaN compares equal to
// another NaN, and -0 compares equal to +0.
func (x BF16) Cmp(y BF16) int {
	return cmp.Compare(x.Float32(), y.Float32())
}

// Add returns x + y, computed in float32 and narrowed with DefaultRounding.
func (x BF16) Add(y BF16) BF16 {
	return FromFloat32(x.Float32()+y.Float32(), DefaultRounding)
}

// Sub returns x - y, computed in float32 and narrowed with DefaultRounding.
func (x BF16) Sub(y BF16) BF16 {
	return FromFloat32(x.Float32()-y.Float32(), DefaultRounding)
}

// Mul returns x * y, computed in float32 and narrowed with DefaultRounding.
func (x BF16) Mul(y BF16) BF16 {
	return FromFloat32(x.Float32()*y.Float32(), DefaultRounding)
}

// Div returns x / y, computed in float32 and narrowed with DefaultRounding.
func (x BF16) Div(y BF16) BF16 {
	return FromFloat32(x.Float32()/y.Float32(), DefaultRounding)
}

// Neg returns x with its sign bit flipped.
func (x BF16) Neg() BF16 {
	return BF16{bits: x.bits ^ SignMask}
}

// Abs returns x with its sign bit cleared.
func (x BF16) Abs() BF16 {
	return BF16{bits: x.bits &^ SignMask}
}

// Sign returns -1 for negative values, +1 for positive values, and 0 for
// zeros and NaNs.
func (x BF16) Sign() int {
	switch {
	case x.IsZero() || x.IsNaN():
		return 0
	case x.Signbit():
		return -1
	default:
		return 1
	}
}

// String returns the shortest decimal representation of the widened value.
func (x BF16) String() string {
	return strconv.FormatFloat(float64(x.Float32()), 'g', -1, 32)
}

// Max returns the greatest of the given values. NaN values are ignored,
// unless all of them are NaN.
func Max(x BF16, xs ...BF16) BF16 {
	m := x
	for _, v := range xs {
		if m.IsNaN() || v.Greater(m) {
			m = v
		}
	}
	return m
}

// Min returns the least of the given values. NaN values are ignored,
// unless all of them are NaN.
func Min(x BF16, xs ...BF16) BF16 {
	m := x
	for _, v := range xs {
		if m.IsNaN() || v.Less(m) {
			m = v
		}
	}
	return m
}
