// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import "github.com/x448/float16"

// FromFloat16 narrows an IEEE-754 half-precision value to bfloat16.
// Half precision keeps 10 mantissa bits, so the mode decides how the
// 3 extra bits are dropped; the exponent range always fits.
func FromFloat16(h float16.Float16, mode RoundingMode) BF16 {
	return FromFloat32(h.Float32(), mode)
}

// Float16 converts x to IEEE-754 half precision, rounding to nearest even.
// Magnitudes beyond the half-precision range become infinities or zeros.
func (x BF16) Float16() float16.Float16 {
	return float16.Fromfloat32(x.Float32())
}
