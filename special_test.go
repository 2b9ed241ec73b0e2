// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecialValues(t *testing.T) {
	assert.True(t, math.IsInf(float64(PositiveInfinity().Float32()), 1))
	assert.True(t, math.IsInf(float64(NegativeInfinity().Float32()), -1))
	assert.True(t, math.IsInf(float64(PositiveInfinity().Neg().Float32()), -1))
	assert.True(t, math.IsNaN(float64(QuietNaN().Float32())))
	assert.True(t, math.IsNaN(float64(SignalingNaN().Float32())))

	assert.Equal(t, PositiveInfinity(), Inf(1))
	assert.Equal(t, PositiveInfinity(), Inf(0))
	assert.Equal(t, NegativeInfinity(), Inf(-1))

	assert.Equal(t, uint16(0x7F80), PositiveInfinity().Bits())
	assert.Equal(t, uint16(0xFF80), NegativeInfinity().Bits())
	assert.NotZero(t, QuietNaN().Bits()&QuietBit, "quiet NaN must have the quiet bit set")
	assert.Zero(t, SignalingNaN().Bits()&QuietBit, "signaling NaN must have the quiet bit clear")
	assert.NotZero(t, SignalingNaN().Mantissa())
}

func TestNumericLimits(t *testing.T) {
	assert.Equal(t, math.Float32frombits(0x7F7F0000), MaxValue().Float32())
	assert.Equal(t, -MaxValue().Float32(), Lowest().Float32())
	assert.Equal(t, float32(math.Float32frombits(0x00800000)), SmallestNormal().Float32())
	assert.Equal(t, math.Float32frombits(0x00010000), SmallestNonzero().Float32())
	assert.Equal(t, float32(0.0078125), Epsilon().Float32())
	assert.Equal(t, float32(0.5), RoundError().Float32())

	one := FromFloat32(1, DefaultRounding)
	assert.True(t, one.Add(Epsilon()).Greater(one))
	assert.Equal(t, uint16(0x3F81), one.Add(Epsilon()).Bits())

	assert.True(t, MaxValue().IsFinite())
	assert.True(t, MaxValue().Add(MaxValue()).IsInf(1))
	assert.True(t, Lowest().Add(Lowest()).IsInf(-1))
}
