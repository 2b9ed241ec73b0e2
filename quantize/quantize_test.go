// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlpodyssey/bfloat16"
)

func TestMeasure_ExactValues(t *testing.T) {
	src := []float32{0, 1, -2, 3.5, 1.03125}
	for _, mode := range []bfloat16.RoundingMode{bfloat16.RoundTruncate, bfloat16.RoundNearest, bfloat16.RoundNearestEven} {
		r, err := Measure(src, mode)
		require.NoError(t, err)
		assert.Equal(t, Report{Mode: mode, Count: len(src)}, r)
	}
}

func TestMeasure_Tie(t *testing.T) {
	// 1.03515625 is halfway between 1.03125 and 1.0390625.
	src := []float32{1.03515625, 1}
	const halfULP = 0.00390625

	r, err := Measure(src, bfloat16.RoundTruncate)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, 1, r.Changed)
	assert.Equal(t, halfULP, r.MaxAbsError)
	assert.Equal(t, halfULP/2, r.MeanAbsError)
	assert.InDelta(t, halfULP/math.Sqrt2, r.RMSE, 1e-12)
	assert.InDelta(t, halfULP/1.03515625, r.MaxRelError, 1e-12)

	r, err = Measure(src, bfloat16.RoundNearest)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Changed)
	assert.Equal(t, halfULP, r.MaxAbsError)
}

func TestMeasure_RelativeErrorBound(t *testing.T) {
	src := []float32{3.14159, -273.15, 0.001, 1e6, 12345, 1e-20, 1e20}

	r, err := Measure(src, bfloat16.RoundNearestEven)
	require.NoError(t, err)
	assert.Equal(t, len(src), r.Changed)
	// Round to nearest is off by at most half a unit in the last place.
	assert.LessOrEqual(t, r.MaxRelError, 1.0/256)

	r, err = Measure(src, bfloat16.RoundTruncate)
	require.NoError(t, err)
	assert.Less(t, r.MaxRelError, 1.0/128)
}

func TestMeasure_NonFinite(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	r, err := Measure([]float32{inf, nan, 2}, bfloat16.DefaultRounding)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Count)
	assert.Equal(t, 2, r.NonFinite)
	assert.Zero(t, r.Changed)
	assert.Zero(t, r.MaxAbsError)

	r, err = Measure([]float32{nan}, bfloat16.DefaultRounding)
	require.NoError(t, err)
	assert.Equal(t, Report{Mode: bfloat16.DefaultRounding, Count: 1, NonFinite: 1}, r)

	maxFinite := math.Float32frombits(0x7F7FFFFF)
	r, err = Measure([]float32{maxFinite}, bfloat16.RoundNearest)
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.MaxAbsError, 1))
}

func TestMeasure_Errors(t *testing.T) {
	_, err := Measure(nil, bfloat16.DefaultRounding)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Measure([]float32{1}, 0)
	assert.EqualError(t, err, "invalid RoundingMode(0)")
}

func TestCompare(t *testing.T) {
	src := []float32{1.03515625}
	reports, err := Compare(src, bfloat16.RoundTruncate, bfloat16.RoundNearest, bfloat16.RoundNearestEven)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, bfloat16.RoundTruncate, reports[0].Mode)
	assert.Equal(t, bfloat16.RoundNearest, reports[1].Mode)
	assert.Equal(t, bfloat16.RoundNearestEven, reports[2].Mode)
	for _, r := range reports {
		assert.Equal(t, 1, r.Changed)
	}

	_, err = Compare(nil, bfloat16.RoundTruncate)
	assert.ErrorIs(t, err, ErrEmpty)
}
