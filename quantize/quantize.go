// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quantize measures the error introduced by narrowing float32
// values to bfloat16.
package quantize

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nlpodyssey/bfloat16"
)

// ErrEmpty is returned when there are no values to measure.
var ErrEmpty = errors.New("quantize: no values to measure")

// Report summarizes the narrowing error over a set of values.
//
// Error statistics consider finite inputs only. A finite input that
// rounds up to an infinity contributes an infinite error.
type Report struct {
	Mode bfloat16.RoundingMode
	// Count is the number of measured values, non-finite ones included.
	Count int
	// NonFinite is the number of infinite or NaN inputs.
	NonFinite int
	// Changed is the number of finite inputs not exactly representable.
	Changed int

	MaxAbsError  float64
	MeanAbsError float64
	RMSE         float64
	// MaxRelError is computed over finite non-zero inputs.
	MaxRelError float64
}

// Measure narrows every value of src with mode, widens it back, and
// reports the resulting error.
func Measure(src []float32, mode bfloat16.RoundingMode) (Report, error) {
	if len(src) == 0 {
		return Report{}, ErrEmpty
	}
	if err := mode.Validate(); err != nil {
		return Report{}, err
	}

	r := Report{Mode: mode, Count: len(src)}
	absErrs := make([]float64, 0, len(src))
	relErrs := make([]float64, 0, len(src))

	for _, x := range src {
		v := float64(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.NonFinite++
			continue
		}
		y := float64(bfloat16.Widen(mode.Narrow(x)))
		d := math.Abs(y - v)
		if d != 0 {
			r.Changed++
		}
		absErrs = append(absErrs, d)
		if v != 0 {
			relErrs = append(relErrs, d/math.Abs(v))
		}
	}

	if n := len(absErrs); n > 0 {
		r.MaxAbsError = floats.Max(absErrs)
		r.MeanAbsError = stat.Mean(absErrs, nil)
		r.RMSE = floats.Norm(absErrs, 2) / math.Sqrt(float64(n))
	}
	if len(relErrs) > 0 {
		r.MaxRelError = floats.Max(relErrs)
	}
	return r, nil
}

// Compare measures src once per mode, in the given order.
func Compare(src []float32, modes ...bfloat16.RoundingMode) ([]Report, error) {
	reports := make([]Report, len(modes))
	for i, mode := range modes {
		r, err := Measure(src, mode)
		if err != nil {
			return nil, err
		}
		reports[i] = r
	}
	return reports, nil
}
