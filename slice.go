// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

// FromFloat32s narrows each element of src using the given rounding mode.
// It panics if mode is invalid.
func FromFloat32s(src []float32, mode RoundingMode) []BF16 {
	if err := mode.Validate(); err != nil {
		panic(err)
	}
	narrow := roundingModeNarrow[mode]
	out := make([]BF16, len(src))
	for i, x := range src {
		out[i] = BF16{bits: narrow(x)}
	}
	return out
}

// Float32s widens each element of src.
func Float32s(src []BF16) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = Widen(x.bits)
	}
	return out
}

// FromBitsSlice wraps each raw bit pattern of src.
func FromBitsSlice(src []uint16) []BF16 {
	out := make([]BF16, len(src))
	for i, p := range src {
		out[i] = BF16{bits: p}
	}
	return out
}

// BitsSlice returns the raw bit pattern of each element of src.
func BitsSlice(src []BF16) []uint16 {
	out := make([]uint16, len(src))
	for i, x := range src {
		out[i] = x.bits
	}
	return out
}

// EqualSlices reports whether a and b have the same length and all
// their elements are Equal. A NaN element makes the slices unequal.
func EqualSlices(a, b []BF16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
