// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bfloat16 implements the bfloat16 ("brain floating point")
// 16-bit format and its bit-exact conversions to and from float32.
//
// A bfloat16 pattern is the upper half of an IEEE-754 binary32 pattern:
// same sign bit, same 8-bit exponent with bias 127, and the 7 most
// significant mantissa bits. Narrowing a float32 is done under one of
// three policies (Truncate, RoundToNearest, RoundToNearestEven); widening
// back to float32 is always exact.
//
// Arithmetic on BF16 values is performed in float32 and narrowed back with
// DefaultRounding. All functions are pure and values are immutable, so
// they can be shared freely between goroutines.
package bfloat16
