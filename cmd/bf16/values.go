// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nlpodyssey/bfloat16"
)

// parseValues accepts decimal float32 literals and "0x"-prefixed binary32
// bit patterns.
func parseValues(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, s := range args {
		if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
			u, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid bit pattern %q: %w", s, err)
			}
			out[i] = math.Float32frombits(uint32(u))
			continue
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float32 value %q: %w", s, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// writeTable prints one line per value: the binary32 input, the narrowed
// pattern with its fields, and the widened result.
func writeTable(w io.Writer, values []float32, mode bfloat16.RoundingMode) {
	for _, x := range values {
		v := bfloat16.FromFloat32(x, mode)
		sign := 0
		if v.Signbit() {
			sign = 1
		}
		fmt.Fprintf(w, "%08x -> %04x  %d %08b %07b  %v\n",
			math.Float32bits(x), v.Bits(), sign, v.Exponent(), v.Mantissa(), v)
	}
}
