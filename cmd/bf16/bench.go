// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nlpodyssey/bfloat16"
)

// randomValues returns n values uniformly distributed in [-300, 300).
func randomValues(n int, seed uint64) []float32 {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*600 - 300
	}
	return out
}

func runBenchmark(n int, seed uint64) {
	values := randomValues(n, seed)
	log.Info().Int("values", n).Int("bytes", n*4).Msg("Benchmark buffer ready")

	for _, mode := range allModes {
		start := time.Now()
		out := bfloat16.FromFloat32s(values, mode)
		elapsed := time.Since(start)
		log.Info().
			Stringer("mode", mode).
			Int("values", len(out)).
			Dur("elapsed", elapsed).
			Msg("float32 to bfloat16")
	}

	start := time.Now()
	widened := bfloat16.Float32s(bfloat16.FromFloat32s(values, bfloat16.DefaultRounding))
	log.Info().
		Int("values", len(widened)).
		Dur("elapsed", time.Since(start)).
		Msg("float32 round trip")
}
