// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nlpodyssey/bfloat16"
	"github.com/nlpodyssey/bfloat16/quantize"
)

var allModes = []bfloat16.RoundingMode{
	bfloat16.RoundTruncate,
	bfloat16.RoundNearest,
	bfloat16.RoundNearestEven,
}

type reportObject quantize.Report

func (r reportObject) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("mode", r.Mode).
		Int("count", r.Count).
		Int("non_finite", r.NonFinite).
		Int("changed", r.Changed).
		Float64("max_abs_error", r.MaxAbsError).
		Float64("mean_abs_error", r.MeanAbsError).
		Float64("rmse", r.RMSE).
		Float64("max_rel_error", r.MaxRelError)
}

func logReports(values []float32) error {
	reports, err := quantize.Compare(values, allModes...)
	if err != nil {
		return err
	}
	for _, r := range reports {
		log.Info().EmbedObject(reportObject(r)).Msg("Quantization report")
	}
	return nil
}
