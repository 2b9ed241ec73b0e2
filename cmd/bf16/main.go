// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bf16 inspects how float32 values narrow to bfloat16.
//
// Usage:
//
//	bf16 [flags] value...
//
// Each value is either a decimal float32 literal or, with a "0x" prefix,
// a raw binary32 bit pattern. For every value, bf16 prints the narrowed
// bit pattern, its sign/exponent/mantissa fields and the widened result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nlpodyssey/bfloat16"
)

type config struct {
	mode    bfloat16.RoundingMode
	report  bool
	bench   int
	seed    uint64
	verbose bool
	values  []string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("bf16", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := config{mode: bfloat16.DefaultRounding}
	fs.TextVar(&cfg.mode, "mode", bfloat16.DefaultRounding, "Rounding mode (truncate, nearest, nearest-even)")
	fs.BoolVar(&cfg.report, "report", false, "Print the quantization error report for the given values, for every rounding mode")
	fs.IntVar(&cfg.bench, "bench", 0, "Time narrowing N pseudo-random values under every rounding mode")
	fs.Uint64Var(&cfg.seed, "seed", 2112, "Seed for the -bench value generator")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.bench < 0 {
		return config{}, fmt.Errorf("invalid -bench value %d: must not be negative", cfg.bench)
	}
	cfg.values = fs.Args()
	return cfg, nil
}

func setupLogging(stderr io.Writer, verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(stderr),
	})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	setupLogging(stderr, cfg.verbose)
	log.Debug().Stringer("mode", cfg.mode).Int("values", len(cfg.values)).Msg("Configuration loaded")

	values, err := parseValues(cfg.values)
	if err != nil {
		return err
	}

	if len(values) > 0 {
		writeTable(stdout, values, cfg.mode)
	}
	if cfg.report {
		if err := logReports(values); err != nil {
			return err
		}
	}
	if cfg.bench > 0 {
		runBenchmark(cfg.bench, cfg.seed)
	}
	if len(values) == 0 && cfg.bench == 0 {
		log.Warn().Msg("Nothing to do: pass some values or -bench N")
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("bf16 failed")
	}
}
