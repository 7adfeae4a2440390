// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command fftsim runs test vectors through the simulated FFT accelerator and
// checks the results.
//
// Usage:
//
//	fftsim [flags] [vector files...]
//
// Vector files hold one transform per line, four re,im sample pairs in the
// range [-128, 127]. With no file, vectors are read from standard input.
//
// Each vector is run through the circuit built by hwlib.Top (or the
// behavioral model with -model), using the host protocol, and compared to the
// behavioral model. When the configuration uses the reference policies, the
// results are also checked against the golden model.
//
// The configuration is read from the file given with -config, then from
// FFTSIM_* environment variables. A .env file in the current directory, or
// the one given with -env, is loaded first.
//
// The exit status is 1 if any result is wrong, 2 on any other error.
//
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/db47h/hwfft/bench"
	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
	"github.com/db47h/hwfft/golden"
	"github.com/db47h/hwfft/internal/config"
	"github.com/pkg/errors"
)

const (
	exitOK = iota
	exitMismatch
	exitError
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fftsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgFile := fs.String("config", "", "configuration `file` (YAML)")
	envFile := fs.String("env", "", "load environment variables from `file` instead of .env")
	useModel := fs.Bool("model", false, "run the behavioral model instead of the circuit")
	verbose := fs.Bool("v", false, "trace the host protocol (same as log_level: debug)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	vs, err := readVectors(fs.Args(), stdin)
	if err != nil {
		log.Error("failed to read vectors", slog.Any("error", err))
		return exitError
	}
	log.Info("starting",
		slog.Int("vectors", len(vs)),
		slog.Bool("model", *useModel),
		slog.Any("config", cfg.Config))

	ok, err := check(ctx, &cfg, *useModel, vs, stdout, log)
	if err != nil {
		log.Error("run failed", slog.Any("error", err))
		return exitError
	}
	if !ok {
		return exitMismatch
	}
	return exitOK
}

func readVectors(files []string, stdin io.Reader) ([]vector, error) {
	if len(files) == 0 {
		return parseVectors("<stdin>", stdin)
	}
	var vs []vector
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		v, err := parseVectors(name, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v...)
	}
	return vs, nil
}

// reference returns true if cfg produces the same results as the golden
// model. Reset, hold, gating and pipelining do not change results.
//
func reference(cfg *fft.Config) bool {
	ref := fft.DefaultConfig()
	return cfg.Format() == ref.Format() && cfg.InputShift == ref.InputShift && cfg.Stage1 == ref.Stage1
}

func check(ctx context.Context, cfg *config.File, useModel bool, vs []vector, w io.Writer, log *slog.Logger) (bool, error) {
	packed := make([][fft.N]uint8, len(vs))
	for i := range vs {
		var in [fft.N]fixed.Complex
		for k, s := range vs[i].raw {
			in[k] = fixed.C(int64(s[0]), int64(s[1]))
		}
		packed[i] = bench.PackSamples(cfg.InputShift, in)
	}

	newDevice := func() (bench.Device, error) {
		if useModel {
			return bench.NewModel(cfg.Config)
		}
		c, err := bench.NewCircuit(cfg.Config, 1)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	out, err := bench.RunAll(ctx, newDevice, packed, cfg.Workers, log)
	if err != nil {
		return false, err
	}

	useGolden := reference(&cfg.Config)
	if !useGolden {
		log.Warn("non reference configuration, golden model check disabled")
	}
	ok := true
	for i := range vs {
		m, err := bench.NewModel(cfg.Config)
		if err != nil {
			return false, err
		}
		exp, err := bench.Run(ctx, m, packed[i])
		if err != nil {
			return false, errors.Wrapf(err, "model run for %v", &vs[i])
		}
		status := "ok"
		switch {
		case out[i] != exp:
			status = fmt.Sprintf("MISMATCH model % x", exp[:])
			ok = false
		case useGolden && out[i] != golden.TopFFT(vs[i].raw):
			g := golden.TopFFT(vs[i].raw)
			status = fmt.Sprintf("MISMATCH golden % x", g[:])
			ok = false
		}
		fmt.Fprintf(w, "%v: % x => % x %s\n", &vs[i], packed[i][:], out[i][:], status)
	}
	return ok, nil
}
