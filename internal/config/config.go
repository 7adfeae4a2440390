// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the fftsim configuration from a YAML file, then
// applies overrides from FFTSIM_* environment variables.
//
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/db47h/hwfft/fft"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding file settings.
//
const EnvPrefix = "FFTSIM_"

// File is the fftsim configuration. The accelerator settings are inlined at
// the top level:
//
//	width: 8
//	rounding: nearest
//	pipelined: true
//	workers: 4
//	log_level: debug
//
type File struct {
	fft.Config `yaml:",inline"`
	Workers    int        `yaml:"workers"` // parallel vector runs, 0 for GOMAXPROCS
	LogLevel   slog.Level `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
//
func Default() File {
	return File{Config: fft.DefaultConfig(), LogLevel: slog.LevelInfo}
}

// Validate checks the configuration.
//
func (f *File) Validate() error {
	if err := f.Config.Validate(); err != nil {
		return err
	}
	if f.Workers < 0 {
		return errors.Errorf("invalid config: negative worker count %d", f.Workers)
	}
	return nil
}

// env maps environment variable names, without prefix, to settings.
var env = []struct {
	name  string
	field func(f *File) interface{}
}{
	{"WIDTH", func(f *File) interface{} { return &f.Width }},
	{"INPUT_SHIFT", func(f *File) interface{} { return &f.InputShift }},
	{"ROUNDING", func(f *File) interface{} { return &f.Rounding }},
	{"OVERFLOW", func(f *File) interface{} { return &f.Overflow }},
	{"RESET", func(f *File) interface{} { return &f.Reset }},
	{"OE_HOLD", func(f *File) interface{} { return &f.Hold }},
	{"GATE_PULSES", func(f *File) interface{} { return &f.GatePulses }},
	{"PIPELINED", func(f *File) interface{} { return &f.Pipelined }},
	{"STAGE1", func(f *File) interface{} { return &f.Stage1 }},
	{"WORKERS", func(f *File) interface{} { return &f.Workers }},
	{"LOG_LEVEL", func(f *File) interface{} { return &f.LogLevel }},
}

// Load reads the configuration file at path, if not empty, over the
// defaults, then applies environment overrides. Unknown keys in the file are
// errors.
//
func Load(path string) (File, error) {
	f := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return f, errors.Wrap(err, "failed to read config")
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&f); err != nil && err != io.EOF {
			return f, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}
	if err := f.applyEnv(os.LookupEnv); err != nil {
		return f, err
	}
	if err := f.Validate(); err != nil {
		if path != "" {
			err = errors.Wrap(err, path)
		}
		return f, err
	}
	return f, nil
}

func (f *File) applyEnv(lookup func(string) (string, bool)) error {
	for _, e := range env {
		v, ok := lookup(EnvPrefix + e.name)
		if !ok || v == "" {
			continue
		}
		// values use the same syntax as in the config file.
		if err := yaml.Unmarshal([]byte(v), e.field(f)); err != nil {
			return errors.Wrapf(err, "invalid value %q for %s%s", v, EnvPrefix, e.name)
		}
	}
	return nil
}

// LoadDotEnv loads environment variables from the given files, or from .env
// in the current directory if none are given. Variables already set are not
// overridden. A missing default .env file is not an error.
//
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return nil
		}
	}
	return errors.Wrap(godotenv.Load(files...), "failed to load environment")
}
