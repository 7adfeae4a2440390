// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft

import (
	"github.com/db47h/hwfft/fixed"
	"github.com/pkg/errors"
)

// ResetMode selects when a reset input takes effect.
//
type ResetMode int

// Reset modes.
//
const (
	// SyncReset clears state on the clock edge at which reset is sampled high.
	SyncReset ResetMode = iota
	// AsyncReset clears state as soon as reset is high, without waiting for
	// a clock edge.
	AsyncReset
)

// HoldMode selects how long the output enable stays high after a read.
//
type HoldMode int

// Output enable hold modes.
//
const (
	// HoldPulse keeps output enable high for the one cycle following an
	// accepted read pulse.
	HoldPulse HoldMode = iota
	// HoldLatch keeps output enable high for the whole Reading phase.
	HoldLatch
)

// Config holds every policy the accelerator can be built with. The zero
// value is not usable, start from DefaultConfig.
//
type Config struct {
	Width      uint           `yaml:"width"`
	InputShift uint           `yaml:"input_shift"`
	Rounding   fixed.Rounding `yaml:"rounding"`
	Overflow   fixed.Overflow `yaml:"overflow"`
	Reset      ResetMode      `yaml:"reset"`
	Hold       HoldMode       `yaml:"oe_hold"`
	GatePulses bool           `yaml:"gate_pulses"`
	Pipelined  bool           `yaml:"pipelined"`
	Stage1     Schedule       `yaml:"stage1"`
}

// DefaultConfig returns the configuration matching the reference outputs:
// 8 bits, 4 bit input shift, truncation, wraparound, synchronous reset,
// one cycle output enable, ungated pulses, combinational engine and a -1
// stage 1 twiddle.
//
func DefaultConfig() Config {
	return Config{
		Width:      8,
		InputShift: 4,
		Rounding:   fixed.Truncate,
		Overflow:   fixed.Wrap,
		Reset:      SyncReset,
		Hold:       HoldPulse,
		Stage1:     ScheduleReference,
	}
}

// Format returns the fixed-point format of the datapath.
//
func (c *Config) Format() fixed.Format {
	return fixed.Format{Width: c.Width, Rounding: c.Rounding, Overflow: c.Overflow}
}

// Latency returns the number of extra clock cycles the engine needs.
//
func (c *Config) Latency() int {
	if c.Pipelined {
		return 1
	}
	return 0
}

// Validate checks c for consistency.
//
func (c *Config) Validate() error {
	if err := c.Format().Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.InputShift+4 > c.Width {
		return errors.Errorf("invalid config: input shift %d too large for width %d", c.InputShift, c.Width)
	}
	if c.Reset != SyncReset && c.Reset != AsyncReset {
		return errors.Errorf("invalid config: reset mode %d", c.Reset)
	}
	if c.Hold != HoldPulse && c.Hold != HoldLatch {
		return errors.Errorf("invalid config: hold mode %d", c.Hold)
	}
	if c.Stage1 != ScheduleReference && c.Stage1 != ScheduleTextbook {
		return errors.Errorf("invalid config: stage 1 schedule %d", c.Stage1)
	}
	return nil
}
