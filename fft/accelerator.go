// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft

import (
	"github.com/db47h/hwfft/fixed"
	"github.com/pkg/errors"
)

// Inputs are the boundary signals sampled on a clock edge. Load and Read are
// request levels, pulses are derived from their rising edges.
//
type Inputs struct {
	Enable bool
	Reset  bool
	Load   bool
	Read   bool
	Sample uint8 // packed sample carried with Load
}

// Outputs are the boundary signals after a clock edge. LoadPulse and
// ReadPulse are the combinational pulses seen before the edge.
//
type Outputs struct {
	Result       uint8
	OutputEnable bool
	Done         bool
	Phase        Phase
	LoadPulse    bool
	ReadPulse    bool
}

// State is the complete register state of an Accelerator.
//
type State struct {
	Seq   Sequencer
	Store Store
	Pipe  Pipeline
	load  EdgeDetector
	read  EdgeDetector
}

// Accelerator is the cycle model of the whole core: edge detectors, sample
// store, FFT engine and sequencer sharing one clock.
//
type Accelerator struct {
	cfg Config
	State
}

// New returns an accelerator in its reset state.
//
func New(cfg Config) (*Accelerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "failed to create accelerator")
	}
	return &Accelerator{
		cfg: cfg,
		State: State{
			Seq:   NewSequencer(&cfg),
			Store: NewStore(&cfg),
			Pipe:  Pipeline{Engine: NewEngine(&cfg)},
		},
	}, nil
}

// Config returns the accelerator configuration.
//
func (a *Accelerator) Config() Config { return a.cfg }

// Results returns the current engine outputs.
//
func (a *Accelerator) Results() [N]fixed.Complex {
	if a.cfg.Pipelined {
		return a.Pipe.Out()
	}
	return a.Pipe.Transform(a.Store.Slots())
}

// Packed returns the current engine outputs, packed.
//
func (a *Accelerator) Packed() [N]uint8 {
	return a.Pipe.Pack(a.Results())
}

// pulses returns the gated load and read pulses for in.
//
func (a *Accelerator) pulses(in *Inputs) (ld, rd bool) {
	ld, rd = a.load.Pulse(in.Load), a.read.Pulse(in.Read)
	if a.cfg.GatePulses && !in.Enable {
		return false, false
	}
	return ld, rd
}

// Tick advances the accelerator by one clock edge.
//
func (a *Accelerator) Tick(in Inputs) Outputs {
	if in.Reset && a.cfg.Reset == AsyncReset {
		// already in effect before the edge
		a.Reset()
	}
	ld, rd := a.pulses(&in)
	if in.Reset {
		a.Reset()
		return a.outputs(ld, rd)
	}

	// everything below uses pre-edge values.
	result := a.Packed()[a.Seq.ReadAddr]
	we := a.Seq.WriteEnable(in.Enable, ld)
	waddr := a.Seq.LoadAddr
	slots := a.Store.Slots()

	a.Store.Write(in.Enable, we, waddr, in.Sample)
	a.Seq.Clock(in.Enable, ld, rd, result)
	if a.cfg.Pipelined {
		a.Pipe.Clock(slots)
	}
	a.load.Clock(in.Load)
	a.read.Clock(in.Read)

	return a.outputs(ld, rd)
}

// Reset clears all registers. With an asynchronous reset configuration, this
// may be called at any time between clock edges.
//
func (a *Accelerator) Reset() {
	a.Seq.Reset()
	a.Store.Reset()
	a.Pipe.Reset()
	a.load.Reset()
	a.read.Reset()
}

func (a *Accelerator) outputs(ld, rd bool) Outputs {
	return Outputs{
		Result:       a.Seq.Data,
		OutputEnable: a.Seq.OE,
		Done:         a.Seq.Ready(),
		Phase:        a.Seq.Phase,
		LoadPulse:    ld,
		ReadPulse:    rd,
	}
}
