// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bench drives an accelerator through its host protocol: load four
// packed samples, wait for done, read four packed results.
//
// The same driver runs the behavioral model (fft.Accelerator) and the
// circuit built by hwlib.Top, through the Device interface.
//
package bench

import (
	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/hwlib"
	"github.com/pkg/errors"
)

// A Device is clocked once per call to Tick, with the given boundary inputs,
// and returns its boundary outputs after the clock edge.
//
type Device interface {
	Tick(in fft.Inputs) fft.Outputs
}

// NewModel returns the behavioral model for cfg as a Device.
//
func NewModel(cfg fft.Config) (Device, error) {
	a, err := fft.New(cfg)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Circuit runs the hwlib.Top chip as a Device.
//
// Raw circuit inputs are sampled at the rising edge following the clock
// cycle they were set in. Circuit hides that latency by setting inputs in
// the middle of a clock cycle, so that each Tick sees the same outputs as
// the behavioral model.
//
type Circuit struct {
	c   *hw.Circuit
	in  fft.Inputs
	out struct {
		dout, phase       int64
		oe, done, ld, rd bool
	}
}

// NewCircuit builds the circuit for cfg. workers is passed to hw.NewCircuit.
// Callers must call Close once done.
//
func NewCircuit(cfg fft.Config, workers int) (*Circuit, error) {
	top, err := hwlib.Top(cfg)
	if err != nil {
		return nil, err
	}
	d := new(Circuit)
	c, err := hw.NewCircuit(workers, hwlib.StepsPerCycle, hw.Parts{
		hwlib.Input(func() bool { return d.in.Enable })("out=en"),
		hwlib.Input(func() bool { return d.in.Reset })("out=rst"),
		hwlib.Input(func() bool { return d.in.Load })("out=ld"),
		hwlib.Input(func() bool { return d.in.Read })("out=rd"),
		hwlib.InputWord(func() int64 { return int64(d.in.Sample) })("out=din"),
		top("en=en, rst=rst, ld=ld, rd=rd, din=din, " +
			"dout=dout, oe=oe, done=done, phase=phase, ldp=ldp, rdp=rdp"),
		hwlib.OutputWord(func(v int64) { d.out.dout = v })("in=dout"),
		hwlib.OutputWord(func(v int64) { d.out.phase = v })("in=phase"),
		hwlib.Output(func(v bool) { d.out.oe = v })("in=oe"),
		hwlib.Output(func(v bool) { d.out.done = v })("in=done"),
		hwlib.Output(func(v bool) { d.out.ld = v })("in=ldp"),
		hwlib.Output(func(v bool) { d.out.rd = v })("in=rdp"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create circuit")
	}
	d.c = c
	// move to the middle of the first clock cycle.
	c.Tick()
	return d, nil
}

// Tick implements Device.
//
func (d *Circuit) Tick(in fft.Inputs) fft.Outputs {
	d.in = in
	// the end of the cycle settles the pulses.
	d.c.Tock()
	ld, rd := d.out.ld, d.out.rd
	// rising edge, then let registered outputs settle.
	d.c.Tick()
	return fft.Outputs{
		Result:       uint8(d.out.dout),
		OutputEnable: d.out.oe,
		Done:         d.out.done,
		Phase:        fft.Phase(d.out.phase),
		LoadPulse:    ld,
		ReadPulse:    rd,
	}
}

// Cycles returns the number of clock cycles run.
//
func (d *Circuit) Cycles() uint {
	return d.c.Cycles()
}

// Close releases the circuit's resources.
//
func (d *Circuit) Close() error {
	d.c.Dispose()
	return nil
}
