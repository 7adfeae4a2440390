// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft

import "github.com/db47h/hwfft/fixed"

// N is the transform size.
//
const N = 4

// Schedule selects the stage 1 twiddle of the engine.
//
type Schedule int

// Stage 1 schedules.
//
const (
	// ScheduleReference uses -1 for both stage 1 butterflies. This is what
	// the reference outputs were produced with.
	ScheduleReference Schedule = iota
	// ScheduleTextbook uses +1, as in a radix-2 decimation in time FFT.
	ScheduleTextbook
)

// Twiddle returns the stage 1 twiddle for s.
//
func (s Schedule) Twiddle() Twiddle {
	if s == ScheduleTextbook {
		return One
	}
	return MinusOne
}

// Engine is the 2 stage, 4 point FFT network. It holds no state: pipelining
// is the caller's business (see Pipeline).
//
//	Stage 1: (s0, s1) = Butterfly(in0, in2, W), (s2, s3) = Butterfly(in1, in3, W)
//	Stage 2: (out0, out2) = Butterfly(s0, s2, +1)
//	         (out1, out3) = Butterfly(s1, s3, -j)
//
type Engine struct {
	Format fixed.Format
	W      Twiddle // stage 1 twiddle
}

// NewEngine returns the engine described by cfg.
//
func NewEngine(cfg *Config) Engine {
	return Engine{Format: cfg.Format(), W: cfg.Stage1.Twiddle()}
}

// Stage1 returns the stage 1 outputs in the order s1_0_pos, s1_0_neg,
// s1_1_pos, s1_1_neg.
//
func (e Engine) Stage1(in [N]fixed.Complex) (s [N]fixed.Complex) {
	s[0], s[1] = Butterfly(e.Format, in[0], in[2], e.W)
	s[2], s[3] = Butterfly(e.Format, in[1], in[3], e.W)
	return s
}

// Stage2 maps stage 1 outputs to the transform outputs.
//
func (e Engine) Stage2(s [N]fixed.Complex) (out [N]fixed.Complex) {
	out[0], out[2] = Butterfly(e.Format, s[0], s[2], One)
	out[1], out[3] = Butterfly(e.Format, s[1], s[3], MinusJ)
	return out
}

// Transform runs both stages.
//
func (e Engine) Transform(in [N]fixed.Complex) [N]fixed.Complex {
	return e.Stage2(e.Stage1(in))
}

// Pack packs each output with Format.PackTop.
//
func (e Engine) Pack(out [N]fixed.Complex) (p [N]uint8) {
	for i := range out {
		p[i] = e.Format.PackTop(out[i])
	}
	return p
}

// Pipeline is an Engine with a register between its stages.
//
type Pipeline struct {
	Engine
	reg [N]fixed.Complex
}

// Clock loads the stage register from in.
//
func (p *Pipeline) Clock(in [N]fixed.Complex) {
	p.reg = p.Stage1(in)
}

// Out returns the transform of the samples seen at the last clock edge.
//
func (p *Pipeline) Out() [N]fixed.Complex {
	return p.Stage2(p.reg)
}

// Reset clears the stage register.
//
func (p *Pipeline) Reset() {
	p.reg = [N]fixed.Complex{}
}
