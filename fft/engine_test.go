// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
	"github.com/db47h/hwfft/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refEngine() fft.Engine {
	cfg := fft.DefaultConfig()
	return fft.NewEngine(&cfg)
}

func TestEngine_golden(t *testing.T) {
	e := refEngine()
	prop := func(raw [8]int8) bool {
		var in [fft.N]fixed.Complex
		var gin [4][2]int
		for i := range in {
			in[i] = c8(raw[2*i], raw[2*i+1])
			gin[i] = [2]int{int(raw[2*i]), int(raw[2*i+1])}
		}
		out := e.Transform(in)
		gout := golden.FFT4(gin)
		for i := range out {
			if out[i] != fixed.C(int64(gout[i][0]), int64(gout[i][1])) {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestEngine_scenarios(t *testing.T) {
	e := refEngine()
	cfg := fft.DefaultConfig()
	cfg.Stage1 = fft.ScheduleTextbook
	tb := fft.NewEngine(&cfg)

	impulse := [fft.N]fixed.Complex{fixed.C(16, 0)}
	dc := [fft.N]fixed.Complex{fixed.C(16, 0), fixed.C(16, 0), fixed.C(16, 0), fixed.C(16, 0)}

	// flat spectrum for an impulse, with either schedule
	flat := [fft.N]fixed.Complex{fixed.C(16, 0), fixed.C(16, 0), fixed.C(16, 0), fixed.C(16, 0)}
	assert.Equal(t, flat, e.Transform(impulse))
	assert.Equal(t, flat, tb.Transform(impulse))

	// textbook DC: all the energy in bin 0
	assert.Equal(t, [fft.N]fixed.Complex{fixed.C(64, 0)}, tb.Transform(dc))

	// reference schedule: stage 1 computes differences first
	assert.Equal(t, [fft.N]fixed.Complex{{}, fixed.C(32, -32), {}, fixed.C(32, 32)}, e.Transform(dc))

	// 4x unit wraps past the 8 bits range
	big := [fft.N]fixed.Complex{fixed.C(64, 0), fixed.C(64, 0), fixed.C(64, 0), fixed.C(64, 0)}
	assert.Equal(t, fixed.C(0, 0), tb.Transform(big)[0])
	cfg.Overflow = fixed.Saturate
	assert.Equal(t, fixed.C(127, 0), fft.NewEngine(&cfg).Transform(big)[0])
}

func TestEngine_Pack(t *testing.T) {
	e := refEngine()
	dc := [fft.N]fixed.Complex{fixed.C(16, 0), fixed.C(16, 0), fixed.C(16, 0), fixed.C(16, 0)}
	assert.Equal(t, [fft.N]uint8{0x00, 0x2E, 0x00, 0x22}, e.Pack(e.Transform(dc)))
}

func TestPipeline(t *testing.T) {
	p := fft.Pipeline{Engine: refEngine()}
	in := [fft.N]fixed.Complex{fixed.C(10, 20), fixed.C(30, 40), fixed.C(50, 60), fixed.C(70, 80)}

	assert.Equal(t, [fft.N]fixed.Complex{}, p.Out())
	p.Clock(in)
	assert.Equal(t, p.Transform(in), p.Out())
	p.Reset()
	assert.Equal(t, [fft.N]fixed.Complex{}, p.Out())
}
