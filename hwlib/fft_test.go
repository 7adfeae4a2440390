// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
	hl "github.com/db47h/hwfft/hwlib"
	"github.com/db47h/hwfft/hwtest"
	"github.com/stretchr/testify/require"
)

func TestFFTChip(t *testing.T) {
	cfgs := []func(*fft.Config){
		func(*fft.Config) {},
		func(c *fft.Config) { c.Stage1 = fft.ScheduleTextbook },
		func(c *fft.Config) { c.Overflow = fixed.Saturate; c.Rounding = fixed.RoundHalfUp },
		func(c *fft.Config) { c.Width = 4; c.InputShift = 0 },
	}
	for i, mod := range cfgs {
		cfg := fft.DefaultConfig()
		mod(&cfg)
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			f := cfg.Format()
			chip, err := hl.FFTChip(&cfg)
			require.NoError(t, err)
			gen := hwtest.Pins(hwtest.Words(f.Min(), f.Max()), map[string]hwtest.Generator{"rst": hwtest.Bool})
			hwtest.ComparePart(t, hl.StepsPerCycle, hl.FFT4(&cfg), chip, gen)
		})
	}
}

func setSamples(r *rig, x [fft.N]fixed.Complex) {
	for k := range x {
		r.set(fmt.Sprintf("xr[%d]", k), x[k].Re)
		r.set(fmt.Sprintf("xi[%d]", k), x[k].Im)
	}
}

func results(r *rig) (y [fft.N]fixed.Complex) {
	for k := range y {
		y[k] = fixed.C(r.get(fmt.Sprintf("yr[%d]", k)), r.get(fmt.Sprintf("yi[%d]", k)))
	}
	return y
}

func TestFFTChip_pipelined(t *testing.T) {
	for _, mode := range []fft.ResetMode{fft.SyncReset, fft.AsyncReset} {
		t.Run(mode.String(), func(t *testing.T) {
			cfg := fft.DefaultConfig()
			cfg.Pipelined = true
			cfg.Reset = mode
			f := cfg.Format()
			chip, err := hl.FFTChip(&cfg)
			require.NoError(t, err)
			r := newRig(t, chip)
			p := fft.Pipeline{Engine: fft.NewEngine(&cfg)}

			for i := 0; i < 100; i++ {
				var x [fft.N]fixed.Complex
				for k := range x {
					x[k] = randComplex(f)
				}
				rst := rand.Intn(10) == 0
				setSamples(r, x)
				r.setBool("rst", rst)
				r.tock()
				if !rst || mode == fft.SyncReset {
					// the stage register still holds the previous samples
					require.Equal(t, p.Out(), results(r), "cycle %d, before edge", i)
				}
				r.tick()
				if rst {
					p.Reset()
				} else {
					p.Clock(x)
				}
				require.Equal(t, p.Out(), results(r), "cycle %d", i)
			}
		})
	}
}
