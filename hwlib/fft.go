// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"

	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
)

const (
	fftIn  = "xr[4], xi[4], rst"
	fftOut = "yr[4], yi[4]"
)

// FFT4 returns a combinational 4 point FFT engine configured by cfg. The rst
// input is unused; it is there to match the interface of FFTChip.
//
//	Inputs: xr[4], xi[4], rst
//	Outputs: yr[4], yi[4]
//	Function: y = fft.NewEngine(cfg).Transform(x)
//
func FFT4(cfg *fft.Config) hw.NewPartFn {
	e := fft.NewEngine(cfg)
	return (&hw.PartSpec{
		Name:    "FFT4",
		Inputs:  hw.IO(fftIn),
		Outputs: hw.IO(fftOut),
		Mount: func(s *hw.Socket) []hw.Component {
			xr, xi := s.Bus("xr", fft.N), s.Bus("xi", fft.N)
			yr, yi := s.Bus("yr", fft.N), s.Bus("yi", fft.N)
			return []hw.Component{func(c *hw.Circuit) {
				var x [fft.N]fixed.Complex
				for i := range x {
					x[i] = fixed.C(c.Get(xr[i]), c.Get(xi[i]))
				}
				y := e.Transform(x)
				for i := range y {
					c.Set(yr[i], y[i].Re)
					c.Set(yi[i], y[i].Im)
				}
			}}
		}}).NewPart
}

// FFTChip returns the FFT engine built from four butterflies with constant
// twiddles. When cfg.Pipelined is set, the stage 1 outputs go through
// registers cleared by rst.
//
//	Inputs: xr[4], xi[4], rst
//	Outputs: yr[4], yi[4]
//
func FFTChip(cfg *fft.Config) (hw.NewPartFn, error) {
	f := cfg.Format()
	bf, err := ButterflyChip(f)
	if err != nil {
		return nil, err
	}
	tw := func(t fft.Twiddle) string {
		v := t.Value(f)
		return fmt.Sprintf("tr=%d, ti=%d", v.Re, v.Im)
	}
	w1 := tw(cfg.Stage1.Twiddle())

	parts := hw.Parts{
		bf("ar=xr[0], ai=xi[0], br=xr[2], bi=xi[2], " + w1 + ", pr=sr[0], pi=si[0], nr=sr[1], ni=si[1]"),
		bf("ar=xr[1], ai=xi[1], br=xr[3], bi=xi[3], " + w1 + ", pr=sr[2], pi=si[2], nr=sr[3], ni=si[3]"),
	}
	s := "s"
	if cfg.Pipelined {
		reg := Register(cfg.Reset)
		for i := 0; i < fft.N; i++ {
			parts = append(parts,
				reg(fmt.Sprintf("in=sr[%d], en=true, rst=rst, out=qr[%d]", i, i)),
				reg(fmt.Sprintf("in=si[%d], en=true, rst=rst, out=qi[%d]", i, i)))
		}
		s = "q"
	}
	parts = append(parts,
		bf(fmt.Sprintf("ar=%[1]sr[0], ai=%[1]si[0], br=%[1]sr[2], bi=%[1]si[2], %[2]s, pr=yr[0], pi=yi[0], nr=yr[2], ni=yi[2]", s, tw(fft.One))),
		bf(fmt.Sprintf("ar=%[1]sr[1], ai=%[1]si[1], br=%[1]sr[3], bi=%[1]si[3], %[2]s, pr=yr[1], pi=yi[1], nr=yr[3], ni=yi[3]", s, tw(fft.MinusJ))),
	)
	return hw.Chip("FFTChip", fftIn, fftOut, parts)
}
