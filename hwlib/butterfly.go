// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
)

var (
	bfIn  = hw.IO("ar, ai, br, bi, tr, ti")
	bfOut = hw.IO("pr, pi, nr, ni")
)

type bfPins struct {
	ar, ai, br, bi, tr, ti int
	pr, pi, nr, ni         int
}

func mountBF(s *hw.Socket) *bfPins {
	return &bfPins{
		s.Pin("ar"), s.Pin("ai"), s.Pin("br"), s.Pin("bi"), s.Pin("tr"), s.Pin("ti"),
		s.Pin("pr"), s.Pin("pi"), s.Pin("nr"), s.Pin("ni"),
	}
}

func (p *bfPins) operands(c *hw.Circuit, f fixed.Format) (a, b fixed.Complex, t fft.Twiddle) {
	a = fixed.C(c.Get(p.ar), c.Get(p.ai))
	b = fixed.C(c.Get(p.br), c.Get(p.bi))
	t = fft.TwiddleOf(f, fixed.C(c.Get(p.tr), c.Get(p.ti)))
	return a, b, t
}

func (p *bfPins) set(c *hw.Circuit, pos, neg fixed.Complex) {
	c.Set(p.pr, pos.Re)
	c.Set(p.pi, pos.Im)
	c.Set(p.nr, neg.Re)
	c.Set(p.ni, neg.Im)
}

// Butterfly returns a combinational radix-2 butterfly in format f. The
// twiddle is read from the tr and ti wires and classified with
// fft.TwiddleOf.
//
//	Inputs: ar, ai, br, bi, tr, ti
//	Outputs: pr, pi, nr, ni
//	Function: p = a + T*b, n = a - T*b
//
func Butterfly(f fixed.Format) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "Butterfly",
		Inputs:  bfIn,
		Outputs: bfOut,
		Mount: func(s *hw.Socket) []hw.Component {
			p := mountBF(s)
			return []hw.Component{func(c *hw.Circuit) {
				a, b, t := p.operands(c, f)
				pos, neg := fft.Butterfly(f, a, b, t)
				p.set(c, pos, neg)
			}}
		}}).NewPart
}

// RegButterfly returns a registered butterfly: outputs and valid are loaded
// on rising clock edges where en is high and cleared on edges where en is
// low or rst is high.
//
//	Inputs: ar, ai, br, bi, tr, ti, en, rst
//	Outputs: pr, pi, nr, ni, valid
//
func RegButterfly(f fixed.Format, mode fft.ResetMode) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "RegButterfly",
		Inputs:  append(hw.IO("en, rst"), bfIn...),
		Outputs: append(hw.IO("valid"), bfOut...),
		Mount: func(s *hw.Socket) []hw.Component {
			p := mountBF(s)
			en, rst, valid := s.Pin(pEn), s.Pin(pRst), s.Pin("valid")
			u := fft.RegisteredButterfly{Format: f}
			return []hw.Component{func(c *hw.Circuit) {
				switch {
				case mode == fft.AsyncReset && c.GetBool(rst):
					u.Reset()
				case c.AtTick():
					a, b, t := p.operands(c, f)
					u.Clock(c.GetBool(rst), c.GetBool(en), a, b, t)
				}
				p.set(c, u.Pos, u.Neg)
				c.SetBool(valid, u.Valid)
			}}
		}}).NewPart
}

// ButterflyChip returns a butterfly composed of a TwiddleMultiplier, a
// ComplexAdder and a ComplexSubtractor. It has the same interface and
// function as Butterfly, with one more step of propagation delay.
//
func ButterflyChip(f fixed.Format) (hw.NewPartFn, error) {
	return hw.Chip("ButterflyChip", "ar, ai, br, bi, tr, ti", "pr, pi, nr, ni", hw.Parts{
		TwiddleMultiplier(f)("tr=tr, ti=ti, br=br, bi=bi, r=tbr, i=tbi"),
		ComplexAdder(f)("ar=ar, ai=ai, br=tbr, bi=tbi, r=pr, i=pi"),
		ComplexSubtractor(f)("ar=ar, ai=ai, br=tbr, bi=tbi, r=nr, i=ni"),
	})
}
