// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
)

// complex operand pins
var (
	binIn  = hw.IO("ar, ai, br, bi")
	cplxIn = hw.IO("tr, ti, br, bi")
	cOut   = hw.IO("r, i")
)

func complexOp(name string, inputs []string, op func(a, b fixed.Complex) fixed.Complex) *hw.PartSpec {
	return &hw.PartSpec{
		Name:    name,
		Inputs:  inputs,
		Outputs: cOut,
		Mount: func(s *hw.Socket) []hw.Component {
			ar, ai, br, bi := s.Pin(inputs[0]), s.Pin(inputs[1]), s.Pin(inputs[2]), s.Pin(inputs[3])
			r, i := s.Pin("r"), s.Pin("i")
			return []hw.Component{
				func(c *hw.Circuit) {
					v := op(fixed.C(c.Get(ar), c.Get(ai)), fixed.C(c.Get(br), c.Get(bi)))
					c.Set(r, v.Re)
					c.Set(i, v.Im)
				}}
		}}
}

// ComplexAdder returns a complex adder in format f.
//
//	Inputs: ar, ai, br, bi
//	Outputs: r, i
//	Function: (r, i) = f.Add(a, b)
//
func ComplexAdder(f fixed.Format) hw.NewPartFn {
	return complexOp("ComplexAdder", binIn, f.Add).NewPart
}

// ComplexSubtractor returns a complex subtractor in format f.
//
//	Inputs: ar, ai, br, bi
//	Outputs: r, i
//	Function: (r, i) = f.Sub(a, b)
//
func ComplexSubtractor(f fixed.Format) hw.NewPartFn {
	return complexOp("ComplexSubtractor", binIn, f.Sub).NewPart
}

// TwiddleMultiplier returns the twiddle product stage of a butterfly. Twiddle
// codes 0 and +1 bypass the multiplier, see fft.TwiddleOf.
//
//	Inputs: tr, ti, br, bi
//	Outputs: r, i
//	Function: (r, i) = T * b
//
func TwiddleMultiplier(f fixed.Format) hw.NewPartFn {
	return complexOp("TwiddleMultiplier", cplxIn, func(t, b fixed.Complex) fixed.Complex {
		return fft.Product(f, b, fft.TwiddleOf(f, t))
	}).NewPart
}
