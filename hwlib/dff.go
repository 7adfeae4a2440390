// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
)

// DFF returns a clocked data flip flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(w string) hw.Part {
	return dff.NewPart(w)
}

var dff = hw.PartSpec{
	Name:    "DFF",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *hw.Socket) []hw.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		var curOut int64
		return []hw.Component{
			func(c *hw.Circuit) {
				// raising edge?
				if c.AtTick() {
					curOut = c.Get(in)
				}
				c.Set(out, curOut)
			}}
	}}

// Register returns a word register with enable and reset. With
// fft.AsyncReset, rst clears the register on every simulation step it is
// high, otherwise only on rising clock edges.
//
//	Inputs: in, en, rst
//	Outputs: out
//	Function: if rst { out(t) = 0 } else if en(t-1) { out(t) = in(t-1) }
//
func Register(mode fft.ResetMode) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "Register",
		Inputs:  []string{pIn, pEn, pRst},
		Outputs: []string{pOut},
		Mount: func(s *hw.Socket) []hw.Component {
			in, en, rst, out := s.Pin(pIn), s.Pin(pEn), s.Pin(pRst), s.Pin(pOut)
			var v int64
			return []hw.Component{
				func(c *hw.Circuit) {
					switch {
					case mode == fft.AsyncReset && c.GetBool(rst):
						v = 0
					case c.AtTick():
						if c.GetBool(rst) {
							v = 0
						} else if c.GetBool(en) {
							v = c.Get(in)
						}
					}
					c.Set(out, v)
				}}
		}}).NewPart
}
