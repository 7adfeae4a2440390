// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
)

// Mux returns a word multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(w string) hw.Part { return mux.NewPart(w) }

var mux = hw.PartSpec{
	Name:    "MUX",
	Inputs:  []string{pA, pB, pSel},
	Outputs: []string{pOut},
	Mount: func(s *hw.Socket) []hw.Component {
		a, b, sel, out := s.Pin(pA), s.Pin(pB), s.Pin(pSel), s.Pin(pOut)
		return []hw.Component{func(c *hw.Circuit) {
			if c.GetBool(sel) {
				c.Set(out, c.Get(b))
			} else {
				c.Set(out, c.Get(a))
			}
		}}
	},
}

// Mux4Way returns a 4 way word multiplexer. Only the two low bits of sel are
// used.
//
//	Inputs: a, b, c, d, sel
//	Outputs: out
//	Function: out = [a, b, c, d][sel & 3]
//
func Mux4Way(w string) hw.Part { return mux4Way.NewPart(w) }

var mux4Way = hw.PartSpec{
	Name:    "MUX4WAY",
	Inputs:  hw.IO("a, b, c, d, sel"),
	Outputs: []string{pOut},
	Mount: func(s *hw.Socket) []hw.Component {
		in := [4]int{s.Pin("a"), s.Pin("b"), s.Pin("c"), s.Pin("d")}
		sel, out := s.Pin(pSel), s.Pin(pOut)
		return []hw.Component{func(c *hw.Circuit) {
			c.Set(out, c.Get(in[c.Get(sel)&3]))
		}}
	},
}
