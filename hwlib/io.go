// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
)

// Input creates a function based input.
//
//	Outputs: out
//	Function: out = f()
//
func Input(f func() bool) hw.NewPartFn {
	p := &hw.PartSpec{
		Name:    "Input",
		Outputs: []string{pOut},
		Mount: func(s *hw.Socket) []hw.Component {
			pin := s.Pin(pOut)
			return []hw.Component{
				func(c *hw.Circuit) {
					c.SetBool(pin, f())
				},
			}
		},
	}
	return p.NewPart
}

// Output creates an output or probe. The fn function is
// called with the named pin state on every circuit update.
//
//	Inputs: in
//	Function: f(in)
//
func Output(f func(bool)) hw.NewPartFn {
	p := &hw.PartSpec{
		Name:   "Output",
		Inputs: []string{pIn},
		Mount: func(s *hw.Socket) []hw.Component {
			in := s.Pin(pIn)
			return []hw.Component{
				func(c *hw.Circuit) { f(c.GetBool(in)) },
			}
		},
	}
	return p.NewPart
}

// InputWord creates a word input.
//
//	Outputs: out
//	Function: out = f()
//
func InputWord(f func() int64) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "InputWord",
		Outputs: []string{pOut},
		Mount: func(s *hw.Socket) []hw.Component {
			pin := s.Pin(pOut)
			return []hw.Component{func(c *hw.Circuit) {
				c.Set(pin, f())
			}}
		}}).NewPart
}

// OutputWord creates a word output.
//
//	Inputs: in
//	Function: f(in)
//
func OutputWord(f func(int64)) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:   "OutputWord",
		Inputs: []string{pIn},
		Mount: func(s *hw.Socket) []hw.Component {
			pin := s.Pin(pIn)
			return []hw.Component{func(c *hw.Circuit) {
				f(c.Get(pin))
			}}
		}}).NewPart
}
