// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for hwfft circuits:
// control gates, multiplexers and registers on single bit wires, and the
// fixed-point datapath of the FFT accelerator on word wires.
//
package hwlib

import (
	hw "github.com/db47h/hwfft"
)

// StepsPerCycle is the clock period, in simulation steps, that all the parts
// of this package settle within when composed into Top.
//
const StepsPerCycle = 16

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
	pEn  = "en"
	pRst = "rst"
)

var notGate = hw.PartSpec{Name: "NOT", Inputs: []string{pIn}, Outputs: []string{pOut},
	Mount: func(s *hw.Socket) []hw.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []hw.Component{
			func(c *hw.Circuit) { c.SetBool(out, !c.GetBool(in)) },
		}
	},
}

// Not returns a NOT gate. Any non-zero input is true.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(w string) hw.Part {
	return notGate.NewPart(w)
}

// other gates
type gate func(a, b bool) bool

func (g gate) mount(s *hw.Socket) []hw.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []hw.Component{
		func(c *hw.Circuit) { c.SetBool(out, g(c.GetBool(a), c.GetBool(b))) },
	}
}

func newGate(name string, fn func(a, b bool) bool) *hw.PartSpec {
	return &hw.PartSpec{
		Name:    name,
		Inputs:  gateIn,
		Outputs: gateOut,
		Mount:   gate(fn).mount,
	}
}

var (
	gateIn  = []string{pA, pB}
	gateOut = []string{pOut}

	and  = newGate("AND", func(a, b bool) bool { return a && b })
	nand = newGate("NAND", func(a, b bool) bool { return !(a && b) })
	or   = newGate("OR", func(a, b bool) bool { return a || b })
	nor  = newGate("NOR", func(a, b bool) bool { return !(a || b) })
	xor  = newGate("XOR", func(a, b bool) bool { return a != b })
)

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(w string) hw.Part { return and.NewPart(w) }

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand(w string) hw.Part { return nand.NewPart(w) }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(w string) hw.Part { return or.NewPart(w) }

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(w string) hw.Part { return nor.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
func Xor(w string) hw.Part { return xor.NewPart(w) }
