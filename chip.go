// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft

import (
	"github.com/pkg/errors"
)

type chip struct {
	PartSpec        // PartSpec for this chip
	parts    Parts  // sub parts
	wr       *wiring
}

func (c *chip) mount(s *Socket) []Component {
	var cs []Component

	for _, p := range c.parts {
		sub := newSocket(s.c)
		ex := p.wires()
		for _, k := range p.Inputs {
			if w, ok := ex[k]; ok {
				sub.m[k] = s.PinOrNew(c.wr.resolve(w[0]))
			} else {
				// unconnected inputs are wired to False.
				sub.m[k] = cstFalse
			}
		}
		for _, k := range p.Outputs {
			if w, ok := ex[k]; ok {
				sub.m[k] = s.PinOrNew(c.wr.resolve(w[0]))
			} else {
				sub.m[k] = s.c.allocPin()
			}
		}
		cs = append(cs, p.Mount(sub)...)
	}
	return cs
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip.
//
// A half adder could be created like this:
//
//	ha, err := Chip("HalfAdder", "a, b", "s, c", Parts{
//		hwlib.Xor("a=a, b=b, out=s"),
//		hwlib.And("a=a, b=b, out=c"),
//	})
//
// The returned value is a function of type NewPartFn that can be used to
// compose the new part with others into other chips.
//
// Chip checks the wiring: every pin name must exist on its part, every
// wire that is read must be driven by exactly one output, outputs cannot
// drive constants or chip inputs, and internal wires must be read. Input
// pins left unconnected read as False; unconnected outputs are discarded.
//
func Chip(name string, inputs string, outputs string, parts Parts) (NewPartFn, error) {
	ins, err := ParseIOSpec(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name+": inputs")
	}
	outs, err := ParseIOSpec(outputs)
	if err != nil {
		return nil, errors.Wrap(err, name+": outputs")
	}
	wr, err := newWiring(ins, outs)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	for _, p := range parts {
		ex := p.wires()
		pins := make(map[string]bool, len(p.Inputs)+len(p.Outputs))
		for _, k := range p.Inputs {
			pins[k] = true
		}
		for _, k := range p.Outputs {
			pins[k] = false
		}
		// check that all keys match one of the part's input or output pins
		for _, c := range p.Conns {
			if _, ok := pins[c.PP]; !ok {
				return nil, errors.New("invalid pin name " + c.PP + " for part " + p.Name)
			}
		}
		for _, k := range p.Inputs {
			vs, ok := ex[k]
			if !ok {
				continue
			}
			if len(vs) > 1 {
				return nil, errors.New(p.Name + " input pin " + k + " connected to more than one wire")
			}
			wr.read(vs[0])
		}
		for _, k := range p.Outputs {
			if vs, ok := ex[k]; ok {
				if err := wr.drive(vs, p.Name+"."+k); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := wr.check(); err != nil {
		return nil, err
	}

	c := &chip{
		PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
		},
		parts,
		wr,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}
