// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft

import (
	"github.com/pkg/errors"
)

// a wire is a named net inside a chip.
type wire struct {
	name    string
	driver  string // driving part pin, empty if not driven
	readers int
	input   bool // chip input
	output  bool // chip output
}

// wiring keeps track of the nets of a chip while its parts are added.
type wiring struct {
	wires map[string]*wire
	order []string
	// alias maps wires driven by the same part output to a single net.
	alias map[string]string
}

func newWiring(ins, outs []string) (*wiring, error) {
	wr := &wiring{wires: make(map[string]*wire), alias: make(map[string]string)}
	for _, n := range ins {
		if isConstant(n) {
			return nil, errors.New("reserved name " + n + " used as chip input")
		}
		if wr.wires[n] != nil {
			return nil, errors.New("duplicate pin name " + n)
		}
		wr.get(n).input = true
	}
	for _, n := range outs {
		if isConstant(n) {
			return nil, errors.New("reserved name " + n + " used as chip output")
		}
		if wr.wires[n] != nil {
			return nil, errors.New("duplicate pin name " + n)
		}
		wr.get(n).output = true
	}
	return wr, nil
}

func (wr *wiring) get(name string) *wire {
	w := wr.wires[name]
	if w == nil {
		w = &wire{name: name}
		wr.wires[name] = w
		wr.order = append(wr.order, name)
	}
	return w
}

// read registers a reader of the named wire.
//
func (wr *wiring) read(name string) {
	if isConstant(name) {
		return
	}
	wr.get(name).readers++
}

// drive registers pin as the driver of the named wires.
//
func (wr *wiring) drive(names []string, pin string) error {
	canon := ""
	for _, n := range names {
		if isConstant(n) {
			return errors.New(pin + ":" + n + ": output pin connected to constant " + n + " input")
		}
		w := wr.get(n)
		switch {
		case w.input:
			return errors.New(pin + ":" + n + ": chip input pin used as output")
		case w.driver != "":
			return errors.New(pin + ":" + n + ": output pin already used as output")
		case w.output:
			if canon != "" && wr.wires[canon].output {
				return errors.New(pin + ":" + n + ": output pin connected to more than one chip output")
			}
			canon = n
		}
		w.driver = pin
	}
	if canon == "" {
		canon = names[0]
	}
	for _, n := range names {
		if n != canon {
			wr.alias[n] = canon
		}
	}
	return nil
}

func (wr *wiring) check() error {
	for _, n := range wr.order {
		w := wr.wires[n]
		switch {
		case w.input:
		case w.driver == "":
			// undriven chip outputs read as False
			if !w.output {
				return errors.New("pin " + n + " not connected to any output")
			}
		case !w.output && w.readers == 0:
			return errors.New("pin " + n + " not connected to any input")
		}
	}
	return nil
}

// resolve returns the net name for wire name.
//
func (wr *wiring) resolve(name string) string {
	if c, ok := wr.alias[name]; ok {
		return c
	}
	return name
}
