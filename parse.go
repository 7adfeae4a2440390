// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft

import (
	"strconv"

	"github.com/db47h/hwfft/internal/hdl"
	"github.com/pkg/errors"
)

// A Connection connects a part pin PP to one or more chip wires CP. Only
// outputs can be connected to more than one wire. A wire name holding an
// integer literal is a constant.
//
type Connection struct {
	PP string
	CP []string
}

// IO expands a pin specification string like "a, b, bus[2]" to individual
// pin names, []string{"a", "b", "bus[0]", "bus[1]"}. It panics on syntax
// errors and is meant for package level PartSpec declarations.
//
func IO(spec string) []string {
	pins, err := ParseIOSpec(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

// ParseIOSpec parses the pin specification string and returns individual pin
// names in a slice, also expanding bus declarations to individual pin names.
// For example:
//
//	ParseIOSpec("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func ParseIOSpec(spec string) ([]string, error) {
	var out []string
	p := &hdl.Parser{Input: spec}
	for {
		v, err := p.Next(false)
		if err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case nil:
			return out, nil
		case hdl.Pin:
			out = append(out, v.Name)
		case hdl.PinIndex:
			for i := 0; i < v.Index; i++ {
				out = append(out, busPinName(v.Name, i))
			}
		default:
			return nil, errors.Errorf("in %q: pin ranges not allowed in pin specifications", spec)
		}
	}
}

// ParseConnections parses a connection configuration like "a=x, b=y, c=0x7f"
// where a, b and c are the part's pins and x, y wires in the host chip. The
// right hand side may be an integer literal, making the part pin an input
// tied to a constant value. Ranges are expanded:
//
//	"a[0..1]=x[2..3]" // a[0]=x[2], a[1]=x[3]
//	"out=w[0..1]"     // out=w[0], out=w[1]
//	"in[0..1]=false"  // in[0]=false, in[1]=false
//
func ParseConnections(c string) ([]Connection, error) {
	var conns []Connection
	p := &hdl.Parser{Input: c}
	for {
		v, err := p.Next(true)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return conns, nil
		}
		a, ok := v.(hdl.PinAssignment)
		if !ok {
			return nil, errors.Errorf("in %q: missing wire for pin %v", c, pinString(v))
		}
		lhs := expand(a.LHS)
		rhs := expand(a.RHS)
		switch {
		case len(lhs) == len(rhs):
			for i := range lhs {
				conns = append(conns, Connection{lhs[i], []string{rhs[i]}})
			}
		case len(lhs) == 1:
			conns = append(conns, Connection{lhs[0], rhs})
		case len(rhs) == 1:
			for _, k := range lhs {
				conns = append(conns, Connection{k, rhs})
			}
		default:
			return nil, errors.Errorf("in %q: pin count mismatch in %v=%v", c, pinString(a.LHS), pinString(a.RHS))
		}
	}
}

func expand(v interface{}) []string {
	switch v := v.(type) {
	case hdl.Pin:
		return []string{v.Name}
	case hdl.PinIndex:
		return []string{busPinName(v.Name, v.Index)}
	case hdl.PinRange:
		var r []string
		if v.Start <= v.End {
			for i := v.Start; i <= v.End; i++ {
				r = append(r, busPinName(v.Name, i))
			}
		} else {
			for i := v.Start; i >= v.End; i-- {
				r = append(r, busPinName(v.Name, i))
			}
		}
		return r
	case hdl.Literal:
		return []string{strconv.FormatInt(v.Value, 10)}
	}
	panic("unexpected parser output")
}

func pinString(v interface{}) string {
	switch v := v.(type) {
	case hdl.Pin:
		return v.Name
	case hdl.PinIndex:
		return busPinName(v.Name, v.Index)
	case hdl.PinRange:
		return v.Name + "[" + strconv.Itoa(v.Start) + ".." + strconv.Itoa(v.End) + "]"
	case hdl.Literal:
		return strconv.FormatInt(v.Value, 10)
	}
	return "?"
}
