// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft

import "strconv"

// Constant input pin names.
//
const (
	False = "false"
	True  = "true"
	Clk   = "clk"
)

const (
	cstFalse = iota
	cstTrue
	cstClk
	cstCount
)

// A Socket maps a part's pin names to pin numbers in a circuit.
//
type Socket struct {
	m map[string]int
	c *Circuit
}

func newSocket(c *Circuit) *Socket {
	return &Socket{
		m: map[string]int{False: cstFalse, True: cstTrue, Clk: cstClk},
		c: c,
	}
}

// Pin returns the pin number allocated to the given pin name.
// This function panics if the pin does not exist.
//
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// PinOrNew returns the pin number allocated to the given pin name.
// If no such pin exists a new one is allocated. Integer literals get a pin
// holding a constant value.
//
func (s *Socket) PinOrNew(name string) int {
	n, ok := s.m[name]
	if !ok {
		if v, lit := literal(name); lit {
			n = s.c.allocConst(v)
		} else {
			n = s.c.allocPin()
		}
		s.m[name] = n
	}
	return n
}

// Bus returns the pin numbers allocated to the given bus name.
//
func (s *Socket) Bus(name string, size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = s.Pin(busPinName(name, i))
	}
	return out
}

func busPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// literal returns the value of a wire name holding an integer literal.
//
func literal(name string) (int64, bool) {
	if name == "" || name[0] != '-' && (name[0] < '0' || name[0] > '9') {
		return 0, false
	}
	v, err := strconv.ParseInt(name, 10, 64)
	return v, err == nil
}

func isConstant(name string) bool {
	_, lit := literal(name)
	return lit || name == False || name == True || name == Clk
}
