// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// A Component is a component in a circuit that can Get and Set states.
//
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. MountFn's should query
// the socket for assigned pin numbers and return closures around
// these pin numbers.
//
// For example, a Not gate can be defined like this:
//
//	not := &PartSpec{
//		Name: "Not",
//		Inputs: IO("in"),
//		Outputs: IO("out"),
//		Mount: func (s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func (c *Circuit) { c.SetBool(out, !c.GetBool(in)) },
//			}
//		}}
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
// Custom parts are implemented by creating a PartSpec, then using its NewPart
// method as a NewPartFn:
//
//	var notGate = notSpec.NewPart
//
// or:
//
//	func Not(c string) Part { return notSpec.NewPart(c) }
//
// Which can the be used when building other chips:
//
//	c, _ := Chip("dummy", "a, b", "c, d", Parts{
//		notGate("in=a, out=c"),
//		Not("in=b, out=d"),
//	})
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	// Use the IO() function to expand an input description like
	// "a, b, bus[2]" to []string{"a", "b", "bus[0]", "bus[1]"}
	Inputs []string
	// Output pin name. Must be distinct pin names.
	Outputs []string

	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart is a NewPartFn that wraps p with the given connections into a Part.
// It panics if the connection string cannot be parsed.
//
func (p *PartSpec) NewPart(connections string) Part {
	conns, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	return Part{p, conns}
}

// A NewPartFn is a function that takes a connection configuration and returns a
// new Part. See ParseConnections for the syntax of the connection configuration
// string.
//
type NewPartFn func(c string) Part

// A Part wraps a part specification together with its connections within a host
// chip.
//
type Part struct {
	*PartSpec
	Conns []Connection
}

// wires returns the part's connections indexed by part pin.
//
func (p *Part) wires() map[string][]string {
	m := make(map[string][]string, len(p.Conns))
	for _, c := range p.Conns {
		m[c.PP] = append(m[c.PP], c.CP...)
	}
	return m
}

// Parts is a convenience wrapper for []Part.
//
type Parts []Part

// Circuit is a runnable circuit simulation.
//
// Wires carry int64 words. Boolean signals are 0 or 1. Each step, every
// component reads the previous state frame and writes the next one, so that
// each component adds one step of propagation delay.
//
type Circuit struct {
	s0     []int64 // wire states frame #0
	s1     []int64 // wire states frame #1
	cs     []Component
	count  int  // wire count
	spc    uint // steps per clock cycle
	steps  uint
	consts map[int]int64

	wc []chan struct{}
	wg sync.WaitGroup
}

// NewCircuit builds a new circuit based on the given parts.
//
// workers is the number of goroutines used to update the state of the Circuit
// each step of the simulation. If less or equal to 0, the value of GOMAXPROCS
// will be used.
//
// stepsPerCycle indicates how many simulation steps to run per clock cycle
// (the Clk signal, not wall clock). It is rounded up to the next power of two
// and must be larger than the longest chain of combinational components
// between two registers.
//
// Callers must make sure to call Dispose() once the circuit is no longer needed
// in order to release allocated resources.
//
func NewCircuit(workers int, stepsPerCycle uint, parts Parts) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	if stepsPerCycle < 2 {
		stepsPerCycle = 2
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle |= stepsPerCycle >> 32
	stepsPerCycle++

	// new circuit with room for constant value pins.
	cc := &Circuit{count: cstCount, spc: stepsPerCycle, consts: make(map[int]int64)}
	wrap, err := Chip("CIRCUIT", "", "", parts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chip wrapper")
	}
	cs := wrap("").Mount(newSocket(cc))
	cs = append(cs, updClock)
	cc.cs = cs
	cc.s0 = make([]int64, cc.count)
	cc.s1 = make([]int64, cc.count)
	// init constant pins
	cc.s0[cstClk] = 1
	cc.s0[cstTrue] = 1
	cc.s1[cstTrue] = 1
	for n, v := range cc.consts {
		cc.s0[n] = v
		cc.s1[n] = v
	}

	// workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers == 0 {
		workers = 1
	}
	for len(cs) > 0 {
		size := len(cs) / workers
		if size*workers < len(cs) {
			size++
		}
		wc := make(chan struct{}, 1)
		cc.wc = append(cc.wc, wc)
		go worker(cc, cs[:size], wc)
		cs = cs[size:]
	}

	return cc, nil
}

func updClock(c *Circuit) {
	if c.s0[cstFalse] != 0 || c.s0[cstTrue] != 1 {
		panic("true or false constants have been overwritten")
	}

	// update clock signal
	step := c.steps + 1
	if step&(c.spc-1) == 0 {
		c.s1[cstClk] = 1
	} else if step&(c.spc/2-1) == 0 {
		c.s1[cstClk] = 0
	} else {
		c.s1[cstClk] = c.s0[cstClk]
	}
}

// Dispose releases all resources allocated for a circuit and stops
// worker goroutines.
//
func (c *Circuit) Dispose() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		close(wc)
	}
	c.wg.Wait()
}

func worker(c *Circuit, cs []Component, wc <-chan struct{}) {
	for {
		_, ok := <-wc
		if !ok {
			c.wg.Done()
			return
		}
		for _, f := range cs {
			f(c)
		}
		c.wg.Done()
	}
}

// allocPin allocates a pin and returns its number.
//
func (c *Circuit) allocPin() int {
	cnt := c.count
	c.count++
	return cnt
}

// allocConst allocates a pin holding the constant value v.
//
func (c *Circuit) allocConst(v int64) int {
	n := c.allocPin()
	c.consts[n] = v
	return n
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint {
	return c.steps
}

// SPC returns the stepsPerCycle value.
//
func (c *Circuit) SPC() uint {
	return c.spc
}

// Cycles returns the number of complete clock cycles run so far.
//
func (c *Circuit) Cycles() uint {
	return c.steps / c.spc
}

// AtTick returns true if the current step is at the beginning of a clock cycle
// (raising edge of Clk).
//
func (c *Circuit) AtTick() bool {
	return c.steps&(c.spc-1) == 0
}

// AtTock returns true if the current step is at the beginning of the second
// half of a clock cycle (falling edge of Clk).
//
func (c *Circuit) AtTock() bool {
	return (c.steps+c.spc/2)&(c.spc-1) == 0
}

// Step advances the simulation by one step.
//
func (c *Circuit) Step() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		wc <- struct{}{}
	}

	c.wg.Wait()
	c.steps++
	c.s0, c.s1 = c.s1, c.s0
}

// Tick runs the simulation until the beginning of the next half clock cycle.
//
func (c *Circuit) Tick() {
	for c.GetBool(cstClk) {
		c.Step()
	}
}

// Tock runs the simulation until the beginning of the next clock cycle.
// Once Tock returns, the output of clocked components should have stabilized.
//
func (c *Circuit) Tock() {
	for !c.GetBool(cstClk) {
		c.Step()
	}
}

// TickTock runs the simulation for a whole clock cycle.
//
func (c *Circuit) TickTock() {
	c.Tick()
	c.Tock()
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }
