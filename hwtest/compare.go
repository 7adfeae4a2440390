// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/hwlib"
	"github.com/stretchr/testify/require"
)

// A Generator returns the value to set on the named input pin for the next
// clock cycle.
//
type Generator func(rng *rand.Rand, pin string) int64

// Bool is a Generator that returns random boolean values.
//
func Bool(rng *rand.Rand, _ string) int64 {
	return int64(rng.Intn(2))
}

// Words returns a Generator that returns random values in the range
// [min, max].
//
func Words(min, max int64) Generator {
	return func(rng *rand.Rand, _ string) int64 {
		return min + rng.Int63n(max-min+1)
	}
}

// Pins returns a Generator that dispatches on the pin name, without bus
// index. Pins not in m use def.
//
func Pins(def Generator, m map[string]Generator) Generator {
	return func(rng *rand.Rand, pin string) int64 {
		if i := strings.IndexRune(pin, '['); i >= 0 {
			pin = pin[:i]
		}
		if g, ok := m[pin]; ok {
			return g(rng, pin)
		}
		return def(rng, pin)
	}
}

func connString(in, out []string) string {
	var b strings.Builder
	for _, n := range append(in[:len(in):len(in)], out...) {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(n)
	}
	return b.String()
}

func pinList(in []string) string {
	bus := make(map[string]int)
	var pins []string

	for _, n := range in {
		if b := strings.IndexRune(n, '['); b >= 0 {
			bn := n[:b]
			idx, err := strconv.Atoi(n[b+1 : strings.IndexRune(n, ']')])
			if err != nil {
				panic(err)
			}
			if bidx, ok := bus[bn]; !ok || bidx < idx {
				bus[bn] = idx
			}
		} else {
			pins = append(pins, n)
		}
	}

	var b strings.Builder
	for k, n := range bus {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(k)
		b.WriteRune('[')
		b.WriteString(strconv.Itoa(n + 1))
		b.WriteRune(']')
	}
	for _, n := range pins {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
	}
	return b.String()
}

// ComparePart takes two parts and compares their outputs given the same
// inputs, once per clock cycle. Both parts must have the same Input/Output
// interface. Input values are drawn from gen, or are random booleans if gen
// is nil.
//
func ComparePart(t *testing.T, tpc uint, part1, part2 hw.NewPartFn, gen Generator) {
	t.Helper()

	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed))
	if gen == nil {
		gen = Bool
	}

	ps1, ps2 := part1(""), part2("")
	require.Equal(t, ps1.Inputs, ps2.Inputs, "input pins")
	require.Equal(t, ps1.Outputs, ps2.Outputs, "output pins")

	conns := connString(ps1.Inputs, ps1.Outputs)
	ps1, ps2 = part1(conns), part2(conns)

	inputs := make([]int64, len(ps1.Inputs))
	outputs := make([][2]int64, len(ps1.Outputs))

	// build two wrappers with their own set of outputs
	parts1 := hw.Parts{ps1}
	for i, o := range ps1.Outputs {
		n := i
		parts1 = append(parts1, hwlib.OutputWord(func(v int64) { outputs[n][0] = v })("in="+o))
	}
	parts2 := hw.Parts{ps2}
	for i, o := range ps2.Outputs {
		n := i
		parts2 = append(parts2, hwlib.OutputWord(func(v int64) { outputs[n][1] = v })("in="+o))
	}
	w1, err := hw.Chip("wrapper1", pinList(ps1.Inputs), "", parts1)
	require.NoError(t, err)
	w2, err := hw.Chip("wrapper2", pinList(ps2.Inputs), "", parts2)
	require.NoError(t, err)

	var parts hw.Parts
	for i, n := range ps1.Inputs {
		k := i
		parts = append(parts, hwlib.InputWord(func() int64 { return inputs[k] })("out="+n))
	}
	cstr := connString(ps1.Inputs, nil)
	parts = append(parts, w1(cstr), w2(cstr))

	c, err := hw.NewCircuit(0, tpc, parts)
	require.NoError(t, err)
	defer c.Dispose()

	errString := func(oname string, ex, got int64) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%d", n, inputs[i])
		}
		return fmt.Sprintf("\nseed %d\nExpected %s => %s=%d\nGot %d", seed, b.String(), oname, ex, got)
	}
	check := func() {
		c.Tock()
		c.Tick()
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(ps1.Outputs[o], out[0], out[1]))
			}
		}
	}

	iter := len(ps1.Inputs)
	if iter > 12 {
		iter = 12
	}
	iter = 1 << uint(iter)

	start := time.Now()

	c.Tick()

	// try all 0
	check()

	for i := 0; i < iter; i++ {
		for in, n := range ps1.Inputs {
			inputs[in] = gen(rng, n)
		}
		check()
	}

	elapsed := time.Since(start)
	ticks := c.Cycles()
	t.Logf("%d components. %d steps in %v. %d clock ticks => %.2f Hz", c.Size(), c.Steps(), elapsed, ticks, float64(ticks)/(float64(elapsed)/float64(time.Second)))
}
