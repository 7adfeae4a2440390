// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft_test

import (
	"fmt"

	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/hwlib"
)

// conjugate is a custom part that negates the imaginary part of a complex
// value.
//
type conjugate struct {
	In  [2]int `hw:"in"`    // input bus "in": real, imaginary
	Out [2]int `hw:"out,z"` // the second tag value forces the bus name to "z"
}

// Update implements Updater.
//
func (p *conjugate) Update(c *hw.Circuit) {
	c.Set(p.Out[0], c.Get(p.In[0]))
	c.Set(p.Out[1], -c.Get(p.In[1]))
}

// no need to import reflect, just cast a nil pointer to conjugate
var conjSpec = hw.MakePart((*conjugate)(nil))

// conjSpec is the *PartSpec for our part. In order to use it like the
// built-ins in hwlib, we need to get its NewPartFn method as a variable, or
// make it a function:
func Conj(c string) hw.Part { return conjSpec.NewPart(c) }

// MakePart example with a custom complex conjugate.
func ExampleMakePart() {
	var re, im, zr, zi int64
	c, err := hw.NewCircuit(0, 8, hw.Parts{
		// IOs to test the circuit
		hwlib.InputWord(func() int64 { return re })("out=re"),
		hwlib.InputWord(func() int64 { return im })("out=im"),
		// our custom part
		Conj("in[0]=re, in[1]=im, z[0..1]=z[0..1]"),
		// IOs continued...
		hwlib.OutputWord(func(v int64) { zr = v })("in=z[0]"),
		hwlib.OutputWord(func(v int64) { zi = v })("in=z[1]"),
	})
	if err != nil {
		panic(err)
	}
	defer c.Dispose()

	re, im = 3, 4
	c.TickTock()
	fmt.Printf("conj(%d%+di) = %d%+di\n", re, im, zr, zi)
	re, im = -16, -128
	c.TickTock()
	fmt.Printf("conj(%d%+di) = %d%+di\n", re, im, zr, zi)

	// Output:
	// conj(3+4i) = 3-4i
	// conj(-16-128i) = -16+128i
}
