// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package fixed implements the signed fixed-point complex arithmetic used by
// the FFT datapath.
//
// Values are plain integers in the range of a Format of width W. A product of
// two W-bit values is computed in 64 bits and brought back to W bits by
// Rescale, an arithmetic right shift of W-1 bits: the minimum code of the
// format therefore represents -1.0 exactly.
//
package fixed

import (
	"fmt"

	"github.com/pkg/errors"
)

// Rounding selects how Rescale drops the low bits of a product.
//
type Rounding int

// Rounding policies.
//
const (
	Truncate    Rounding = iota // arithmetic shift, rounds toward -inf
	RoundHalfUp                 // adds 1 << (W-2) before shifting
)

// Overflow selects how out of range results are brought back into range.
//
type Overflow int

// Overflow policies.
//
const (
	Wrap     Overflow = iota // two's complement modulo 2^W
	Saturate                 // clamp to [Min, Max]
)

// Format describes a signed fixed-point word.
//
type Format struct {
	Width    uint
	Rounding Rounding
	Overflow Overflow
}

// Q7 is the 8 bits reference format: truncating rescale, wraparound.
//
var Q7 = Format{Width: 8, Rounding: Truncate, Overflow: Wrap}

// Q3 is the reduced precision 4 bits variant of Q7.
//
var Q3 = Format{Width: 4, Rounding: Truncate, Overflow: Wrap}

// Validate checks that the format width is usable. Packing needs at least
// one nibble, products must fit in 64 bits.
//
func (f Format) Validate() error {
	if f.Width < 4 || f.Width > 16 {
		return errors.Errorf("unsupported fixed-point width %d", f.Width)
	}
	if f.Rounding != Truncate && f.Rounding != RoundHalfUp {
		return errors.Errorf("invalid rounding policy %d", f.Rounding)
	}
	if f.Overflow != Wrap && f.Overflow != Saturate {
		return errors.Errorf("invalid overflow policy %d", f.Overflow)
	}
	return nil
}

// Min returns the smallest representable value.
//
func (f Format) Min() int64 { return -1 << (f.Width - 1) }

// Max returns the largest representable value.
//
func (f Format) Max() int64 { return 1<<(f.Width-1) - 1 }

// InRange returns true if v is representable without reduction.
//
func (f Format) InRange(v int64) bool {
	return v >= f.Min() && v <= f.Max()
}

// Reduce maps v into range according to the overflow policy.
//
func (f Format) Reduce(v int64) int64 {
	if f.Overflow == Saturate {
		return f.saturate(v)
	}
	return f.wrap(v)
}

func (f Format) wrap(v int64) int64 {
	shift := 64 - f.Width
	return v << shift >> shift
}

func (f Format) saturate(v int64) int64 {
	switch {
	case v > f.Max():
		return f.Max()
	case v < f.Min():
		return f.Min()
	}
	return v
}

// Rescale maps a double width product p back to the format.
//
func (f Format) Rescale(p int64) int64 {
	if f.Rounding == RoundHalfUp {
		p += 1 << (f.Width - 2)
	}
	return f.Reduce(p >> (f.Width - 1))
}

// Complex is a fixed-point complex value.
//
type Complex struct {
	Re, Im int64
}

// C is shorthand for Complex{re, im}.
//
func C(re, im int64) Complex { return Complex{re, im} }

func (c Complex) String() string {
	return fmt.Sprintf("(%d,%d)", c.Re, c.Im)
}

// Valid returns true if both components are representable in f.
//
func (f Format) Valid(c Complex) bool {
	return f.InRange(c.Re) && f.InRange(c.Im)
}

// Norm reduces both components of c.
//
func (f Format) Norm(c Complex) Complex {
	return Complex{f.Reduce(c.Re), f.Reduce(c.Im)}
}

// Add returns a + b.
//
func (f Format) Add(a, b Complex) Complex {
	return Complex{f.Reduce(a.Re + b.Re), f.Reduce(a.Im + b.Im)}
}

// Sub returns a - b.
//
func (f Format) Sub(a, b Complex) Complex {
	return Complex{f.Reduce(a.Re - b.Re), f.Reduce(a.Im - b.Im)}
}

// Product returns the unscaled double width product t·b.
//
func Product(t, b Complex) (re, im int64) {
	return t.Re*b.Re - t.Im*b.Im, t.Im*b.Re + t.Re*b.Im
}

// Mul returns t·b rescaled to the format.
//
func (f Format) Mul(t, b Complex) Complex {
	re, im := Product(t, b)
	return Complex{f.Rescale(re), f.Rescale(im)}
}
