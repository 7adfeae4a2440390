// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft

import "github.com/db47h/hwfft/fixed"

type twiddleKind int

const (
	twZero twiddleKind = iota
	twOne
	twMinusOne
	twMinusJ
	twCustom
)

// A Twiddle is the complex factor applied to the B input of a butterfly.
//
type Twiddle struct {
	kind twiddleKind
	v    fixed.Complex
}

// Fixed twiddle factors.
//
var (
	Zero     = Twiddle{kind: twZero}
	One      = Twiddle{kind: twOne}
	MinusOne = Twiddle{kind: twMinusOne}
	MinusJ   = Twiddle{kind: twMinusJ}
)

// Custom returns a twiddle with an arbitrary encoded value. It is
// multiplied and rescaled like any other value, even when it happens to
// encode one of the fixed factors.
//
func Custom(v fixed.Complex) Twiddle {
	return Twiddle{kind: twCustom, v: v}
}

// TwiddleOf classifies an encoded twiddle as found on a wire: (0, 0) is Zero,
// (Max, 0) is the exact unity One, (Min, 0) is MinusOne, (0, Min) is MinusJ.
// Anything else is Custom.
//
func TwiddleOf(f fixed.Format, v fixed.Complex) Twiddle {
	switch v {
	case fixed.C(0, 0):
		return Zero
	case fixed.C(f.Max(), 0):
		return One
	case fixed.C(f.Min(), 0):
		return MinusOne
	case fixed.C(0, f.Min()):
		return MinusJ
	}
	return Custom(v)
}

// Value returns the encoding of t in format f.
//
func (t Twiddle) Value(f fixed.Format) fixed.Complex {
	switch t.kind {
	case twOne:
		return fixed.C(f.Max(), 0)
	case twMinusOne:
		return fixed.C(f.Min(), 0)
	case twMinusJ:
		return fixed.C(0, f.Min())
	case twCustom:
		return t.v
	}
	return fixed.Complex{}
}

func (t Twiddle) String() string {
	switch t.kind {
	case twZero:
		return "0"
	case twOne:
		return "+1"
	case twMinusOne:
		return "-1"
	case twMinusJ:
		return "-j"
	}
	return t.v.String()
}

// Product returns T·B rescaled to f. Zero and One never reach the multiplier.
//
func Product(f fixed.Format, b fixed.Complex, t Twiddle) fixed.Complex {
	switch t.kind {
	case twZero:
		return fixed.Complex{}
	case twOne:
		return b
	}
	return f.Mul(t.Value(f), b)
}

// Butterfly computes pos = a + T·b and neg = a - T·b.
//
func Butterfly(f fixed.Format, a, b fixed.Complex, t Twiddle) (pos, neg fixed.Complex) {
	p := Product(f, b, t)
	return f.Add(a, p), f.Sub(a, p)
}

// RegisteredButterfly is the clocked butterfly unit. Its outputs and Valid
// flag are registers loaded on every enabled clock edge and cleared on any
// edge where enable is low.
//
type RegisteredButterfly struct {
	Format fixed.Format
	Pos    fixed.Complex
	Neg    fixed.Complex
	Valid  bool
}

// Clock advances the unit by one clock edge.
//
func (u *RegisteredButterfly) Clock(rst, en bool, a, b fixed.Complex, t Twiddle) {
	if rst || !en {
		u.Reset()
		return
	}
	u.Pos, u.Neg = Butterfly(u.Format, a, b, t)
	u.Valid = true
}

// Reset clears the outputs and the Valid flag.
//
func (u *RegisteredButterfly) Reset() {
	u.Pos, u.Neg, u.Valid = fixed.Complex{}, fixed.Complex{}, false
}
