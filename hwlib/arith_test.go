// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"math/rand"
	"testing"

	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
	hl "github.com/db47h/hwfft/hwlib"
	"github.com/db47h/hwfft/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randComplex(f fixed.Format) fixed.Complex {
	span := f.Max() - f.Min() + 1
	return fixed.C(f.Min()+rand.Int63n(span), f.Min()+rand.Int63n(span))
}

func TestComplexOps(t *testing.T) {
	f := fixed.Q7
	sat := fixed.Format{Width: 8, Overflow: fixed.Saturate}
	td := []struct {
		name string
		f    fixed.Format
		part func(fixed.Format) hw.NewPartFn
		op   func(a, b fixed.Complex) fixed.Complex
		a, b string
	}{
		{"add", f, hl.ComplexAdder, f.Add, "a", "b"},
		{"add_sat", sat, hl.ComplexAdder, sat.Add, "a", "b"},
		{"sub", f, hl.ComplexSubtractor, f.Sub, "a", "b"},
		{"mul", f, hl.TwiddleMultiplier, func(t, b fixed.Complex) fixed.Complex { return fft.Product(f, b, fft.TwiddleOf(f, t)) }, "t", "b"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			r := newRig(t, d.part(d.f))
			for i := 0; i < 100; i++ {
				a, b := randComplex(d.f), randComplex(d.f)
				r.set(d.a+"r", a.Re)
				r.set(d.a+"i", a.Im)
				r.set(d.b+"r", b.Re)
				r.set(d.b+"i", b.Im)
				r.cycle()
				require.Equal(t, d.op(a, b), fixed.C(r.get("r"), r.get("i")), "%v, %v", a, b)
			}
		})
	}
}

func TestTwiddleMultiplier(t *testing.T) {
	f := fixed.Q7
	r := newRig(t, hl.TwiddleMultiplier(f))
	b := fixed.C(-128, 37)
	td := []struct {
		t   fft.Twiddle
		exp fixed.Complex
	}{
		{fft.Zero, fixed.C(0, 0)},
		{fft.One, b},
		{fft.MinusOne, fixed.C(-128, -37)}, // -(-128) wraps
		{fft.MinusJ, fixed.C(37, -128)},
	}
	for _, d := range td {
		v := d.t.Value(f)
		r.set("tr", v.Re)
		r.set("ti", v.Im)
		r.set("br", b.Re)
		r.set("bi", b.Im)
		r.cycle()
		assert.Equal(t, d.exp, fixed.C(r.get("r"), r.get("i")), "T = %v", d.t)
	}
}

func TestButterflyChip(t *testing.T) {
	for _, f := range []fixed.Format{fixed.Q7, fixed.Q3, {Width: 8, Rounding: fixed.RoundHalfUp, Overflow: fixed.Saturate}} {
		bf, err := hl.ButterflyChip(f)
		require.NoError(t, err)
		hwtest.ComparePart(t, hl.StepsPerCycle, hl.Butterfly(f), bf, hwtest.Words(f.Min(), f.Max()))
	}
}

func TestButterfly_fixedTwiddles(t *testing.T) {
	f := fixed.Q7
	r := newRig(t, hl.Butterfly(f))
	for _, tw := range []fft.Twiddle{fft.One, fft.MinusOne, fft.MinusJ} {
		for i := 0; i < 50; i++ {
			a, b := randComplex(f), randComplex(f)
			v := tw.Value(f)
			r.set("ar", a.Re)
			r.set("ai", a.Im)
			r.set("br", b.Re)
			r.set("bi", b.Im)
			r.set("tr", v.Re)
			r.set("ti", v.Im)
			r.cycle()
			pos, neg := fft.Butterfly(f, a, b, tw)
			require.Equal(t, pos, fixed.C(r.get("pr"), r.get("pi")))
			require.Equal(t, neg, fixed.C(r.get("nr"), r.get("ni")))
		}
	}
}

func TestRegButterfly(t *testing.T) {
	f := fixed.Q7
	for _, mode := range []fft.ResetMode{fft.SyncReset, fft.AsyncReset} {
		t.Run(mode.String(), func(t *testing.T) {
			r := newRig(t, hl.RegButterfly(f, mode))
			u := fft.RegisteredButterfly{Format: f}
			for i := 0; i < 200; i++ {
				a, b, tv := randComplex(f), randComplex(f), randComplex(f)
				if i&1 == 0 {
					tv = fft.MinusJ.Value(f)
				}
				en, rst := rand.Intn(4) != 0, rand.Intn(16) == 0
				r.set("ar", a.Re)
				r.set("ai", a.Im)
				r.set("br", b.Re)
				r.set("bi", b.Im)
				r.set("tr", tv.Re)
				r.set("ti", tv.Im)
				r.setBool("en", en)
				r.setBool("rst", rst)
				r.cycle()
				u.Clock(rst, en, a, b, fft.TwiddleOf(f, tv))
				require.Equal(t, u.Pos, fixed.C(r.get("pr"), r.get("pi")), "cycle %d", i)
				require.Equal(t, u.Neg, fixed.C(r.get("nr"), r.get("ni")), "cycle %d", i)
				require.Equal(t, u.Valid, r.getBool("valid"), "cycle %d", i)
			}
		})
	}
}
