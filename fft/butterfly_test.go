// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/hwfft/fft"
	"github.com/db47h/hwfft/fixed"
	"github.com/db47h/hwfft/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var saturating = fixed.Format{Width: 8, Overflow: fixed.Saturate}

func c8(re, im int8) fixed.Complex { return fixed.C(int64(re), int64(im)) }

func TestButterfly_zeroTwiddle(t *testing.T) {
	for _, f := range []fixed.Format{fixed.Q7, saturating} {
		prop := func(ar, ai, br, bi int8) bool {
			a := c8(ar, ai)
			pos, neg := fft.Butterfly(f, a, c8(br, bi), fft.Zero)
			return pos == a && neg == a
		}
		require.NoError(t, quick.Check(prop, nil), f.Overflow.String())
	}
}

func TestButterfly_unityTwiddle(t *testing.T) {
	for _, f := range []fixed.Format{fixed.Q7, saturating} {
		prop := func(ar, ai, br, bi int8) bool {
			a, b := c8(ar, ai), c8(br, bi)
			pos, neg := fft.Butterfly(f, a, b, fft.One)
			return pos == f.Add(a, b) && neg == f.Sub(a, b)
		}
		require.NoError(t, quick.Check(prop, nil), f.Overflow.String())
	}
	// the unity code read from a wire bypasses the multiplier too
	one := fft.TwiddleOf(fixed.Q7, fixed.C(127, 0))
	pos, neg := fft.Butterfly(fixed.Q7, fixed.C(1, 1), fixed.C(100, -100), one)
	assert.Equal(t, fixed.C(101, -99), pos)
	assert.Equal(t, fixed.C(-99, 101), neg)
}

func TestButterfly_minusOneTwiddle(t *testing.T) {
	prop := func(ar, ai, br, bi int8) bool {
		a, b := c8(ar, ai), c8(br, bi)
		pos, neg := fft.Butterfly(fixed.Q7, a, b, fft.MinusOne)
		return pos == fixed.Q7.Sub(a, b) && neg == fixed.Q7.Add(a, b)
	}
	require.NoError(t, quick.Check(prop, nil))

	// with saturation, -1 times the minimum code is clamped to Max inside
	// the product, so the identity only holds away from it
	prop = func(ar, ai, br, bi int8) bool {
		if br == -128 || bi == -128 {
			return true
		}
		a, b := c8(ar, ai), c8(br, bi)
		pos, neg := fft.Butterfly(saturating, a, b, fft.MinusOne)
		return pos == saturating.Sub(a, b) && neg == saturating.Add(a, b)
	}
	require.NoError(t, quick.Check(prop, nil))

	m := fixed.C(-128, -128)
	pos, neg := fft.Butterfly(saturating, m, m, fft.MinusOne)
	assert.Equal(t, fixed.C(-1, -1), pos, "a + 127, not a - b")
	assert.Equal(t, fixed.C(-128, -128), neg)
	assert.Equal(t, fixed.C(0, 0), saturating.Sub(m, m))
	pos, neg = fft.Butterfly(fixed.Q7, m, m, fft.MinusOne)
	assert.Equal(t, fixed.Q7.Sub(m, m), pos)
	assert.Equal(t, fixed.Q7.Add(m, m), neg)
}

func TestButterfly_golden(t *testing.T) {
	prop := func(ar, ai, br, bi, tr, ti int8) bool {
		a, b, tw := c8(ar, ai), c8(br, bi), c8(tr, ti)
		pos, neg := fft.Butterfly(fixed.Q7, a, b, fft.Custom(tw))
		gp, gn := golden.Butterfly(
			[2]int{int(ar), int(ai)}, [2]int{int(br), int(bi)}, [2]int{int(tr), int(ti)})
		return pos == fixed.C(int64(gp[0]), int64(gp[1])) && neg == fixed.C(int64(gn[0]), int64(gn[1]))
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestButterfly_rounding(t *testing.T) {
	round := fixed.Format{Width: 8, Rounding: fixed.RoundHalfUp}
	// 0.5 * 0.75 = 0.375 = 48/128; 0.5 * 1/128 rounds up to 1/128
	a := fixed.C(0, 0)
	pos, _ := fft.Butterfly(round, a, fixed.C(96, 1), fft.Custom(fixed.C(64, 0)))
	assert.Equal(t, fixed.C(48, 1), pos)
	pos, _ = fft.Butterfly(fixed.Q7, a, fixed.C(96, 1), fft.Custom(fixed.C(64, 0)))
	assert.Equal(t, fixed.C(48, 0), pos)
}

func TestTwiddleOf(t *testing.T) {
	assert.Equal(t, fft.Zero, fft.TwiddleOf(fixed.Q7, fixed.C(0, 0)))
	assert.Equal(t, fft.One, fft.TwiddleOf(fixed.Q7, fixed.C(127, 0)))
	assert.Equal(t, fft.One, fft.TwiddleOf(fixed.Q3, fixed.C(7, 0)))
	assert.Equal(t, fft.MinusOne, fft.TwiddleOf(fixed.Q7, fixed.C(-128, 0)))
	assert.Equal(t, fft.MinusJ, fft.TwiddleOf(fixed.Q7, fixed.C(0, -128)))
	assert.Equal(t, fft.Custom(fixed.C(3, 2)), fft.TwiddleOf(fixed.Q7, fixed.C(3, 2)))
	assert.Equal(t, fixed.C(0, -8), fft.MinusJ.Value(fixed.Q3))
	assert.Equal(t, "-j", fft.MinusJ.String())
}

func TestRegisteredButterfly(t *testing.T) {
	u := fft.RegisteredButterfly{Format: fixed.Q3}
	a, b := fixed.C(1, 1), fixed.C(2, 2)

	// disabled: nothing happens
	u.Clock(false, false, a, b, fft.One)
	assert.False(t, u.Valid)

	u.Clock(false, true, a, b, fft.One)
	require.True(t, u.Valid)
	assert.Equal(t, fixed.C(3, 3), u.Pos)
	assert.Equal(t, fixed.C(-1, -1), u.Neg)

	// T = j in Q3 is (0, 7): not exact, goes through the multiplier
	u.Clock(false, true, a, b, fft.TwiddleOf(fixed.Q3, fixed.C(0, 7)))
	assert.True(t, u.Valid)
	assert.Equal(t, fixed.Q3.Add(a, fixed.Q3.Mul(fixed.C(0, 7), b)), u.Pos)

	// enable low clears on the next edge
	u.Clock(false, false, a, b, fft.One)
	assert.False(t, u.Valid)
	assert.Equal(t, fixed.Complex{}, u.Pos)

	u.Clock(false, true, a, b, fft.One)
	require.True(t, u.Valid)
	// reset overrides enable
	u.Clock(true, true, a, b, fft.One)
	assert.False(t, u.Valid)
	assert.Equal(t, fixed.Complex{}, u.Neg)
}
