// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"math/rand"
	"testing"

	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fixed"
	hl "github.com/db47h/hwfft/hwlib"
	"github.com/db47h/hwfft/hwtest"
	"github.com/stretchr/testify/assert"
)

func TestComparePart(t *testing.T) {
	or, err := hw.Chip("custom_or", "a,b", "out", hw.Parts{
		hl.Nand("a=a, b=a, out=notA"),
		hl.Nand("a=b, b=b, out=notB"),
		hl.Nand("a=notA, b=notB, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, 4, hl.Or, or, nil)
}

func TestComparePart_words(t *testing.T) {
	f := fixed.Format{Width: 8}
	bf, err := hl.ButterflyChip(f)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, 8, hl.Butterfly(f), bf, hwtest.Words(f.Min(), f.Max()))
}

func TestGenerators(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := hwtest.Words(-4, 3)
	for i := 0; i < 100; i++ {
		v := w(rng, "x")
		assert.True(t, v >= -4 && v <= 3, "%d out of range", v)
		assert.Contains(t, []int64{0, 1}, hwtest.Bool(rng, "x"))
	}
	g := hwtest.Pins(hwtest.Bool, map[string]hwtest.Generator{
		"w": func(*rand.Rand, string) int64 { return 42 },
	})
	assert.Equal(t, int64(42), g(rng, "w[3]"))
	assert.Equal(t, int64(42), g(rng, "w"))
	assert.Contains(t, []int64{0, 1}, g(rng, "b"))
}
