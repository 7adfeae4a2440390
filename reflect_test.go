// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft_test

import (
	"testing"

	hw "github.com/db47h/hwfft"
	hl "github.com/db47h/hwfft/hwlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scaler struct {
	In  int `hw:"in"`
	Out int `hw:"out"`

	k int64
}

func (s *scaler) Update(c *hw.Circuit) {
	c.Set(s.Out, s.k*c.Get(s.In))
}

func Test_MakePart(t *testing.T) {
	spec := hw.MakePart(&scaler{k: 3})
	assert.Equal(t, "scaler", spec.Name)
	assert.Equal(t, []string{"in"}, spec.Inputs)
	assert.Equal(t, []string{"out"}, spec.Outputs)

	neg := hw.MakePart(&scaler{k: -1}).NewPart
	var a, b int64
	c, err := hw.NewCircuit(0, testTPC, hw.Parts{
		spec.NewPart("in=5, out=x"),
		neg("in=5, out=y"),
		hl.OutputWord(func(v int64) { a = v })("in=x"),
		hl.OutputWord(func(v int64) { b = v })("in=y"),
	})
	require.NoError(t, err)
	defer c.Dispose()
	c.TickTock()
	assert.EqualValues(t, 15, a)
	assert.EqualValues(t, -5, b)
}

type badTag struct {
	In int `hw:"inout"`
}

func (*badTag) Update(*hw.Circuit) {}

type badType struct {
	In string `hw:"in"`
}

func (*badType) Update(*hw.Circuit) {}

type unexported struct {
	in int `hw:"in"`
}

func (*unexported) Update(*hw.Circuit) {}

type notAStruct int

func (notAStruct) Update(*hw.Circuit) {}

func Test_MakePart_panics(t *testing.T) {
	assert.Panics(t, func() { hw.MakePart((*badTag)(nil)) })
	assert.Panics(t, func() { hw.MakePart((*badType)(nil)) })
	assert.Panics(t, func() { hw.MakePart((*unexported)(nil)) })
	assert.Panics(t, func() { hw.MakePart(notAStruct(0)) })
}
