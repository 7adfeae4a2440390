// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVectors(t *testing.T) {
	src := `# impulse
16,0 0,0 0,0 0,0

	-128,127  0x10,-0x10	1,2 3,4 # trailing
`
	vs, err := parseVectors("test", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, [4][2]int{{16, 0}}, vs[0].raw)
	assert.Equal(t, "test:2", vs[0].String())
	assert.Equal(t, [4][2]int{{-128, 127}, {16, -16}, {1, 2}, {3, 4}}, vs[1].raw)
	assert.Equal(t, "test:4", vs[1].String())

	vs, err = parseVectors("empty", strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestParseVectors_errors(t *testing.T) {
	data := []struct {
		name string
		src  string
		err  string
	}{
		{"count", "1,1 2,2 3,3", "x:1: expected 4 samples, got 3"},
		{"malformed", "\n1,1 2,2 3,3 4", `x:2: malformed sample "4"`},
		{"value", "1,1 2,2 3,3 4,z", `x:1: invalid sample value "z"`},
		{"range", "1,1 2,2 128,3 4,4", "x:1: sample value 128 out of range [-128, 127]"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := parseVectors("x", strings.NewReader(d.src))
			assert.EqualError(t, err, d.err)
		})
	}
}
