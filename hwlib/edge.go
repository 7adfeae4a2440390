// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
)

// EdgeDetect returns a rising edge detector: pulse is high during the clock
// cycle where in is high and was low at the previous rising edge. The
// previous level is latched on every edge, regardless of en. When
// cfg.GatePulses is set, pulse is also forced low while en is low.
//
//	Inputs: in, en, rst
//	Outputs: pulse
//
func EdgeDetect(cfg *fft.Config) (hw.NewPartFn, error) {
	parts := hw.Parts{
		Register(cfg.Reset)("in=in, en=true, rst=rst, out=prev"),
		Not("in=prev, out=notPrev"),
	}
	if cfg.GatePulses {
		parts = append(parts,
			And("a=in, b=notPrev, out=edge"),
			And("a=edge, b=en, out=pulse"))
	} else {
		parts = append(parts, And("a=in, b=notPrev, out=pulse"))
	}
	return hw.Chip("EdgeDetect", "in, en, rst", "pulse", parts)
}
