// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"

	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
	"github.com/pkg/errors"
)

// Top pin names.
//
const (
	TopIn  = "en, rst, ld, rd, din"
	TopOut = "dout, oe, done, phase, ldp, rdp"
)

// Top returns the complete accelerator: edge detectors on the ld and rd
// request lines, sequencer, sample store, FFT engine, output packers and the
// result multiplexer. ldp and rdp expose the detected pulses.
//
//	Inputs: en, rst, ld, rd, din
//	Outputs: dout, oe, done, phase, ldp, rdp
//
func Top(cfg fft.Config) (hw.NewPartFn, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "failed to create top chip")
	}
	edge, err := EdgeDetect(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create edge detector")
	}
	engine, err := FFTChip(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create FFT engine")
	}
	pack := Packer(cfg.Format())

	parts := hw.Parts{
		edge("in=ld, en=en, rst=rst, pulse=ldp"),
		edge("in=rd, en=en, rst=rst, pulse=rdp"),
		Sequencer(&cfg)("en=en, rst=rst, load=ldp, read=rdp, res=res, " +
			"we=we, waddr=waddr, raddr=raddr, dout=dout, oe=oe, done=done, phase=phase"),
		Memory(&cfg)("en=en, rst=rst, we=we, addr=waddr, din=din, r[0..3]=xr[0..3], i[0..3]=xi[0..3]"),
		engine("xr[0..3]=xr[0..3], xi[0..3]=xi[0..3], rst=rst, yr[0..3]=yr[0..3], yi[0..3]=yi[0..3]"),
		Mux4Way("a=p[0], b=p[1], c=p[2], d=p[3], sel=raddr, out=res"),
	}
	for i := 0; i < fft.N; i++ {
		parts = append(parts, pack(fmt.Sprintf("re=yr[%d], im=yi[%d], out=p[%d]", i, i, i)))
	}
	return hw.Chip("Top", TopIn, TopOut, parts)
}
