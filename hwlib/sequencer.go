// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
)

// Sequencer returns the control FSM. load and read are the edge detected
// pulses, res the packed result selected by raddr. we is combinational, all
// other outputs are registers.
//
//	Inputs: en, rst, load, read, res
//	Outputs: we, waddr, raddr, dout, oe, done, phase
//
func Sequencer(cfg *fft.Config) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "Sequencer",
		Inputs:  hw.IO("en, rst, load, read, res"),
		Outputs: hw.IO("we, waddr, raddr, dout, oe, done, phase"),
		Mount: func(s *hw.Socket) []hw.Component {
			en, rst, load, read, res := s.Pin(pEn), s.Pin(pRst), s.Pin("load"), s.Pin("read"), s.Pin("res")
			we, waddr, raddr := s.Pin("we"), s.Pin("waddr"), s.Pin("raddr")
			dout, oe, done, phase := s.Pin("dout"), s.Pin("oe"), s.Pin("done"), s.Pin("phase")
			seq := fft.NewSequencer(cfg)
			return []hw.Component{func(c *hw.Circuit) {
				switch {
				case cfg.Reset == fft.AsyncReset && c.GetBool(rst):
					seq.Reset()
				case c.AtTick():
					if c.GetBool(rst) {
						seq.Reset()
					} else {
						seq.Clock(c.GetBool(en), c.GetBool(load), c.GetBool(read), uint8(c.Get(res)))
					}
				}
				c.SetBool(we, seq.WriteEnable(c.GetBool(en), c.GetBool(load)))
				c.Set(waddr, int64(seq.LoadAddr))
				c.Set(raddr, int64(seq.ReadAddr))
				c.Set(dout, int64(seq.Data))
				c.SetBool(oe, seq.OE)
				c.SetBool(done, seq.Ready())
				c.Set(phase, int64(seq.Phase))
			}}
		}}).NewPart
}
