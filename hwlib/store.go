// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fft"
)

// Memory returns the sample store. All four slots are visible at all times
// on the r and i buses. Two read ports return the slots addressed by ra and
// rb. valid is high in the cycle after an edge where the store was enabled
// and not written to.
//
//	Inputs: en, rst, we, addr, din, ra, rb
//	Outputs: r[4], i[4], ar, ai, br, bi, valid
//	Function: on rising edges, if rst { clear; valid = 0 } else {
//	              if en && we { slot[addr] = unpack(din) }
//	              valid = en && !we
//	          }
//	          (ar, ai) = slot[ra], (br, bi) = slot[rb]
//
func Memory(cfg *fft.Config) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "Memory",
		Inputs:  hw.IO("en, rst, we, addr, din, ra, rb"),
		Outputs: hw.IO("r[4], i[4], ar, ai, br, bi, valid"),
		Mount: func(s *hw.Socket) []hw.Component {
			en, rst, we := s.Pin(pEn), s.Pin(pRst), s.Pin("we")
			addr, din := s.Pin("addr"), s.Pin("din")
			ra, rb := s.Pin("ra"), s.Pin("rb")
			ar, ai, br, bi := s.Pin("ar"), s.Pin("ai"), s.Pin("br"), s.Pin("bi")
			valid := s.Pin("valid")
			r, i := s.Bus("r", fft.N), s.Bus("i", fft.N)
			st := fft.NewStore(cfg)
			var v bool
			return []hw.Component{func(c *hw.Circuit) {
				switch {
				case cfg.Reset == fft.AsyncReset && c.GetBool(rst):
					st.Reset()
					v = false
				case c.AtTick():
					if c.GetBool(rst) {
						st.Reset()
						v = false
					} else {
						e, w := c.GetBool(en), c.GetBool(we)
						st.Write(e, w, int(c.Get(addr)), uint8(c.Get(din)))
						v = e && !w
					}
				}
				for k := range r {
					x := st.Read(k)
					c.Set(r[k], x.Re)
					c.Set(i[k], x.Im)
				}
				a, b := st.Read(int(c.Get(ra))), st.Read(int(c.Get(rb)))
				c.Set(ar, a.Re)
				c.Set(ai, a.Im)
				c.Set(br, b.Re)
				c.Set(bi, b.Im)
				c.SetBool(valid, v)
			}}
		}}).NewPart
}
