// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwfft"
	"github.com/db47h/hwfft/fixed"
)

type packer struct {
	Re  int `hw:"in"`
	Im  int `hw:"in"`
	Out int `hw:"out"`

	format fixed.Format
}

func (p *packer) Update(c *hw.Circuit) {
	c.Set(p.Out, int64(p.format.PackTop(fixed.C(c.Get(p.Re), c.Get(p.Im)))))
}

// Packer returns a part packing the 4 most significant bits of each
// component of a complex value in format f into a byte.
//
//	Inputs: re, im
//	Outputs: out
//	Function: out = f.PackTop(re, im)
//
func Packer(f fixed.Format) hw.NewPartFn {
	return hw.MakePart(&packer{format: f}).NewPart
}
