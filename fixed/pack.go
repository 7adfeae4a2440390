// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fixed

// nibble sign-extends the low 4 bits of v.
//
func nibble(v int64) int64 {
	return v << 60 >> 60
}

// PackNibbles packs re and im into a byte: real in bits [7:4], imaginary in
// bits [3:0]. Only the low 4 bits of each value are kept.
//
func PackNibbles(re, im int64) uint8 {
	return uint8(re&0xF)<<4 | uint8(im&0xF)
}

// UnpackNibbles is the inverse of PackNibbles. Both nibbles are sign-extended.
//
func UnpackNibbles(b uint8) (re, im int64) {
	return nibble(int64(b >> 4)), nibble(int64(b))
}

// Unpack decodes a packed sample and shifts both components left by shift
// bits. The result is reduced to the format.
//
func (f Format) Unpack(b uint8, shift uint) Complex {
	re, im := UnpackNibbles(b)
	return f.Norm(Complex{re << shift, im << shift})
}

// PackTop packs the 4 most significant bits of each component of c.
//
func (f Format) PackTop(c Complex) uint8 {
	s := f.Width - 4
	return PackNibbles(c.Re>>s, c.Im>>s)
}

// PackInput is the host side encoder matching Unpack: it keeps the 4 bits of
// each component just above shift.
//
func PackInput(c Complex, shift uint) uint8 {
	return PackNibbles(c.Re>>shift, c.Im>>shift)
}
