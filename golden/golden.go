// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package golden provides reference models of the accelerator written with
// plain integer arithmetic, independently of packages fixed and fft.
//
// They reproduce the reference policies only: 8 bits, truncating >> 7,
// two's complement wraparound, a 4 bit input shift and the -1 stage 1
// twiddle.
//
package golden

// Twiddle codes used by the engine.
//
var (
	MinusOne = [2]int{-128, 0}
	MinusJ   = [2]int{0, -128}
)

// Wrap8 wraps x to a signed 8 bits value.
//
func Wrap8(x int) int {
	x &= 0xFF
	if x > 127 {
		x -= 256
	}
	return x
}

// Signed interprets the low bits of val as a signed value.
//
func Signed(val, bits int) int {
	val &= 1<<uint(bits) - 1
	if val >= 1<<uint(bits-1) {
		return val - 1<<uint(bits)
	}
	return val
}

// PackInput encodes a host sample: the 4 bits above the input shift of each
// component.
//
func PackInput(re, im int) uint8 {
	return uint8((re>>4)&0xF)<<4 | uint8((im>>4)&0xF)
}

// PackOutput packs the 4 most significant bits of each component.
//
func PackOutput(re, im int) uint8 {
	return uint8((re>>4)&0xF)<<4 | uint8((im>>4)&0xF)
}

// MemTransform is the sample store write transform: sign-extended nibbles
// shifted left by 4.
//
func MemTransform(b uint8) [2]int {
	return [2]int{Signed(int(b>>4), 4) << 4, Signed(int(b&0xF), 4) << 4}
}

// Butterfly is the reference butterfly for 8 bits operands.
//
func Butterfly(a, b, t [2]int) (pos, neg [2]int) {
	pr := Wrap8((t[0]*b[0] - t[1]*b[1]) >> 7)
	pi := Wrap8((t[1]*b[0] + t[0]*b[1]) >> 7)
	pos = [2]int{Wrap8(a[0] + pr), Wrap8(a[1] + pi)}
	neg = [2]int{Wrap8(a[0] - pr), Wrap8(a[1] - pi)}
	return pos, neg
}

// FFT4 is the reference engine.
//
func FFT4(in [4][2]int) (out [4][2]int) {
	p0, n0 := Butterfly(in[0], in[2], MinusOne)
	p1, n1 := Butterfly(in[1], in[3], MinusOne)
	out[0] = [2]int{Wrap8(p0[0] + p1[0]), Wrap8(p0[1] + p1[1])}
	out[2] = [2]int{Wrap8(p0[0] - p1[0]), Wrap8(p0[1] - p1[1])}
	out[1], out[3] = Butterfly(n0, n1, MinusJ)
	return out
}

// TopFFT is the end to end reference: host encoding, store transform,
// engine and output packing.
//
func TopFFT(raw [4][2]int) (packed [4]uint8) {
	var in [4][2]int
	for i, s := range raw {
		in[i] = MemTransform(PackInput(s[0], s[1]))
	}
	out := FFT4(in)
	for i, o := range out {
		packed[i] = PackOutput(o[0], o[1])
	}
	return packed
}
