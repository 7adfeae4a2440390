// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwfft provides a cycle-stepped circuit simulator and the tools to
compose parts into chips, used to run a fixed-point 4 point FFT accelerator
at the register transfer level.

Wires carry int64 words rather than single bits: a datapath component such as
a butterfly reads and writes whole fixed-point values, while control signals
use 0 and 1. Parts are closures over pin numbers (see PartSpec and MountFn),
composed with connection strings:

	bf := hwlib.Butterfly(fixed.Q7)
	fft, err := hwfft.Chip("FFT", "ar[4], ai[4]", "yr[4], yi[4]", hwfft.Parts{
		bf("ar=ar[0], ai=ai[0], br=ar[2], bi=ai[2], tr=-128, ti=0, pr=s0r, pi=s0i, nr=s1r, ni=s1i"),
		...
	})

Integer literals are allowed on the wire side of a connection and tie an
input to a constant.

The package hwlib provides the library of parts, and package fft the
behavioral model that circuits built from hwlib are checked against.
*/
package hwfft
