// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft

// EdgeDetector turns a level request line into a one cycle pulse on its
// rising edge. The previous level is latched on every clock edge, enabled or
// not, so that a level held across an enable transition is not mistaken for
// a new request.
//
type EdgeDetector struct {
	prev bool
}

// Pulse returns the combinational pulse output for the current level.
//
func (d *EdgeDetector) Pulse(in bool) bool {
	return in && !d.prev
}

// Clock latches in.
//
func (d *EdgeDetector) Clock(in bool) {
	d.prev = in
}

// Reset clears the latch.
//
func (d *EdgeDetector) Reset() {
	d.prev = false
}
