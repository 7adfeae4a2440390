// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft

// Get returns the value of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Get(n int) int64 {
	return c.s0[n]
}

// Set sets the value v of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Set(n int, v int64) {
	c.s1[n] = v
}

// GetBool returns true if pin n is non-zero.
//
func (c *Circuit) GetBool(n int) bool {
	return c.s0[n] != 0
}

// SetBool sets pin n to 1 if b is true, 0 otherwise.
//
func (c *Circuit) SetBool(n int, b bool) {
	c.s1[n] = Int(b)
}

// Toggle toggles the boolean state of pin n.
//
func (c *Circuit) Toggle(n int) {
	c.s1[n] = Int(c.s0[n] == 0)
}

// Int converts a boolean to a wire value.
//
func Int(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
