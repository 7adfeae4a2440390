// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fixed

import (
	"github.com/pkg/errors"
)

var roundingNames = [...]string{Truncate: "truncate", RoundHalfUp: "nearest"}

func (r Rounding) String() string {
	if r >= 0 && int(r) < len(roundingNames) {
		return roundingNames[r]
	}
	return "Rounding(?)"
}

// MarshalText implements encoding.TextMarshaler.
//
func (r Rounding) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(roundingNames) {
		return nil, errors.Errorf("invalid rounding policy %d", r)
	}
	return []byte(roundingNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (r *Rounding) UnmarshalText(text []byte) error {
	for i, n := range roundingNames {
		if n == string(text) {
			*r = Rounding(i)
			return nil
		}
	}
	return errors.Errorf("unknown rounding policy %q", text)
}

var overflowNames = [...]string{Wrap: "wrap", Saturate: "saturate"}

func (o Overflow) String() string {
	if o >= 0 && int(o) < len(overflowNames) {
		return overflowNames[o]
	}
	return "Overflow(?)"
}

// MarshalText implements encoding.TextMarshaler.
//
func (o Overflow) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(overflowNames) {
		return nil, errors.Errorf("invalid overflow policy %d", o)
	}
	return []byte(overflowNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (o *Overflow) UnmarshalText(text []byte) error {
	for i, n := range overflowNames {
		if n == string(text) {
			*o = Overflow(i)
			return nil
		}
	}
	return errors.Errorf("unknown overflow policy %q", text)
}
