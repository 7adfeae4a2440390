// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft

import "github.com/db47h/hwfft/fixed"

// Store is the 4 slot sample register file.
//
type Store struct {
	Format fixed.Format
	Shift  uint // left shift applied to unpacked nibbles
	slots  [N]fixed.Complex
}

// NewStore returns an empty store for cfg.
//
func NewStore(cfg *Config) Store {
	return Store{Format: cfg.Format(), Shift: cfg.InputShift}
}

// Write unpacks sample and stores it at addr when both en and we are set.
// Only the two low bits of addr are used.
//
func (s *Store) Write(en, we bool, addr int, sample uint8) {
	if !en || !we {
		return
	}
	s.slots[addr&(N-1)] = s.Format.Unpack(sample, s.Shift)
}

// Read returns the sample at addr.
//
func (s *Store) Read(addr int) fixed.Complex {
	return s.slots[addr&(N-1)]
}

// Slots returns a copy of the store contents.
//
func (s *Store) Slots() [N]fixed.Complex {
	return s.slots
}

// Reset clears all slots.
//
func (s *Store) Reset() {
	s.slots = [N]fixed.Complex{}
}
