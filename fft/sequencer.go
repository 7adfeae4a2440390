// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft

// Phase is the state of the Sequencer.
//
type Phase int

// Sequencer phases.
//
const (
	Idle Phase = iota
	Loading
	Processing
	Done
	Reading
)

// Sequencer is the load/process/read control FSM. It drives the store write
// enable and address, waits for the engine latency, then serves the four
// packed results one per read pulse.
//
// Requests that do not apply to the current phase are ignored.
//
type Sequencer struct {
	Phase    Phase
	LoadAddr int   // next store slot to write
	ReadAddr int   // result selected for the next read
	Data     uint8 // output bus register
	OE       bool  // output enable

	wait    int
	latency int
	hold    HoldMode
}

// NewSequencer returns an idle sequencer for cfg.
//
func NewSequencer(cfg *Config) Sequencer {
	return Sequencer{latency: cfg.Latency(), hold: cfg.Hold}
}

// WriteEnable returns the store write enable for the current cycle: true
// when a load pulse is accepted.
//
func (s *Sequencer) WriteEnable(en, load bool) bool {
	return en && load && (s.Phase == Idle || s.Phase == Loading)
}

// Ready returns true once the results are available and no read has started.
//
func (s *Sequencer) Ready() bool {
	return s.Phase == Done
}

// Clock advances the FSM by one clock edge. result must be the packed
// engine output selected by ReadAddr.
//
func (s *Sequencer) Clock(en, load, read bool, result uint8) {
	if !en {
		return
	}
	if s.hold == HoldPulse {
		s.OE = false
	}
	switch s.Phase {
	case Idle, Loading:
		if !load {
			break
		}
		s.LoadAddr = (s.LoadAddr + 1) & (N - 1)
		if s.LoadAddr == 0 {
			s.Phase = Processing
			s.wait = s.latency
		} else {
			s.Phase = Loading
		}
	case Processing:
		if s.wait == 0 {
			s.Phase = Done
		} else {
			s.wait--
		}
	case Done, Reading:
		if !read {
			break
		}
		s.Data = result
		s.OE = true
		s.ReadAddr = (s.ReadAddr + 1) & (N - 1)
		s.Phase = Reading
	}
}

// Reset forces Idle and clears counters, data and output enable.
//
func (s *Sequencer) Reset() {
	s.Phase = Idle
	s.LoadAddr, s.ReadAddr, s.wait = 0, 0, 0
	s.Data, s.OE = 0, false
}
