// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fft

import "github.com/pkg/errors"

// enum text codecs shared by the policy types.

func enumString(names []string, v int, typ string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return typ + "(?)"
}

func enumMarshal(names []string, v int, typ string) ([]byte, error) {
	if v < 0 || v >= len(names) {
		return nil, errors.Errorf("invalid %s %d", typ, v)
	}
	return []byte(names[v]), nil
}

func enumUnmarshal(names []string, text []byte, typ string) (int, error) {
	for i, n := range names {
		if n == string(text) {
			return i, nil
		}
	}
	return 0, errors.Errorf("unknown %s %q", typ, text)
}

var resetNames = []string{SyncReset: "sync", AsyncReset: "async"}

func (m ResetMode) String() string { return enumString(resetNames, int(m), "ResetMode") }

// MarshalText implements encoding.TextMarshaler.
//
func (m ResetMode) MarshalText() ([]byte, error) {
	return enumMarshal(resetNames, int(m), "reset mode")
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (m *ResetMode) UnmarshalText(text []byte) error {
	v, err := enumUnmarshal(resetNames, text, "reset mode")
	if err != nil {
		return err
	}
	*m = ResetMode(v)
	return nil
}

var holdNames = []string{HoldPulse: "pulse", HoldLatch: "latch"}

func (m HoldMode) String() string { return enumString(holdNames, int(m), "HoldMode") }

// MarshalText implements encoding.TextMarshaler.
//
func (m HoldMode) MarshalText() ([]byte, error) {
	return enumMarshal(holdNames, int(m), "hold mode")
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (m *HoldMode) UnmarshalText(text []byte) error {
	v, err := enumUnmarshal(holdNames, text, "hold mode")
	if err != nil {
		return err
	}
	*m = HoldMode(v)
	return nil
}

var scheduleNames = []string{ScheduleReference: "reference", ScheduleTextbook: "textbook"}

func (s Schedule) String() string { return enumString(scheduleNames, int(s), "Schedule") }

// MarshalText implements encoding.TextMarshaler.
//
func (s Schedule) MarshalText() ([]byte, error) {
	return enumMarshal(scheduleNames, int(s), "schedule")
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (s *Schedule) UnmarshalText(text []byte) error {
	v, err := enumUnmarshal(scheduleNames, text, "schedule")
	if err != nil {
		return err
	}
	*s = Schedule(v)
	return nil
}

var phaseNames = []string{Idle: "idle", Loading: "loading", Processing: "processing", Done: "done", Reading: "reading"}

func (p Phase) String() string { return enumString(phaseNames, int(p), "Phase") }
