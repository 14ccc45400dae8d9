package keyboard

import "sync/atomic"

// State tracks the single most recently reported held key and modifier byte.
// It is written from the report-ingestion goroutine and read from the repeat
// scheduler's tick loop. The pair is packed into one atomic word so a reader
// never observes the key from one report combined with the modifiers of
// another.
type State struct {
	packed   atomic.Uint32 // key<<8 | modifiers
	accepted atomic.Uint64
	dropped  atomic.Uint64

	// onKeyChange fires from Apply whenever the held key changes value,
	// including transitions to and from KeyNone.
	onKeyChange func(KeyCode)
}

// NewState returns a State with no key held. onKeyChange may be nil.
func NewState(onKeyChange func(KeyCode)) *State {
	return &State{onKeyChange: onKeyChange}
}

// Apply ingests a raw boot report, overwriting the held key and modifiers as
// one unit. Short reports are dropped without touching the state; Apply
// reports whether the update was accepted. Release reports (first key slot
// zero) are written through like any other value.
func (s *State) Apply(raw []byte) bool {
	var r Report
	if err := r.UnmarshalBinary(raw); err != nil {
		s.dropped.Add(1)
		return false
	}
	prev := s.packed.Swap(uint32(r.Key)<<8 | uint32(r.Modifiers))
	s.accepted.Add(1)
	if KeyCode(prev>>8) != r.Key && s.onKeyChange != nil {
		s.onKeyChange(r.Key)
	}
	return true
}

// Held returns the current held key and modifiers as a consistent pair.
func (s *State) Held() (KeyCode, Modifiers) {
	v := s.packed.Load()
	return KeyCode(v >> 8), Modifiers(v)
}

// Counters returns the number of accepted and dropped reports.
func (s *State) Counters() (accepted, dropped uint64) {
	return s.accepted.Load(), s.dropped.Load()
}
