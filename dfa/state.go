package dfa

import (
	"fmt"
	"sort"
)

// StateID uniquely identifies a state within one Automaton.
// States live in a flat arena and the id is the arena index.
type StateID uint32

const (
	// InvalidState marks the absence of a transition.
	InvalidState StateID = 0xFFFFFFFF

	// RootState is the id of the start state of every automaton.
	RootState StateID = 0

	// MaxStateID is the largest id the builder will hand out.
	MaxStateID StateID = InvalidState - 1
)

// linearScanMax is the transition count up to which lookup scans instead of
// binary searching. Most prefix-tree states have one or two children.
const linearScanMax = 8

// Transition is an edge on a single canonical byte.
// In a case-insensitive automaton Byte is always the folded form.
type Transition struct {
	Byte byte
	Next StateID
}

// State is a node of the automaton: a transition table sorted by byte and an
// optional terminal value.
type State[V any] struct {
	id          StateID
	transitions []Transition
	terminal    bool
	value       V
	pattern     int // insertion index of the pattern owning value, -1 if none
	depth       int
}

// ID returns the state's identifier.
func (s *State[V]) ID() StateID {
	return s.id
}

// Transitions returns the outgoing edges sorted by ascending byte.
// The slice must not be modified.
func (s *State[V]) Transitions() []Transition {
	return s.transitions
}

// IsTerminal returns true if some pattern ends exactly at this state.
func (s *State[V]) IsTerminal() bool {
	return s.terminal
}

// Value returns the terminal value, if any.
func (s *State[V]) Value() (V, bool) {
	return s.value, s.terminal
}

// Pattern returns the insertion index of the pattern that set the terminal
// value, or -1 for non-terminal states.
func (s *State[V]) Pattern() int {
	return s.pattern
}

// Depth returns the number of bytes consumed to reach this state from the root.
func (s *State[V]) Depth() int {
	return s.depth
}

// Next returns the target of the transition on canonical byte b, or
// InvalidState if there is none. Next does not fold b.
func (s *State[V]) Next(b byte) StateID {
	ts := s.transitions
	if len(ts) <= linearScanMax {
		for i := range ts {
			if ts[i].Byte == b {
				return ts[i].Next
			}
			if ts[i].Byte > b {
				break
			}
		}
		return InvalidState
	}

	lo, hi := 0, len(ts)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case ts[mid].Byte < b:
			lo = mid + 1
		case ts[mid].Byte > b:
			hi = mid
		default:
			return ts[mid].Next
		}
	}
	return InvalidState
}

// addTransition inserts an edge keeping the table sorted.
// The caller guarantees no edge on b exists yet.
func (s *State[V]) addTransition(b byte, next StateID) {
	i := sort.Search(len(s.transitions), func(i int) bool {
		return s.transitions[i].Byte >= b
	})
	s.transitions = append(s.transitions, Transition{})
	copy(s.transitions[i+1:], s.transitions[i:])
	s.transitions[i] = Transition{Byte: b, Next: next}
}

// String returns a human-readable representation of the state.
func (s *State[V]) String() string {
	if s.terminal {
		return fmt.Sprintf("State(%d, %d transitions, terminal=%v)", s.id, len(s.transitions), s.value)
	}
	return fmt.Sprintf("State(%d, %d transitions)", s.id, len(s.transitions))
}
