// Package dfa builds and runs the prefix automaton that maps literal byte
// strings to values.
//
// A Builder inserts patterns into a fold-aware prefix tree. Finish freezes the
// tree into an Automaton: a flat arena of states addressed by StateID, each
// holding a sorted byte transition table and an optional terminal value.
//
// Matching is exact: an input matches only when it is consumed completely and
// the walk ends on a terminal state. There is no backtracking and no prefix
// credit, so a pattern "a" never matches the input "ab".
//
// Example:
//
//	b := dfa.NewBuilder[int](dfa.DefaultConfig().WithCaseInsensitive(true))
//	_ = b.InsertString("text/html", 10)
//	a, err := b.Finish()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, ok := a.MatchString("Text/HTML") // 10, true
//
// An Automaton is immutable and safe for concurrent use.
package dfa

import (
	"fmt"
)

// Automaton is the compiled, read-only prefix automaton.
type Automaton[V any] struct {
	// states is the arena; states[i].id == StateID(i) and states[0] is the root
	states []State[V]

	// caseInsensitive means transitions are keyed by folded bytes and inputs
	// are folded before lookup
	caseInsensitive bool

	// classes groups bytes no state distinguishes
	classes ByteClasses

	// patternCount is the number of Insert calls that succeeded
	patternCount int

	// terminals is the number of terminal states (distinct accepted strings
	// modulo folding)
	terminals int

	// minLen and maxLen bound the length of accepted inputs
	minLen, maxLen int
}

// Match returns the value of the pattern equal to input, if any.
//
// Match runs in O(len(input)) time, never allocates and never modifies the
// automaton.
func (a *Automaton[V]) Match(input []byte) (V, bool) {
	return match(a, input)
}

// MatchString is like Match but takes a string. It does not allocate.
func (a *Automaton[V]) MatchString(input string) (V, bool) {
	return match(a, input)
}

func match[V any, T ~[]byte | ~string](a *Automaton[V], input T) (V, bool) {
	s := &a.states[RootState]
	if a.caseInsensitive {
		for i := 0; i < len(input); i++ {
			next := s.Next(foldTable[input[i]])
			if next == InvalidState {
				var zero V
				return zero, false
			}
			s = &a.states[next]
		}
	} else {
		for i := 0; i < len(input); i++ {
			next := s.Next(input[i])
			if next == InvalidState {
				var zero V
				return zero, false
			}
			s = &a.states[next]
		}
	}
	return s.value, s.terminal
}

// Step returns the state reached from id on input byte b, folding b first
// when the automaton is case-insensitive. Returns InvalidState when there is
// no transition or id is invalid.
func (a *Automaton[V]) Step(id StateID, b byte) StateID {
	if int64(id) >= int64(len(a.states)) {
		return InvalidState
	}
	if a.caseInsensitive {
		b = foldTable[b]
	}
	return a.states[id].Next(b)
}

// Root returns the start state id. It is always RootState.
func (a *Automaton[V]) Root() StateID {
	return RootState
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (a *Automaton[V]) State(id StateID) *State[V] {
	if int64(id) >= int64(len(a.states)) {
		return nil
	}
	return &a.states[id]
}

// States returns the total number of states, including the root.
func (a *Automaton[V]) States() int {
	return len(a.states)
}

// Terminals returns the number of terminal states.
func (a *Automaton[V]) Terminals() int {
	return a.terminals
}

// IsEmpty returns true if the automaton matches no input at all.
func (a *Automaton[V]) IsEmpty() bool {
	return a.terminals == 0
}

// CaseInsensitive returns true if the automaton folds ASCII case.
func (a *Automaton[V]) CaseInsensitive() bool {
	return a.caseInsensitive
}

// PatternCount returns the number of patterns inserted by the builder,
// counting idempotent duplicates.
func (a *Automaton[V]) PatternCount() int {
	return a.patternCount
}

// ByteClasses returns the byte equivalence classes of the automaton.
func (a *Automaton[V]) ByteClasses() *ByteClasses {
	return &a.classes
}

// MinLen returns the length of the shortest accepted input, or 0 if the
// automaton is empty.
func (a *Automaton[V]) MinLen() int {
	return a.minLen
}

// MaxLen returns the length of the longest accepted input, or 0 if the
// automaton is empty.
func (a *Automaton[V]) MaxLen() int {
	return a.maxLen
}

// Walk visits every state depth-first from the root, following transitions
// in ascending byte order. path holds the canonical bytes leading to the
// state; it is reused between calls and must be copied to be retained.
// Returning false from fn skips the state's subtree.
func (a *Automaton[V]) Walk(fn func(path []byte, s *State[V]) bool) {
	path := make([]byte, 0, a.maxLen)
	a.walk(RootState, path, fn)
}

func (a *Automaton[V]) walk(id StateID, path []byte, fn func([]byte, *State[V]) bool) {
	s := &a.states[id]
	if !fn(path, s) {
		return
	}
	for _, t := range s.transitions {
		a.walk(t.Next, append(path, t.Byte), fn)
	}
}

// Iter returns an iterator over all states in id order.
func (a *Automaton[V]) Iter() *StateIter[V] {
	return &StateIter[V]{automaton: a}
}

// StateIter is an iterator over automaton states.
type StateIter[V any] struct {
	automaton *Automaton[V]
	pos       int
}

// Next returns the next state in the iteration.
// Returns nil when iteration is complete.
func (it *StateIter[V]) Next() *State[V] {
	if it.pos >= len(it.automaton.states) {
		return nil
	}
	s := &it.automaton.states[it.pos]
	it.pos++
	return s
}

// HasNext returns true if there are more states to iterate.
func (it *StateIter[V]) HasNext() bool {
	return it.pos < len(it.automaton.states)
}

// String returns a human-readable representation of the automaton.
func (a *Automaton[V]) String() string {
	return fmt.Sprintf("Automaton{states: %d, terminals: %d, caseInsensitive: %v, classes: %d}",
		len(a.states), a.terminals, a.caseInsensitive, a.classes.AlphabetLen())
}
