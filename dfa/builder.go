package dfa

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/litmap/internal/conv"
	"github.com/coregx/litmap/literal"
	"github.com/coregx/litmap/simd"
)

// Builder accumulates patterns into a fold-aware prefix tree.
//
// A Builder is single-owner: it is not safe for concurrent use and is consumed
// by Finish. The first error it reports poisons it; every later Insert and the
// final Finish return that same error.
//
// Example:
//
//	b := dfa.NewBuilder[string](dfa.DefaultConfig())
//	_ = b.InsertString("GET", "get")
//	_ = b.InsertString("POST", "post")
//	a, err := b.Finish()
type Builder[V comparable] struct {
	config   Config
	states   []State[V]
	patterns [][]byte // inserted patterns by index, for conflict reports
	classSet ByteClassSet
	err      error
	finished bool
}

// NewBuilder creates a builder with the given configuration.
// An invalid configuration is reported by the first Insert or Finish.
func NewBuilder[V comparable](config Config) *Builder[V] {
	b := &Builder[V]{config: config}
	if err := config.Validate(); err != nil {
		b.err = err
		return b
	}

	capacity := config.Capacity
	if capacity < 1 {
		capacity = 1
	}
	b.states = make([]State[V], 0, capacity)
	b.addState(0)
	return b
}

// Insert adds a pattern and its value.
//
// Every byte is folded first when the builder is case-insensitive. Inserting
// a pattern whose path already ends on a terminal state is a no-op when the
// values are equal; otherwise Config.Conflict decides, failing with
// AmbiguousPattern by default.
func (b *Builder[V]) Insert(pattern []byte, value V) error {
	if b.finished {
		return ErrBuilderFinished
	}
	if b.err != nil {
		return b.err
	}

	index := len(b.patterns)
	if err := b.checkInput(pattern, index); err != nil {
		b.err = err
		return err
	}

	cur := RootState
	for _, c := range pattern {
		if b.config.CaseInsensitive {
			c = foldTable[c]
		}

		next := b.states[cur].Next(c)
		if next == InvalidState {
			if err := b.checkLimit(pattern, index); err != nil {
				b.err = err
				return err
			}
			next = b.addState(b.states[cur].depth + 1)
			// addState may grow the arena, so index again after it.
			b.states[cur].addTransition(c, next)
			b.markClasses(c)
		}
		cur = next
	}

	b.patterns = append(b.patterns, append([]byte{}, pattern...))

	s := &b.states[cur]
	if !s.terminal {
		s.terminal = true
		s.value = value
		s.pattern = index
		return nil
	}

	if s.value == value {
		return nil
	}

	switch b.config.Conflict {
	case ConflictLastWins:
		s.value = value
		s.pattern = index
	case ConflictFirstWins:
		// Keep the earlier value.
	default:
		b.err = &BuildError{
			Kind:          AmbiguousPattern,
			Message:       ErrAmbiguousPattern.Message,
			Pattern:       b.patterns[index],
			Index:         index,
			Existing:      b.patterns[s.pattern],
			ExistingIndex: s.pattern,
			Value:         value,
			ExistingValue: s.value,
		}
		return b.err
	}
	return nil
}

// InsertString is Insert for string patterns.
func (b *Builder[V]) InsertString(pattern string, value V) error {
	return b.Insert([]byte(pattern), value)
}

// InsertSet inserts every pattern of set in order, stopping at the first error.
func (b *Builder[V]) InsertSet(set *literal.Set[V]) error {
	var err error
	set.Each(func(p literal.Pattern[V]) bool {
		err = b.Insert(p.Bytes, p.Value)
		return err == nil
	})
	return err
}

// Len returns the number of patterns inserted so far.
func (b *Builder[V]) Len() int {
	return len(b.patterns)
}

// States returns the current number of states.
func (b *Builder[V]) States() int {
	return len(b.states)
}

// Finish freezes the prefix tree into an Automaton. No minimization is done,
// so the result is deterministic for a fixed insertion order.
//
// Finish consumes the builder whether or not it succeeds.
func (b *Builder[V]) Finish() (*Automaton[V], error) {
	if b.finished {
		return nil, ErrBuilderFinished
	}
	b.finished = true

	states, count := b.states, len(b.patterns)
	b.states = nil
	b.patterns = nil
	if b.err != nil {
		return nil, b.err
	}

	a := &Automaton[V]{
		states:          states,
		caseInsensitive: b.config.CaseInsensitive,
		classes:         b.classSet.ByteClasses(),
		patternCount:    count,
	}

	first := true
	for i := range states {
		s := &states[i]
		if !s.terminal {
			continue
		}
		a.terminals++
		if first || s.depth < a.minLen {
			a.minLen = s.depth
		}
		if first || s.depth > a.maxLen {
			a.maxLen = s.depth
		}
		first = false
	}

	return a, nil
}

func (b *Builder[V]) addState(depth int) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State[V]{
		id:      id,
		pattern: -1,
		depth:   depth,
	})
	return id
}

func (b *Builder[V]) checkLimit(pattern []byte, index int) error {
	n := len(b.states)
	if (b.config.MaxStates > 0 && n >= b.config.MaxStates) || uint64(n) > uint64(MaxStateID) {
		return &BuildError{
			Kind:    StateLimitExceeded,
			Message: fmt.Sprintf("%s (%d states)", ErrStateLimitExceeded.Message, n),
			Pattern: append([]byte{}, pattern...),
			Index:   index,
		}
	}
	return nil
}

func (b *Builder[V]) checkInput(pattern []byte, index int) error {
	var reason string
	switch b.config.Input {
	case InputASCII:
		if !simd.IsASCII(pattern) {
			reason = fmt.Sprintf("non-ASCII byte at offset %d", simd.FirstNonASCII(pattern))
		}
	case InputUTF8:
		if !utf8.Valid(pattern) {
			reason = "invalid UTF-8"
		}
	}
	if reason == "" {
		return nil
	}
	return &BuildError{
		Kind:    InvalidPattern,
		Message: ErrInvalidPattern.Message + " (" + reason + ")",
		Pattern: append([]byte{}, pattern...),
		Index:   index,
	}
}

// markClasses records byte class boundaries for an edge on canonical byte c.
// Under folding the upper-case variant reaches the same state but is a
// different input byte, so it gets its own class as well.
func (b *Builder[V]) markClasses(c byte) {
	b.classSet.SetByte(c)
	if b.config.CaseInsensitive {
		if _, upper, ok := FoldVariants(c); ok {
			b.classSet.SetByte(upper)
		}
	}
}
