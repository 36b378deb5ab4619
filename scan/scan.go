// Package scan finds occurrences of an automaton's patterns inside larger
// inputs.
//
// A Finder uses an Aho-Corasick automaton over the canonical patterns to
// find the occurrence that ends first. That bounds where the leftmost
// occurrence can start; the prefix automaton is walked from each candidate
// start in that window to pick the leftmost-longest pattern and its value.
// Occurrences reported by FindAll do not overlap.
//
// The empty pattern is never reported: it would occur at every position.
package scan

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/litmap/dfa"
)

// Hit is one occurrence of a pattern: haystack[Start:End] matches the
// pattern whose value is Value.
type Hit[V any] struct {
	Start int
	End   int
	Value V
}

// Finder searches haystacks for the patterns of one automaton.
// It is safe for concurrent use.
type Finder[V any] struct {
	automaton *dfa.Automaton[V]
	ac        *ahocorasick.Automaton // nil when there is no non-empty pattern
	patterns  int
}

// New builds a Finder over the non-empty patterns accepted by a.
func New[V any](a *dfa.Automaton[V]) (*Finder[V], error) {
	f := &Finder[V]{automaton: a}

	builder := ahocorasick.NewBuilder()
	a.Walk(func(path []byte, s *dfa.State[V]) bool {
		if s.IsTerminal() && len(path) > 0 {
			builder.AddPattern(append([]byte(nil), path...))
			f.patterns++
		}
		return true
	})
	if f.patterns == 0 {
		return f, nil
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("scan: build aho-corasick automaton over %d patterns: %w", f.patterns, err)
	}
	f.ac = auto
	return f, nil
}

// Patterns returns the number of patterns the Finder searches for.
func (f *Finder[V]) Patterns() int {
	return f.patterns
}

// Find returns the leftmost-longest occurrence starting at or after at.
func (f *Finder[V]) Find(haystack []byte, at int) (Hit[V], bool) {
	if f.ac == nil || at < 0 || at >= len(haystack) {
		return Hit[V]{}, false
	}
	return f.find(haystack, f.searchSpace(haystack), at)
}

// FindAll returns every non-overlapping leftmost-longest occurrence.
func (f *Finder[V]) FindAll(haystack []byte) []Hit[V] {
	if f.ac == nil {
		return nil
	}
	space := f.searchSpace(haystack)

	var hits []Hit[V]
	for at := 0; at < len(haystack); {
		hit, ok := f.find(haystack, space, at)
		if !ok {
			break
		}
		hits = append(hits, hit)
		at = hit.End
	}
	return hits
}

// Contains reports whether any pattern occurs in haystack.
func (f *Finder[V]) Contains(haystack []byte) bool {
	if f.ac == nil {
		return false
	}
	return f.ac.IsMatch(f.searchSpace(haystack))
}

// searchSpace returns the bytes the Aho-Corasick automaton scans. Its
// patterns are canonical, so a case-insensitive search scans a folded copy.
// Folding maps bytes one to one, so offsets carry over unchanged.
func (f *Finder[V]) searchSpace(haystack []byte) []byte {
	if !f.automaton.CaseInsensitive() {
		return haystack
	}
	return dfa.AppendFold(make([]byte, 0, len(haystack)), haystack)
}

// find returns the leftmost-longest hit at or after at. The Aho-Corasick
// hit m is the occurrence that ends first, which need not start first: a
// longer pattern may begin before m.Start and end after m.End. Every
// occurrence ends at or after m.End, so none starts before
// m.End-MaxLen, and the first start in that window where the prefix
// automaton accepts something is the leftmost one.
func (f *Finder[V]) find(haystack, space []byte, at int) (Hit[V], bool) {
	m := f.ac.Find(space, at)
	if m == nil {
		return Hit[V]{}, false
	}
	from := max(at, m.End-f.automaton.MaxLen())
	for start := from; start <= m.Start; start++ {
		if end, value, ok := f.longestAt(haystack, start); ok {
			return Hit[V]{Start: start, End: end, Value: value}, true
		}
	}
	return Hit[V]{}, false
}

// longestAt walks the prefix automaton from start and returns the end of
// the longest non-empty pattern beginning there.
func (f *Finder[V]) longestAt(haystack []byte, start int) (int, V, bool) {
	var (
		value V
		end   = -1
	)
	id := f.automaton.Root()
	for i := start; i < len(haystack); i++ {
		id = f.automaton.Step(id, haystack[i])
		if id == dfa.InvalidState {
			break
		}
		if v, ok := f.automaton.State(id).Value(); ok {
			value, end = v, i+1
		}
	}
	return end, value, end >= 0
}
