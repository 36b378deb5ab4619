// Package literal provides the ordered pattern set consumed by the automaton
// builder.
//
// A Pattern is a literal byte sequence paired with the value it maps to. A Set
// keeps patterns in insertion order: the order never changes what a built
// automaton matches, but it decides which of two conflicting patterns is
// reported first and which one wins under the last/first-wins policies.
package literal

import (
	"bytes"
	"sort"
	"strconv"
)

// Pattern is a literal byte sequence and its associated value.
//
// Example:
//
//	p := literal.Pattern[int]{Bytes: []byte("text/html"), Value: 10}
//	fmt.Printf("%s -> %d\n", p.Bytes, p.Value) // Output: text/html -> 10
type Pattern[V any] struct {
	// Bytes is the literal to match exactly.
	Bytes []byte

	// Value is returned when an input equals Bytes.
	Value V

	// Index is the insertion order within the owning Set.
	Index int
}

// Len returns the length of the pattern in bytes.
func (p Pattern[V]) Len() int {
	return len(p.Bytes)
}

// String returns the pattern bytes as a quoted string for diagnostics.
func (p Pattern[V]) String() string {
	return strconv.Quote(string(p.Bytes))
}

// Set is an ordered collection of patterns.
//
// Example:
//
//	set := literal.NewSet[int]()
//	set.AddString("GET", 1)
//	set.AddString("POST", 2)
//	fmt.Println(set.Len()) // Output: 2
type Set[V any] struct {
	patterns []Pattern[V]
}

// NewSet creates an empty pattern set.
func NewSet[V any]() *Set[V] {
	return &Set[V]{}
}

// FromStringMap creates a set from a map, ordering keys bytewise so the
// result does not depend on map iteration order.
func FromStringMap[V any](m map[string]V) *Set[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := &Set[V]{patterns: make([]Pattern[V], 0, len(keys))}
	for _, k := range keys {
		s.AddString(k, m[k])
	}
	return s
}

// Add appends a pattern. The bytes are copied.
func (s *Set[V]) Add(b []byte, value V) {
	cp := make([]byte, len(b))
	copy(cp, b)
	s.patterns = append(s.patterns, Pattern[V]{
		Bytes: cp,
		Value: value,
		Index: len(s.patterns),
	})
}

// AddString appends a pattern given as a string.
func (s *Set[V]) AddString(str string, value V) {
	s.patterns = append(s.patterns, Pattern[V]{
		Bytes: []byte(str),
		Value: value,
		Index: len(s.patterns),
	})
}

// Len returns the number of patterns in the set.
func (s *Set[V]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Get returns the pattern at the specified index.
// Panics if index is out of bounds.
func (s *Set[V]) Get(i int) Pattern[V] {
	return s.patterns[i]
}

// IsEmpty returns true if the set has no patterns.
func (s *Set[V]) IsEmpty() bool {
	return s == nil || len(s.patterns) == 0
}

// Each calls fn for every pattern in insertion order until fn returns false.
func (s *Set[V]) Each(fn func(Pattern[V]) bool) {
	if s == nil {
		return
	}
	for _, p := range s.patterns {
		if !fn(p) {
			return
		}
	}
}

// Clone returns a deep copy of the set.
func (s *Set[V]) Clone() *Set[V] {
	if s == nil {
		return nil
	}

	cloned := make([]Pattern[V], len(s.patterns))
	for i, p := range s.patterns {
		b := make([]byte, len(p.Bytes))
		copy(b, p.Bytes)
		cloned[i] = Pattern[V]{Bytes: b, Value: p.Value, Index: p.Index}
	}
	return &Set[V]{patterns: cloned}
}

// MinLen returns the length of the shortest pattern, or 0 for an empty set.
func (s *Set[V]) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	m := len(s.patterns[0].Bytes)
	for _, p := range s.patterns[1:] {
		if len(p.Bytes) < m {
			m = len(p.Bytes)
		}
	}
	return m
}

// MaxLen returns the length of the longest pattern, or 0 for an empty set.
func (s *Set[V]) MaxLen() int {
	m := 0
	s.Each(func(p Pattern[V]) bool {
		if len(p.Bytes) > m {
			m = len(p.Bytes)
		}
		return true
	})
	return m
}

// TotalBytes returns the sum of all pattern lengths. Building an automaton
// from the set takes time linear in this number.
func (s *Set[V]) TotalBytes() int {
	n := 0
	s.Each(func(p Pattern[V]) bool {
		n += len(p.Bytes)
		return true
	})
	return n
}

// LongestCommonPrefix returns the longest common prefix of all patterns in the set.
// If the set is empty or has no common prefix, returns an empty slice.
//
// Example:
//
//	set := literal.NewSet[int]()
//	set.AddString("hello", 1)
//	set.AddString("help", 2)
//	set.AddString("hero", 3)
//	fmt.Println(string(set.LongestCommonPrefix())) // Output: he
func (s *Set[V]) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}

	prefix := s.patterns[0].Bytes
	for i := 1; i < len(s.patterns); i++ {
		prefix = commonPrefix(prefix, s.patterns[i].Bytes)
		if len(prefix) == 0 {
			return []byte{}
		}
	}

	// Return a copy to avoid aliasing issues
	result := make([]byte, len(prefix))
	copy(result, prefix)
	return result
}

// Contains reports whether the set holds a pattern with exactly these bytes.
func (s *Set[V]) Contains(b []byte) bool {
	found := false
	s.Each(func(p Pattern[V]) bool {
		found = bytes.Equal(p.Bytes, b)
		return !found
	})
	return found
}

// commonPrefix returns the longest common prefix of a and b.
func commonPrefix(a, b []byte) []byte {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:minLen]
}
