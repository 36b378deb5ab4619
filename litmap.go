// Package litmap maps a fixed set of literal byte strings to values.
//
// A Map is compiled once from pattern/value pairs into a prefix automaton
// and answers exact-match lookups in time linear in the input, without
// allocating. ASCII case folding is optional and applies to both
// construction and lookup.
//
// Basic usage:
//
//	m, err := litmap.CompileStrings(map[string]int{
//	    "text/html":  1,
//	    "text/plain": 2,
//	}, litmap.DefaultConfig().WithCaseInsensitive(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, ok := m.LookupString("Text/HTML") // 1, true
//
// Code generation:
//
//	opts := codegen.DefaultOptions[int]()
//	opts.Package = "mime"
//	src, err := m.Generate(opts) // Go source with an equivalent Lookup func
//
// Matching is exact: an input matches only when it equals a pattern, after
// folding if enabled. Patterns are never treated as prefixes of the input.
//
// Two patterns that fold to the same bytes but carry different values make
// compilation fail with dfa.ErrAmbiguousPattern unless the configuration
// selects a conflict policy explicitly.
package litmap

import (
	"fmt"

	"github.com/coregx/litmap/codegen"
	"github.com/coregx/litmap/dfa"
	"github.com/coregx/litmap/literal"
	"github.com/coregx/litmap/scan"
)

// Config controls compilation. See dfa.Config.
type Config = dfa.Config

// DefaultConfig returns a case-sensitive configuration that rejects
// ambiguous pattern sets.
func DefaultConfig() Config {
	return dfa.DefaultConfig()
}

// Map is a compiled pattern set.
//
// A Map is immutable and safe for concurrent use.
type Map[V comparable] struct {
	automaton *dfa.Automaton[V]
}

// Compile builds a Map from an ordered pattern set.
//
// Example:
//
//	set := literal.NewSet[string]()
//	set.AddString("GET", "get")
//	set.AddString("POST", "post")
//	m, err := litmap.Compile(set, litmap.DefaultConfig())
func Compile[V comparable](patterns *literal.Set[V], config Config) (*Map[V], error) {
	b := dfa.NewBuilder[V](config)
	if err := b.InsertSet(patterns); err != nil {
		return nil, err
	}
	a, err := b.Finish()
	if err != nil {
		return nil, err
	}
	return &Map[V]{automaton: a}, nil
}

// MustCompile is like Compile but panics on error.
//
// This is useful for pattern sets known to be valid at compile time.
func MustCompile[V comparable](patterns *literal.Set[V], config Config) *Map[V] {
	m, err := Compile(patterns, config)
	if err != nil {
		panic("litmap: Compile: " + err.Error())
	}
	return m
}

// CompileStrings builds a Map from a Go map. Keys are inserted in sorted
// order, so conflict reports and generated code do not depend on map
// iteration order.
func CompileStrings[V comparable](patterns map[string]V, config Config) (*Map[V], error) {
	return Compile(literal.FromStringMap(patterns), config)
}

// Lookup returns the value of the pattern equal to input.
func (m *Map[V]) Lookup(input []byte) (V, bool) {
	return m.automaton.Match(input)
}

// LookupString is like Lookup but takes a string. It does not allocate.
func (m *Map[V]) LookupString(input string) (V, bool) {
	return m.automaton.MatchString(input)
}

// Len returns the number of distinct patterns, after folding.
func (m *Map[V]) Len() int {
	return m.automaton.Terminals()
}

// Automaton returns the underlying automaton for read-only inspection.
func (m *Map[V]) Automaton() *dfa.Automaton[V] {
	return m.automaton
}

// Generate renders the Map as static dispatch code. See codegen.Emit.
func (m *Map[V]) Generate(opts codegen.Options[V]) ([]byte, error) {
	return codegen.Emit(m.automaton, opts)
}

// Finder returns a Finder that locates the Map's patterns inside larger
// inputs.
func (m *Map[V]) Finder() (*scan.Finder[V], error) {
	return scan.New(m.automaton)
}

// String returns a short description of the Map.
func (m *Map[V]) String() string {
	return fmt.Sprintf("litmap.Map{patterns: %d, states: %d, caseInsensitive: %v}",
		m.automaton.Terminals(), m.automaton.States(), m.automaton.CaseInsensitive())
}
