package codegen

import (
	"sort"
	"strings"
	"testing"

	"github.com/coregx/litmap/dfa"
)

type patternSet struct {
	name     string
	ci       bool
	patterns map[string]int
}

var patternSets = []patternSet{
	{name: "prefix", patterns: map[string]int{"a": 1, "ab": 2}},
	{name: "empty", patterns: map[string]int{}},
	{name: "root-only", patterns: map[string]int{"": 5}},
	{name: "root-and-more", patterns: map[string]int{"": 5, "x": 6, "xy": 7}},
	{name: "mime-ci", ci: true, patterns: map[string]int{
		"text/html": 10, "text/plain": 11, "text/css": 12,
		"application/json": 20, "application/javascript": 21,
		"image/png": 30, "image/jpeg": 31, "image/svg+xml": 32,
	}},
	{name: "wide", patterns: func() map[string]int {
		m := map[string]int{}
		for c := byte('a'); c <= 'z'; c++ {
			m["x"+string(c)] = int(c)
		}
		for c := byte('0'); c <= '9'; c++ {
			m["y"+string(c)+"!"] = int(c)
		}
		return m
	}()},
	{name: "wide-ci", ci: true, patterns: map[string]int{
		"get": 1, "head": 2, "post": 3, "put": 4, "delete": 5, "connect": 6,
		"options": 7, "trace": 8, "patch": 9, "[x]": 10, "@home": 11,
	}},
	{name: "binary", patterns: map[string]int{"\x00\xff": 1, "\xff": 2, "\x80abc": 3, "\x00\x00": 4}},
	{name: "same-values", patterns: map[string]int{"on": 1, "yes": 1, "true": 1, "off": 0, "no": 0}},
}

func buildSet(t testing.TB, ps patternSet) *dfa.Automaton[int] {
	t.Helper()
	keys := make([]string, 0, len(ps.patterns))
	for k := range ps.patterns {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := dfa.NewBuilder[int](dfa.DefaultConfig().WithCaseInsensitive(ps.ci))
	for _, k := range keys {
		if err := b.InsertString(k, ps.patterns[k]); err != nil {
			t.Fatalf("%s: Insert(%q): %v", ps.name, k, err)
		}
	}
	a, err := b.Finish()
	if err != nil {
		t.Fatalf("%s: Finish: %v", ps.name, err)
	}
	return a
}

// probeInputs returns the patterns, their case variants, their proper
// prefixes, one-byte extensions and single-byte edits, plus a few fixed
// inputs.
func probeInputs(ps patternSet) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	add("")
	add("\xff")
	add("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	for p := range ps.patterns {
		add(p)
		add(strings.ToUpper(p))
		add(strings.ToLower(p))
		add(p + "x")
		add(p + "\x00")
		for i := 0; i < len(p); i++ {
			add(p[:i])
			edit := []byte(p)
			edit[i] ^= 0x20
			add(string(edit))
			edit[i] ^= 0x20 ^ 0x01
			add(string(edit))
		}
	}
	sort.Strings(out)
	return out
}

// execTable mirrors the loop emitted by StrategyTable.
func execTable[V any](t *table, p *Program[V], input []byte) (V, bool) {
	var zero V
	if p.Empty || len(input) < p.MinLen || len(input) > p.MaxLen {
		return zero, false
	}
	row := 1
	for _, c := range input {
		row = t.rows[row][t.classes[c]]
		if row == deadRow {
			return zero, false
		}
	}
	blk := &p.Blocks[row-1]
	if !blk.Terminal {
		return zero, false
	}
	return blk.Value, true
}
