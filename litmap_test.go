package litmap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/coregx/litmap/codegen"
	"github.com/coregx/litmap/dfa"
	"github.com/coregx/litmap/literal"
)

func TestCompileStrings(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		patterns map[string]int
		input    string
		want     int
		ok       bool
	}{
		{"prefix a", DefaultConfig(), map[string]int{"a": 1, "ab": 2}, "a", 1, true},
		{"prefix ab", DefaultConfig(), map[string]int{"a": 1, "ab": 2}, "ab", 2, true},
		{"prefix ac", DefaultConfig(), map[string]int{"a": 1, "ab": 2}, "ac", 0, false},
		{"prefix empty", DefaultConfig(), map[string]int{"a": 1, "ab": 2}, "", 0, false},
		{"empty set", DefaultConfig(), map[string]int{}, "anything", 0, false},
		{"empty set empty input", DefaultConfig(), map[string]int{}, "", 0, false},
		{"cs rejects upper", DefaultConfig(), map[string]int{"text/html": 10}, "TEXT/HTML", 0, false},
		{"ci accepts mixed", DefaultConfig().WithCaseInsensitive(true), map[string]int{"text/html": 10}, "Text/Html", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := CompileStrings(tt.patterns, tt.config)
			if err != nil {
				t.Fatal(err)
			}
			v, ok := m.LookupString(tt.input)
			if v != tt.want || ok != tt.ok {
				t.Errorf("LookupString(%q) = (%d, %v), want (%d, %v)", tt.input, v, ok, tt.want, tt.ok)
			}
			v, ok = m.Lookup([]byte(tt.input))
			if v != tt.want || ok != tt.ok {
				t.Errorf("Lookup(%q) = (%d, %v), want (%d, %v)", tt.input, v, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCompile_Ambiguous(t *testing.T) {
	ci := DefaultConfig().WithCaseInsensitive(true)

	for i := 0; i < 5; i++ {
		_, err := CompileStrings(map[string]int{"GET": 1, "get": 2}, ci)
		var be *dfa.BuildError
		if !errors.As(err, &be) || be.Kind != dfa.AmbiguousPattern {
			t.Fatalf("err = %v, want AmbiguousPattern", err)
		}
		// Keys go in sorted order, so "GET" is always the earlier pattern.
		if string(be.Existing) != "GET" || string(be.Pattern) != "get" {
			t.Errorf("conflict = %q vs %q, want GET vs get", be.Existing, be.Pattern)
		}
	}

	m, err := CompileStrings(map[string]int{"GET": 1, "get": 1}, ci)
	if err != nil {
		t.Fatalf("same values should compile: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile did not panic")
		}
		if msg, _ := r.(string); !strings.HasPrefix(msg, "litmap: Compile: ambiguous pattern") {
			t.Errorf("panic = %v", r)
		}
	}()

	set := literal.NewSet[int]()
	set.AddString("x", 1)
	set.AddString("x", 2)
	MustCompile(set, DefaultConfig())
}

func TestMap_Generate(t *testing.T) {
	m, err := CompileStrings(map[string]int{"on": 1, "off": 0}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	opts := codegen.DefaultOptions[int]()
	opts.Package = "flags"
	src, err := m.Generate(opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(src, []byte("package flags")) {
		t.Errorf("unexpected source:\n%s", src)
	}

	opts.Fold = codegen.FoldASCII
	if _, err := m.Generate(opts); !errors.Is(err, codegen.ErrConfig) {
		t.Errorf("fold mismatch err = %v, want ConfigError", err)
	}
}

func TestMap_String(t *testing.T) {
	m, _ := CompileStrings(map[string]bool{"yes": true, "no": false}, DefaultConfig())
	if got := m.String(); !strings.Contains(got, "patterns: 2") {
		t.Errorf("String() = %q", got)
	}
	if m.Automaton().States() != 6 {
		t.Errorf("States() = %d, want 6", m.Automaton().States())
	}
}

func BenchmarkLookupString(b *testing.B) {
	m, err := CompileStrings(map[string]int{
		"application/json": 1, "application/xml": 2, "text/html": 3,
		"text/plain": 4, "image/png": 5, "image/jpeg": 6,
	}, DefaultConfig().WithCaseInsensitive(true))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = m.LookupString("Application/XML")
	}
}
