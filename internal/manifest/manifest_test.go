package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coregx/litmap/codegen"
	"github.com/coregx/litmap/dfa"
)

const mimeManifest = `package: mime
func: Lookup
valueType: Kind
caseInsensitive: true
input: text
strategy: table
header:
  - Edit mime.yaml and run go generate.
patterns:
  - match: text/html
    value: KindHTML
  - match: image/png
    value: KindPNG
  - match: count
    value: 3
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(mimeManifest))
	if err != nil {
		t.Fatal(err)
	}

	if m.Package != "mime" || m.Func != "Lookup" || m.ValueType != "Kind" || !m.CaseInsensitive {
		t.Errorf("decoded = %+v", m)
	}
	if len(m.Patterns) != 3 {
		t.Fatalf("%d patterns, want 3", len(m.Patterns))
	}
	if m.Patterns[0].Line != 10 || m.Patterns[1].Line != 12 {
		t.Errorf("lines = %d, %d, want 10, 12", m.Patterns[0].Line, m.Patterns[1].Line)
	}
	if m.Patterns[2].Value != "3" {
		t.Errorf("numeric value decoded as %q", m.Patterns[2].Value)
	}

	if cfg := m.Config(); !cfg.CaseInsensitive || cfg.Conflict != dfa.ConflictError {
		t.Errorf("Config() = %+v", cfg)
	}

	opts := m.Options()
	if opts.Package != "mime" || opts.Input != codegen.InputText || opts.Strategy != codegen.StrategyTable {
		t.Errorf("Options() = %+v", opts)
	}
	if len(opts.Header) != 1 || opts.Header[0] != "Edit mime.yaml and run go generate." {
		t.Errorf("Header = %q", opts.Header)
	}
	if expr, err := opts.ValueExpr("KindPNG"); err != nil || expr != "KindPNG" {
		t.Errorf("ValueExpr = %q, %v", expr, err)
	}
}

func TestParse_Empty(t *testing.T) {
	m, err := Parse(nil)
	if err != nil {
		t.Fatalf("empty manifest: %v", err)
	}
	a, err := m.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if !a.IsEmpty() {
		t.Error("automaton of an empty manifest should match nothing")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"unknown key", "packge: x\n", "cannot decode YAML"},
		{"bad yaml", "patterns: [\n", "cannot decode YAML"},
		{"bad input", "input: runes\n", `input must be bytes or text, not "runes"`},
		{"bad strategy", "strategy: jump\n", "bad strategy"},
		{"bad conflict", "conflict: random\n", "conflict must be"},
		{"missing value", "patterns:\n  - match: a\n    value: x\n  - match: b\n", `manifest:4: pattern 1 ("b") has no value`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("err = %q, want it to contain %q", err, tt.msg)
			}
		})
	}
}

func TestCompile_ConflictLine(t *testing.T) {
	doc := `caseInsensitive: true
patterns:
  - match: GET
    value: MethodGet
  - match: get
    value: MethodOther
`
	m, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.Compile()
	if !errors.Is(err, dfa.ErrAmbiguousPattern) {
		t.Fatalf("err = %v, want AmbiguousPattern", err)
	}
	if !strings.HasPrefix(err.Error(), "manifest:5: ") {
		t.Errorf("err = %q, want the second entry's line", err)
	}

	m.Conflict = "last-wins"
	a, err := m.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := a.MatchString("Get"); v != "MethodOther" {
		t.Errorf("last-wins value = %q", v)
	}
}

func TestCompile_EmptyPatternConflictLine(t *testing.T) {
	doc := `patterns:
  - match: ""
    value: "1"
  - match: ""
    value: "2"
`
	m, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.Compile()
	if !errors.Is(err, dfa.ErrAmbiguousPattern) {
		t.Fatalf("err = %v, want AmbiguousPattern", err)
	}
	if !strings.HasPrefix(err.Error(), "manifest:4: ") {
		t.Errorf("err = %q, want the second entry's line", err)
	}
	if !strings.Contains(err.Error(), `"" (value 2) conflicts with "" (value 1)`) {
		t.Errorf("err = %q, want both patterns named", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mime.yaml")
	if err := os.WriteFile(path, []byte(mimeManifest), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Path() != path {
		t.Errorf("Path() = %q", m.Path())
	}
	if h := m.Options().Header; len(h) != 2 || h[0] != "Source: "+path {
		t.Errorf("Header = %q", h)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("input: runes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.HasPrefix(err.Error(), bad+": ") {
		t.Errorf("Load(bad) = %v, want error prefixed with the path", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotExist", err)
	}
}

func TestGenerateFromManifest(t *testing.T) {
	m, err := Parse([]byte(mimeManifest))
	if err != nil {
		t.Fatal(err)
	}
	a, err := m.Compile()
	if err != nil {
		t.Fatal(err)
	}
	src, err := codegen.Emit(a, m.Options())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"package mime", "func Lookup(input string) (value Kind, ok bool)", "KindHTML, true"} {
		if !strings.Contains(string(src), want) {
			t.Errorf("missing %q in:\n%s", want, src)
		}
	}
}
