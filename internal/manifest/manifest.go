// Package manifest loads the YAML pattern manifests read by litmapgen.
//
// A manifest names the generated function and lists patterns with the Go
// expression each one maps to:
//
//	package: mime
//	func: Lookup
//	valueType: Kind
//	caseInsensitive: true
//	patterns:
//	  - match: text/html
//	    value: KindHTML
//	  - match: image/png
//	    value: KindPNG
//
// Values are Go source text and are emitted verbatim; quote string values
// twice ('"text/html"').
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coregx/litmap/codegen"
	"github.com/coregx/litmap/dfa"
	"github.com/coregx/litmap/literal"
)

// Manifest is the decoded form of a manifest file.
type Manifest struct {
	Package         string   `yaml:"package"`
	Func            string   `yaml:"func"`
	ValueType       string   `yaml:"valueType"`
	CaseInsensitive bool     `yaml:"caseInsensitive"`
	Input           string   `yaml:"input"`    // bytes (default) or text
	Strategy        string   `yaml:"strategy"` // switch (default) or table
	Conflict        string   `yaml:"conflict"` // error (default), last-wins or first-wins
	Header          []string `yaml:"header"`
	Patterns        []Entry  `yaml:"patterns"`

	// path is the file the manifest was loaded from, if any.
	path string
}

// Entry is one pattern and its value expression.
type Entry struct {
	Match string `yaml:"match"`
	Value string `yaml:"value"`

	// Line is the line of the entry in the manifest file.
	Line int `yaml:"-"`
}

// UnmarshalYAML decodes an entry and records its line.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	type plain Entry
	var tmp plain
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*e = Entry(tmp)
	e.Line = value.Line
	return nil
}

// ErrInvalid matches (via errors.Is) every manifest validation error.
var ErrInvalid = errors.New("invalid manifest")

// Error locates a manifest problem.
type Error struct {
	Path    string
	Line    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "manifest"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	msg := loc + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports every *Error as ErrInvalid.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		var me *Error
		if errors.As(err, &me) {
			me.Path = path
		}
		return nil, err
	}
	m.path = path
	return m, nil
}

// Parse decodes and validates a manifest. Unknown top-level keys are
// rejected. An empty document is a manifest without patterns.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{Message: "cannot decode YAML", Cause: err}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks field values. It does not build the automaton, so
// conflicting patterns are reported by Compile.
func (m *Manifest) Validate() error {
	if _, err := m.inputKind(); err != nil {
		return err
	}
	if _, err := m.strategy(); err != nil {
		return err
	}
	if _, err := m.conflictPolicy(); err != nil {
		return err
	}
	for i, e := range m.Patterns {
		if e.Value == "" {
			return &Error{Path: m.path, Line: e.Line, Message: fmt.Sprintf("pattern %d (%q) has no value", i, e.Match)}
		}
	}
	return nil
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Config returns the automaton configuration the manifest asks for.
func (m *Manifest) Config() dfa.Config {
	policy, _ := m.conflictPolicy()
	return dfa.DefaultConfig().
		WithCaseInsensitive(m.CaseInsensitive).
		WithConflict(policy)
}

// Set returns the patterns in manifest order.
func (m *Manifest) Set() *literal.Set[string] {
	set := literal.NewSet[string]()
	for _, e := range m.Patterns {
		set.AddString(e.Match, e.Value)
	}
	return set
}

// Compile builds the automaton. Build errors that name a pattern are
// reported at that pattern's line.
func (m *Manifest) Compile() (*dfa.Automaton[string], error) {
	b := dfa.NewBuilder[string](m.Config())
	err := b.InsertSet(m.Set())
	if err == nil {
		var a *dfa.Automaton[string]
		if a, err = b.Finish(); err == nil {
			return a, nil
		}
	}

	var be *dfa.BuildError
	if errors.As(err, &be) && be.Pattern != nil && be.Index < len(m.Patterns) {
		return nil, &Error{Path: m.path, Line: m.Patterns[be.Index].Line, Message: "cannot build automaton", Cause: err}
	}
	return nil, &Error{Path: m.path, Message: "cannot build automaton", Cause: err}
}

// Options returns emitter options for the manifest. Values are emitted as
// written.
func (m *Manifest) Options() codegen.Options[string] {
	opts := codegen.DefaultOptions[string]()
	if m.Package != "" {
		opts.Package = m.Package
	}
	if m.Func != "" {
		opts.FuncName = m.Func
	}
	opts.ValueType = m.ValueType
	opts.Input, _ = m.inputKind()
	opts.Strategy, _ = m.strategy()
	opts.ValueExpr = func(expr string) (string, error) { return expr, nil }
	if m.path != "" {
		opts.Header = append(opts.Header, "Source: "+m.path)
	}
	opts.Header = append(opts.Header, m.Header...)
	return opts
}

func (m *Manifest) inputKind() (codegen.InputKind, error) {
	switch m.Input {
	case "", "bytes":
		return codegen.InputBytes, nil
	case "text":
		return codegen.InputText, nil
	default:
		return 0, &Error{Path: m.path, Message: fmt.Sprintf("input must be bytes or text, not %q", m.Input)}
	}
}

func (m *Manifest) strategy() (codegen.Strategy, error) {
	if m.Strategy == "" {
		return codegen.StrategySwitch, nil
	}
	s, err := codegen.ParseStrategy(m.Strategy)
	if err != nil {
		return 0, &Error{Path: m.path, Message: "bad strategy", Cause: err}
	}
	return s, nil
}

func (m *Manifest) conflictPolicy() (dfa.ConflictPolicy, error) {
	for p := dfa.ConflictError; p <= dfa.ConflictFirstWins; p++ {
		if m.Conflict == p.String() {
			return p, nil
		}
	}
	if m.Conflict == "" {
		return dfa.ConflictError, nil
	}
	return 0, &Error{Path: m.path, Message: fmt.Sprintf("conflict must be error, last-wins or first-wins, not %q", m.Conflict)}
}
