package codegen

import (
	"fmt"
	"go/parser"
	"go/token"
	"math"
	"reflect"
	"strconv"
)

// FoldMode declares whether emitted comparisons apply ASCII case folding.
type FoldMode uint8

const (
	// FoldAuto follows the automaton's own case sensitivity.
	FoldAuto FoldMode = iota

	// FoldNone requires a case-sensitive automaton.
	FoldNone

	// FoldASCII requires a case-insensitive automaton.
	FoldASCII
)

// String returns the mode name.
func (m FoldMode) String() string {
	switch m {
	case FoldAuto:
		return "auto"
	case FoldNone:
		return "none"
	case FoldASCII:
		return "ascii"
	default:
		return fmt.Sprintf("FoldMode(%d)", m)
	}
}

// InputKind selects the declared parameter type of the emitted function.
// It does not change matching semantics.
type InputKind uint8

const (
	// InputBytes declares the input as []byte.
	InputBytes InputKind = iota

	// InputText declares the input as string.
	InputText
)

// String returns the kind name.
func (k InputKind) String() string {
	switch k {
	case InputBytes:
		return "bytes"
	case InputText:
		return "text"
	default:
		return fmt.Sprintf("InputKind(%d)", k)
	}
}

// Dialect selects the output language.
type Dialect uint8

const (
	// DialectGo renders a Go source file with a single lookup function.
	DialectGo Dialect = iota

	// DialectDOT renders a Graphviz digraph of the automaton.
	DialectDOT

	// DialectJSON renders the lowered program as JSON for external tools.
	DialectJSON
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectGo:
		return "go"
	case DialectDOT:
		return "dot"
	case DialectJSON:
		return "json"
	default:
		return fmt.Sprintf("Dialect(%d)", d)
	}
}

// ParseDialect converts a dialect name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	for d := DialectGo; d <= DialectJSON; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, configErr("Dialect", s, "unknown dialect", nil)
}

// Strategy selects how the Go dialect dispatches on input bytes.
type Strategy uint8

const (
	// StrategySwitch emits nested switch statements, one case per state.
	StrategySwitch Strategy = iota

	// StrategyTable emits a static byte-class map and transition array.
	StrategyTable
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategySwitch:
		return "switch"
	case StrategyTable:
		return "table"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for st := StrategySwitch; st <= StrategyTable; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, configErr("Strategy", s, "unknown strategy", nil)
}

// Options configures Emit.
type Options[V any] struct {
	// Fold declares the case folding the caller expects.
	// A mismatch with the automaton is a configuration error.
	//
	// Default: FoldAuto
	Fold FoldMode

	// Input is the declared input type of the emitted function.
	//
	// Default: InputBytes
	Input InputKind

	// Dialect is the output language.
	//
	// Default: DialectGo
	Dialect Dialect

	// Strategy is the dispatch shape of the Go dialect.
	//
	// Default: StrategySwitch
	Strategy Strategy

	// Package is the package clause of the Go file.
	//
	// Default: "dispatch"
	Package string

	// FuncName is the name of the emitted lookup function.
	//
	// Default: "Lookup"
	FuncName string

	// ValueType is the Go type expression of the value result. When empty it
	// is derived from V, which works for predeclared types only.
	ValueType string

	// ValueExpr renders a terminal value as a Go expression. When nil, values
	// of boolean, string, integer and float kinds are rendered as literals.
	ValueExpr func(V) (string, error)

	// Generator names the tool in the "Code generated" header line.
	//
	// Default: "litmapgen"
	Generator string

	// Header holds extra comment lines placed after the generated-code header.
	Header []string
}

// DefaultOptions returns options that emit a Go switch dispatcher named
// Lookup in package dispatch.
func DefaultOptions[V any]() Options[V] {
	return Options[V]{
		Fold:      FoldAuto,
		Input:     InputBytes,
		Dialect:   DialectGo,
		Strategy:  StrategySwitch,
		Package:   "dispatch",
		FuncName:  "Lookup",
		Generator: "litmapgen",
	}
}

// validate checks the options against the automaton's case sensitivity and
// fills in defaults for empty names.
func (o *Options[V]) validate(caseInsensitive bool) error {
	switch o.Fold {
	case FoldAuto:
	case FoldNone:
		if caseInsensitive {
			return configErr("Fold", o.Fold.String(), "fold mode does not match case-insensitive automaton", nil)
		}
	case FoldASCII:
		if !caseInsensitive {
			return configErr("Fold", o.Fold.String(), "fold mode does not match case-sensitive automaton", nil)
		}
	default:
		return configErr("Fold", o.Fold.String(), "unknown fold mode", nil)
	}

	if o.Input > InputText {
		return configErr("Input", o.Input.String(), "unknown input kind", nil)
	}
	if o.Dialect > DialectJSON {
		return configErr("Dialect", o.Dialect.String(), "unknown dialect", nil)
	}
	if o.Strategy > StrategyTable {
		return configErr("Strategy", o.Strategy.String(), "unknown strategy", nil)
	}

	if o.Dialect != DialectGo {
		return nil
	}

	if o.Package == "" {
		o.Package = "dispatch"
	}
	if o.FuncName == "" {
		o.FuncName = "Lookup"
	}
	if o.Generator == "" {
		o.Generator = "litmapgen"
	}
	if err := checkIdent("Package", o.Package); err != nil {
		return err
	}
	if err := checkIdent("FuncName", o.FuncName); err != nil {
		return err
	}

	if o.ValueType == "" {
		t, err := predeclaredType[V]()
		if err != nil {
			return err
		}
		o.ValueType = t
	}
	if _, err := parser.ParseExpr(o.ValueType); err != nil {
		return configErr("ValueType", o.ValueType, "invalid type expression", err)
	}
	return nil
}

func checkIdent(option, name string) error {
	if !token.IsIdentifier(name) {
		return configErr(option, name, "not a Go identifier", nil)
	}
	return nil
}

// predeclaredType names V when it is a predeclared Go type.
func predeclaredType[V any]() (string, error) {
	t := reflect.TypeFor[V]()
	if t.Name() == "" || t.PkgPath() != "" {
		return "", configErr("ValueType", t.String(), "value type must be set for non-predeclared types", nil)
	}
	return t.Name(), nil
}

// renderValue renders v as a Go expression and checks that it parses.
func (o *Options[V]) renderValue(v V) (string, error) {
	render := o.ValueExpr
	if render == nil {
		render = literalExpr[V]
	}
	expr, err := render(v)
	if err != nil {
		return "", configErr("ValueExpr", fmt.Sprint(v), "cannot render value", err)
	}
	if _, err := parser.ParseExpr(expr); err != nil {
		return "", configErr("ValueExpr", expr, "invalid value expression", err)
	}
	return expr, nil
}

// literalExpr renders values of basic kinds as untyped constants, which are
// assignable to named types with the same underlying kind.
func literalExpr[V any](v V) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.String:
		return strconv.Quote(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("no constant form for %v; set ValueExpr", f)
		}
		return strconv.FormatFloat(f, 'g', -1, rv.Type().Bits()), nil
	default:
		return "", fmt.Errorf("no literal form for kind %s; set ValueExpr", rv.Kind())
	}
}
