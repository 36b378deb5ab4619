// Package codegen renders a compiled automaton as static dispatch logic.
//
// Emit first lowers the automaton to a Program: one Block per state in
// breadth-first order, each with its byte arms and an optional range guard,
// plus whole-input length bounds. A dialect then renders the program:
//
//   - DialectGo: a Go source file with one lookup function. StrategySwitch
//     emits nested switch statements; StrategyTable emits a byte-class map
//     and a transition array.
//   - DialectDOT: a Graphviz digraph.
//   - DialectJSON: the program as JSON.
//
// The emitted Go function returns the same result as Automaton.Match for
// every input. Output is byte-identical across runs for the same automaton
// and options.
//
// Example:
//
//	opts := codegen.DefaultOptions[int]()
//	opts.Package = "mime"
//	src, err := codegen.Emit(a, opts)
package codegen

import (
	"github.com/coregx/litmap/dfa"
)

// Emit renders a as text in the dialect selected by opts.
// It fails only with a *ConfigError.
func Emit[V any](a *dfa.Automaton[V], opts Options[V]) ([]byte, error) {
	if err := opts.validate(a.CaseInsensitive()); err != nil {
		return nil, err
	}

	p := Lower(a)
	switch opts.Dialect {
	case DialectDOT:
		name := opts.FuncName
		if name == "" {
			name = "litmap"
		}
		return emitDOT(p, name), nil
	case DialectJSON:
		return emitJSON(p, a.ByteClasses())
	default:
		return emitGo(a, p, &opts)
	}
}
