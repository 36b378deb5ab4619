package dfa

import "fmt"

// ErrAmbiguousPattern matches (via errors.Is) any error raised when two
// patterns fold to the same path but carry different values.
var ErrAmbiguousPattern = &BuildError{
	Kind:    AmbiguousPattern,
	Message: "ambiguous pattern",
}

// ErrInvalidPattern matches errors for patterns rejected by the input policy.
var ErrInvalidPattern = &BuildError{
	Kind:    InvalidPattern,
	Message: "invalid pattern",
}

// ErrStateLimitExceeded matches errors raised when the state limit is hit.
var ErrStateLimitExceeded = &BuildError{
	Kind:    StateLimitExceeded,
	Message: "automaton state limit exceeded",
}

// ErrInvalidConfig matches configuration validation errors.
var ErrInvalidConfig = &BuildError{
	Kind:    InvalidConfig,
	Message: "invalid automaton configuration",
}

// ErrBuilderFinished is returned when a builder is used after Finish.
var ErrBuilderFinished = &BuildError{
	Kind:    BuilderFinished,
	Message: "builder already finished",
}

// ErrorKind classifies build errors into categories
type ErrorKind uint8

const (
	// AmbiguousPattern indicates two patterns on one fold path with different values
	AmbiguousPattern ErrorKind = iota

	// InvalidPattern indicates a pattern rejected by Config.Input
	InvalidPattern

	// StateLimitExceeded indicates Config.MaxStates was reached
	StateLimitExceeded

	// InvalidConfig indicates configuration validation failed
	InvalidConfig

	// BuilderFinished indicates use of a consumed builder
	BuilderFinished
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case AmbiguousPattern:
		return "AmbiguousPattern"
	case InvalidPattern:
		return "InvalidPattern"
	case StateLimitExceeded:
		return "StateLimitExceeded"
	case InvalidConfig:
		return "InvalidConfig"
	case BuilderFinished:
		return "BuilderFinished"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// BuildError represents an error that occurred while building an automaton.
type BuildError struct {
	Kind    ErrorKind
	Message string

	// Pattern is the offending pattern, when there is one.
	Pattern []byte
	// Index is the insertion index of Pattern.
	Index int

	// Existing is the earlier pattern an AmbiguousPattern error conflicts
	// with; ExistingIndex is its insertion index.
	Existing      []byte
	ExistingIndex int

	// Value and ExistingValue are the conflicting values.
	Value         any
	ExistingValue any

	Cause error // Optional underlying error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	var msg string
	switch {
	case e.Kind == AmbiguousPattern && e.Pattern != nil:
		msg = fmt.Sprintf("%s: %q (value %v) conflicts with %q (value %v)",
			e.Message, e.Pattern, e.Value, e.Existing, e.ExistingValue)
	case e.Pattern != nil:
		msg = fmt.Sprintf("%s: pattern %d %q", e.Message, e.Index, e.Pattern)
	default:
		msg = e.Message
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
