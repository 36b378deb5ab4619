package codegen

import "fmt"

// ErrConfig matches (via errors.Is) every emitter configuration error.
var ErrConfig = &ConfigError{Message: "invalid emitter configuration"}

// ConfigError reports an invalid or unsupported option passed to Emit.
// It is the only error Emit returns: every automaton is representable.
type ConfigError struct {
	// Option names the offending Options field.
	Option string
	// Value is the rejected value, rendered as text.
	Value   string
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Option != "" {
		msg = fmt.Sprintf("%s: %s %q", e.Message, e.Option, e.Value)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

func configErr(option, value, message string, cause error) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message, Cause: cause}
}
