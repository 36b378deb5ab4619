package dfa

import "fmt"

// InputPolicy restricts which byte sequences the builder accepts as patterns.
type InputPolicy uint8

const (
	// InputBytes accepts any byte sequence.
	InputBytes InputPolicy = iota

	// InputASCII rejects patterns containing bytes >= 0x80.
	InputASCII

	// InputUTF8 rejects patterns that are not valid UTF-8.
	InputUTF8
)

// String returns the policy name.
func (p InputPolicy) String() string {
	switch p {
	case InputBytes:
		return "bytes"
	case InputASCII:
		return "ascii"
	case InputUTF8:
		return "utf8"
	default:
		return fmt.Sprintf("InputPolicy(%d)", p)
	}
}

// ConflictPolicy decides what happens when two patterns reach the same state
// with different values.
type ConflictPolicy uint8

const (
	// ConflictError fails the build with AmbiguousPattern.
	ConflictError ConflictPolicy = iota

	// ConflictLastWins keeps the value of the later pattern.
	ConflictLastWins

	// ConflictFirstWins keeps the value of the earlier pattern.
	ConflictFirstWins
)

// String returns the policy name.
func (p ConflictPolicy) String() string {
	switch p {
	case ConflictError:
		return "error"
	case ConflictLastWins:
		return "last-wins"
	case ConflictFirstWins:
		return "first-wins"
	default:
		return fmt.Sprintf("ConflictPolicy(%d)", p)
	}
}

// Config configures automaton construction.
type Config struct {
	// CaseInsensitive folds ASCII letters during insertion and matching.
	//
	// Default: false
	CaseInsensitive bool

	// Input restricts accepted pattern bytes.
	//
	// Default: InputBytes
	Input InputPolicy

	// Conflict selects how differently-valued patterns on one path resolve.
	// Anything other than ConflictError must be chosen explicitly.
	//
	// Default: ConflictError
	Conflict ConflictPolicy

	// MaxStates caps the number of states, root included.
	// Zero means no limit beyond MaxStateID.
	//
	// Default: 0
	MaxStates int

	// Capacity is the initial state arena capacity.
	//
	// Default: 16
	Capacity int
}

// DefaultConfig returns a case-sensitive configuration that accepts any bytes
// and rejects ambiguous pattern sets.
func DefaultConfig() Config {
	return Config{
		CaseInsensitive: false,
		Input:           InputBytes,
		Conflict:        ConflictError,
		MaxStates:       0,
		Capacity:        16,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Input > InputUTF8 {
		return &BuildError{
			Kind:    InvalidConfig,
			Message: fmt.Sprintf("unknown input policy %d", c.Input),
		}
	}

	if c.Conflict > ConflictFirstWins {
		return &BuildError{
			Kind:    InvalidConfig,
			Message: fmt.Sprintf("unknown conflict policy %d", c.Conflict),
		}
	}

	if c.MaxStates < 0 {
		return &BuildError{
			Kind:    InvalidConfig,
			Message: "MaxStates must be >= 0",
		}
	}

	if c.Capacity < 0 {
		return &BuildError{
			Kind:    InvalidConfig,
			Message: "Capacity must be >= 0",
		}
	}

	return nil
}

// WithCaseInsensitive returns a new config with ASCII case folding enabled/disabled
func (c Config) WithCaseInsensitive(enabled bool) Config {
	c.CaseInsensitive = enabled
	return c
}

// WithInput returns a new config with the specified input policy
func (c Config) WithInput(p InputPolicy) Config {
	c.Input = p
	return c
}

// WithConflict returns a new config with the specified conflict policy
func (c Config) WithConflict(p ConflictPolicy) Config {
	c.Conflict = p
	return c
}

// WithMaxStates returns a new config with the specified state limit
func (c Config) WithMaxStates(maxStates int) Config {
	c.MaxStates = maxStates
	return c
}
