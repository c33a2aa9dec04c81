package solver

import (
	"errors"
	"fmt"
)

// ErrNoSolverAvailable is returned by [Fallback.Solve] when no candidate
// engine passes its probe. It is distinct from [ProcessError] so callers can
// tell "nothing installed" from "installed but crashed".
var ErrNoSolverAvailable = errors.New("no solver available")

// ProcessError reports that an engine executable could not be spawned or
// exited with a failure status.
type ProcessError struct {
	Command  string
	ExitCode int // -1 when the process never ran
	Output   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("running %s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// FormatError reports a malformed result artifact.
type FormatError struct {
	Engine string
	Line   string // offending line, for line-oriented artifacts
	Offset int64  // byte offset, when known
	Msg    string
}

func (e *FormatError) Error() string {
	s := fmt.Sprintf("%s: incorrect solution format: %s", e.Engine, e.Msg)
	if e.Line != "" {
		s += fmt.Sprintf(" (line %q)", e.Line)
	}
	if e.Offset > 0 {
		s += fmt.Sprintf(" (offset %d)", e.Offset)
	}
	return s
}

// ParseError reports a numeric field that failed to parse.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError reports an invalid or unsupported configuration knob. It is
// returned at construction time, before anything is executed.
type ConfigError struct {
	Option string
	Msg    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Option, e.Msg)
}
