package solver

import (
	"math"
	"strconv"
)

// Option configures an engine at construction time. Options are validated
// eagerly; constructors reject knobs the engine does not support.
type Option func(*config) error

type config struct {
	command      string
	solutionFile string
	maxSeconds   uint32
	threads      uint32
	relGap       float64 // 0 means unset
}

func newConfig(defaults config, opts ...Option) (config, error) {
	cfg := defaults
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// WithCommand overrides the name or path of the engine executable.
func WithCommand(command string) Option {
	return func(cfg *config) error {
		if command == "" {
			return &ConfigError{Option: "command", Msg: "must not be empty"}
		}
		cfg.command = command
		return nil
	}
}

// WithSolutionFile sets a fixed path for the engine's solution file,
// bypassing temporary file allocation. The caller owns the file.
func WithSolutionFile(path string) Option {
	return func(cfg *config) error {
		if path == "" {
			return &ConfigError{Option: "solution file", Msg: "must not be empty"}
		}
		cfg.solutionFile = path
		return nil
	}
}

// WithMaxSeconds bounds the engine runtime. The limit is passed to the
// engine on its command line and interpreted there; golp itself enforces
// nothing.
func WithMaxSeconds(seconds uint32) Option {
	return func(cfg *config) error {
		if seconds == 0 {
			return &ConfigError{Option: "max seconds", Msg: "must be positive"}
		}
		cfg.maxSeconds = seconds
		return nil
	}
}

// WithThreads sets the number of threads the engine may use.
func WithThreads(threads uint32) Option {
	return func(cfg *config) error {
		if threads == 0 {
			return &ConfigError{Option: "threads", Msg: "must be positive"}
		}
		cfg.threads = threads
		return nil
	}
}

// WithRelativeGap sets the relative optimality gap at which the engine may
// stop early and report a SubOptimal solution. The gap must be strictly
// positive and finite.
func WithRelativeGap(gap float64) Option {
	return func(cfg *config) error {
		if gap <= 0 || math.IsInf(gap, 0) || math.IsNaN(gap) {
			return &ConfigError{Option: "relative gap", Msg: "must be positive and finite"}
		}
		cfg.relGap = gap
		return nil
	}
}

// formatKnob renders a numeric knob for an engine command line.
func formatKnob(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
