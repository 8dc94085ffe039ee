package gsh

import (
	"io"

	"github.com/nekkaida/gsh/term"
)

// Option configures a Shell at construction time.
type Option func(*Shell)

// WithConfig supplies a loaded configuration instead of the defaults.
func WithConfig(cfg Config) Option {
	return func(s *Shell) {
		s.config = cfg
	}
}

// WithVerbose toggles debug diagnostics regardless of the config file.
func WithVerbose(v bool) Option {
	return func(s *Shell) {
		s.config.Verbose = v
	}
}

// WithTerminal replaces the default terminal controller.
func WithTerminal(t *term.Terminal) Option {
	return func(s *Shell) {
		s.term = t
	}
}

// WithDiagnostics replaces the default diagnostic sink.
func WithDiagnostics(d *Diag) Option {
	return func(s *Shell) {
		s.diag = d
	}
}

// WithOutput redirects all shell rendering, prompt included, to w.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithExitFunc replaces the process-terminating call made by the exit
// builtin.
func WithExitFunc(fn func(int)) Option {
	return func(s *Shell) {
		s.exitFunc = fn
	}
}
