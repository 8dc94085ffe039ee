// Package gsh implements an interactive command shell: a raw-mode line
// editor with history-free editing keys, tab completion over builtins
// and PATH executables, a quote-aware tokenizer with output
// redirections, and a dispatcher running builtins in-process and
// everything else as child processes.
package gsh

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nekkaida/gsh/builtins"
	"github.com/nekkaida/gsh/completion"
	"github.com/nekkaida/gsh/input"
	"github.com/nekkaida/gsh/term"
)

const (
	Name    = "gsh"
	Version = "0.1.0"
)

// Shell ties the terminal controller, line editor, completion engine
// and builtin registry into the interactive loop.
type Shell struct {
	term     *term.Terminal
	config   Config
	diag     *Diag
	builtins *builtins.Registry
	engine   *completion.Engine
	editor   *input.Editor
	out      io.Writer
	exitFunc func(int)
}

func New(opts ...Option) *Shell {
	s := &Shell{
		config:   DefaultConfig(),
		out:      os.Stdout,
		exitFunc: os.Exit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.term == nil {
		s.term = term.New()
	}
	if s.diag == nil {
		s.diag = NewDiag(os.Stderr)
	}
	s.diag.SetVerbose(s.config.Verbose)
	s.builtins = builtins.NewRegistry()
	s.engine = completion.NewEngine(completion.Options{
		Builtins: s.builtins.Names,
		Out:      s.out,
		Columns:  s.term.Columns,
	})
	s.editor = input.New(input.Config{
		Source:    s.term,
		Out:       s.out,
		Redraw:    s.refreshLine,
		Completer: s.engine,
		Clear:     s.clearScreen,
	})
	return s
}

// Run drives the read-eval loop until end of input. Raw mode is held
// only while a line is being edited; commands run with the terminal in
// its original mode.
func (s *Shell) Run() error {
	if err := s.term.Init(); err != nil {
		return err
	}
	defer s.term.Cleanup()

	for {
		s.displayPrompt()
		if err := s.term.EnableRaw(); err != nil {
			return err
		}
		line, err := s.editor.ReadLine()
		if rerr := s.term.DisableRaw(); rerr != nil {
			s.diag.Warnf("restoring terminal mode: %v", rerr)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprint(s.out, "\r\n")
				return nil
			}
			return err
		}
		status := s.ProcessLine(line)
		if status != 0 {
			s.diag.Debugf("command exited with status %d", status)
		}
	}
}

// exit restores the terminal before terminating the process. Wired into
// the exit builtin so raw mode never outlives the shell.
func (s *Shell) exit(status int) {
	s.term.Cleanup()
	s.exitFunc(status)
}

func (s *Shell) displayPrompt() {
	text, _ := s.prompt()
	fmt.Fprint(s.out, text)
}

// prompt renders the working directory plus the configured suffix and
// reports the printable width, which excludes any color codes.
func (s *Shell) prompt() (string, int) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	width := len(cwd) + len(s.config.PromptSuffix)
	if s.config.Color {
		return "\x1b[1;32m" + cwd + "\x1b[0m" + s.config.PromptSuffix, width
	}
	return cwd + s.config.PromptSuffix, width
}

// refreshLine repaints the current row: clear, prompt, buffer, then the
// cursor parked at its logical column.
func (s *Shell) refreshLine(line string, cursor int) {
	text, width := s.prompt()
	fmt.Fprint(s.out, "\r\x1b[K"+text+line)
	fmt.Fprintf(s.out, "\r\x1b[%dC", width+cursor)
}

func (s *Shell) clearScreen() {
	s.term.ClearScreen()
}
