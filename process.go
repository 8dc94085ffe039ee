package gsh

import (
	"fmt"
	"os"
	"strings"

	"github.com/nekkaida/gsh/builtins"
	"github.com/nekkaida/gsh/parse"
)

// ProcessLine parses and executes one committed line and returns its
// exit status. Blank lines succeed without doing anything. Redirections
// are scoped to the command and undone before returning.
func (s *Shell) ProcessLine(line string) int {
	if strings.TrimSpace(line) == "" {
		return 0
	}
	if err := parse.Validate(line); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", Name, err)
		return 2
	}
	cmd, err := parse.Parse(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", Name, err)
		return 2
	}
	if cmd.Argc() == 0 {
		return 0
	}

	rd, err := applyRedirections(cmd.Redir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", Name, err)
		return 1
	}
	defer rd.restore()

	if entry, ok := s.builtins.Lookup(cmd.Name()); ok {
		ctx := &builtins.Context{
			Stdout:   os.Stdout,
			Stderr:   os.Stderr,
			LookPath: FindExecutable,
			Exit:     s.exit,
		}
		return entry.Run(ctx, cmd.Args)
	}
	return s.runExternal(cmd)
}
