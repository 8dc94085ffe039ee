package gsh

import (
	"fmt"
	"os"

	"github.com/nekkaida/gsh/parse"
)

// redirector holds the process-wide stream state displaced by one
// command's redirections, so it can be put back afterwards. Builtins and
// child processes both pick up the swapped os.Stdout and os.Stderr.
type redirector struct {
	savedStdout *os.File
	savedStderr *os.File
	stdoutFile  *os.File
	stderrFile  *os.File
}

// applyRedirections opens the targets in redir and installs them over
// os.Stdout and os.Stderr. On any failure the streams already swapped
// are unwound before the error is returned.
func applyRedirections(redir parse.Redirections) (*redirector, error) {
	rd := &redirector{}
	if redir.HasStdout() {
		f, err := openTarget(redir.StdoutFile, redir.AppendStdout)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRedirection, err)
		}
		rd.savedStdout = os.Stdout
		rd.stdoutFile = f
		os.Stdout = f
	}
	if redir.HasStderr() {
		f, err := openTarget(redir.StderrFile, redir.AppendStderr)
		if err != nil {
			rd.restore()
			return nil, fmt.Errorf("%w: %v", ErrRedirection, err)
		}
		rd.savedStderr = os.Stderr
		rd.stderrFile = f
		os.Stderr = f
	}
	return rd, nil
}

// restore puts the original streams back and closes the target files.
// Safe to call more than once.
func (rd *redirector) restore() {
	if rd.savedStdout != nil {
		os.Stdout = rd.savedStdout
		rd.stdoutFile.Close()
		rd.savedStdout = nil
		rd.stdoutFile = nil
	}
	if rd.savedStderr != nil {
		os.Stderr = rd.savedStderr
		rd.stderrFile.Close()
		rd.savedStderr = nil
		rd.stderrFile = nil
	}
}

func openTarget(path string, appendTo bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(path, flags, 0o644)
}
