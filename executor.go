package gsh

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nekkaida/gsh/parse"
)

// FindExecutable resolves name to an executable path. A name containing
// a path separator is checked directly; otherwise the directories of
// PATH are scanned in order and the first executable regular file wins.
func FindExecutable(name string) (string, bool) {
	if strings.ContainsRune(name, '/') {
		if isExecutable(name) {
			return name, true
		}
		return "", false
	}
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		full := filepath.Join(dir, name)
		if isExecutable(full) {
			return full, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

// runExternal spawns cmd as a child process and waits for it. The child
// inherits the current os.Stdout and os.Stderr, so active redirections
// carry over. argv[0] stays the name as typed.
func (s *Shell) runExternal(cmd *parse.Command) int {
	path, ok := FindExecutable(cmd.Name())
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: command not found\n", cmd.Name())
		return 1
	}
	child := &exec.Cmd{
		Path:   path,
		Args:   cmd.Args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "%s: %v: %v\n", Name, ErrSpawn, err)
		return 1
	}
	return 0
}
