package gsh

import "errors"

// Failure classes of the execution path. Syntax errors live in the parse
// package; these cover resolution, redirection and spawning.
var (
	// ErrNotFound means the command is neither a builtin nor on PATH.
	ErrNotFound = errors.New("command not found")
	// ErrRedirection means a redirection target could not be set up.
	ErrRedirection = errors.New("failed to set up redirection")
	// ErrSpawn means a resolved executable could not be started.
	ErrSpawn = errors.New("failed to start command")
)
