package parse

// Redirections holds the optional output targets extracted from a command
// line. An empty filename means the stream is not redirected.
type Redirections struct {
	StdoutFile   string
	StderrFile   string
	AppendStdout bool
	AppendStderr bool
}

// HasStdout reports whether standard output is redirected.
func (r Redirections) HasStdout() bool {
	return r.StdoutFile != ""
}

// HasStderr reports whether standard error is redirected.
func (r Redirections) HasStderr() bool {
	return r.StderrFile != ""
}

// Command is one parsed command line: the argument vector (command name
// first) and its redirections.
type Command struct {
	Args  []string
	Redir Redirections
}

// Name returns the command name, or "" for an empty command.
func (c *Command) Name() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Argc returns the number of arguments including the command name.
func (c *Command) Argc() int {
	return len(c.Args)
}
