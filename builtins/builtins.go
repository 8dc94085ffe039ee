// Package builtins holds the commands implemented inside the shell process.
// The registry is created once at startup and never mutated afterwards; both
// the execution dispatcher and the completion engine consult it.
package builtins

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Context carries the collaborators a builtin runs against. Stdout and
// Stderr are the scoped streams in effect for this command, so redirected
// builtin output lands in the target file.
type Context struct {
	Stdout io.Writer
	Stderr io.Writer
	// LookPath resolves an external command name, used by type.
	LookPath func(name string) (string, bool)
	// Exit terminates the whole shell process; exit calls it and does not
	// return to the dispatcher.
	Exit func(status int)
}

// Handler runs one builtin. args includes the command name; the return value
// is the command's exit status.
type Handler func(ctx *Context, args []string) int

// Entry is one immutable registry row.
type Entry struct {
	Name string
	Run  Handler
	Help string
}

// Registry is the builtin command table, ordered by registration.
type Registry struct {
	entries *orderedmap.OrderedMap
}

// NewRegistry builds the standard table: cd, echo, exit, pwd, type, help.
func NewRegistry() *Registry {
	r := &Registry{entries: orderedmap.New()}
	for _, e := range []Entry{
		{"cd", cd, "Change the current directory"},
		{"echo", echo, "Display a line of text"},
		{"exit", exitShell, "Exit the shell"},
		{"pwd", pwd, "Print the current working directory"},
		{"type", r.commandType, "Display information about command type"},
		{"help", r.help, "Display help for built-in commands"},
	} {
		r.entries.Set(e.Name, e)
	}
	return r
}

// Lookup finds a builtin by name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	v, ok := r.entries.Get(name)
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// IsBuiltin reports whether name is a builtin command.
func (r *Registry) IsBuiltin(name string) bool {
	_, ok := r.entries.Get(name)
	return ok
}

// Names returns the builtin names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	return names
}

func cd(ctx *Context, args []string) int {
	var path string
	if len(args) < 2 || args[1] == "" {
		home, ok := os.LookupEnv("HOME")
		if !ok {
			fmt.Fprintln(ctx.Stderr, "cd: HOME not set")
			return 1
		}
		path = home
	} else {
		path = args[1]
	}

	if strings.HasPrefix(path, "~") {
		home, ok := os.LookupEnv("HOME")
		if !ok {
			fmt.Fprintln(ctx.Stderr, "cd: HOME not set")
			return 1
		}
		if path == "~" {
			path = home
		} else if strings.HasPrefix(path, "~/") {
			path = home + path[1:]
		}
	}

	if err := os.Chdir(path); err != nil {
		fmt.Fprintf(ctx.Stderr, "cd: %s: No such file or directory\n", path)
		return 1
	}
	return 0
}

func echo(ctx *Context, args []string) int {
	fmt.Fprintln(ctx.Stdout, strings.Join(args[1:], " "))
	return 0
}

// exitShell terminates the process through ctx.Exit: status from the numeric
// argument, 0 by default, or 2 with a diagnostic when the argument is not a
// number.
func exitShell(ctx *Context, args []string) int {
	status := 0
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(ctx.Stderr, "exit: %s: numeric argument required\n", args[1])
			status = 2
		} else {
			status = n
		}
	}
	if ctx.Exit != nil {
		ctx.Exit(status)
	}
	return status
}

func pwd(ctx *Context, args []string) int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(ctx.Stderr, "pwd: unable to get current directory")
		return 1
	}
	fmt.Fprintln(ctx.Stdout, cwd)
	return 0
}

func (r *Registry) commandType(ctx *Context, args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(ctx.Stderr, "type: missing command name")
		return 1
	}

	status := 0
	for _, name := range args[1:] {
		if r.IsBuiltin(name) {
			fmt.Fprintf(ctx.Stdout, "%s is a shell builtin\n", name)
			continue
		}
		if ctx.LookPath != nil {
			if path, ok := ctx.LookPath(name); ok {
				fmt.Fprintf(ctx.Stdout, "%s is %s\n", name, path)
				continue
			}
		}
		fmt.Fprintf(ctx.Stdout, "%s not found\n", name)
		status = 1
	}
	return status
}

func (r *Registry) help(ctx *Context, args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(ctx.Stdout, "Shell built-in commands:")
		for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
			e := pair.Value.(Entry)
			fmt.Fprintf(ctx.Stdout, "  %-10s %s\n", e.Name, e.Help)
		}
		fmt.Fprintln(ctx.Stdout, "\nType 'help name' to find out more about the function 'name'.")
		return 0
	}

	for _, name := range args[1:] {
		e, ok := r.Lookup(name)
		if !ok {
			fmt.Fprintf(ctx.Stderr, "help: no help topics match '%s'\n", name)
			return 1
		}
		fmt.Fprintf(ctx.Stdout, "%s: %s\n", e.Name, e.Help)
	}
	return 0
}
