// Package completion implements tab completion over builtin names, PATH
// executables and filesystem entries, including the double-invocation
// protocol that reveals all matches.
package completion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// doubleTapWindow is how long a prefix stays armed for the show-all-matches
// behavior after a first completion request.
const doubleTapWindow = time.Second

// Options wires an Engine to its collaborators. Every field is optional;
// zero values mean no builtins, discarded output, default width and the real
// clock.
type Options struct {
	// Builtins enumerates builtin command names for first-word completion.
	Builtins func() []string
	// Out receives the bell and the multi-match listing.
	Out io.Writer
	// Columns reports the terminal width for the listing layout.
	Columns func() int
	// Now is the clock used for double-invocation detection.
	Now func() time.Time
}

// Engine resolves completion requests. It is stateful across consecutive
// invocations: the last requested prefix and its timestamp detect a second
// request on the identical prefix within the window.
type Engine struct {
	builtins func() []string
	out      io.Writer
	columns  func() int
	now      func() time.Time

	lastPrefix string
	lastTime   time.Time
	armed      bool
}

// NewEngine creates an Engine from opts.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		builtins: opts.Builtins,
		out:      opts.Out,
		columns:  opts.Columns,
		now:      opts.Now,
	}
	if e.out == nil {
		e.out = io.Discard
	}
	if e.columns == nil {
		e.columns = func() int { return 80 }
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Complete handles one completion request for the given line and cursor and
// returns the new line and cursor. Text after the cursor does not take part
// in completion; the committed result is the rewritten prefix.
func (e *Engine) Complete(line string, cursor int) (string, int) {
	if cursor <= 0 || cursor > len(line) {
		return line, cursor
	}

	prefix := line[:cursor]
	wordStart := strings.LastIndexByte(prefix, ' ') + 1
	word := prefix[wordStart:]

	candidates := e.Candidates(word, wordStart == 0)

	switch len(candidates) {
	case 0:
		e.bell()
		e.reset()
		return line, cursor

	case 1:
		replaced := prefix[:wordStart] + withDirPart(word, candidates[0])
		if !strings.HasSuffix(candidates[0], "/") {
			replaced += " "
		}
		e.reset()
		return replaced, len(replaced)

	default:
		if e.armed && e.lastPrefix == word && e.now().Sub(e.lastTime) <= doubleTapWindow {
			e.displayMatches(candidates)
			e.reset()
			return line, cursor
		}

		result, resultCursor := line, cursor
		if lcp := LongestCommonPrefix(candidates); len(lcp) > len(word)-dirPartLen(word) {
			replaced := prefix[:wordStart] + withDirPart(word, lcp)
			result, resultCursor = replaced, len(replaced)
		} else {
			e.bell()
		}

		e.lastPrefix = word
		e.lastTime = e.now()
		e.armed = true
		return result, resultCursor
	}
}

// Candidates enumerates the sorted, deduplicated completions for the word
// under the cursor. A word containing a path separator completes from the
// named directory; otherwise a first word completes from builtin names and
// PATH executables, and a later word from the current directory.
func (e *Engine) Candidates(word string, firstWord bool) []string {
	var candidates []string

	if strings.ContainsRune(word, '/') {
		dir, filePrefix := filepath.Split(word)
		candidates = directoryEntries(dir, filePrefix)
	} else if firstWord {
		if e.builtins != nil {
			for _, name := range e.builtins() {
				if PrefixMatch(name, word) {
					candidates = append(candidates, name)
				}
			}
		}
		candidates = append(candidates, pathExecutables(word)...)
	} else {
		candidates = directoryEntries(".", word)
	}

	return sortUnique(candidates)
}

// reset clears the double-invocation state. Called after any action that
// changes the input.
func (e *Engine) reset() {
	e.lastPrefix = ""
	e.armed = false
}

func (e *Engine) bell() {
	fmt.Fprint(e.out, "\a")
}

// displayMatches prints the candidate list below the line in columns sized
// to the terminal width. The caller repaints the prompt afterwards.
func (e *Engine) displayMatches(candidates []string) {
	width := e.columns()
	if width <= 0 {
		width = 80
	}

	colWidth := 0
	for _, c := range candidates {
		if len(c) > colWidth {
			colWidth = len(c)
		}
	}
	colWidth += 2

	cols := width / colWidth
	if cols < 1 {
		cols = 1
	}
	rows := (len(candidates) + cols - 1) / cols

	fmt.Fprint(e.out, "\r\n")
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := col*rows + row
			if i < len(candidates) {
				fmt.Fprintf(e.out, "%-*s", colWidth, candidates[i])
			}
		}
		fmt.Fprint(e.out, "\r\n")
	}
}

// withDirPart re-attaches the directory part of the original word to a
// completed entry name.
func withDirPart(word, candidate string) string {
	return word[:dirPartLen(word)] + candidate
}

func dirPartLen(word string) int {
	if i := strings.LastIndexByte(word, '/'); i >= 0 {
		return i + 1
	}
	return 0
}

// directoryEntries lists the entries of dir whose names prefix-match.
// Directory entries get a trailing separator. An unreadable directory yields
// no candidates.
func directoryEntries(dir, prefix string) []string {
	if dir == "" {
		dir = "/"
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		if !PrefixMatch(name, prefix) {
			continue
		}
		// Follow symlinks so a link to a directory completes like one.
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
			name += "/"
		}
		out = append(out, name)
	}
	return out
}

// pathExecutables scans every PATH directory for regular files with any
// execute bit whose names prefix-match.
func pathExecutables(prefix string) []string {
	var out []string
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !PrefixMatch(name, prefix) {
				continue
			}
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil || !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
				continue
			}
			out = append(out, name)
		}
	}
	return out
}
