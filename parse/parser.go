/// Package parse converts a committed command line into a Command: an ordered
// argument vector plus redirections. Parsing is two passes: first the
// redirection operators are extracted and stripped, then the remaining text
// is tokenized with quote and escape handling. Validate is a separate
// early-reject pass used before any parsing is attempted.
package parse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is the base class for every syntax failure; the specific errors
// below wrap it so callers can match either level with errors.Is.
var ErrSyntax = errors.New("syntax error")

var (
	ErrUnclosedQuote         = fmt.Errorf("%w: unclosed quote", ErrSyntax)
	ErrRedirectionAtStart    = fmt.Errorf("%w: redirection operator at start of command", ErrSyntax)
	ErrMissingRedirectTarget = fmt.Errorf("%w: missing redirection target", ErrSyntax)
	ErrTrailingBackslash     = fmt.Errorf("%w: trailing backslash", ErrSyntax)
)

const (
	streamStdout = iota
	streamStderr
)

// operator is one redirection operator found in the line. start includes the
// classifying 1/2 digit prefix when present; end is just past the final '>'.
type operator struct {
	start    int
	end      int
	stream   int
	appendTo bool
}

// Parse converts a committed line into a Command. The redirection pass runs
// first so operators never reach the tokenizer.
func Parse(line string) (*Command, error) {
	text, redir, err := ExtractRedirections(line)
	if err != nil {
		return nil, err
	}
	args, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return &Command{Args: args, Redir: redir}, nil
}

// ExtractRedirections scans the line for the operators >, >>, 1>, 1>>, 2>
// and 2>> outside quotes, returning the command text with all redirection
// syntax removed and the populated redirections. Only the first
// stdout-class and the first stderr-class operator are honored. Operators
// inside quotes are literal text.
func ExtractRedirections(input string) (string, Redirections, error) {
	var redir Redirections

	ops, err := scanOperators(input)
	if err != nil {
		return "", redir, err
	}

	var stdoutOp, stderrOp *operator
	for i := range ops {
		op := &ops[i]
		switch {
		case op.stream == streamStdout && stdoutOp == nil:
			stdoutOp = op
		case op.stream == streamStderr && stderrOp == nil:
			stderrOp = op
		}
	}

	cmdEnd := len(input)
	if stdoutOp != nil && stdoutOp.start < cmdEnd {
		cmdEnd = stdoutOp.start
	}
	if stderrOp != nil && stderrOp.start < cmdEnd {
		cmdEnd = stderrOp.start
	}

	if stdoutOp != nil {
		redir.AppendStdout = stdoutOp.appendTo
		redir.StdoutFile = targetName(input, stdoutOp.end, ops)
	}
	if stderrOp != nil {
		redir.AppendStderr = stderrOp.appendTo
		redir.StderrFile = targetName(input, stderrOp.end, ops)
	}

	return input[:cmdEnd], redir, nil
}

// scanOperators walks the line tracking quote state. A '>' outside quotes and
// not at position zero is classified by its preceding character: '1' and '2'
// select the stream and belong to the operator, anything else means bare
// stdout redirection. A doubled '>' is consumed as one appending operator.
func scanOperators(input string) ([]operator, error) {
	var ops []operator
	inSingle, inDouble := false, false

	for i := 0; i < len(input); i++ {
		switch c := input[i]; {
		case c == '\\' && !inSingle:
			i++ // escaped character is never an operator
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == '>' && !inSingle && !inDouble && i > 0:
			op := operator{start: i, end: i + 1, stream: streamStdout}
			switch input[i-1] {
			case '1':
				op.start = i - 1
			case '2':
				op.start = i - 1
				op.stream = streamStderr
			}
			if i+1 < len(input) && input[i+1] == '>' {
				op.appendTo = true
				op.end = i + 2
				i++
			}
			ops = append(ops, op)
		}
	}

	if inSingle || inDouble {
		return nil, ErrUnclosedQuote
	}
	return ops, nil
}

// targetName extracts the filename after an operator: the run of characters
// up to the next operator or stray '>', trimmed of surrounding spaces.
func targetName(input string, from int, ops []operator) string {
	end := len(input)
	for _, op := range ops {
		if op.start >= from && op.start < end {
			end = op.start
		}
	}
	if j := strings.IndexByte(input[from:end], '>'); j >= 0 {
		end = from + j
	}
	return strings.TrimSpace(input[from:end])
}

// Tokenize splits redirection-free text into arguments. Outside quotes a
// backslash escapes the next character verbatim and whitespace runs collapse
// to one boundary. Inside double quotes a backslash escapes only \ " $ and
// newline; any other pair keeps both characters. Single-quoted text is
// literal.
func Tokenize(input string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inSingle, inDouble := false, false

	for i := 0; i < len(input); i++ {
		switch c := input[i]; {
		case c == '\\' && !inSingle:
			i++
			if i >= len(input) {
				break
			}
			d := input[i]
			if inDouble && d != '\\' && d != '"' && d != '$' && d != '\n' {
				cur.WriteByte('\\')
			}
			cur.WriteByte(d)
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case isSpace(c) && !inSingle && !inDouble:
			if cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}

	if inSingle || inDouble {
		return nil, ErrUnclosedQuote
	}
	if cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args, nil
}

// Validate early-rejects lines with malformed redirection syntax, a trailing
// backslash, or unterminated quotes. It is independent of the two-pass
// parser so the shell can refuse a line before touching the filesystem.
func Validate(input string) error {
	inSingle, inDouble := false, false

	for i := 0; i < len(input); i++ {
		switch c := input[i]; {
		case c == '\\':
			if i+1 >= len(input) {
				return ErrTrailingBackslash
			}
			i++
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == '>' && !inSingle && !inDouble:
			if i == 0 {
				return ErrRedirectionAtStart
			}
			if i+1 < len(input) && input[i+1] == '>' {
				i++
			}
			j := i + 1
			for j < len(input) && input[j] == ' ' {
				j++
			}
			if j >= len(input) || input[j] == '>' {
				return ErrMissingRedirectTarget
			}
		}
	}

	if inSingle || inDouble {
		return ErrUnclosedQuote
	}
	return nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
