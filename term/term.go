// Package term owns the terminal driver state: switching between canonical
// and raw input modes, single-byte reads, and size queries. A Terminal is the
// sole owner of the saved original mode, so callers restore the mode they
// found rather than forcing canonical unconditionally.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultColumns is the width assumed when the terminal size cannot be
// queried.
const DefaultColumns = 80

// ErrNotTerminal is returned by operations which require an interactive
// terminal on standard input.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// ByteReader is the byte source shared by the terminal controller, the line
// editor and the escape-sequence decoder.
type ByteReader interface {
	ReadByte() (byte, error)
}

// Terminal controls the process terminal attached to the given input file.
type Terminal struct {
	in    *os.File
	out   io.Writer
	fd    int
	saved *term.State
	isTTY bool
	raw   bool
	buf   [1]byte
}

// New creates a Terminal for stdin/stdout.
func New() *Terminal {
	return NewWith(os.Stdin, os.Stdout)
}

// NewWith creates a Terminal reading from in and writing control sequences
// to out.
func NewWith(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:  in,
		out: out,
		fd:  int(in.Fd()),
	}
}

// Init captures the current terminal mode. When standard input is not a
// terminal this is a no-op and Init reports success, so the shell still works
// with piped input.
func (t *Terminal) Init() error {
	if !term.IsTerminal(t.fd) {
		t.isTTY = false
		return nil
	}
	t.isTTY = true
	return nil
}

// IsTerminal reports whether the input is an interactive terminal.
func (t *Terminal) IsTerminal() bool {
	return t.isTTY
}

// EnableRaw switches the terminal to raw mode: no echo, no line buffering,
// no signal characters, reads return after one byte. Idempotent.
func (t *Terminal) EnableRaw() error {
	if !t.isTTY || t.raw {
		return nil
	}
	saved, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.saved = saved
	t.raw = true
	return nil
}

// DisableRaw restores the mode captured by EnableRaw. Idempotent.
func (t *Terminal) DisableRaw() error {
	if !t.raw || t.saved == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.saved); err != nil {
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	t.raw = false
	return nil
}

// IsRaw reports whether raw mode is currently enabled.
func (t *Terminal) IsRaw() bool {
	return t.raw
}

// Cleanup leaves the terminal in the mode Init found it in. Safe to call on
// every exit path.
func (t *Terminal) Cleanup() {
	_ = t.DisableRaw()
}

// ReadByte blocks until a single byte is available. EOF and interrupted
// reads surface as the underlying error.
func (t *Terminal) ReadByte() (byte, error) {
	n, err := t.in.Read(t.buf[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, io.ErrUnexpectedEOF
	}
	return t.buf[0], nil
}

// Size returns the terminal dimensions as (rows, cols).
func (t *Terminal) Size() (rows, cols int, err error) {
	if !t.isTTY {
		return 0, 0, ErrNotTerminal
	}
	cols, rows, err = term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return rows, cols, nil
}

// Columns returns the terminal width, falling back to DefaultColumns when
// the size cannot be determined.
func (t *Terminal) Columns() int {
	_, cols, err := t.Size()
	if err != nil || cols <= 0 {
		return DefaultColumns
	}
	return cols
}

// Bell emits the audible bell.
func (t *Terminal) Bell() {
	fmt.Fprint(t.out, "\a")
}

// ClearScreen clears the display and homes the cursor.
func (t *Terminal) ClearScreen() {
	fmt.Fprint(t.out, "\x1b[2J\x1b[H")
}
