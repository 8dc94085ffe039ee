// Package input implements the interactive line editor: an editable byte
// buffer with a cursor, and the key-dispatch state machine that drives it
// from raw terminal bytes.
package input

import (
	"github.com/nekkaida/gsh/util"
)

const initialCapacity = 64

// Line is the editable text buffer. The invariant 0 <= cursor <= Len() holds
// after every operation; capacity doubles whenever an insertion would exceed
// it.
type Line struct {
	buf    []byte
	cursor int
}

// NewLine creates an empty Line.
func NewLine() *Line {
	return &Line{buf: make([]byte, 0, initialCapacity)}
}

// String returns the current text.
func (l *Line) String() string {
	return string(l.buf)
}

// Len returns the number of bytes in the buffer.
func (l *Line) Len() int {
	return len(l.buf)
}

// Cursor returns the cursor index.
func (l *Line) Cursor() int {
	return l.cursor
}

// Set replaces the buffer content and cursor, clamping the cursor into
// [0, len(text)]. Used after tab completion rewrites the line.
func (l *Line) Set(text string, cursor int) {
	l.buf = append(l.buf[:0], text...)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(l.buf) {
		cursor = len(l.buf)
	}
	l.cursor = cursor
}

// Clear empties the buffer and resets the cursor.
func (l *Line) Clear() {
	l.buf = l.buf[:0]
	l.cursor = 0
}

// Insert writes c at the cursor, shifting the tail right.
func (l *Line) Insert(c byte) {
	if len(l.buf)+1 > cap(l.buf) {
		grown := make([]byte, len(l.buf), cap(l.buf)*2)
		copy(grown, l.buf)
		l.buf = grown
	}
	l.buf = util.InsertSlice(l.buf, l.cursor, c)
	l.cursor++
}

// DeleteBeforeCursor removes the byte before the cursor. No-op at the start
// of the line.
func (l *Line) DeleteBeforeCursor() {
	if l.cursor == 0 {
		return
	}
	l.buf = util.RemoveSlice(l.buf, l.cursor-1, l.cursor)
	l.cursor--
}

// MoveLeft moves the cursor one position left. No-op at the boundary.
func (l *Line) MoveLeft() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveRight moves the cursor one position right. No-op at the boundary.
func (l *Line) MoveRight() {
	if l.cursor < len(l.buf) {
		l.cursor++
	}
}

// MoveHome moves the cursor to the start of the line.
func (l *Line) MoveHome() {
	l.cursor = 0
}

// MoveEnd moves the cursor past the last byte.
func (l *Line) MoveEnd() {
	l.cursor = len(l.buf)
}

// KillToEnd truncates the line at the cursor.
func (l *Line) KillToEnd() {
	l.buf = l.buf[:l.cursor]
}

// KillToStart removes everything before the cursor and shifts the tail to
// the start of the buffer.
func (l *Line) KillToStart() {
	l.buf = util.RemoveSlice(l.buf, 0, l.cursor)
	l.cursor = 0
}

// KillPrevWord removes the word before the cursor: trailing whitespace first,
// then the run of non-whitespace. The cursor lands on the former word start.
func (l *Line) KillPrevWord() {
	if l.cursor == 0 {
		return
	}
	n := l.cursor - 1
	for n > 0 && isBlank(l.buf[n]) {
		n--
	}
	for n > 0 && !isBlank(l.buf[n-1]) {
		n--
	}
	l.buf = util.RemoveSlice(l.buf, n, l.cursor)
	l.cursor = n
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
