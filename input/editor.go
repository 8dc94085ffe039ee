package input

import (
	"fmt"
	"io"

	"github.com/ef-ds/deque"

	"github.com/nekkaida/gsh/term"
)

// Completer rewrites the line in response to a completion request and
// returns the new text and cursor position.
type Completer interface {
	Complete(line string, cursor int) (string, int)
}

// RedrawFunc repaints the prompt and the current edit state. It is invoked
// after every operation that changes the buffer or the cursor.
type RedrawFunc func(line string, cursor int)

// Config wires an Editor to its collaborators. Source is required; the rest
// default to no-ops so the editor stays testable without a live terminal.
type Config struct {
	Source    term.ByteReader
	Out       io.Writer
	Redraw    RedrawFunc
	Completer Completer
	Clear     func()
}

type opcode int

const (
	opInsert opcode = iota
	opCommit
	opAbort
	opEOF
	opBackspace
	opTab
	opMoveLeft
	opMoveRight
	opMoveHome
	opMoveEnd
	opKillToEnd
	opKillToStart
	opKillWord
	opClearScreen
	opIgnore
)

// event is one logical editing operation. Most events come straight from
// decoded input; the Delete key is synthesized as move-right plus backspace
// through the pending queue.
type event struct {
	op opcode
	ch byte
}

// Editor reads raw bytes, decodes them into logical events and applies them
// to a Line until the line is committed or input ends.
type Editor struct {
	source    term.ByteReader
	out       io.Writer
	redraw    RedrawFunc
	completer Completer
	clear     func()
	pending   *deque.Deque
}

// New creates an Editor from cfg.
func New(cfg Config) *Editor {
	e := &Editor{
		source:    cfg.Source,
		out:       cfg.Out,
		redraw:    cfg.Redraw,
		completer: cfg.Completer,
		clear:     cfg.Clear,
		pending:   deque.New(),
	}
	if e.out == nil {
		e.out = io.Discard
	}
	if e.redraw == nil {
		e.redraw = func(string, int) {}
	}
	return e
}

// ReadLine runs the editing loop and returns the committed line. It returns
// io.EOF when Ctrl-D is pressed on an empty buffer or the byte source ends.
// Ctrl-C aborts the edit and commits an empty line without ending the shell.
func (e *Editor) ReadLine() (string, error) {
	line := NewLine()

	for {
		ev, err := e.nextEvent(line)
		if err != nil {
			return "", err
		}

		switch ev.op {
		case opCommit:
			fmt.Fprint(e.out, "\r\n")
			return line.String(), nil
		case opAbort:
			fmt.Fprint(e.out, "^C\r\n")
			line.Clear()
			return "", nil
		case opEOF:
			return "", io.EOF
		case opInsert:
			line.Insert(ev.ch)
		case opBackspace:
			line.DeleteBeforeCursor()
		case opTab:
			if e.completer != nil {
				text, cursor := e.completer.Complete(line.String(), line.Cursor())
				line.Set(text, cursor)
			}
		case opMoveLeft:
			line.MoveLeft()
		case opMoveRight:
			line.MoveRight()
		case opMoveHome:
			line.MoveHome()
		case opMoveEnd:
			line.MoveEnd()
		case opKillToEnd:
			line.KillToEnd()
		case opKillToStart:
			line.KillToStart()
		case opKillWord:
			line.KillPrevWord()
		case opClearScreen:
			if e.clear != nil {
				e.clear()
			}
		case opIgnore:
			continue
		}

		e.redraw(line.String(), line.Cursor())
	}
}

// nextEvent drains pending synthesized events before reading a new byte.
func (e *Editor) nextEvent(line *Line) (event, error) {
	if v, ok := e.pending.PopFront(); ok {
		return v.(event), nil
	}

	b, err := e.source.ReadByte()
	if err != nil {
		return event{}, io.EOF
	}

	switch term.Key(b) {
	case term.KeyEnter, term.Key('\n'):
		return event{op: opCommit}, nil
	case term.KeyCtrlC:
		return event{op: opAbort}, nil
	case term.KeyCtrlD:
		// EOF only when there is nothing left to edit.
		if line.Len() == 0 {
			return event{op: opEOF}, nil
		}
		return event{op: opIgnore}, nil
	case term.KeyBackspace, term.KeyCtrlH:
		return event{op: opBackspace}, nil
	case term.KeyTab:
		return event{op: opTab}, nil
	case term.KeyEscape:
		return e.decodeSequence(line), nil
	case term.KeyCtrlA:
		return event{op: opMoveHome}, nil
	case term.KeyCtrlE:
		return event{op: opMoveEnd}, nil
	case term.KeyCtrlK:
		return event{op: opKillToEnd}, nil
	case term.KeyCtrlU:
		return event{op: opKillToStart}, nil
	case term.KeyCtrlW:
		return event{op: opKillWord}, nil
	case term.KeyCtrlL:
		return event{op: opClearScreen}, nil
	}

	if b >= 0x20 && b < 0x7f {
		return event{op: opInsert, ch: b}, nil
	}
	return event{op: opIgnore}, nil
}

func (e *Editor) decodeSequence(line *Line) event {
	switch term.DecodeEscape(e.source) {
	case term.SeqLeft:
		return event{op: opMoveLeft}
	case term.SeqRight:
		return event{op: opMoveRight}
	case term.SeqHome:
		return event{op: opMoveHome}
	case term.SeqEnd:
		return event{op: opMoveEnd}
	case term.SeqDelete:
		if line.Cursor() < line.Len() {
			e.pending.PushBack(event{op: opBackspace})
			return event{op: opMoveRight}
		}
		return event{op: opIgnore}
	default:
		// Up, Down, PageUp, PageDown and bare Escape have no binding.
		return event{op: opIgnore}
	}
}
