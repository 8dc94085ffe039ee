package term

// Key is a single control byte read from the terminal in raw mode.
type Key byte

const (
	KeyCtrlA     Key = 1
	KeyCtrlB     Key = 2
	KeyCtrlC     Key = 3
	KeyCtrlD     Key = 4
	KeyCtrlE     Key = 5
	KeyCtrlF     Key = 6
	KeyCtrlH     Key = 8
	KeyTab       Key = 9
	KeyCtrlK     Key = 11
	KeyCtrlL     Key = 12
	KeyEnter     Key = 13
	KeyCtrlU     Key = 21
	KeyCtrlW     Key = 23
	KeyEscape    Key = 27
	KeyBackspace Key = 127
)

// Sequence is the logical key event an escape sequence resolves to.
// SeqEscape is the fallback for anything malformed or unrecognized.
type Sequence int

const (
	SeqEscape Sequence = iota
	SeqUp
	SeqDown
	SeqRight
	SeqLeft
	SeqHome
	SeqEnd
	SeqDelete
	SeqPageUp
	SeqPageDown
)

func (s Sequence) String() string {
	switch s {
	case SeqUp:
		return "up"
	case SeqDown:
		return "down"
	case SeqRight:
		return "right"
	case SeqLeft:
		return "left"
	case SeqHome:
		return "home"
	case SeqEnd:
		return "end"
	case SeqDelete:
		return "delete"
	case SeqPageUp:
		return "page-up"
	case SeqPageDown:
		return "page-down"
	default:
		return "escape"
	}
}
