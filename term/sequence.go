package term

// The decoder below is a small grammar over the bytes following an ESC:
//
//	ESC '[' digit+ '~'   tilde-coded keys (1 Home, 3 Delete, 4 End, 5 PgUp, 6 PgDn)
//	ESC '[' letter       CSI letter keys (A Up, B Down, C Right, D Left, H Home, F End)
//	ESC 'O' letter       SS3 letter keys, same letter mapping
//
// Decoding is strictly forward-consuming; nothing is pushed back. Any
// malformed continuation, unknown code, or read failure mid-sequence resolves
// to SeqEscape.

type decodeState int

const (
	decodeStart decodeState = iota
	decodeCSI
	decodeCode
)

// DecodeEscape consumes the bytes following an already-read ESC from r and
// resolves them to a logical Sequence.
func DecodeEscape(r ByteReader) Sequence {
	state := decodeStart
	code := 0

	for {
		b, err := r.ReadByte()
		if err != nil {
			return SeqEscape
		}

		switch state {
		case decodeStart:
			switch b {
			case '[':
				state = decodeCSI
			case 'O':
				return letterSequence(r)
			default:
				return SeqEscape
			}

		case decodeCSI:
			if b >= '0' && b <= '9' {
				code = int(b - '0')
				state = decodeCode
				continue
			}
			return csiLetter(b)

		case decodeCode:
			if b >= '0' && b <= '9' {
				code = code*10 + int(b-'0')
				continue
			}
			if b == '~' {
				return tildeSequence(code)
			}
			return SeqEscape
		}
	}
}

func letterSequence(r ByteReader) Sequence {
	b, err := r.ReadByte()
	if err != nil {
		return SeqEscape
	}
	return csiLetter(b)
}

func csiLetter(b byte) Sequence {
	switch b {
	case 'A':
		return SeqUp
	case 'B':
		return SeqDown
	case 'C':
		return SeqRight
	case 'D':
		return SeqLeft
	case 'H':
		return SeqHome
	case 'F':
		return SeqEnd
	default:
		return SeqEscape
	}
}

func tildeSequence(code int) Sequence {
	switch code {
	case 1:
		return SeqHome
	case 3:
		return SeqDelete
	case 4:
		return SeqEnd
	case 5:
		return SeqPageUp
	case 6:
		return SeqPageDown
	default:
		return SeqEscape
	}
}
