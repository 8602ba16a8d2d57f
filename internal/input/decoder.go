package input

// Byte values the decoder recognizes directly.
const (
	byteTerminate = 4    // Ctrl-D
	byteEnter     = '\n' // ASCII 10
	byteEscape    = 27   // ESC
	byteBackspace = 127  // DEL
)

// escapeLen is the exact length at which a pending escape sequence is
// matched. Longer or variable-length sequences are not supported; this
// is a fixed-window decoder, not a general escape-sequence parser.
const escapeLen = 3

// Decoder turns a raw byte stream into logical input events. It holds
// at most a few bytes of pending escape-sequence state between calls
// and is otherwise stateless. Not safe for concurrent use.
type Decoder struct {
	pending []byte
}

// NewDecoder returns an idle decoder.
func NewDecoder() *Decoder {
	return &Decoder{pending: make([]byte, 0, escapeLen+1)}
}

// Feed consumes one byte and reports the event it completes, if any.
// Bytes inside an escape sequence are absorbed without emitting; an
// unrecognized sequence is dropped and the decoder returns to idle.
func (d *Decoder) Feed(b byte) (Event, bool) {
	if len(d.pending) > 0 {
		d.pending = append(d.pending, b)
		if len(d.pending) < escapeLen {
			return Event{}, false
		}
		ev, ok := matchArrow(d.pending[1], d.pending[2])
		d.pending = d.pending[:0]
		return ev, ok
	}

	switch b {
	case byteEscape:
		d.pending = append(d.pending, b)
		return Event{}, false
	case byteTerminate:
		return Event{Kind: KindTerminate}, true
	case byteEnter:
		return Event{Kind: KindEnter}, true
	case byteBackspace:
		return Event{Kind: KindBackspace}, true
	default:
		return Event{Kind: KindPrintable, Byte: b}, true
	}
}

// Idle reports whether the decoder has no pending escape bytes.
func (d *Decoder) Idle() bool {
	return len(d.pending) == 0
}

// matchArrow maps the two suffix bytes of a three-byte escape sequence
// to an arrow event.
func matchArrow(second, third byte) (Event, bool) {
	if second != '[' {
		return Event{}, false
	}
	switch third {
	case 'A':
		return Event{Kind: KindArrowUp}, true
	case 'B':
		return Event{Kind: KindArrowDown}, true
	case 'C':
		return Event{Kind: KindArrowRight}, true
	case 'D':
		return Event{Kind: KindArrowLeft}, true
	default:
		return Event{}, false
	}
}
