package input

// Kind identifies the logical keystroke an Event carries.
type Kind int

const (
	// KindNone is the zero value; never emitted by the decoder.
	KindNone Kind = iota
	// KindPrintable is a plain byte to insert (see Event.Byte).
	KindPrintable
	// KindEnter requests a line break at the cursor.
	KindEnter
	// KindBackspace requests deletion before the cursor.
	KindBackspace
	// KindTerminate ends the editing session.
	KindTerminate
	// Arrow keys move the cursor.
	KindArrowUp
	KindArrowDown
	KindArrowLeft
	KindArrowRight
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindPrintable:
		return "Printable"
	case KindEnter:
		return "Enter"
	case KindBackspace:
		return "Backspace"
	case KindTerminate:
		return "Terminate"
	case KindArrowUp:
		return "ArrowUp"
	case KindArrowDown:
		return "ArrowDown"
	case KindArrowLeft:
		return "ArrowLeft"
	case KindArrowRight:
		return "ArrowRight"
	default:
		return "Unknown"
	}
}

// Event is one decoded keystroke. Byte is meaningful only when Kind is
// KindPrintable. Events are transient: produced by the decoder and
// consumed immediately by the event loop.
type Event struct {
	Kind Kind
	Byte byte
}
