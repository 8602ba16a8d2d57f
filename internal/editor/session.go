package editor

import (
	"io"

	"github.com/jfelder/scrawl/internal/input"
	"github.com/jfelder/scrawl/internal/render"
	"github.com/jfelder/scrawl/internal/textbuf"
)

// Session owns the buffer, decoder, and renderer for one interactive
// editing run. All state is confined to the goroutine calling Run.
type Session struct {
	in      io.Reader
	buf     *textbuf.Buffer
	dec     *input.Decoder
	ren     *render.Renderer
	logger  *Logger
	running bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger directs session logging at the given logger.
func WithLogger(l *Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a session reading bytes from in and painting to surface.
// The buffer starts as a single empty line with the cursor at the
// origin.
func New(in io.Reader, surface render.Surface, opts ...Option) *Session {
	s := &Session{
		in:     in,
		buf:    textbuf.New(),
		dec:    input.NewDecoder(),
		ren:    render.New(surface),
		logger: NullLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the event loop until the terminate byte arrives, the
// input stream ends or errors, or a repaint fails. Events are applied
// strictly in arrival order and every applied event is followed by
// exactly one repaint.
//
// A read failure is treated as an implicit terminate and takes the
// normal shutdown path. On return the cursor has been reset and a
// final frame painted; restoring the terminal mode is the caller's
// responsibility.
func (s *Session) Run() error {
	if s.running {
		return ErrAlreadyRunning
	}
	s.running = true
	defer func() { s.running = false }()

	if err := s.ren.Render(s.buf); err != nil {
		return err
	}

	one := make([]byte, 1)
	for {
		n, err := s.in.Read(one)
		if err != nil {
			s.logger.Debug("input read failed, terminating: %v", err)
			return s.shutdown()
		}
		if n == 0 {
			// No input yet; try again.
			continue
		}

		ev, ok := s.dec.Feed(one[0])
		if !ok {
			// Mid-sequence byte or dropped escape sequence.
			continue
		}
		if ev.Kind == input.KindTerminate {
			s.logger.Debug("terminate received")
			return s.shutdown()
		}

		s.apply(ev)
		if err := s.ren.Render(s.buf); err != nil {
			return err
		}
	}
}

// apply routes one decoded event to the buffer.
func (s *Session) apply(ev input.Event) {
	switch ev.Kind {
	case input.KindPrintable:
		s.buf.InsertByte(ev.Byte)
	case input.KindEnter:
		s.buf.InsertLineBreak()
	case input.KindBackspace:
		s.buf.Backspace()
	case input.KindArrowUp:
		s.buf.MoveUp()
	case input.KindArrowDown:
		s.buf.MoveDown()
	case input.KindArrowLeft:
		s.buf.MoveLeft()
	case input.KindArrowRight:
		s.buf.MoveRight()
	}
}

// shutdown paints the final frame with the cursor at the origin so the
// terminal cursor lands in a deterministic place before the caller
// restores the terminal mode.
func (s *Session) shutdown() error {
	s.buf.MoveToStart()
	return s.ren.Render(s.buf)
}

// ClearScreen erases the display. Called by the entry point after the
// terminal mode has been restored.
func (s *Session) ClearScreen() error {
	return s.ren.Clear()
}
