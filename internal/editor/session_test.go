package editor

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jfelder/scrawl/internal/input"
	"github.com/jfelder/scrawl/internal/render"
)

// stutterReader yields a zero-byte read before every real byte, to
// exercise the "no input yet" loop path.
type stutterReader struct {
	data []byte
	gave bool
}

func (r *stutterReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("out of input")
	}
	if !r.gave {
		r.gave = true
		return 0, nil
	}
	r.gave = false
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

// failSurface fails every write after the first n succeed.
type failSurface struct {
	remaining int
}

var errSurfaceBroken = errors.New("surface broken")

func (s *failSurface) Write(p []byte) (int, error) {
	if s.remaining <= 0 {
		return 0, errSurfaceBroken
	}
	s.remaining--
	return len(p), nil
}

func (s *failSurface) Flush() error { return nil }

func feed(t *testing.T, s *Session, data []byte) {
	t.Helper()
	for _, b := range data {
		if ev, ok := s.dec.Feed(b); ok {
			s.apply(ev)
		}
	}
}

func expectBuffer(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	if s.buf.LineCount() != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), s.buf.LineCount())
	}
	for i, want := range lines {
		if got := s.buf.Line(i); string(got) != want {
			t.Errorf("line %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestEditScenario(t *testing.T) {
	s := New(strings.NewReader(""), render.NewMemorySurface())

	// h, i, Enter, !, Backspace
	feed(t, s, []byte("hi\n!\x7f"))

	expectBuffer(t, s, "hi", "")
	if cur := s.buf.Cursor(); cur.Row != 1 || cur.Col != 0 {
		t.Errorf("expected cursor (1,0), got (%d,%d)", cur.Row, cur.Col)
	}
}

func TestArrowEventsMoveCursor(t *testing.T) {
	s := New(strings.NewReader(""), render.NewMemorySurface())

	feed(t, s, []byte("ab"))
	feed(t, s, []byte{27, '[', 'D'}) // left
	feed(t, s, []byte("X"))

	expectBuffer(t, s, "aXb")
}

func TestRunTerminatesOnCtrlD(t *testing.T) {
	surface := render.NewMemorySurface()
	s := New(bytes.NewReader([]byte("hi\n!\x7f\x04")), surface)

	if err := s.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expectBuffer(t, s, "hi", "")
	// Shutdown resets the cursor and paints a final frame with the
	// terminal cursor at the origin.
	if cur := s.buf.Cursor(); cur.Row != 0 || cur.Col != 0 {
		t.Errorf("expected cursor reset to origin, got (%d,%d)", cur.Row, cur.Col)
	}
	if got := surface.String(); !strings.HasSuffix(got, "\x1b[1;1H") {
		t.Errorf("expected final frame to home the cursor, got suffix %q", got[len(got)-12:])
	}
}

func TestRunRendersOncePerEvent(t *testing.T) {
	surface := render.NewMemorySurface()
	// Three printable bytes, then an absorbed escape sequence that
	// produces no event, then terminate.
	s := New(bytes.NewReader([]byte{'a', 'b', 'c', 27, '[', 'Z', 4}), surface)

	if err := s.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Initial frame + one per printable + shutdown frame. The dropped
	// escape sequence must not trigger a repaint.
	if got := strings.Count(surface.String(), "\x1b[2J"); got != 5 {
		t.Errorf("expected 5 frames, got %d", got)
	}
}

func TestRunTreatsReadErrorAsTerminate(t *testing.T) {
	surface := render.NewMemorySurface()
	s := New(iotest.ErrReader(errors.New("tty gone")), surface)

	if err := s.Run(); err != nil {
		t.Fatalf("expected read error to shut down cleanly, got %v", err)
	}

	if surface.String() == "" {
		t.Error("expected a final frame to be painted")
	}
}

func TestRunTreatsEOFAsTerminate(t *testing.T) {
	s := New(bytes.NewReader([]byte("ab")), render.NewMemorySurface())

	if err := s.Run(); err != nil {
		t.Fatalf("expected EOF to shut down cleanly, got %v", err)
	}

	expectBuffer(t, s, "ab")
}

func TestRunSkipsZeroByteReads(t *testing.T) {
	s := New(&stutterReader{data: []byte("xy\x04")}, render.NewMemorySurface())

	if err := s.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expectBuffer(t, s, "xy")
}

func TestRunPropagatesRenderError(t *testing.T) {
	s := New(strings.NewReader("a"), &failSurface{remaining: 0})

	err := s.Run()

	if !errors.Is(err, errSurfaceBroken) {
		t.Errorf("expected surface error, got %v", err)
	}
}

func TestRunPropagatesRenderErrorMidSession(t *testing.T) {
	// The initial frame takes 3 writes (clear, one line, cursor); let
	// those succeed and fail on the first keystroke's repaint.
	s := New(strings.NewReader("a"), &failSurface{remaining: 3})

	err := s.Run()

	if !errors.Is(err, errSurfaceBroken) {
		t.Errorf("expected surface error, got %v", err)
	}
}

func TestWithLoggerRecordsTermination(t *testing.T) {
	var log bytes.Buffer
	s := New(iotest.ErrReader(errors.New("tty gone")), render.NewMemorySurface(),
		WithLogger(NewLogger(&log, LogLevelDebug)))

	if err := s.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(log.String(), "tty gone") {
		t.Errorf("expected read failure in log, got %q", log.String())
	}
}

func TestClearScreen(t *testing.T) {
	surface := render.NewMemorySurface()
	s := New(strings.NewReader(""), surface)

	if err := s.ClearScreen(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if got := surface.String(); got != "\x1b[2J\x1b[H" {
		t.Errorf("expected clear sequence, got %q", got)
	}
}

func TestApplyIgnoresUnknownKind(t *testing.T) {
	s := New(strings.NewReader(""), render.NewMemorySurface())

	s.apply(input.Event{Kind: input.KindNone})

	expectBuffer(t, s, "")
}
