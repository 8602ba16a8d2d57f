package render

import (
	"fmt"

	"github.com/jfelder/scrawl/internal/textbuf"
)

// clearAndHome erases the display and moves the terminal cursor to the
// top-left origin.
const clearAndHome = "\x1b[2J\x1b[H"

// Renderer paints a buffer to a Surface. Every render is a full
// repaint; there is no damage tracking, so redraw cost is proportional
// to buffer size. Acceptable for a human-paced keystroke workload.
type Renderer struct {
	out Surface
}

// New returns a renderer drawing to out.
func New(out Surface) *Renderer {
	return &Renderer{out: out}
}

// Render clears the screen, writes every buffer line at its 1-based
// row, and places the terminal cursor at the buffer's logical cursor
// (also 1-based at the protocol boundary).
func (r *Renderer) Render(buf *textbuf.Buffer) error {
	if err := r.Clear(); err != nil {
		return err
	}
	for row := 0; row < buf.LineCount(); row++ {
		frame := fmt.Appendf(nil, "\x1b[%d;1H", row+1)
		frame = append(frame, buf.Line(row)...)
		if err := r.writeAll(frame); err != nil {
			return err
		}
	}
	cur := buf.Cursor()
	return r.writeAll(fmt.Appendf(nil, "\x1b[%d;%dH", cur.Row+1, cur.Col+1))
}

// Clear erases the display and homes the terminal cursor.
func (r *Renderer) Clear() error {
	return r.writeAll([]byte(clearAndHome))
}

// writeAll writes p to the surface and flushes immediately.
func (r *Renderer) writeAll(p []byte) error {
	if _, err := r.out.Write(p); err != nil {
		return fmt.Errorf("write surface: %w", err)
	}
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("flush surface: %w", err)
	}
	return nil
}
