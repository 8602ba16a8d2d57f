package textbuf

import "strings"

// Position is a logical cursor location in the buffer. Row indexes a
// line; Col indexes a byte within that line. Col may equal the line
// length, meaning the cursor sits just past the last byte — the valid
// insertion point for appending.
type Position struct {
	Row int
	Col int
}

// Buffer holds an ordered sequence of byte-oriented lines and the
// logical cursor. Line order is the visual row order. A Buffer always
// contains at least one line.
//
// The cursor is owned by the buffer and mutated only through the
// movement and edit operations, which keep it in range by construction.
// Buffer is not safe for concurrent use; the editor drives it from a
// single goroutine.
type Buffer struct {
	lines [][]byte
	cur   Position
}

// New returns a buffer containing a single empty line with the cursor
// at the origin.
func New() *Buffer {
	return &Buffer{lines: [][]byte{nil}}
}

// Read Operations

// LineCount returns the number of lines in the buffer. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns a copy of the bytes of the given row, or nil if the row
// is out of range.
func (b *Buffer) Line(row int) []byte {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	line := make([]byte, len(b.lines[row]))
	copy(line, b.lines[row])
	return line
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	return b.cur
}

// Text returns the buffer content as a string with lines joined by "\n".
// Intended for tests and diagnostics, not rendering.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}
	return sb.String()
}

// Movement Operations
//
// Vertical movement resets the column to 0 rather than preserving a
// desired column. All movement is idempotent at the boundary.

// MoveUp moves the cursor to column 0 of the previous line, if any.
func (b *Buffer) MoveUp() {
	if b.cur.Row > 0 {
		b.cur.Row--
		b.cur.Col = 0
	}
}

// MoveDown moves the cursor to column 0 of the next line, if any.
func (b *Buffer) MoveDown() {
	if b.cur.Row < len(b.lines)-1 {
		b.cur.Row++
		b.cur.Col = 0
	}
}

// MoveLeft moves the cursor one byte left within the current line.
func (b *Buffer) MoveLeft() {
	if b.cur.Col > 0 {
		b.cur.Col--
	}
}

// MoveRight moves the cursor one byte right, stopping just past the
// last byte of the current line.
func (b *Buffer) MoveRight() {
	if b.cur.Col < len(b.lines[b.cur.Row]) {
		b.cur.Col++
	}
}

// MoveToStart resets the cursor to the origin. Used for the final
// frame before the terminal mode is restored.
func (b *Buffer) MoveToStart() {
	b.cur = Position{}
}

// Edit Operations

// InsertByte inserts c at the cursor and advances the cursor one
// column. Inserting at the end of the line appends.
func (b *Buffer) InsertByte(c byte) {
	line := b.lines[b.cur.Row]
	if b.cur.Col == len(line) {
		b.lines[b.cur.Row] = append(line, c)
	} else {
		line = append(line, 0)
		copy(line[b.cur.Col+1:], line[b.cur.Col:])
		line[b.cur.Col] = c
		b.lines[b.cur.Row] = line
	}
	b.cur.Col++
}

// Backspace deletes the byte before the cursor. At column 0 of a
// non-first line it joins the current line onto the end of the
// previous one, leaving the cursor at the seam. At the very start of
// the buffer it does nothing.
func (b *Buffer) Backspace() {
	switch {
	case b.cur.Col > 0:
		line := b.lines[b.cur.Row]
		b.lines[b.cur.Row] = append(line[:b.cur.Col-1], line[b.cur.Col:]...)
		b.cur.Col--
	case b.cur.Row > 0:
		prev := b.cur.Row - 1
		seam := len(b.lines[prev])
		b.lines[prev] = append(b.lines[prev], b.lines[b.cur.Row]...)
		b.lines = append(b.lines[:b.cur.Row], b.lines[b.cur.Row+1:]...)
		b.cur.Row = prev
		b.cur.Col = seam
	}
}

// InsertLineBreak splits the current line at the cursor. The bytes at
// and after the cursor move to a new line inserted immediately below;
// a break at end of line inserts an empty line. The cursor moves to
// column 0 of the new line. The buffer grows by exactly one line.
func (b *Buffer) InsertLineBreak() {
	row := b.cur.Row
	line := b.lines[row]

	var rest []byte
	if b.cur.Col < len(line) {
		rest = make([]byte, len(line)-b.cur.Col)
		copy(rest, line[b.cur.Col:])
		b.lines[row] = line[:b.cur.Col]
	}

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = rest

	b.cur.Row = row + 1
	b.cur.Col = 0
}
