// Package textbuf provides the editor's in-memory text buffer: an ordered
// sequence of byte-oriented lines plus the logical cursor.
//
// The buffer is purely byte-oriented — one byte is one column. It always
// contains at least one line, and every operation keeps the cursor in
// range, so callers never see an empty buffer or an out-of-range cursor.
//
// The buffer performs no I/O and none of its operations can fail; edge
// cases (backspace at the origin, movement at a boundary) are defined
// no-ops.
package textbuf
