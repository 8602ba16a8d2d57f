// Package editor ties the buffer, decoder, and renderer into one
// interactive editing session.
//
// A Session runs a single-threaded blocking event loop: read one byte,
// decode it, apply the event to the buffer, repaint. The only
// suspension point is the byte read; everything else runs to
// completion before the next read, so a frame always reflects the
// buffer exactly as of the most recently processed event.
package editor
