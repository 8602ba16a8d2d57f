package render

import (
	"bytes"
	"io"
	"os"
)

// Surface is the byte sink the renderer draws to. Write and Flush are
// paired: the renderer flushes after every logical write so the display
// never sits on a partial frame.
type Surface interface {
	io.Writer
	Flush() error
}

// TTYSurface adapts a terminal device file to the Surface interface.
// File writes are unbuffered, so Flush has nothing to do.
type TTYSurface struct {
	f *os.File
}

// NewTTYSurface wraps the given terminal device file.
func NewTTYSurface(f *os.File) *TTYSurface {
	return &TTYSurface{f: f}
}

func (s *TTYSurface) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (s *TTYSurface) Flush() error {
	return nil
}

// MemorySurface is an in-memory Surface for tests. It records every
// byte written and counts flushes.
type MemorySurface struct {
	buf     bytes.Buffer
	flushes int
}

// NewMemorySurface returns an empty in-memory surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{}
}

func (s *MemorySurface) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

func (s *MemorySurface) Flush() error {
	s.flushes++
	return nil
}

// String returns everything written so far.
func (s *MemorySurface) String() string {
	return s.buf.String()
}

// Flushes returns the number of Flush calls so far.
func (s *MemorySurface) Flushes() int {
	return s.flushes
}

// Reset discards recorded writes and the flush count.
func (s *MemorySurface) Reset() {
	s.buf.Reset()
	s.flushes = 0
}
