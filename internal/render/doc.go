// Package render paints the text buffer to a terminal using ANSI
// control sequences.
//
// The renderer draws through the Surface interface so it can be tested
// against an in-memory sink instead of a real terminal. Every logical
// write is flushed immediately, and every render is a full repaint:
// clear the screen, write each line at its row, place the cursor.
package render
