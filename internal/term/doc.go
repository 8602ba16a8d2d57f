// Package term controls the input device's terminal mode.
//
// EnterRaw disables canonical line processing and local echo so the
// editor receives keystrokes one byte at a time, and saves the prior
// termios state so Restore can hand the terminal back exactly as it
// was found. Restore must run on every exit path; a terminal left in
// raw mode is unusable for the next program.
package term
