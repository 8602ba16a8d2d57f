package editor

import "errors"

// Session errors.
var (
	// ErrAlreadyRunning indicates Run was called on a session whose
	// loop is still active.
	ErrAlreadyRunning = errors.New("session already running")
)
