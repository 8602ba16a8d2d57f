package term

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// ErrNotTerminal indicates the file descriptor is not a terminal
// device, so its mode cannot be changed.
var ErrNotTerminal = errors.New("not a terminal")

// Mode holds the pre-raw terminal state needed to hand the device
// back. Obtained from EnterRaw; Restore must be called exactly once on
// every exit path.
type Mode struct {
	fd    int
	saved unix.Termios
}

// EnterRaw switches the device into raw input mode: canonical line
// processing and local echo off, reads returning as soon as at least
// one byte is available, no read timeout. The returned Mode restores
// the prior state.
func EnterRaw(fd int) (*Mode, error) {
	if !xterm.IsTerminal(fd) {
		return nil, fmt.Errorf("fd %d: %w", fd, ErrNotTerminal)
	}

	tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}
	m := &Mode{fd: fd, saved: *tio}

	raw := *tio
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}
	return m, nil
}

// Restore puts the device back into the mode it was in before
// EnterRaw, re-enabling canonical processing and echo.
func (m *Mode) Restore() error {
	if err := unix.IoctlSetTermios(m.fd, ioctlWriteTermios, &m.saved); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return nil
}
