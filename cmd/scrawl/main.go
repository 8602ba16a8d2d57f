// Package main is the entry point for the scrawl editor.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jfelder/scrawl/internal/editor"
	"github.com/jfelder/scrawl/internal/render"
	"github.com/jfelder/scrawl/internal/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	mode, err := term.EnterRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to enter raw mode: %v\n", err)
		return 1
	}

	// Raw mode here leaves ISIG enabled, so an interrupt can still kill
	// the process. Restore the terminal first; otherwise the shell is
	// left in raw mode.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		_ = mode.Restore()
		os.Exit(0)
	}()

	session := editor.New(os.Stdin, render.NewTTYSurface(os.Stdout))

	// Shutdown order: final frame with the cursor homed (inside Run),
	// terminal mode restoration, then screen clear. Restoration runs
	// even when the session failed on the output path.
	runErr := session.Run()

	if err := mode.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to restore terminal: %v\n", err)
	}
	if err := session.ClearScreen(); err != nil && runErr == nil {
		runErr = err
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}
