package term

import (
	"errors"
	"os"
	"testing"
)

func TestEnterRawRejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe failed: %v", err)
	}
	defer r.Close()
	defer w.Close()

	_, err = EnterRaw(int(r.Fd()))

	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("expected ErrNotTerminal, got %v", err)
	}
}
