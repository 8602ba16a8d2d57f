package editor

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out, LogLevelWarn)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept warn")
	l.Error("kept error")

	got := out.String()
	if strings.Contains(got, "dropped") {
		t.Errorf("expected low-level messages to be filtered, got %q", got)
	}
	if !strings.Contains(got, "kept warn") || !strings.Contains(got, "kept error") {
		t.Errorf("expected warn and error messages, got %q", got)
	}
}

func TestLoggerFormat(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out, LogLevelDebug)

	l.Info("value is %d", 42)

	got := out.String()
	if !strings.Contains(got, "[INFO] scrawl: value is 42") {
		t.Errorf("unexpected log line %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("expected log line to end with newline")
	}
}

func TestNilOutputDisablesLogger(t *testing.T) {
	l := NewLogger(nil, LogLevelDebug)

	// Must not panic and must stay silent.
	l.Error("nobody listens")
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}
