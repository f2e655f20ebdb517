package logging

import (
	"bytes"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"nonsense", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if bytes.Contains([]byte(out), []byte("hidden")) {
		t.Errorf("info message should be filtered, got %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("shown")) {
		t.Errorf("warn message missing, got %q", out)
	}
}

func TestFor_TagsSubsystem(t *testing.T) {
	var buf bytes.Buffer
	For(New(LevelDebug, &buf), "panel").Debug("opened")

	if !bytes.Contains(buf.Bytes(), []byte("subsystem=panel")) {
		t.Errorf("expected subsystem attribute, got %q", buf.String())
	}
}
