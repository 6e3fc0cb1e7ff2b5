package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("LevelFiltering", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, "test")
		l.SetLevel(LogLevelWarn)

		l.Debug("hidden")
		l.Info("hidden")
		l.Warn("shown")
		l.Error("shown too")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("messages below the level must be suppressed")
		}
		if !strings.Contains(out, "shown") || !strings.Contains(out, "shown too") {
			t.Error("messages at or above the level must appear")
		}
	})

	t.Run("Off", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, "test")
		l.SetLevel(LogLevelOff)
		l.Error("anything")
		if buf.Len() != 0 {
			t.Error("LogLevelOff must silence everything")
		}
	})

	t.Run("Format", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, "gain")
		l.Info("block of %d frames", 512)

		out := buf.String()
		if !strings.Contains(out, "[INFO] [gain] block of 512 frames") {
			t.Errorf("unexpected line: %q", out)
		}
		if !strings.HasSuffix(out, "\n") {
			t.Error("lines must be newline terminated")
		}
	})
}

func TestLogLevelString(t *testing.T) {
	levels := map[LogLevel]string{
		LogLevelDebug: "DEBUG",
		LogLevelInfo:  "INFO",
		LogLevelWarn:  "WARN",
		LogLevelError: "ERROR",
	}
	for level, want := range levels {
		if level.String() != want {
			t.Errorf("level %d: expected %q, got %q", level, want, level.String())
		}
	}
}
