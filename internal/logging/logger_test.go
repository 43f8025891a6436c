package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}

	for raw, expected := range cases {
		if got := parseLevel(raw); got != expected {
			t.Fatalf("%q expected %v, got %v", raw, expected, got)
		}
	}
}

func TestNewLoggerReturnsUsableLogger(t *testing.T) {
	logger := NewLogger(Config{Level: "debug", Service: "phillies-updater", Version: "test"})
	if logger == nil {
		t.Fatalf("expected a logger")
	}
	// Must not panic with attrs attached.
	logger.Debug("hello", slog.String(FieldDate, "2024-07-01"))

	jsonLogger := NewLogger(Config{Format: "json"})
	if jsonLogger == nil {
		t.Fatalf("expected a json logger")
	}
}
