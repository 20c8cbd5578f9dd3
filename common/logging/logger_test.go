package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ariel-systems/ariel-bridge/common/middleware"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		logger := New(slog.LevelInfo, format)
		if logger == nil || logger.Logger == nil {
			t.Fatalf("New(%q) returned nil logger", format)
		}
	}
}

func TestWithContext_NoRequestID(t *testing.T) {
	logger := New(slog.LevelInfo, "json")
	if got := logger.WithContext(context.Background()); got != logger.Logger {
		t.Error("expected the unchanged logger when no request ID is present")
	}
}

func TestWithContext_RequestID(t *testing.T) {
	logger := New(slog.LevelInfo, "json")
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")

	if got := logger.WithContext(ctx); got == logger.Logger {
		t.Error("expected a derived logger carrying the request ID")
	}
}

func TestWith(t *testing.T) {
	logger := New(slog.LevelInfo, "json")
	derived := logger.With(Service("bridge"))
	if derived == nil || derived.Logger == logger.Logger {
		t.Error("expected With to return a derived logger")
	}
}
