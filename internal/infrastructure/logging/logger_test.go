package logging

import (
	"log/slog"
	"testing"

	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New(config.LoggingConfig{
		Level:  "debug",
		Format: "text",
		Output: "stderr",
	}, "1.0.0")

	if logger == nil || logger.Logger == nil {
		t.Fatal("New() returned a nil logger")
	}
}

func TestWith(t *testing.T) {
	logger := Default()
	derived := logger.With("component", "test")

	if derived == nil || derived.Logger == nil {
		t.Fatal("With() returned a nil logger")
	}
	if derived == logger {
		t.Error("With() should return a new logger instance")
	}
}
