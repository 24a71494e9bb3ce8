package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mergermodel.log")

	closer, err := Init("info", path)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("deal computed", "status", "Accretive")
	Debug("hidden at info level")

	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "deal computed") || !strings.Contains(content, "status=Accretive") {
		t.Errorf("log file missing info record: %q", content)
	}
	if strings.Contains(content, "hidden at info level") {
		t.Errorf("debug record should be filtered out: %q", content)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if _, err := Init("loud", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
