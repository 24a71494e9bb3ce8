package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "configs", "config.toml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Rate() != 0.05 {
		t.Errorf("Rate() = %v, want 0.05", cfg.Rate())
	}
	if cfg.UI.Mode != UIModeAuto {
		t.Errorf("UI.Mode = %q", cfg.UI.Mode)
	}

	// Nothing may be written when the config is absent.
	if _, err := os.Stat(filepath.Join(dir, "configs")); !os.IsNotExist(err) {
		t.Errorf("config directory should not be created, stat err = %v", err)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := writeConfig(t, `
[model]
interest_rate = 0.0

[ui]
mode = "plain"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Rate() != 0 {
		t.Errorf("explicit zero interest rate was replaced: %v", cfg.Rate())
	}
	if cfg.UI.Mode != UIModePlain {
		t.Errorf("UI.Mode = %q, want plain", cfg.UI.Mode)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"ui mode", "[ui]\nmode = \"fancy\"\n", "ui.mode"},
		{"log level", "[log]\nlevel = \"chatty\"\n", "log.level"},
		{"syntax", "[model\ninterest_rate = 1\n", "failed to load config file"},
		{"output file override", "[output]\nfile = \"other.xlsx\"\n", "unknown keys"},
		{"misspelled key", "[model]\ninterest = 0.1\n", "model.interest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestEncodeDefaults(t *testing.T) {
	var b strings.Builder
	if err := Encode(&b, Default()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := b.String()
	for _, want := range []string{"[model]", "interest_rate = 0.05", `level = "warn"`, `mode = "auto"`} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded config missing %q:\n%s", want, out)
		}
	}
}
