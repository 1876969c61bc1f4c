package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/taskdown/document"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoad_NoConfigFiles(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	mode, err := cfg.Mode()
	if err != nil || mode != document.FormatRaw {
		t.Errorf("Mode() = %q, %v, want raw, nil", mode, err)
	}
	if got := cfg.SoonWindow(); got != DefaultSoonWindowDays {
		t.Errorf("SoonWindow() = %d, want %d", got, DefaultSoonWindowDays)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, "taskdown.toml"), `
[format]
mode = "normalized"

[diagnostics]
soon-window-days = 3
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	mode, err := cfg.Mode()
	if err != nil || mode != document.FormatNormalized {
		t.Errorf("Mode() = %q, %v, want normalized, nil", mode, err)
	}
	if got := cfg.SoonWindow(); got != 3 {
		t.Errorf("SoonWindow() = %d, want 3", got)
	}
}

func TestLoad_GlobalConfig(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, filepath.Join(home, ".config", "taskdown", "config.toml"), `
[format]
mode = "normalized"
`)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	mode, err := cfg.Mode()
	if err != nil || mode != document.FormatNormalized {
		t.Errorf("Mode() = %q, %v, want normalized, nil", mode, err)
	}
}

func TestLoad_ProjectOverridesGlobalPerField(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, filepath.Join(home, ".config", "taskdown", "config.toml"), `
[format]
mode = "normalized"

[diagnostics]
soon-window-days = 14
`)

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, "taskdown.toml"), `
[format]
mode = "raw"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	mode, err := cfg.Mode()
	if err != nil || mode != document.FormatRaw {
		t.Errorf("Mode() = %q, %v, want raw, nil", mode, err)
	}
	if got := cfg.SoonWindow(); got != 14 {
		t.Errorf("SoonWindow() = %d, want 14", got)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, "taskdown.toml"), "not valid toml [[[")

	if _, err := Load(dir); err == nil {
		t.Error("Load err = nil, want parse error")
	}
}

func TestConfigMode(t *testing.T) {
	tests := []struct {
		value string
		want  document.FormatMode
		ok    bool
	}{
		{"", document.FormatRaw, true},
		{"raw", document.FormatRaw, true},
		{"normalized", document.FormatNormalized, true},
		{"Normalized", document.FormatNormalized, true},
		{"  raw  ", document.FormatRaw, true},
		{"pretty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := Config{Format: Format{Mode: tt.value}}
			mode, err := cfg.Mode()
			if (err == nil) != tt.ok {
				t.Fatalf("Mode() err = %v, want ok=%v", err, tt.ok)
			}
			if mode != tt.want {
				t.Errorf("Mode() = %q, want %q", mode, tt.want)
			}
		})
	}
}

func TestConfigSoonWindow(t *testing.T) {
	tests := []struct {
		value int
		want  int
	}{
		{0, DefaultSoonWindowDays},
		{-1, DefaultSoonWindowDays},
		{3, 3},
	}

	for _, tt := range tests {
		cfg := Config{Diagnostics: Diagnostics{SoonWindowDays: tt.value}}
		if got := cfg.SoonWindow(); got != tt.want {
			t.Errorf("SoonWindow(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
