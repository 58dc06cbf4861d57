package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantDB, err := expandPath(defaultProgressDB)
	if err != nil {
		t.Fatalf("expandPath(defaultProgressDB) returned error: %v", err)
	}
	if cfg.ProgressDB != wantDB {
		t.Fatalf("ProgressDB = %q, want %q", cfg.ProgressDB, wantDB)
	}
	if !strings.HasPrefix(cfg.DataSource, home) {
		t.Fatalf("DataSource = %q, want it under HOME %q", cfg.DataSource, home)
	}
	if cfg.HintThreshold != defaultHintThreshold {
		t.Fatalf("HintThreshold = %d, want %d", cfg.HintThreshold, defaultHintThreshold)
	}
	if cfg.SwipeThreshold != defaultSwipeThreshold {
		t.Fatalf("SwipeThreshold = %d, want %d", cfg.SwipeThreshold, defaultSwipeThreshold)
	}
	if cfg.ResizeDebounce != defaultResizeDebounce {
		t.Fatalf("ResizeDebounce = %v, want %v", cfg.ResizeDebounce, defaultResizeDebounce)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_source = "  ~/decks/go.yaml  "
progress_db = " ~/state/progress.db "
hint_threshold = 7
swipe_threshold = 12
resize_debounce_ms = 40
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataSource != filepath.Join(home, "decks/go.yaml") {
		t.Fatalf("DataSource = %q, want %q", cfg.DataSource, filepath.Join(home, "decks/go.yaml"))
	}
	if cfg.ProgressDB != filepath.Join(home, "state/progress.db") {
		t.Fatalf("ProgressDB = %q, want %q", cfg.ProgressDB, filepath.Join(home, "state/progress.db"))
	}
	if cfg.HintThreshold != 7 || cfg.SwipeThreshold != 12 {
		t.Fatalf("thresholds = %d/%d, want 7/12", cfg.HintThreshold, cfg.SwipeThreshold)
	}
	if cfg.ResizeDebounce != 40*time.Millisecond {
		t.Fatalf("ResizeDebounce = %v, want 40ms", cfg.ResizeDebounce)
	}
}

func TestLoad_RemoteSourceKeptVerbatim(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`data_source = " https://example.com/data.json "`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataSource != "https://example.com/data.json" {
		t.Fatalf("DataSource = %q, want URL untouched", cfg.DataSource)
	}
}

func TestLoad_NonPositiveValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_source = "   "
hint_threshold = 0
swipe_threshold = -4
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("Load = %#v, want defaults %#v", cfg, want)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`data_source = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestIsRemote(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/a.json": true,
		" HTTP://host/data.yaml":     true,
		"~/data.json":                false,
		"/tmp/http.json":             false,
	}
	for in, want := range cases {
		if got := IsRemote(in); got != want {
			t.Fatalf("IsRemote(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
