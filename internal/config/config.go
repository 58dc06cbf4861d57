package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings cram reads from config.toml.
type Config struct {
	DataSource     string
	ProgressDB     string
	LogFile        string
	HintThreshold  int
	SwipeThreshold int
	ResizeDebounce time.Duration
}

const (
	defaultConfigPath     = "~/.config/cram/config.toml"
	defaultDataSource     = "~/.config/cram/data.json"
	defaultProgressDB     = "~/.local/share/cram/progress.db"
	defaultLogFile        = "~/.local/share/cram/cram.log"
	defaultHintThreshold  = 3
	defaultSwipeThreshold = 8
	defaultResizeDebounce = 150 * time.Millisecond
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		DataSource:     mustExpand(defaultDataSource),
		ProgressDB:     mustExpand(defaultProgressDB),
		LogFile:        mustExpand(defaultLogFile),
		HintThreshold:  defaultHintThreshold,
		SwipeThreshold: defaultSwipeThreshold,
		ResizeDebounce: defaultResizeDebounce,
	}
}

// Load locates and parses the cram config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataSource       string `toml:"data_source"`
		ProgressDB       string `toml:"progress_db"`
		LogFile          string `toml:"log_file"`
		HintThreshold    int    `toml:"hint_threshold"`
		SwipeThreshold   int    `toml:"swipe_threshold"`
		ResizeDebounceMS int    `toml:"resize_debounce_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if src := strings.TrimSpace(raw.DataSource); src != "" {
		cfg.DataSource = ExpandSource(src)
	}
	if db := strings.TrimSpace(raw.ProgressDB); db != "" {
		cfg.ProgressDB = mustExpand(db)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.HintThreshold > 0 {
		cfg.HintThreshold = raw.HintThreshold
	}
	if raw.SwipeThreshold > 0 {
		cfg.SwipeThreshold = raw.SwipeThreshold
	}
	if raw.ResizeDebounceMS > 0 {
		cfg.ResizeDebounce = time.Duration(raw.ResizeDebounceMS) * time.Millisecond
	}

	return cfg, nil
}

// ExpandSource expands a local data source path. URLs are returned untouched.
func ExpandSource(source string) string {
	trimmed := strings.TrimSpace(source)
	if IsRemote(trimmed) {
		return trimmed
	}
	return mustExpand(trimmed)
}

// IsRemote reports whether source points at an http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
