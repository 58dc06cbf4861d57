package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cram/internal/config"
	"github.com/five82/cram/internal/prefs"
	"github.com/five82/cram/internal/progress"
	"github.com/five82/cram/internal/ui"
)

// Options configure the cram application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cram/prefs.toml
	DataSource string // overrides data_source from the config
}

// Run boots the cram TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load cram config: %w", err)
	}
	if src := strings.TrimSpace(opts.DataSource); src != "" {
		cfg.DataSource = config.ExpandSource(src)
	}

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	kv, closeKV := openStore(cfg.ProgressDB)
	defer closeKV()

	uiOpts := ui.Options{
		Context:      ctx,
		Source:       cfg.DataSource,
		Tracker:      progress.NewTracker(kv),
		Config:       cfg,
		Prefs:        userPrefs,
		PrefsPath:    opts.PrefsPath,
		Capabilities: ui.DetectCapabilities(),
	}
	return ui.Run(uiOpts)
}

// setupLogging sends the standard logger to the log file; the terminal belongs
// to the UI. When the file can't be opened, log output is discarded.
func setupLogging(path string) func() {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := tea.LogToFile(path, "cram"); err == nil {
			return func() { _ = f.Close() }
		}
	}
	log.SetOutput(io.Discard)
	return func() {}
}

// openStore opens the SQLite progress store. If that fails, progress is kept
// in memory for this session only.
func openStore(path string) (progress.KV, func()) {
	db, err := progress.OpenSQLite(path)
	if err != nil {
		log.Printf("progress store unavailable, using memory: %v", err)
		return progress.NewMemoryKV(), func() {}
	}
	return db, func() {
		if err := db.Close(); err != nil {
			log.Printf("close progress store: %v", err)
		}
	}
}
