package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/huangsam/maturity/internal/workbook"
	"go.uber.org/zap"
)

// defaultDebounce groups the bursts of events editors emit on save.
const defaultDebounce = 300 * time.Millisecond

// Watcher reloads a registry entry when its workbook file changes on disk.
type Watcher struct {
	entryID  string
	path     string
	opts     workbook.Options
	registry *Registry
	logger   *zap.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher for the entry loaded from path.
func NewWatcher(entry *Entry, opts workbook.Options, registry *Registry, logger *zap.Logger) *Watcher {
	return &Watcher{
		entryID:  entry.ID,
		path:     filepath.Clean(entry.Path),
		opts:     opts,
		registry: registry,
		logger:   logger,
		debounce: defaultDebounce,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched so
// that atomic saves (write to temp file, then rename) are seen too.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	w.logger.Info("watching workbook", zap.String("path", w.path))

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fire = time.After(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

// reload keeps the previous workbook when the new file cannot be read,
// which also covers half-written saves.
func (w *Watcher) reload() {
	wb, err := workbook.Load(w.path, w.opts)
	if err != nil {
		w.logger.Warn("workbook reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	entry, ok := w.registry.Replace(w.entryID, wb)
	if !ok {
		w.logger.Warn("workbook entry is gone", zap.String("id", w.entryID))
		return
	}
	w.logger.Info("workbook reloaded",
		zap.String("path", w.path),
		zap.Int("version", entry.Version),
		zap.Int("questions", len(wb.Questions)),
	)
}
