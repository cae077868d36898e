// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package watch reruns a callback when a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before the callback runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes a single file.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	Debounce time.Duration
	Logger   *slog.Logger
}

// New starts watching path. Events are buffered until Run is called.
func New(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so replaced files are still seen.
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &Watcher{
		path:     absPath,
		watcher:  w,
		Debounce: DefaultDebounce,
		Logger:   slog.Default(),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run calls onChange after each burst of writes to the file until ctx is
// done. Callback errors are logged and do not stop the loop. Calls never
// overlap. Run closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	defer w.watcher.Close() //nolint:errcheck

	timer := time.NewTimer(w.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if absPath, _ := filepath.Abs(event.Name); absPath != w.path {
				continue
			}
			timer.Reset(w.Debounce)
		case <-timer.C:
			w.Logger.Info("file changed", "path", w.path)
			if err := onChange(ctx); err != nil {
				w.Logger.Error("regeneration failed", "path", w.path, "error", err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watcher error", "error", err)
		}
	}
}
