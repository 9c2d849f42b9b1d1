// Package watch re-runs a callback whenever a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// DefaultDebounce is how long the watcher waits after the last change before
// firing, so editors that write in several steps trigger one run.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called with the watched path after each settled change.
type ChangeFunc func(ctx context.Context, path string)

// Watcher monitors one file.
type Watcher struct {
	path     string
	onChange ChangeFunc
	debounce time.Duration
	log      logr.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger sets the logger for watch events.
func WithLogger(lgr logr.Logger) Option {
	return func(w *Watcher) {
		w.log = lgr
	}
}

// New creates a Watcher for path.
func New(path string, onChange ChangeFunc, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	w := &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run watches until ctx is cancelled. The parent directory is watched rather
// than the file, so editors that replace the file by rename keep working.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil {
			w.log.Error(cerr, "close file watcher")
		}
	}()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}
	w.log.Info("watching config file", "path", w.path)

	name := filepath.Base(w.path)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				w.log.V(1).Info("config file changed", "op", event.Op.String())
				timer.Reset(w.debounce)
			case event.Has(fsnotify.Remove):
				w.log.Info("config file removed", "path", w.path)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "file watcher error")
		case <-timer.C:
			w.onChange(ctx, w.path)
		}
	}
}
