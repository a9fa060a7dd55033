// Package watch turns a markup file into a ready signal: every time the file is rewritten,
// the stream list is read again and handed to the registered callbacks.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/streamsift/streamsift/filesystem"
	"github.com/streamsift/streamsift/log"
	"github.com/streamsift/streamsift/page"
	"github.com/streamsift/streamsift/stream"
)

// Loader reads a snapshot from path.
type Loader func(path string) (stream.Snapshot, error)

// Watcher signals readiness of the stream list stored in a file.
type Watcher struct {
	path     string
	debounce time.Duration
	load     Loader
	ready    []func(stream.Snapshot)
}

// New watches path. Bursts of writes closer than debounce are collapsed into one read.
func New(path string, debounce time.Duration) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		load:     page.ReadFile,
	}
}

// WithLoader replaces the function used to read the file.
func (w *Watcher) WithLoader(load Loader) *Watcher {
	w.load = load
	return w
}

// OnReady registers fn to receive every snapshot read from the file.
func (w *Watcher) OnReady(fn func(stream.Snapshot)) {
	w.ready = append(w.ready, fn)
}

func (w *Watcher) emit() {
	snapshot, err := w.load(w.path)
	if err != nil {
		log.Warnf("read %s: %v", w.path, err)
		return
	}

	// An empty list is the host still rendering; wait for the next write.
	if len(snapshot.Entries) == 0 {
		log.Debugf("%s has no streams yet", w.path)
		return
	}

	for _, fn := range w.ready {
		fn(snapshot)
	}
}

// Run reads the file once, then again after every change, until ctx is done.
// The parent directory is watched so editors that replace the file are followed.
func (w *Watcher) Run(ctx context.Context) error {
	if !filesystem.Watchable() {
		return errors.New("watching needs the os filesystem")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	w.emit()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			pending = timer.C
		case <-pending:
			pending = nil
			w.emit()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch %s: %v", w.path, err)
		}
	}
}
