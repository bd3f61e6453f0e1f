// Package watch binds the upload handler to files appearing in a directory.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"imgupload/internal/service"
	"imgupload/internal/source"
)

// Binder triggers one upload per regular file created in a directory.
type Binder struct {
	dir     string
	handler service.UploadHandler
	logger  *slog.Logger

	ready    chan struct{}
	inFlight sync.WaitGroup
}

// NewBinder creates a Binder for dir. Nothing is watched until Run is called.
func NewBinder(dir string, handler service.UploadHandler, logger *slog.Logger) *Binder {
	return &Binder{
		dir:     dir,
		handler: handler,
		logger:  logger.With("dir", dir),
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the directory is being watched.
func (b *Binder) Ready() <-chan struct{} {
	return b.ready
}

// Run watches the directory until ctx is cancelled, then waits for uploads
// it started to finish.
func (b *Binder) Run(ctx context.Context) error {
	info, err := os.Stat(b.dir)
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch directory: %s is not a directory", b.dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(b.dir); err != nil {
		return fmt.Errorf("watching %s: %w", b.dir, err)
	}
	close(b.ready)
	b.logger.Info("watching for new images")

	defer b.inFlight.Wait()
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				b.selected(ctx, event.Name)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.logger.Warn("watcher error", "error", werr)
		}
	}
}

// selected mirrors a file picker change: each new file is one selection.
func (b *Binder) selected(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}
	file, err := source.NewLocalFile(path)
	if err != nil {
		b.logger.Warn("skipping file", "path", path, "error", err)
		return
	}

	b.inFlight.Add(1)
	done := b.handler.Trigger(ctx, file)
	go func() {
		defer b.inFlight.Done()
		<-done
	}()
}
