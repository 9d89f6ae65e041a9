package preset

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/cwbudde/simple-eq/param"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the preset at path into store every time the file is
// written or created, until ctx is cancelled. Fields the preset omits take
// their defaults. Invalid presets are logged and skipped; the store keeps
// its previous values.
func Watch(ctx context.Context, path string, store *param.Store, logger *log.Logger) error {
	return WatchFunc(ctx, path, func() error {
		s, err := LoadJSON(path)
		if err != nil {
			return err
		}

		store.Apply(s)

		return nil
	}, logger)
}

// WatchFunc calls reload every time the file at path is written or created,
// until ctx is cancelled. A reload error is logged and watching continues.
func WatchFunc(ctx context.Context, path string, reload func() error, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("preset: create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it, which drops a watch on the file itself.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("preset: watch %s: %w", filepath.Dir(target), err)
	}

	const reloadOps = fsnotify.Write | fsnotify.Create

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target || event.Op&reloadOps == 0 {
				continue
			}

			if err := reload(); err != nil {
				logger.Printf("preset: reload skipped: %v", err)
				continue
			}

			logger.Printf("preset: reloaded %s", target)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Printf("preset: watch error: %v", err)
		}
	}
}
