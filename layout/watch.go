package layout

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watch reloads the layout file at path whenever it changes and passes the
// new layout to fn. Files that fail to load are logged and ignored, so the
// caller keeps its previous layout. Watch returns once the watcher is set up;
// watching stops when ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger, fn func(*Layout)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve layout path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory containing the layout file
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go watchLoop(ctx, watcher, abs, logger, fn)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, logger *slog.Logger, fn func(*Layout)) {
	defer watcher.Close()

	var debounce *time.Timer
	reload := make(chan struct{}, 1)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			l, err := Load(path)
			if err != nil {
				logger.Warn("layout reload failed, keeping previous layout", "path", path, "error", err)
				continue
			}
			logger.Info("layout reloaded", "path", path, "layout", l.Name())
			fn(l)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("layout watcher error", "error", err)
		}
	}
}
