// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

// watchReadyHook is called when Watch starts listening for changes. Used in
// tests.
var watchReadyHook func()

// Watch converts the icons and then converts them again each time one of the
// SVG sources changes, until ctx is canceled.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()

	logger.Info(ctx, "performing an initial conversion")
	if _, err := Convert(ctx, c); err != nil {
		logger.Error(ctx, "initial conversion failed", slog.Any("err", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(c.Dir); err != nil {
		return err
	}

	// Editors tend to save in several steps; wait for them to settle.
	var (
		mu      sync.Mutex
		stopped bool
	)
	debouncer := newDebouncer(250*time.Millisecond, func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped || ctx.Err() != nil {
			return
		}
		logger.Info(ctx, "triggering conversion")
		if _, err := Convert(ctx, c); err != nil {
			logger.Error(ctx, "failed to convert icons", slog.Any("err", err))
		}
	})
	defer func() {
		debouncer.Stop()
		// Wait for a conversion that is already running.
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()

	logger.Info(ctx, "started watching for new changes", slog.String("dir", c.Dir))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldConvert(c.Sizes, event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling conversion",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher failed", slog.Any("err", err))
		case <-ctx.Done():
			logger.Info(ctx, "stopped watching")
			return nil
		}
	}
}

// shouldConvert reports whether an event on path affects one of the sources
// for sizes.
func shouldConvert(sizes []int, path string, op fsnotify.Op) bool {
	base := filepath.Base(path)
	if !slices.ContainsFunc(sizes, func(size int) bool { return SourceName(size) == base }) {
		return false
	}
	// Renames produce a following create event, and chmod doesn't change
	// the picture.
	return op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove) != 0
}

type debouncer struct {
	mu sync.Mutex
	d  time.Duration
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a scheduled execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}
