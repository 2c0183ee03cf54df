package internal

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/honicky/anndata-duckdb-extension/config"
)

// FixtureWatcher keeps the catalog in sync with the serving root in real
// time. It is purely advisory: range serving stats files per request and
// works the same whether or not the watcher is running.
type FixtureWatcher struct {
	catalog *Catalog
	watcher *fsnotify.Watcher
	root    string
	logger  *Logger

	eventCount atomic.Int64
	errorCount atomic.Int64
}

// NewFixtureWatcher creates a watcher over the serving root.
func NewFixtureWatcher(catalog *Catalog, root string) (*FixtureWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FixtureWatcher{
		catalog: catalog,
		watcher: watcher,
		root:    root,
		logger:  NewLogger(INFO, "[WATCHER]", os.Stdout),
	}, nil
}

// Start begins monitoring the serving root for changes.
func (fw *FixtureWatcher) Start() error {
	fw.logger.Info("watching %s", fw.root)

	if err := fw.watcher.Add(fw.root); err != nil {
		return err
	}
	if err := fw.addSubdirectories(fw.root); err != nil {
		fw.logger.Warn("failed to add some subdirectories: %v", err)
	}

	go fw.processEvents()
	return nil
}

// addSubdirectories recursively adds all subdirectories to the watcher
func (fw *FixtureWatcher) addSubdirectories(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries, keep walking
		}
		if d.IsDir() {
			if err := fw.watcher.Add(path); err != nil {
				fw.logger.Warn("could not watch directory %s: %v", path, err)
			}
		}
		return nil
	})
}

// processEvents handles file system events
func (fw *FixtureWatcher) processEvents() {
	defer func() {
		if r := recover(); r != nil {
			fw.logger.Error("watcher event loop panicked: %v", r)
		}
	}()

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				fw.logger.Info("events channel closed")
				return
			}
			fw.handleEvent(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				fw.logger.Info("errors channel closed")
				return
			}
			fw.errorCount.Add(1)
			fw.logger.Error("watcher error: %v", err)
		}
	}
}

// handleEvent processes a single file system event
func (fw *FixtureWatcher) handleEvent(event fsnotify.Event) {
	fw.eventCount.Add(1)

	switch {
	case event.Has(fsnotify.Create):
		// New directories need their own watch; new files go straight
		// into the catalog.
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := fw.watcher.Add(event.Name); err != nil {
				fw.logger.Warn("could not watch new directory %s: %v", event.Name, err)
			}
			return
		}
		fw.catalog.Update(event.Name)

	case event.Has(fsnotify.Write):
		// Generators write fixtures incrementally; wait for the file
		// to settle before recording its size.
		go func(path string) {
			time.Sleep(config.FileStabilityDelay)
			fw.catalog.Update(path)
		}(event.Name)

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		fw.catalog.Update(event.Name)
	}
}

// HealthStats returns counters for the watcher health endpoint.
func (fw *FixtureWatcher) HealthStats() map[string]any {
	return map[string]any{
		"total_events": fw.eventCount.Load(),
		"error_count":  fw.errorCount.Load(),
		"root":         fw.root,
	}
}

// Stop stops the watcher.
func (fw *FixtureWatcher) Stop() error {
	return fw.watcher.Close()
}
