// File: watch.go
// Title: Configuration File Watching
// Description: Reloads a file-backed Config when the file changes on disk and
//              notifies registered change handlers with the old and new state.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-04
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-04 v0.1.0: Initial polling implementation
// - 2026-10-12 v0.2.0: Replaced polling with fsnotify

package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/log"
)

type watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// Watch starts reloading the configuration when its file changes. It is a
// no-op when the config is already being watched.
func (c *Config) Watch() error {
	return c.startWatching()
}

func (c *Config) startWatching() error {
	if c.filePath == "" {
		return exterr.New("cannot watch a configuration without a file").
			WithCode(exterr.CodeInvalidArgument).
			WithOperation("config.Watch")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return exterr.Wrap(err, "failed to create file watcher").
			WithCode(exterr.CodeIOFailed).
			WithOperation("config.Watch")
	}

	// Editors often replace the file instead of writing it, so the directory
	// is watched and events are filtered by name.
	dir := filepath.Dir(c.filePath)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return exterr.Wrap(err, "failed to watch config directory").
			WithCode(exterr.CodeIOFailed).
			WithOperation("config.Watch").
			WithDetail("directory", dir)
	}

	w := &watcher{fs: fw, done: make(chan struct{})}
	c.watcher = w
	w.wg.Add(1)
	go c.watchLoop(w)

	c.logger.Debug("watching config file", log.Fields{"file": c.filePath})
	return nil
}

func (c *Config) watchLoop(w *watcher) {
	defer w.wg.Done()

	target := filepath.Clean(c.filePath)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := c.reload(); err != nil {
				c.logger.LogError(err)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			c.logger.WarnWithErr("config watcher error", err)
		}
	}
}

// StopWatching stops the file watcher and waits for it to exit
func (c *Config) StopWatching() {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w == nil {
		return
	}
	w.once.Do(func() {
		close(w.done)
		_ = w.fs.Close()
	})
	w.wg.Wait()
}

// Reload re-reads the configuration file and notifies change handlers
func (c *Config) Reload() error {
	return c.reload()
}

func (c *Config) reload() error {
	if c.filePath == "" {
		return exterr.New("configuration was not loaded from a file").
			WithCode(exterr.CodeInvalidArgument).
			WithOperation("config.Reload")
	}

	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return exterr.Wrap(err, "failed to read config file").
			WithCode(exterr.CodeConfigError).
			WithOperation("config.Reload").
			WithDetail("filePath", c.filePath)
	}

	data, err := parseContent(content, c.format)
	if err != nil {
		// a half-written file keeps the previous configuration
		return exterr.Wrap(err, "failed to parse config file").
			WithCode(exterr.CodeInvalidFormat).
			WithOperation("config.Reload").
			WithDetail("filePath", c.filePath)
	}

	c.mu.Lock()
	old := &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
		logger:    c.logger,
	}
	c.data = data
	handlers := make([]ChangeHandler, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	c.logger.Info("config reloaded", log.Fields{"file": c.filePath})
	for _, handler := range handlers {
		handler(old, c)
	}
	return nil
}
