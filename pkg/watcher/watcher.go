package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file and triggers a callback when it
// changes, debounced so editors that write in bursts only cause one
// reload.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
}

// New creates a file watcher with the given debounce interval.
func New(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		debounce: debounce,
	}, nil
}

// Watch starts watching the given file. callback is called with the
// file path after each debounced change. Watching a second file
// replaces the first.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.path != "" {
		if err := fw.watcher.Remove(fw.path); err != nil {
			return fmt.Errorf("failed to unwatch %s: %w", fw.path, err)
		}
	}

	if err := fw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	fw.path = absPath
	fw.callback = callback
	return nil
}

// Start begins delivering change events.
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					fw.handleChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

func (fw *FileWatcher) handleChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if path != fw.path || fw.callback == nil {
		return
	}

	if fw.timer != nil {
		fw.timer.Stop()
	}

	callback := fw.callback
	fw.timer = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
