// Package watcher reports debounced changes to individual files.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/shellview/internal/logger"
)

// FileWatcher watches files for changes and triggers callbacks.
// Parent directories are watched rather than the files themselves so that
// editors which save by renaming a temp file are still noticed.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]int
	debounce  time.Duration
	timers    map[string]*time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// NewFileWatcher creates a new file watcher.
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   w,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		done:      make(chan struct{}),
	}, nil
}

// Watch registers callback for each file. The callback receives the
// absolute path and runs on a timer goroutine.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		if _, exists := fw.callbacks[absPath]; !exists {
			fw.dirs[dir]++
		}
		fw.callbacks[absPath] = callback
		logger.Debug("watching file", zap.String("path", absPath))
	}

	return nil
}

// Start begins delivering events in a background goroutine.
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case <-fw.done:
				return

			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					fw.handleFileChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", zap.Error(err))
			}
		}
	}()
}

// handleFileChange restarts the debounce timer for filePath.
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	filePath = filepath.Clean(filePath)
	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		select {
		case <-fw.done:
			return
		default:
		}
		callback(filePath)
	})
}

// Close stops the watcher and any pending callbacks.
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		close(fw.done)
		fw.mu.Lock()
		for _, t := range fw.timers {
			t.Stop()
		}
		fw.mu.Unlock()
		err = fw.watcher.Close()
	})
	return err
}
