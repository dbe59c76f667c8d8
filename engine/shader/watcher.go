package shader

import (
	"context"
	"fmt"
	"log"
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	defaultDebounce   = 100 * time.Millisecond
	defaultBufferSize = 16
)

// watcher is the implementation of the Watcher interface.
type watcher struct {
	mu sync.Mutex

	fs         *fsnotify.Watcher
	debounce   time.Duration
	bufferSize int
	changes    chan string

	// files maps absolute file paths to the keys that depend on them.
	files map[string]map[string]struct{}

	// dirs holds the directories registered with fsnotify. Directories are watched
	// instead of files because editors often save by replacing the file.
	dirs map[string]struct{}
}

// Watcher reports shader source changes on disk. Several files may map to one key,
// typically a program name and every file its shaders include.
type Watcher interface {
	// Watch registers paths under key. Calling Watch again for the same key adds paths.
	//
	// Parameters:
	//   - key: the key delivered on Changes when any of paths change
	//   - paths: the files to watch
	//
	// Returns:
	//   - error: an error if a file's directory cannot be watched
	Watch(key string, paths ...string) error

	// Changes returns the channel keys are delivered on. A burst of writes within the
	// debounce window delivers each affected key once. The channel is closed when Run returns.
	//
	// Returns:
	//   - <-chan string: the changed keys
	Changes() <-chan string

	// Run processes file system events until ctx is cancelled or the watcher is closed.
	// It must be called once.
	//
	// Parameters:
	//   - ctx: cancellation for the event loop
	//
	// Returns:
	//   - error: nil on cancellation or close
	Run(ctx context.Context) error

	// Close releases the underlying file system watcher.
	//
	// Returns:
	//   - error: an error from the file system watcher
	Close() error
}

var _ Watcher = &watcher{}

// NewWatcher creates a new Watcher.
//
// Parameters:
//   - options: variadic list of WatcherBuilderOption functions to configure the watcher
//
// Returns:
//   - Watcher: the watcher
//   - error: an error if the platform file system watcher cannot be created
func NewWatcher(options ...WatcherBuilderOption) (Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader watcher: %w", err)
	}
	w := &watcher{
		fs:         fs,
		debounce:   defaultDebounce,
		bufferSize: defaultBufferSize,
		files:      make(map[string]map[string]struct{}),
		dirs:       make(map[string]struct{}),
	}
	for _, opt := range options {
		opt(w)
	}
	w.changes = make(chan string, w.bufferSize)
	return w, nil
}

func (w *watcher) Watch(key string, paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		dir := filepath.Dir(abs)
		if _, ok := w.dirs[dir]; !ok {
			if err := w.fs.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			w.dirs[dir] = struct{}{}
		}
		if w.files[abs] == nil {
			w.files[abs] = make(map[string]struct{})
		}
		w.files[abs][key] = struct{}{}
	}
	return nil
}

func (w *watcher) Changes() <-chan string {
	return w.changes
}

func (w *watcher) Run(ctx context.Context) error {
	defer close(w.changes)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	pending := make(map[string]struct{})
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			keys := w.keysFor(event.Name)
			if len(keys) == 0 {
				continue
			}
			for _, k := range keys {
				pending[k] = struct{}{}
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Printf("[ShaderWatcher] %v", err)
		case <-timer.C:
			for _, k := range slices.Sorted(maps.Keys(pending)) {
				select {
				case w.changes <- k:
				case <-ctx.Done():
					return nil
				}
			}
			clear(pending)
		}
	}
}

func (w *watcher) Close() error {
	return w.fs.Close()
}

func (w *watcher) keysFor(name string) []string {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Collect(maps.Keys(w.files[abs]))
}
