package shader

import "time"

// WatcherBuilderOption is a function that configures a watcher instance.
type WatcherBuilderOption func(*watcher)

// WithDebounce sets how long the watcher waits after the last write before delivering keys.
// Non-positive values are ignored. Defaults to 100ms.
//
// Parameters:
//   - d: the debounce window
//
// Returns:
//   - WatcherBuilderOption: a function that applies the debounce window to a watcher instance
func WithDebounce(d time.Duration) WatcherBuilderOption {
	return func(w *watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithBufferSize sets the capacity of the Changes channel. Defaults to 16.
//
// Parameters:
//   - n: the channel capacity
//
// Returns:
//   - WatcherBuilderOption: a function that applies the capacity to a watcher instance
func WithBufferSize(n int) WatcherBuilderOption {
	return func(w *watcher) {
		if n >= 0 {
			w.bufferSize = n
		}
	}
}
