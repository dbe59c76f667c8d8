package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	meshCache map[string]*Mesh

	normalize bool
	workers   int
	pool      worker.DynamicWorkerPool
	backends  map[string]loaderBackend
}

// Loader loads meshes from disk and keeps them in an explicit cache keyed by path.
// Every mesh handed out is an independent copy, so callers may modify it freely.
// A Loader is safe for concurrent use.
type Loader interface {
	// Load imports a mesh file and caches the result.
	// If the mesh is already cached (by file path), a copy of the cached version is returned.
	// The backend is selected based on the file extension (.obj → OBJ backend).
	//
	// Parameters:
	//   - path: the file path to the mesh file
	//
	// Returns:
	//   - *Mesh: a copy of the loaded mesh
	//   - error: error if loading fails
	Load(path string) (*Mesh, error)

	// LoadReader imports a mesh from a reader stream and caches it by the given name.
	// The name's extension selects the backend. An existing cache entry is replaced.
	//
	// Parameters:
	//   - name: the cache key for the loaded mesh, e.g. "bunny.obj"
	//   - r: the reader providing mesh data
	//
	// Returns:
	//   - *Mesh: a copy of the loaded mesh
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) (*Mesh, error)

	// Preload loads the given paths in parallel on the loader's worker pool and caches them.
	// Paths that are already cached are skipped. Loading continues past failures; the
	// returned error joins every failure. Paths not yet started when ctx is cancelled fail
	// with the context's error.
	//
	// Parameters:
	//   - ctx: cancels loads that have not started yet
	//   - paths: mesh files to load
	//
	// Returns:
	//   - error: the joined load errors, or nil
	Preload(ctx context.Context, paths ...string) error

	// Get returns a copy of a cached mesh, or nil if name is not cached.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - *Mesh: a copy of the cached mesh or nil
	Get(name string) *Mesh

	// Meshes returns copies of every cached mesh keyed by name.
	//
	// Returns:
	//   - map[string]*Mesh: the cache contents
	Meshes() map[string]*Mesh

	// Evict removes a mesh from the cache.
	//
	// Parameters:
	//   - name: the cache key to remove
	//
	// Returns:
	//   - bool: true if the mesh was cached
	Evict(name string) bool

	// Clear removes every cached mesh.
	Clear()

	// Close stops the loader's worker pool. The cache stays readable but Preload must not be called again.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with an empty cache and the options applied.
// Meshes are normalized into [-1, 1] unless WithNormalize(false) is given.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:        sync.RWMutex{},
		meshCache: make(map[string]*Mesh),
		normalize: true,
		workers:   max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(l)
	}

	l.backends = map[string]loaderBackend{
		".obj": newOBJLoaderBackend(l.normalize),
	}
	// Queue size of 64 bounds memory; SubmitTask blocks once it is full.
	l.pool = worker.NewDynamicWorkerPool(l.workers, 64, 1*time.Second)
	return l
}

func (l *loader) Load(path string) (*Mesh, error) {
	m, err := l.load(path)
	if err != nil {
		return nil, err
	}
	return m.Clone(), nil
}

func (l *loader) LoadReader(name string, r io.Reader) (*Mesh, error) {
	backend, err := l.resolveBackend(name)
	if err != nil {
		return nil, err
	}

	m, err := backend.LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	m.Name = common.AssetName(name)

	l.mu.Lock()
	l.meshCache[name] = m
	l.mu.Unlock()

	return m.Clone(), nil
}

func (l *loader) Preload(ctx context.Context, paths ...string) error {
	var wg sync.WaitGroup
	errs := make([]error, len(paths))

	// pool.Wait() blocks until workers idle-exit, so a WaitGroup is the barrier.
	for i, path := range paths {
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: path,
			Do: func() (any, error) {
				defer wg.Done()
				if err := ctx.Err(); err != nil {
					errs[i] = fmt.Errorf("failed to load %s: %w", path, err)
					return nil, errs[i]
				}
				_, errs[i] = l.load(path)
				return nil, errs[i]
			},
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (l *loader) Get(name string) *Mesh {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if m, ok := l.meshCache[name]; ok {
		return m.Clone()
	}
	return nil
}

func (l *loader) Meshes() map[string]*Mesh {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := maps.Clone(l.meshCache)
	for name, m := range out {
		out[name] = m.Clone()
	}
	return out
}

func (l *loader) Evict(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.meshCache[name]
	delete(l.meshCache, name)
	return ok
}

func (l *loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.meshCache)
}

func (l *loader) Close() {
	l.pool.Stop()
}

// load returns the cached mesh for path, importing it on a cache miss.
// The returned mesh is the cached instance and must not be handed out.
func (l *loader) load(path string) (*Mesh, error) {
	l.mu.RLock()
	if cached, ok := l.meshCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	m, err := backend.Load(common.ToNativeSeparators(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	m.Name = common.AssetName(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	// A concurrent load of the same path may have finished first; keep one instance.
	if cached, ok := l.meshCache[path]; ok {
		return cached, nil
	}
	l.meshCache[path] = m
	return m, nil
}

// resolveBackend selects an appropriate loader backend based on the file extension.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	backend, ok := l.backends[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported mesh format: %q", ext)
	}
	return backend, nil
}
