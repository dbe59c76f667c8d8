package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets how many meshes Preload imports in parallel.
// Defaults to one less than the number of CPUs, minimum 1.
//
// Parameters:
//   - workers: the worker pool size
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count to a loader
func WithWorkers(workers int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(workers, 1)
	}
}

// WithNormalize controls whether loaded meshes are centered and scaled into [-1, 1].
//
// Parameters:
//   - normalize: false to keep the file's coordinates
//
// Returns:
//   - LoaderBuilderOption: a function that applies the normalize option to a loader
func WithNormalize(normalize bool) LoaderBuilderOption {
	return func(l *loader) {
		l.normalize = normalize
	}
}

// WithMesh is an option builder that pre-populates the mesh cache.
//
// Parameters:
//   - key: the cache key for the mesh
//   - mesh: the mesh to cache; the loader keeps its own copy
//
// Returns:
//   - LoaderBuilderOption: a function that applies the mesh option to a loader
func WithMesh(key string, mesh *Mesh) LoaderBuilderOption {
	return func(l *loader) {
		l.meshCache[key] = mesh.Clone()
	}
}
