package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
)

// scene is the implementation of the Scene interface.
type scene struct {
	mu sync.Mutex

	name    string
	spheres []Sphere
	boxes   []AABB
	models  []Model

	// space is the matrix the model triangles were last recalculated in.
	space    mgl32.Mat4
	hasSpace bool

	primitivesDirty bool
	modelsDirty     bool
	buffers         SceneBuffers

	// computePool recalculates dirty models in parallel. Workers persist across frames.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

// SceneBuffers holds the std430 storage buffer contents for the path tracer. Each slice
// is a tightly packed array of the matching GPU* struct.
type SceneBuffers struct {
	Spheres     []byte
	Boxes       []byte
	Triangles   []byte
	ModelRanges []byte

	SphereCount   int
	BoxCount      int
	TriangleCount int
	ModelCount    int
}

// Scene owns the path-traced geometry and packs it for upload. Spheres and boxes are
// edited through Update callbacks that report whether anything changed; model
// transforms are tracked automatically. Prepare repacks only when something is dirty.
type Scene interface {
	// Name returns the scene name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// AddSphere appends a sphere.
	//
	// Parameters:
	//   - s: the sphere
	//
	// Returns:
	//   - int: the sphere's index
	AddSphere(s Sphere) int

	// AddBox appends a box.
	//
	// Parameters:
	//   - b: the box
	//
	// Returns:
	//   - int: the box's index
	AddBox(b AABB) int

	// AddModel appends a model.
	//
	// Parameters:
	//   - m: the model
	//
	// Returns:
	//   - int: the model's index
	AddModel(m Model) int

	// Spheres returns a copy of the spheres.
	Spheres() []Sphere

	// Boxes returns a copy of the boxes.
	Boxes() []AABB

	// Models returns the models. Transform edits made through them are picked up by Prepare.
	Models() []Model

	// UpdateSphere runs fn on the sphere at index i. The scene is marked dirty if fn
	// returns true, which the Sphere and Material setters make straightforward:
	//
	//	sc.UpdateSphere(0, func(s *Sphere) bool { return s.SetRadius(2) })
	//
	// Parameters:
	//   - i: the sphere index
	//   - fn: the edit, reporting whether it changed anything
	//
	// Returns:
	//   - bool: false if i is out of range or fn reported no change
	UpdateSphere(i int, fn func(*Sphere) bool) bool

	// UpdateBox runs fn on the box at index i. See UpdateSphere.
	UpdateBox(i int, fn func(*AABB) bool) bool

	// UpdateModelMaterial runs fn on the material of the model at index i. See UpdateSphere.
	UpdateModelMaterial(i int, fn func(*Material) bool) bool

	// RemoveSphere deletes the sphere at index i, shifting later spheres down.
	//
	// Returns:
	//   - bool: false if i is out of range
	RemoveSphere(i int) bool

	// RemoveBox deletes the box at index i, shifting later boxes down.
	//
	// Returns:
	//   - bool: false if i is out of range
	RemoveBox(i int) bool

	// RemoveModel deletes the model at index i, shifting later models down.
	//
	// Returns:
	//   - bool: false if i is out of range
	RemoveModel(i int) bool

	// IsDirty reports whether the next Prepare will repack anything.
	//
	// Returns:
	//   - bool: true if a primitive, material or model transform changed since the last Prepare
	IsDirty() bool

	// Prepare recalculates dirty models in parallel and repacks the buffers that changed.
	// Model triangles are expressed as space * model * vertex; a different space than
	// the previous call recalculates every model.
	//
	// Parameters:
	//   - space: the matrix applied after each model transform, identity for world space
	//
	// Returns:
	//   - SceneBuffers: the packed buffers, shared until the next repack
	//   - bool: true if the buffers changed since the last call
	Prepare(space mgl32.Mat4) (SceneBuffers, bool)

	// Close stops the scene's worker pool.
	Close()
}

var _ Scene = &scene{}

// NewScene creates an empty scene.
//
// Parameters:
//   - name: the scene name
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		name:            name,
		computeWorkers:  max(runtime.NumCPU()-1, 1),
		primitivesDirty: true,
		modelsDirty:     true,
	}
	for _, option := range options {
		option(s)
	}

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 64, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) AddSphere(sp Sphere) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spheres = append(s.spheres, sp)
	s.primitivesDirty = true
	return len(s.spheres) - 1
}

func (s *scene) AddBox(b AABB) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boxes = append(s.boxes, b)
	s.primitivesDirty = true
	return len(s.boxes) - 1
}

func (s *scene) AddModel(m Model) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models = append(s.models, m)
	s.modelsDirty = true
	return len(s.models) - 1
}

func (s *scene) Spheres() []Sphere {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sphere(nil), s.spheres...)
}

func (s *scene) Boxes() []AABB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]AABB(nil), s.boxes...)
}

func (s *scene) Models() []Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Model(nil), s.models...)
}

func (s *scene) UpdateSphere(i int, fn func(*Sphere) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.spheres) || !fn(&s.spheres[i]) {
		return false
	}
	s.primitivesDirty = true
	return true
}

func (s *scene) UpdateBox(i int, fn func(*AABB) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.boxes) || !fn(&s.boxes[i]) {
		return false
	}
	s.primitivesDirty = true
	return true
}

func (s *scene) UpdateModelMaterial(i int, fn func(*Material) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.models) || !fn(s.models[i].Material()) {
		return false
	}
	s.modelsDirty = true
	return true
}

func (s *scene) RemoveSphere(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.spheres) {
		return false
	}
	s.spheres = append(s.spheres[:i], s.spheres[i+1:]...)
	s.primitivesDirty = true
	return true
}

func (s *scene) RemoveBox(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.boxes) {
		return false
	}
	s.boxes = append(s.boxes[:i], s.boxes[i+1:]...)
	s.primitivesDirty = true
	return true
}

func (s *scene) RemoveModel(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.models) {
		return false
	}
	s.models = append(s.models[:i], s.models[i+1:]...)
	s.modelsDirty = true
	return true
}

func (s *scene) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.primitivesDirty || s.modelsDirty {
		return true
	}
	for _, m := range s.models {
		if m.IsDirty() {
			return true
		}
	}
	return false
}

func (s *scene) Prepare(space mgl32.Mat4) (SceneBuffers, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spaceChanged := !s.hasSpace || s.space != space
	s.space = space
	s.hasSpace = true

	var dirty []Model
	for _, m := range s.models {
		if spaceChanged || m.IsDirty() {
			dirty = append(dirty, m)
		}
	}

	if !s.primitivesDirty && !s.modelsDirty && len(dirty) == 0 {
		return s.buffers, false
	}

	if len(dirty) > 0 {
		s.recalculate(dirty, space)
	}
	if s.primitivesDirty {
		s.packPrimitives()
		s.primitivesDirty = false
	}
	if s.modelsDirty || len(dirty) > 0 {
		s.packModels()
		s.modelsDirty = false
	}
	return s.buffers, true
}

func (s *scene) Close() {
	s.computePool.Stop()
}

// recalculate rebuilds the triangles of every model in dirty on the compute pool.
func (s *scene) recalculate(dirty []Model, space mgl32.Mat4) {
	// Refresh the cached model matrices up front so the workers only read the transforms.
	for _, m := range dirty {
		m.Transform().Matrix()
	}

	// pool.Wait() blocks until workers idle-exit, so a WaitGroup is the per-frame barrier.
	var wg sync.WaitGroup
	for i, m := range dirty {
		wg.Add(1)
		s.computePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				m.Recalculate(space)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (s *scene) packPrimitives() {
	var sphere GPUSphere
	s.buffers.Spheres = make([]byte, 0, len(s.spheres)*sphere.Size())
	for i := range s.spheres {
		g := s.spheres[i].GPU()
		s.buffers.Spheres = append(s.buffers.Spheres, g.Marshal()...)
	}
	s.buffers.SphereCount = len(s.spheres)

	var box GPUBox
	s.buffers.Boxes = make([]byte, 0, len(s.boxes)*box.Size())
	for i := range s.boxes {
		g := s.boxes[i].GPU()
		s.buffers.Boxes = append(s.buffers.Boxes, g.Marshal()...)
	}
	s.buffers.BoxCount = len(s.boxes)
}

func (s *scene) packModels() {
	total := 0
	for _, m := range s.models {
		total += len(m.Triangles())
	}

	var tri GPUTriangle
	var rng GPUModelRange
	s.buffers.Triangles = make([]byte, 0, total*tri.Size())
	s.buffers.ModelRanges = make([]byte, 0, len(s.models)*rng.Size())

	first := 0
	for _, m := range s.models {
		triangles := m.Triangles()
		for _, t := range triangles {
			g := GPUTriangle(t)
			s.buffers.Triangles = append(s.buffers.Triangles, g.Marshal()...)
		}
		r := GPUModelRange{
			FirstTriangle: uint32(first),
			TriangleCount: uint32(len(triangles)),
			Material:      m.Material().GPU(),
		}
		s.buffers.ModelRanges = append(s.buffers.ModelRanges, r.Marshal()...)
		first += len(triangles)
	}
	s.buffers.TriangleCount = total
	s.buffers.ModelCount = len(s.models)
}
