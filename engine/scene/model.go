package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// model is the implementation of the Model interface.
type model struct {
	name      string
	mesh      *loader.Mesh
	transform transform.Transform
	material  Material

	objectTriangles []Triangle
	triangles       []Triangle
	calculated      bool
}

// Model is a triangle mesh placed in the scene by a transform. The mesh is split into
// object-space triangles once; Recalculate produces the transformed copies the path
// tracer reads.
type Model interface {
	// Name returns the model name, the mesh name unless overridden.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Mesh returns the mesh the model was built from.
	//
	// Returns:
	//   - *loader.Mesh: the mesh
	Mesh() *loader.Mesh

	// Transform returns the model's transform. Changing it marks the model dirty.
	//
	// Returns:
	//   - transform.Transform: the transform
	Transform() transform.Transform

	// Material returns a pointer to the model's material for in-place edits.
	//
	// Returns:
	//   - *Material: the material
	Material() *Material

	// ObjectTriangles returns the untransformed triangles.
	//
	// Returns:
	//   - []Triangle: one triangle per mesh face
	ObjectTriangles() []Triangle

	// Triangles returns the triangles from the last Recalculate, nil before the first call.
	//
	// Returns:
	//   - []Triangle: the transformed triangles
	Triangles() []Triangle

	// Recalculate rebuilds the transformed triangles as space * model * vertex, replacing
	// the previous result.
	//
	// Parameters:
	//   - space: a transform applied after the model matrix, identity for world space
	Recalculate(space mgl32.Mat4)

	// IsDirty reports whether the triangles are stale, either because the transform
	// changed or because Recalculate was never called.
	//
	// Returns:
	//   - bool: true if Recalculate should run
	IsDirty() bool
}

var _ Model = &model{}

// NewModel splits mesh into object-space triangles.
//
// Parameters:
//   - mesh: the source mesh, kept by reference
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the model
func NewModel(mesh *loader.Mesh, options ...ModelBuilderOption) Model {
	m := &model{
		name:     mesh.Name,
		mesh:     mesh,
		material: NewMaterial(),
	}
	for _, opt := range options {
		opt(m)
	}
	if m.transform == nil {
		m.transform = transform.NewTransform()
	}

	count := mesh.TriangleCount()
	m.objectTriangles = make([]Triangle, 0, count)
	for i := range count {
		v1, v2, v3 := mesh.Triangle(i)
		m.objectTriangles = append(m.objectTriangles, NewTriangle(v1, v2, v3))
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Mesh() *loader.Mesh {
	return m.mesh
}

func (m *model) Transform() transform.Transform {
	return m.transform
}

func (m *model) Material() *Material {
	return &m.material
}

func (m *model) ObjectTriangles() []Triangle {
	return m.objectTriangles
}

func (m *model) Triangles() []Triangle {
	return m.triangles
}

func (m *model) Recalculate(space mgl32.Mat4) {
	vertexTransform := space.Mul4(m.transform.Matrix())

	// the triangle count never changes, so reuse the backing array
	if m.triangles == nil {
		m.triangles = make([]Triangle, 0, len(m.objectTriangles))
	}
	m.triangles = m.triangles[:0]
	for _, t := range m.objectTriangles {
		m.triangles = append(m.triangles, t.Transformed(vertexTransform))
	}
	m.calculated = true
}

func (m *model) IsDirty() bool {
	return !m.calculated || m.transform.IsDirty()
}

