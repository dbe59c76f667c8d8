package loader

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle mesh. Vertices, Normals and UV are parallel arrays;
// Normals and UV may be empty when the source provides none.
type Mesh struct {
	// Name is the cache key the mesh was loaded under.
	Name string

	// Vertices are the unique vertex positions.
	Vertices []mgl32.Vec3

	// Normals holds one normal per vertex, or nothing.
	Normals []mgl32.Vec3

	// UV holds one texture coordinate per vertex, or nothing.
	UV []mgl32.Vec2

	// Indices lists triangles as consecutive index triples into Vertices.
	Indices []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three corner positions of triangle i.
//
// Parameters:
//   - i: triangle index in [0, TriangleCount())
//
// Returns:
//   - v1, v2, v3: the corner positions in winding order
func (m *Mesh) Triangle(i int) (v1, v2, v3 mgl32.Vec3) {
	return m.Vertices[m.Indices[3*i]], m.Vertices[m.Indices[3*i+1]], m.Vertices[m.Indices[3*i+2]]
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
// An empty mesh returns zero vectors.
//
// Returns:
//   - minimum, maximum: the box corners
func (m *Mesh) Bounds() (minimum, maximum mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	minimum = mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	maximum = mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, v := range m.Vertices {
		for axis := range 3 {
			minimum[axis] = min(minimum[axis], v[axis])
			maximum[axis] = max(maximum[axis], v[axis])
		}
	}
	return
}

// Normalize centers the mesh on the origin and scales it uniformly so that its
// largest bounding-box dimension spans [-1, 1]. A mesh with zero extent is only centered.
func (m *Mesh) Normalize() {
	minimum, maximum := m.Bounds()
	center := minimum.Add(maximum).Mul(0.5)
	extent := maximum.Sub(minimum)
	maxDimension := max(extent.X(), extent.Y(), extent.Z())

	scale := float32(1)
	if maxDimension > 0 {
		scale = 2 / maxDimension
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Mul(scale)
	}
}

// RecalculateNormals replaces Normals with smooth per-vertex normals.
// Each vertex normal is the normalized sum of the unnormalized face normals of the
// triangles sharing it, so larger faces contribute more. Vertices not referenced by
// any non-degenerate triangle get a zero normal.
func (m *Mesh) RecalculateNormals() {
	normals := make([]mgl32.Vec3, len(m.Vertices))
	for i := range m.TriangleCount() {
		i1, i2, i3 := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		v1, v2, v3 := m.Vertices[i1], m.Vertices[i2], m.Vertices[i3]

		face := v2.Sub(v1).Cross(v3.Sub(v1))
		normals[i1] = normals[i1].Add(face)
		normals[i2] = normals[i2].Add(face)
		normals[i3] = normals[i3].Add(face)
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	m.Normals = normals
}

// Clone returns a deep copy of the mesh.
//
// Returns:
//   - *Mesh: an independent copy
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Name:     m.Name,
		Vertices: slices.Clone(m.Vertices),
		Normals:  slices.Clone(m.Normals),
		UV:       slices.Clone(m.UV),
		Indices:  slices.Clone(m.Indices),
	}
}
