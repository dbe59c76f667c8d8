package loader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMeshNormalize(t *testing.T) {
	m := &Mesh{Vertices: []mgl32.Vec3{{0, 0, 0}, {4, 2, 2}, {2, 1, 0}}}
	m.Normalize()

	minimum, maximum := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-1, -0.5, -0.5}, minimum)
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0.5}, maximum)
	assert.Equal(t, mgl32.Vec3{0, 0, -0.5}, m.Vertices[2])
}

func TestMeshNormalizeZeroExtent(t *testing.T) {
	m := &Mesh{Vertices: []mgl32.Vec3{{3, 3, 3}, {3, 3, 3}}}
	m.Normalize()
	assert.Equal(t, []mgl32.Vec3{{}, {}}, m.Vertices)
}

func TestMeshRecalculateNormals(t *testing.T) {
	// Two triangles folded along the x axis: one in the XY plane, one in the XZ plane.
	m := &Mesh{
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, -1}, {5, 5, 5}},
		Indices:  []uint32{0, 1, 2, 0, 1, 3},
	}
	m.RecalculateNormals()

	assert.Len(t, m.Normals, 5)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normals[2])
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Normals[3])
	assert.InDeltaSlice(t, []float32{0, 0.70710677, 0.70710677}, m.Normals[0][:], 1e-6)
	assert.Equal(t, mgl32.Vec3{}, m.Normals[4], "unreferenced vertex")
}

func TestMeshCloneIsDeep(t *testing.T) {
	m := &Mesh{
		Name:     "tri",
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:  []uint32{0, 1, 2},
	}
	c := m.Clone()
	assert.Equal(t, m, c)

	c.Vertices[0] = mgl32.Vec3{9, 9, 9}
	c.Indices[0] = 2
	assert.Equal(t, mgl32.Vec3{}, m.Vertices[0])
	assert.Equal(t, uint32(0), m.Indices[0])
	assert.Nil(t, c.UV)
}

func TestMeshTriangle(t *testing.T) {
	m := &Mesh{
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		Indices:  []uint32{0, 1, 2, 2, 1, 3},
	}
	assert.Equal(t, 2, m.TriangleCount())
	v1, v2, v3 := m.Triangle(1)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, v1)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, v2)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, v3)
}
