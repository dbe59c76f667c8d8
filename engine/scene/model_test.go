package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
	"github.com/Carmen-Shannon/oxy-gl/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadMesh is a unit square in the XY plane split into two counter-clockwise triangles.
func quadMesh() *loader.Mesh {
	return &loader.Mesh{
		Name:     "quad",
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestNewTriangleUsesEveryVertex(t *testing.T) {
	tri := NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 0, 0}, mgl32.Vec3{0, 3, 0})
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, tri.V1)
	assert.Equal(t, mgl32.Vec4{2, 0, 0, 1}, tri.V2)
	assert.Equal(t, mgl32.Vec4{0, 3, 0, 1}, tri.V3)
	assert.Equal(t, mgl32.Vec4{0, 0, 6, 0}, tri.Normal, "cross product, twice the area")
}

func TestTriangleTransformed(t *testing.T) {
	tri := NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	moved := tri.Transformed(mgl32.Translate3D(0, 0, -5).Mul4(mgl32.Scale3D(2, 1, 1)))

	assert.Equal(t, mgl32.Vec4{0, 0, -5, 1}, moved.V1)
	assert.Equal(t, mgl32.Vec4{2, 0, -5, 1}, moved.V2)
	assert.Equal(t, mgl32.Vec4{0, 1, -5, 1}, moved.V3)
	assert.Equal(t, mgl32.Vec4{0, 0, 2, 0}, moved.Normal)
}

func TestNewModel(t *testing.T) {
	m := NewModel(quadMesh(), WithModelMaterial(NewMaterial(WithMaterialType(MaterialMetallic))))

	assert.Equal(t, "quad", m.Name())
	require.Len(t, m.ObjectTriangles(), 2)
	assert.Equal(t, mgl32.Vec4{1, 1, 0, 1}, m.ObjectTriangles()[1].V2)
	assert.Nil(t, m.Triangles())
	assert.True(t, m.IsDirty(), "never recalculated")
	assert.Equal(t, MaterialMetallic, m.Material().Type())
}

func TestModelRecalculateReplaces(t *testing.T) {
	tr := transform.NewTransform(transform.WithPosition(mgl32.Vec3{0, 0, -10}))
	m := NewModel(quadMesh(), WithModelName("floor"), WithModelTransform(tr))
	assert.Equal(t, "floor", m.Name())

	m.Recalculate(mgl32.Ident4())
	require.Len(t, m.Triangles(), 2)
	assert.Equal(t, mgl32.Vec4{1, 0, -10, 1}, m.Triangles()[0].V2)
	assert.False(t, m.IsDirty())

	tr.Translate(mgl32.Vec3{0, 1, 0})
	assert.True(t, m.IsDirty())

	m.Recalculate(mgl32.Ident4())
	require.Len(t, m.Triangles(), 2, "recalculating replaces the previous triangles")
	assert.Equal(t, mgl32.Vec4{1, 1, -10, 1}, m.Triangles()[0].V2)
	assert.False(t, m.IsDirty())
}

func TestModelRecalculateInSpace(t *testing.T) {
	m := NewModel(quadMesh())
	m.Recalculate(mgl32.Translate3D(5, 0, 0))
	assert.Equal(t, mgl32.Vec4{5, 0, 0, 1}, m.Triangles()[0].V1)
	assert.Equal(t, m.ObjectTriangles()[0].Normal, m.Triangles()[0].Normal)
}
