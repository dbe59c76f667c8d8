package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewSphereClamps(t *testing.T) {
	s := NewSphere(mgl32.Vec3{50, 0, -40}, 0, NewMaterial())
	assert.Equal(t, mgl32.Vec3{30, 0, -30}, s.Center())
	assert.Equal(t, float32(MinExtent), s.Radius())
}

func TestSphereSetters(t *testing.T) {
	s := NewSphere(mgl32.Vec3{0, 1, 0}, 2, NewMaterial())
	assert.False(t, s.SetCenter(mgl32.Vec3{0, 1, 0}))
	assert.True(t, s.SetCenter(mgl32.Vec3{0, 2, 0}))
	assert.False(t, s.SetRadius(2))
	assert.True(t, s.SetRadius(25))
	assert.Equal(t, float32(MaxExtent), s.Radius())
	assert.True(t, s.Material.SetAlbedo(mgl32.Vec3{0, 0, 1}))
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, s.GPU().Material.Albedo)
}

func TestAABB(t *testing.T) {
	b := NewAABB(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 4, 0}, NewMaterial())
	assert.Equal(t, mgl32.Vec3{2, 4, MinExtent}, b.Dimensions())
	minimum, maximum := b.Min(), b.Max()
	assert.InDeltaSlice(t, []float32{0, 0, 3 - MinExtent/2}, minimum[:], 1e-6)
	assert.InDeltaSlice(t, []float32{2, 4, 3 + MinExtent/2}, maximum[:], 1e-6)

	assert.False(t, b.SetPosition(mgl32.Vec3{1, 2, 3}))
	assert.True(t, b.SetPosition(mgl32.Vec3{-31, 2, 3}))
	assert.Equal(t, mgl32.Vec3{-30, 2, 3}, b.Position())
	assert.True(t, b.SetDimensions(mgl32.Vec3{1, 1, 1}))

	g := b.GPU()
	assert.Equal(t, mgl32.Vec4{-30, 2, 3, 0}, g.Position)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 0}, g.Dimensions)
}
