package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func testFrustum() Frustum {
	proj := mgl32.Perspective(Radians(90), 1, 1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	return ExtractFrustumFromMatrix(proj.Mul4(view))
}

func TestFrustumPlanesAreNormalized(t *testing.T) {
	for i, p := range testFrustum().Planes {
		assert.InDelta(t, 1.0, p.Normal.Len(), 1e-5, "plane %d", i)
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	assert.True(t, f.ContainsPoint(mgl32.Vec3{0, 0, -10}))
	assert.True(t, f.ContainsPoint(mgl32.Vec3{4, -4, -5}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, 10}), "behind the camera")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -0.5}), "before the near plane")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -200}), "past the far plane")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{20, 0, -5}), "right of the frustum")
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := testFrustum()

	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, -0.5}, 1))
	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, -50}, 0.1))
	assert.False(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 10}, 1))
}

func TestFrustumIntersectsAABB(t *testing.T) {
	f := testFrustum()

	assert.True(t, f.IntersectsAABB(mgl32.Vec3{-1, -1, -5}, mgl32.Vec3{1, 1, -3}))
	assert.True(t, f.IntersectsAABB(mgl32.Vec3{-1000, -1, -5}, mgl32.Vec3{1000, 1, -3}), "straddles the frustum")
	assert.False(t, f.IntersectsAABB(mgl32.Vec3{50, 50, -5}, mgl32.Vec3{60, 60, -3}))
	assert.False(t, f.IntersectsAABB(mgl32.Vec3{-1, -1, 1}, mgl32.Vec3{1, 1, 3}))
}

func TestExtractFrustumFromMatrixZO(t *testing.T) {
	proj := PerspectiveZO(Radians(90), 1, 1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	f := ExtractFrustumFromMatrixZO(proj.Mul4(view))

	near := f.Planes[FrustumNear]
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, near.Normal, 1e-5)
	assert.InDelta(t, -1.0, near.Distance, 1e-5)

	assert.True(t, f.ContainsPoint(mgl32.Vec3{0, 0, -10}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -0.5}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -200}))
}
