package transform

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.IsDirty())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale())
	assert.Equal(t, mgl32.Ident4(), tr.Matrix())
	assert.False(t, tr.IsDirty())
}

func TestMatrixComposition(t *testing.T) {
	tr := NewTransform(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithRotation(mgl32.Vec3{30, 45, 60}),
		WithScale(mgl32.Vec3{2, 3, 4}),
	)

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DX(common.Radians(30))).
		Mul4(mgl32.HomogRotate3DY(common.Radians(45))).
		Mul4(mgl32.HomogRotate3DZ(common.Radians(60))).
		Mul4(mgl32.Scale3D(2, 3, 4))
	assert.Equal(t, want, tr.Matrix())
}

func TestMatrixAppliesScaleBeforeTranslation(t *testing.T) {
	tr := NewTransform(WithPosition(mgl32.Vec3{10, 0, 0}), WithUniformScale(2))
	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.Equal(t, mgl32.Vec4{12, 2, 2, 1}, p)
}

func TestMatrixRecomputesAfterChange(t *testing.T) {
	tr := NewTransform()
	tr.Matrix()

	tr.Translate(mgl32.Vec3{0, 5, 0})
	assert.True(t, tr.IsDirty())
	assert.Equal(t, mgl32.Translate3D(0, 5, 0), tr.Matrix())
	assert.False(t, tr.IsDirty())

	tr.Rotate(mgl32.Vec3{0, 0, 90})
	assert.Equal(t, mgl32.Vec3{0, 0, 90}, tr.Rotation())
	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0.0, p.X(), 1e-6)
	assert.InDelta(t, 6.0, p.Y(), 1e-6)

	tr.SetScale(mgl32.Vec3{3, 3, 3})
	assert.True(t, tr.IsDirty())
	tr.SetPosition(mgl32.Vec3{})
	tr.SetRotation(mgl32.Vec3{})
	assert.Equal(t, mgl32.Scale3D(3, 3, 3), tr.Matrix())
}
