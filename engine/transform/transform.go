package transform

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

type transformImpl struct {
	position mgl32.Vec3
	rotation mgl32.Vec3 // Euler degrees around X, Y, Z
	scale    mgl32.Vec3

	fresh  bool
	matrix mgl32.Mat4
}

// Transform is a position/rotation/scale triple with a lazily cached model matrix.
// Setters only mark the matrix stale; Matrix recomputes it on demand as
// translate * rotateX * rotateY * rotateZ * scale. Not safe for concurrent use.
type Transform interface {
	// Position returns the translation.
	Position() mgl32.Vec3

	// Rotation returns the Euler rotation in degrees around X, Y and Z.
	Rotation() mgl32.Vec3

	// Scale returns the per-axis scale.
	Scale() mgl32.Vec3

	// SetPosition sets the translation.
	//
	// Parameters:
	//   - position: the new translation
	SetPosition(position mgl32.Vec3)

	// SetRotation sets the Euler rotation.
	//
	// Parameters:
	//   - degrees: rotation around X, Y and Z in degrees
	SetRotation(degrees mgl32.Vec3)

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - scale: the new scale
	SetScale(scale mgl32.Vec3)

	// Translate offsets the translation.
	//
	// Parameters:
	//   - delta: the offset to add
	Translate(delta mgl32.Vec3)

	// Rotate adds to the Euler rotation.
	//
	// Parameters:
	//   - degrees: the rotation to add around X, Y and Z
	Rotate(degrees mgl32.Vec3)

	// Matrix returns the model matrix, recomputing it if any component changed.
	//
	// Returns:
	//   - mgl32.Mat4: translate * rotateX * rotateY * rotateZ * scale
	Matrix() mgl32.Mat4

	// IsDirty reports whether a component changed since Matrix was last called.
	//
	// Returns:
	//   - bool: true if the cached matrix is stale
	IsDirty() bool
}

var _ Transform = &transformImpl{}

// NewTransform creates an identity transform with unit scale.
//
// Parameters:
//   - options: functional options to configure the transform
//
// Returns:
//   - Transform: the newly created transform
func NewTransform(options ...TransformBuilderOption) Transform {
	t := &transformImpl{
		scale: mgl32.Vec3{1, 1, 1},
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *transformImpl) Position() mgl32.Vec3 {
	return t.position
}

func (t *transformImpl) Rotation() mgl32.Vec3 {
	return t.rotation
}

func (t *transformImpl) Scale() mgl32.Vec3 {
	return t.scale
}

func (t *transformImpl) SetPosition(position mgl32.Vec3) {
	t.position = position
	t.fresh = false
}

func (t *transformImpl) SetRotation(degrees mgl32.Vec3) {
	t.rotation = degrees
	t.fresh = false
}

func (t *transformImpl) SetScale(scale mgl32.Vec3) {
	t.scale = scale
	t.fresh = false
}

func (t *transformImpl) Translate(delta mgl32.Vec3) {
	t.SetPosition(t.position.Add(delta))
}

func (t *transformImpl) Rotate(degrees mgl32.Vec3) {
	t.SetRotation(t.rotation.Add(degrees))
}

func (t *transformImpl) Matrix() mgl32.Mat4 {
	if t.fresh {
		return t.matrix
	}
	t.matrix = mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z()).
		Mul4(mgl32.HomogRotate3DX(common.Radians(t.rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(common.Radians(t.rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(common.Radians(t.rotation.Z()))).
		Mul4(mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z()))
	t.fresh = true
	return t.matrix
}

func (t *transformImpl) IsDirty() bool {
	return !t.fresh
}
