package transform

import "github.com/go-gl/mathgl/mgl32"

// TransformBuilderOption is a functional option for configuring a Transform during construction.
type TransformBuilderOption func(*transformImpl)

// WithPosition sets the initial translation.
//
// Parameters:
//   - position: the translation
//
// Returns:
//   - TransformBuilderOption: functional option to set the position
func WithPosition(position mgl32.Vec3) TransformBuilderOption {
	return func(t *transformImpl) {
		t.position = position
	}
}

// WithRotation sets the initial Euler rotation.
//
// Parameters:
//   - degrees: rotation around X, Y and Z in degrees
//
// Returns:
//   - TransformBuilderOption: functional option to set the rotation
func WithRotation(degrees mgl32.Vec3) TransformBuilderOption {
	return func(t *transformImpl) {
		t.rotation = degrees
	}
}

// WithScale sets the initial per-axis scale.
//
// Parameters:
//   - scale: the scale
//
// Returns:
//   - TransformBuilderOption: functional option to set the scale
func WithScale(scale mgl32.Vec3) TransformBuilderOption {
	return func(t *transformImpl) {
		t.scale = scale
	}
}

// WithUniformScale sets the same scale on all three axes.
//
// Parameters:
//   - scale: the scale factor
//
// Returns:
//   - TransformBuilderOption: functional option to set the scale
func WithUniformScale(scale float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.scale = mgl32.Vec3{scale, scale, scale}
	}
}
