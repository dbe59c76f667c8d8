package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera in NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
// Options are applied in order, so combine with WithTargetPosition after this option.
//
// Parameters:
//   - position: the eye position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetPosition(position)
	}
}

// WithTargetPosition points the camera at a world-space point from the position set so far.
//
// Parameters:
//   - target: the point to look at
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's forward vector
func WithTargetPosition(target mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetTargetPosition(target)
	}
}

// WithEulerAngles sets the initial orientation from Euler angles.
//
// Parameters:
//   - pitch, yaw, roll: angles in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's orientation
func WithEulerAngles(pitch, yaw, roll float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetEulerAngles(pitch, yaw, roll)
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: the world up vector
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetUpVector(up)
	}
}

// WithFOVAngle sets the camera's vertical field of view.
//
// Parameters:
//   - degrees: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFOVAngle(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetFOVAngle(degrees)
	}
}

// WithNearPlaneDistance sets the near clipping plane distance.
//
// Parameters:
//   - distance: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNearPlaneDistance(distance float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetNearPlaneDistance(distance)
	}
}

// WithFarPlaneDistance sets the far clipping plane distance.
//
// Parameters:
//   - distance: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFarPlaneDistance(distance float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetFarPlaneDistance(distance)
	}
}

// WithDepthRange selects the projection's clip-space depth convention.
// The default is DepthRangeNegativeOneToOne.
//
// Parameters:
//   - depthRange: the depth convention
//
// Returns:
//   - CameraBuilderOption: functional option to set the depth range
func WithDepthRange(depthRange DepthRange) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetDepthRange(depthRange)
	}
}
