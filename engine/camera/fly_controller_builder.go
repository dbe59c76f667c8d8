package camera

import "github.com/go-gl/mathgl/mgl32"

// FlyControllerOption is a functional option for configuring a FlyController.
type FlyControllerOption func(*flyControllerImpl)

// WithFlyPosition sets the initial eye position.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - FlyControllerOption: functional option to set the position
func WithFlyPosition(position mgl32.Vec3) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.position = position
	}
}

// WithFlyOrientation sets the initial pitch and yaw.
//
// Parameters:
//   - pitch, yaw: angles in degrees (yaw -90 looks down -Z)
//
// Returns:
//   - FlyControllerOption: functional option to set the orientation
func WithFlyOrientation(pitch, yaw float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.pitch = pitch
		fc.yaw = yaw
	}
}

// WithFlyFOVAngle sets the initial field of view.
//
// Parameters:
//   - degrees: field of view in degrees
//
// Returns:
//   - FlyControllerOption: functional option to set the field of view
func WithFlyFOVAngle(degrees float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.fov = degrees
	}
}

// WithFlyFOVBounds sets the range Zoom keeps the field of view in.
//
// Parameters:
//   - minDegrees, maxDegrees: the field of view bounds in degrees
//
// Returns:
//   - FlyControllerOption: functional option to set the zoom bounds
func WithFlyFOVBounds(minDegrees, maxDegrees float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.minFOV = minDegrees
		fc.maxFOV = maxDegrees
	}
}

// WithFlyMoveSpeed sets the movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - FlyControllerOption: functional option to set the speed
func WithFlyMoveSpeed(speed float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.moveSpeed = speed
	}
}

// WithFlyMouseSensitivity sets how far the view turns per pixel of cursor movement.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - FlyControllerOption: functional option to set the mouse sensitivity
func WithFlyMouseSensitivity(sensitivity float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.mouseSensitivity = sensitivity
	}
}

// WithFlyPitchLimit sets the symmetric pitch clamp. Keep it below 90 so forward never aligns with up.
//
// Parameters:
//   - degrees: maximum absolute pitch
//
// Returns:
//   - FlyControllerOption: functional option to set the pitch limit
func WithFlyPitchLimit(degrees float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.pitchLimit = degrees
	}
}

// WithFlyLookButton sets the mouse button that enables mouse-look while held.
//
// Parameters:
//   - button: a GLFW mouse button code, see common.MouseButtonRight
//
// Returns:
//   - FlyControllerOption: functional option to set the look button
func WithFlyLookButton(button int) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.lookButton = button
	}
}
