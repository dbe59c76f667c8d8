package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithOrbitRadius sets the initial orbit radius (distance from target).
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - OrbitControllerOption: functional option to set the radius
func WithOrbitRadius(radius float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.radius = radius
	}
}

// WithOrbitRadiusBounds sets the zoom limits.
//
// Parameters:
//   - minRadius: closest allowed distance
//   - maxRadius: furthest allowed distance
//
// Returns:
//   - OrbitControllerOption: functional option to set the radius bounds
func WithOrbitRadiusBounds(minRadius, maxRadius float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minRadius = minRadius
		oc.maxRadius = maxRadius
	}
}

// WithOrbitAzimuth sets the initial horizontal angle around the Y axis.
//
// Parameters:
//   - azimuth: horizontal angle in radians (0 = +Z axis)
//
// Returns:
//   - OrbitControllerOption: functional option to set the azimuth
func WithOrbitAzimuth(azimuth float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.azimuth = azimuth
	}
}

// WithOrbitElevation sets the initial vertical angle from the horizontal plane.
//
// Parameters:
//   - elevation: vertical angle in radians (0 = horizontal)
//
// Returns:
//   - OrbitControllerOption: functional option to set the elevation
func WithOrbitElevation(elevation float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.elevation = elevation
	}
}

// WithOrbitTarget sets the look-at/pivot point.
//
// Parameters:
//   - target: world-space pivot
//
// Returns:
//   - OrbitControllerOption: functional option to set the target position
func WithOrbitTarget(target mgl32.Vec3) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.target = target
	}
}

// WithOrbitSpeed sets the keyboard orbit step.
//
// Parameters:
//   - speed: radians per step
//
// Returns:
//   - OrbitControllerOption: functional option to set the orbit speed
func WithOrbitSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.orbitSpeed = speed
	}
}

// WithOrbitMouseSensitivity sets the radians turned per pixel of mouse drag.
//
// Parameters:
//   - sensitivity: radians per pixel
//
// Returns:
//   - OrbitControllerOption: functional option to set the mouse sensitivity
func WithOrbitMouseSensitivity(sensitivity float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.mouseSensitivity = sensitivity
	}
}

// WithOrbitZoomSpeed sets the radius change per unit of zoom input.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - OrbitControllerOption: functional option to set the zoom speed
func WithOrbitZoomSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.zoomSpeed = speed
	}
}

// WithOrbitPanSpeed sets the translation per unit of pan input.
//
// Parameters:
//   - speed: multiplier for pan input
//
// Returns:
//   - OrbitControllerOption: functional option to set the pan speed
func WithOrbitPanSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.panSpeed = speed
	}
}
