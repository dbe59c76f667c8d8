package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitControllerImpl keeps the eye on a sphere around a target point.
// Orbit methods modify spherical coordinates and recompute position; pan methods translate both
// position and target along local camera axes, preserving the orbit relationship.
type orbitControllerImpl struct {
	position mgl32.Vec3
	target   mgl32.Vec3

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32

	dragging   bool
	lastCursor [2]float64

	changed bool
}

// OrbitController is a third-person controller that circles a target point using
// spherical coordinates (radius, azimuth, elevation). Apply sets the camera position
// and then re-targets it, so the camera always faces the pivot.
type OrbitController interface {
	Controller

	// Position returns the eye position derived from the spherical coordinates.
	Position() mgl32.Vec3

	// Target returns the look-at/pivot point.
	Target() mgl32.Vec3

	// SetTarget moves the pivot and recomputes the eye position.
	//
	// Parameters:
	//   - target: world-space pivot
	SetTarget(target mgl32.Vec3)

	// Radius returns the distance from the target.
	Radius() float32

	// SetRadius sets the orbit radius, clamped to the radius bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the horizontal angle around the Y axis in radians.
	Azimuth() float32

	// SetAzimuth sets the horizontal angle and recomputes position.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the vertical angle from the horizontal plane in radians.
	Elevation() float32

	// SetElevation sets the vertical angle, clamped to the elevation bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)

	// OrbitLeft rotates the eye left around the target by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the eye right around the target by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the eye upward by one orbit speed step.
	OrbitUp()

	// OrbitDown tilts the eye downward by one orbit speed step.
	OrbitDown()

	// Rotate orbits by a cursor delta scaled by the mouse sensitivity.
	//
	// Parameters:
	//   - dx, dy: cursor movement in pixels
	Rotate(dx, dy float32)

	// Zoom changes the orbit radius. Positive delta moves closer to the target.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)

	// Pan translates eye and target along the local right and up axes.
	//
	// Parameters:
	//   - right, up: pan amounts scaled by the pan speed
	Pan(right, up float32)
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an orbit controller around the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		radius:    25.0,
		azimuth:   0.0,
		elevation: float32(math.Pi / 6),

		minRadius:    1.0,
		maxRadius:    500.0,
		minElevation: float32(-math.Pi/2 + 0.1),
		maxElevation: float32(math.Pi/2 - 0.1),

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        1.0,
		panSpeed:         0.05,
	}

	for _, option := range options {
		option(oc)
	}

	oc.radius = common.Clamp(oc.radius, oc.minRadius, oc.maxRadius)
	oc.elevation = common.Clamp(oc.elevation, oc.minElevation, oc.maxElevation)
	oc.updatePosition()
	return oc
}

// updatePosition recomputes the eye position from spherical coordinates.
// Must be called whenever radius, azimuth, elevation, or target changes.
func (oc *orbitControllerImpl) updatePosition() {
	cosElev := float32(math.Cos(float64(oc.elevation)))
	sinElev := float32(math.Sin(float64(oc.elevation)))
	cosAzim := float32(math.Cos(float64(oc.azimuth)))
	sinAzim := float32(math.Sin(float64(oc.azimuth)))

	oc.position = oc.target.Add(mgl32.Vec3{
		oc.radius * cosElev * sinAzim,
		oc.radius * sinElev,
		oc.radius * cosElev * cosAzim,
	})
	oc.changed = true
}

// localAxes computes the eye's right and up axes consistent with the look-at matrix.
// Both are zero if position and target coincide.
func (oc *orbitControllerImpl) localAxes() (right, up mgl32.Vec3) {
	backward := oc.position.Sub(oc.target)
	if backward.Len() < 1e-8 {
		return
	}
	backward = backward.Normalize()

	right = mgl32.Vec3{0, 1, 0}.Cross(backward)
	if right.Len() < 1e-8 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	right = right.Normalize()
	up = backward.Cross(right)
	return
}

func (oc *orbitControllerImpl) Position() mgl32.Vec3 {
	return oc.position
}

func (oc *orbitControllerImpl) Target() mgl32.Vec3 {
	return oc.target
}

func (oc *orbitControllerImpl) SetTarget(target mgl32.Vec3) {
	oc.target = target
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Radius() float32 {
	return oc.radius
}

func (oc *orbitControllerImpl) SetRadius(radius float32) {
	oc.radius = common.Clamp(radius, oc.minRadius, oc.maxRadius)
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Azimuth() float32 {
	return oc.azimuth
}

func (oc *orbitControllerImpl) SetAzimuth(azimuth float32) {
	oc.azimuth = azimuth
	oc.updatePosition()
}

func (oc *orbitControllerImpl) Elevation() float32 {
	return oc.elevation
}

func (oc *orbitControllerImpl) SetElevation(elevation float32) {
	oc.elevation = common.Clamp(elevation, oc.minElevation, oc.maxElevation)
	oc.updatePosition()
}

func (oc *orbitControllerImpl) OrbitLeft() {
	oc.SetAzimuth(oc.azimuth - oc.orbitSpeed)
}

func (oc *orbitControllerImpl) OrbitRight() {
	oc.SetAzimuth(oc.azimuth + oc.orbitSpeed)
}

func (oc *orbitControllerImpl) OrbitUp() {
	oc.SetElevation(oc.elevation + oc.orbitSpeed)
}

func (oc *orbitControllerImpl) OrbitDown() {
	oc.SetElevation(oc.elevation - oc.orbitSpeed)
}

func (oc *orbitControllerImpl) Rotate(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	oc.azimuth -= dx * oc.mouseSensitivity
	oc.SetElevation(oc.elevation + dy*oc.mouseSensitivity)
}

func (oc *orbitControllerImpl) Zoom(delta float32) {
	oc.SetRadius(oc.radius - delta*oc.zoomSpeed)
}

func (oc *orbitControllerImpl) Pan(right, up float32) {
	r, u := oc.localAxes()
	offset := r.Mul(right * oc.panSpeed).Add(u.Mul(up * oc.panSpeed))
	oc.target = oc.target.Add(offset)
	oc.position = oc.position.Add(offset)
	oc.changed = true
}

func (oc *orbitControllerImpl) Update(input Input, dt float32) {
	if input.IsKeyPressed(common.KeyA) {
		oc.OrbitLeft()
	}
	if input.IsKeyPressed(common.KeyD) {
		oc.OrbitRight()
	}
	if input.IsKeyPressed(common.KeyW) {
		oc.OrbitUp()
	}
	if input.IsKeyPressed(common.KeyS) {
		oc.OrbitDown()
	}
	if input.IsKeyPressed(common.KeyE) {
		oc.Zoom(1)
	}
	if input.IsKeyPressed(common.KeyQ) {
		oc.Zoom(-1)
	}

	rotating := input.IsMouseButtonPressed(common.MouseButtonMiddle)
	panning := input.IsMouseButtonPressed(common.MouseButtonRight)
	if !rotating && !panning {
		oc.dragging = false
		return
	}
	x, y := input.CursorPosition()
	if oc.dragging {
		dx := float32(x - oc.lastCursor[0])
		dy := float32(y - oc.lastCursor[1])
		if rotating {
			oc.Rotate(dx, dy)
		} else if dx != 0 || dy != 0 {
			oc.Pan(-dx, dy)
		}
	}
	oc.lastCursor = [2]float64{x, y}
	oc.dragging = true
}

func (oc *orbitControllerImpl) Apply(cam Camera) bool {
	if !oc.changed {
		return false
	}
	cam.SetPosition(oc.position)
	cam.SetTargetPosition(oc.target)
	oc.changed = false
	return true
}
