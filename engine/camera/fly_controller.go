package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// flyControllerImpl is a first-person free-flight controller.
// Orientation is kept as pitch/yaw in degrees and handed to the camera through SetEulerAngles.
type flyControllerImpl struct {
	position mgl32.Vec3
	up       mgl32.Vec3
	pitch    float32 // degrees
	yaw      float32 // degrees
	fov      float32 // degrees

	moveSpeed        float32 // world units per second
	mouseSensitivity float32 // degrees per cursor pixel
	pitchLimit       float32 // degrees
	minFOV           float32
	maxFOV           float32
	lookButton       int

	looking    bool
	lastCursor [2]float64

	changed bool
}

// FlyController moves a camera like a free-flying first person viewer:
// W/S along the viewing direction, A/D sideways, E/Q along the up vector,
// and mouse-look while the look button (right mouse by default) is held.
type FlyController interface {
	Controller

	// Position returns the controller's eye position.
	Position() mgl32.Vec3

	// Pitch returns the pitch in degrees.
	Pitch() float32

	// Yaw returns the yaw in degrees.
	Yaw() float32

	// FOVAngle returns the field of view in degrees.
	FOVAngle() float32

	// Forward returns the unit viewing direction derived from pitch and yaw.
	Forward() mgl32.Vec3

	// SetPosition teleports the controller.
	//
	// Parameters:
	//   - position: the new eye position
	SetPosition(position mgl32.Vec3)

	// SetOrientation sets pitch and yaw directly. Pitch is clamped to the pitch limit.
	//
	// Parameters:
	//   - pitch, yaw: angles in degrees
	SetOrientation(pitch, yaw float32)

	// Move translates along the local forward, right and up axes.
	//
	// Parameters:
	//   - forward, right, up: distances in world units
	Move(forward, right, up float32)

	// Look turns the view by a cursor delta scaled by the mouse sensitivity.
	// Positive dx turns right, positive dy looks up.
	//
	// Parameters:
	//   - dx, dy: cursor movement in pixels
	Look(dx, dy float32)

	// Zoom narrows the field of view by delta degrees, clamped to the FOV bounds.
	//
	// Parameters:
	//   - delta: degrees to subtract from the field of view
	Zoom(delta float32)
}

var _ FlyController = &flyControllerImpl{}

// NewFlyController creates a fly controller at the origin looking down -Z.
// Defaults: 100 units/s movement, 0.1°/pixel mouse sensitivity, ±89° pitch, 75° FOV within [1°, 120°].
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FlyController: the newly created controller
func NewFlyController(options ...FlyControllerOption) FlyController {
	fc := &flyControllerImpl{
		up:               mgl32.Vec3{0, 1, 0},
		yaw:              -90,
		fov:              defaultFOVAngle,
		moveSpeed:        100,
		mouseSensitivity: 0.1,
		pitchLimit:       89,
		minFOV:           1,
		maxFOV:           120,
		lookButton:       common.MouseButtonRight,
		changed:          true,
	}

	for _, option := range options {
		option(fc)
	}

	fc.pitch = common.Clamp(fc.pitch, -fc.pitchLimit, fc.pitchLimit)
	fc.fov = common.Clamp(fc.fov, fc.minFOV, fc.maxFOV)
	return fc
}

func (fc *flyControllerImpl) Position() mgl32.Vec3 {
	return fc.position
}

func (fc *flyControllerImpl) Pitch() float32 {
	return fc.pitch
}

func (fc *flyControllerImpl) Yaw() float32 {
	return fc.yaw
}

func (fc *flyControllerImpl) FOVAngle() float32 {
	return fc.fov
}

func (fc *flyControllerImpl) Forward() mgl32.Vec3 {
	return common.EulerDirection(common.Radians(fc.pitch), common.Radians(fc.yaw))
}

func (fc *flyControllerImpl) SetPosition(position mgl32.Vec3) {
	fc.position = position
	fc.changed = true
}

func (fc *flyControllerImpl) SetOrientation(pitch, yaw float32) {
	fc.pitch = common.Clamp(pitch, -fc.pitchLimit, fc.pitchLimit)
	fc.yaw = yaw
	fc.changed = true
}

func (fc *flyControllerImpl) Move(forward, right, up float32) {
	if forward == 0 && right == 0 && up == 0 {
		return
	}
	f := fc.Forward()
	r := f.Cross(fc.up).Normalize()

	fc.position = fc.position.
		Add(f.Mul(forward)).
		Add(r.Mul(right)).
		Add(fc.up.Mul(up))
	fc.changed = true
}

func (fc *flyControllerImpl) Look(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	fc.SetOrientation(fc.pitch+dy*fc.mouseSensitivity, fc.yaw+dx*fc.mouseSensitivity)
}

func (fc *flyControllerImpl) Zoom(delta float32) {
	if delta == 0 {
		return
	}
	fc.fov = common.Clamp(fc.fov-delta, fc.minFOV, fc.maxFOV)
	fc.changed = true
}

func (fc *flyControllerImpl) Update(input Input, dt float32) {
	step := fc.moveSpeed * dt
	var forward, right, up float32
	if input.IsKeyPressed(common.KeyW) {
		forward += step
	}
	if input.IsKeyPressed(common.KeyS) {
		forward -= step
	}
	if input.IsKeyPressed(common.KeyD) {
		right += step
	}
	if input.IsKeyPressed(common.KeyA) {
		right -= step
	}
	if input.IsKeyPressed(common.KeyE) {
		up += step
	}
	if input.IsKeyPressed(common.KeyQ) {
		up -= step
	}
	fc.Move(forward, right, up)

	if !input.IsMouseButtonPressed(fc.lookButton) {
		fc.looking = false
		return
	}
	x, y := input.CursorPosition()
	if fc.looking {
		// Window y grows downwards.
		fc.Look(float32(x-fc.lastCursor[0]), float32(fc.lastCursor[1]-y))
	}
	fc.lastCursor = [2]float64{x, y}
	fc.looking = true
}

func (fc *flyControllerImpl) Apply(cam Camera) bool {
	if !fc.changed {
		return false
	}
	cam.SetPosition(fc.position)
	cam.SetEulerAngles(fc.pitch, fc.yaw, 0)
	cam.SetFOVAngle(fc.fov)
	fc.changed = false
	return true
}
