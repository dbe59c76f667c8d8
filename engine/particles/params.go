package particles

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// AttractorDistance is how far in front of the camera, along the picking ray, the
// center of gravity is placed while the attract button is held.
const AttractorDistance = 25

// Uniform names read by the particle shaders.
const (
	UniformDT              = "dt"
	UniformIsRunning       = "isRunning"
	UniformIsActive        = "isActive"
	UniformCenterOfGravity = "centerOfGravity"
)

// UniformSetter uploads a named uniform to the bound program. shader.Program satisfies it.
type UniformSetter interface {
	SetUniform(name string, value shader.UniformValue) error
}

// Params is the per-frame simulation input of the particle shaders.
type Params struct {
	// DT is the frame time in seconds.
	DT float32

	// Running is false while the simulation is paused.
	Running bool

	// Active is true while particles are attracted towards CenterOfGravity.
	Active bool

	// CenterOfGravity is the attractor position in world space.
	CenterOfGravity mgl32.Vec3

	// PauseKey toggles Running when released. AttractButton activates the attractor.
	PauseKey      int
	AttractButton int

	pauseHeld bool
}

// NewParams returns running params with the space bar pausing and the left mouse
// button attracting.
//
// Returns:
//   - Params: the params
func NewParams() Params {
	return Params{
		Running:       true,
		PauseKey:      common.KeySpace,
		AttractButton: common.MouseButtonLeft,
	}
}

// Update reads input for one frame. Running flips once per press, on release of the
// pause key. While the attract button is held the center of gravity follows the
// cursor, AttractorDistance along the camera's picking ray.
//
// Parameters:
//   - input: the polled input state
//   - cam: the camera the cursor ray is cast from
//   - width, height: the window size in pixels
//   - dt: seconds since the previous frame
func (p *Params) Update(input camera.Input, cam camera.Camera, width, height int, dt float32) {
	p.DT = dt

	held := input.IsKeyPressed(p.PauseKey)
	if p.pauseHeld && !held {
		p.Running = !p.Running
	}
	p.pauseHeld = held

	p.Active = input.IsMouseButtonPressed(p.AttractButton)
	if p.Active && width > 0 && height > 0 {
		x, y := input.CursorPosition()
		origin, direction := cam.ScreenRay(float32(x), float32(y), float32(width), float32(height))
		p.CenterOfGravity = origin.Add(direction.Mul(AttractorDistance))
	}
}

// Apply uploads the params. Flags are sent as 0 or 1 floats, matching the shaders.
// The center of gravity is only uploaded while the attractor is active.
//
// Parameters:
//   - program: the bound particle program
//
// Returns:
//   - error: the first upload error
func (p *Params) Apply(program UniformSetter) error {
	uniforms := []namedUniform{
		{UniformDT, shader.Float(p.DT)},
		{UniformIsRunning, shader.Float(flag(p.Running))},
		{UniformIsActive, shader.Float(flag(p.Active))},
	}
	if p.Active {
		uniforms = append(uniforms, namedUniform{UniformCenterOfGravity, shader.Vec3(p.CenterOfGravity)})
	}

	for _, u := range uniforms {
		if err := program.SetUniform(u.name, u.value); err != nil {
			return fmt.Errorf("particles: failed to set %s: %w", u.name, err)
		}
	}
	return nil
}

type namedUniform struct {
	name  string
	value shader.UniformValue
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
