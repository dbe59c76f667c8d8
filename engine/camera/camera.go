package camera

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cacheState tracks whether the cached matrices reflect the current camera parameters.
type cacheState uint8

const (
	// cacheStale means at least one input changed since the last recompute.
	cacheStale cacheState = iota
	// cacheFresh means the cached matrices match the current inputs.
	cacheFresh
)

// DepthRange selects the clip-space depth convention of the projection matrix.
type DepthRange uint8

const (
	// DepthRangeNegativeOneToOne maps view depth to [-1, 1], the OpenGL default.
	DepthRangeNegativeOneToOne DepthRange = iota
	// DepthRangeZeroToOne maps view depth to [0, 1], for glClipControl(GL_ZERO_TO_ONE).
	DepthRangeZeroToOne
)

const (
	defaultFOVAngle          float32 = 75.0
	defaultNearPlaneDistance float32 = 0.01
	defaultFarPlaneDistance  float32 = 1000.0
)

type cameraImpl struct {
	position    mgl32.Vec3
	forward     mgl32.Vec3
	up          mgl32.Vec3
	eulerAngles mgl32.Vec3 // pitch, yaw, roll in radians

	fov        float32 // degrees
	aspect     float32
	near       float32
	far        float32
	depthRange DepthRange

	state cacheState

	view              mgl32.Mat4
	projection        mgl32.Mat4
	combined          mgl32.Mat4
	inverseProjection mgl32.Mat4
	inverseCombined   mgl32.Mat4
}

// Camera defines the interface for a perspective camera.
// Every mutator only records the new value and marks the cached matrices stale;
// the view, projection and combined matrices are recomputed together on the next
// matrix accessor. A Camera is not safe for concurrent use and is meant to be
// owned by the render loop.
//
// Angles passed to the Euler and FOV setters are in degrees. Euler angles are
// stored and returned in radians.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// ForwardVector returns the unit viewing direction.
	//
	// Returns:
	//   - mgl32.Vec3: the forward direction
	ForwardVector() mgl32.Vec3

	// UpVector returns the world up vector used by the view matrix.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	UpVector() mgl32.Vec3

	// EulerAngles returns the stored pitch, yaw and roll.
	//
	// Returns:
	//   - mgl32.Vec3: (pitch, yaw, roll) in radians
	EulerAngles() mgl32.Vec3

	// Pitch returns the stored pitch in radians.
	Pitch() float32

	// Yaw returns the stored yaw in radians.
	Yaw() float32

	// Roll returns the stored roll in radians. Roll is never applied to the view.
	Roll() float32

	// NearPlaneDistance returns the near clip distance.
	NearPlaneDistance() float32

	// FarPlaneDistance returns the far clip distance.
	FarPlaneDistance() float32

	// AspectRatio returns the width/height ratio used by the projection.
	AspectRatio() float32

	// FOVAngle returns the vertical field of view in degrees.
	FOVAngle() float32

	// DepthRange returns the clip-space depth convention of the projection.
	DepthRange() DepthRange

	// ViewTransform returns the world-to-eye matrix, recomputing the cache if stale.
	//
	// Returns:
	//   - mgl32.Mat4: lookAt(position, position + forward, up)
	ViewTransform() mgl32.Mat4

	// PerspectiveTransform returns the eye-to-clip matrix, recomputing the cache if stale.
	//
	// Returns:
	//   - mgl32.Mat4: perspective(radians(fov), aspect, near, far)
	PerspectiveTransform() mgl32.Mat4

	// CameraTransform returns the combined world-to-clip matrix, recomputing the cache if stale.
	//
	// Returns:
	//   - mgl32.Mat4: PerspectiveTransform() * ViewTransform()
	CameraTransform() mgl32.Mat4

	// InverseProjectionTransform returns the inverse of PerspectiveTransform.
	// A singular projection yields the zero matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse projection matrix
	InverseProjectionTransform() mgl32.Mat4

	// InverseCameraTransform returns the inverse of CameraTransform, mapping clip space back to world space.
	// A singular matrix yields the zero matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse combined matrix
	InverseCameraTransform() mgl32.Mat4

	// IsDirty reports whether any input changed since the matrices were last recomputed.
	// Callers use it to skip uploading unchanged camera data to the GPU.
	//
	// Returns:
	//   - bool: true if the cached matrices are stale
	IsDirty() bool

	// Frustum returns the world-space view frustum of the current combined matrix.
	//
	// Returns:
	//   - common.Frustum: the six normalized clip planes
	Frustum() common.Frustum

	// ScreenRay builds a world-space picking ray through a window coordinate.
	// The window origin is the top-left corner.
	//
	// Parameters:
	//   - x, y: cursor position in window pixels
	//   - width, height: window size in pixels
	//
	// Returns:
	//   - origin: the camera position
	//   - direction: the unit ray direction
	ScreenRay(x, y, width, height float32) (origin, direction mgl32.Vec3)

	// Uniform packs the current camera state into its GPU uniform layout.
	//
	// Returns:
	//   - GPUCameraUniform: the std140 camera block
	Uniform() GPUCameraUniform

	// SetPosition sets the world-space eye position.
	// The forward vector is not changed, so a previously set target is not tracked.
	//
	// Parameters:
	//   - position: the new eye position
	SetPosition(position mgl32.Vec3)

	// SetTargetPosition points the camera at target from the current position.
	// The direction is computed once; moving the camera afterwards keeps the old direction.
	//
	// Parameters:
	//   - target: world-space point to look at
	SetTargetPosition(target mgl32.Vec3)

	// SetLookAtDirection sets the viewing direction. The direction is normalized;
	// a zero vector produces a NaN direction and NaN matrices.
	//
	// Parameters:
	//   - direction: the new viewing direction, any non-zero length
	SetLookAtDirection(direction mgl32.Vec3)

	// SetUpVector sets the world up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUpVector(up mgl32.Vec3)

	// SetNearPlaneDistance sets the near clip distance. No ordering against the far plane is enforced.
	//
	// Parameters:
	//   - distance: the near clip distance
	SetNearPlaneDistance(distance float32)

	// SetFarPlaneDistance sets the far clip distance. No ordering against the near plane is enforced.
	//
	// Parameters:
	//   - distance: the far clip distance
	SetFarPlaneDistance(distance float32)

	// SetFOVAngle sets the vertical field of view.
	//
	// Parameters:
	//   - degrees: the field of view in degrees
	SetFOVAngle(degrees float32)

	// SetAspectRatio sets the projection aspect ratio independently of any window size.
	//
	// Parameters:
	//   - ratio: width divided by height
	SetAspectRatio(ratio float32)

	// SetViewportSize sets the aspect ratio from a viewport size.
	//
	// Parameters:
	//   - width, height: the viewport size in pixels
	SetViewportSize(width, height int)

	// SetEulerAngles stores the given angles and derives the forward vector from pitch and yaw.
	//
	// Parameters:
	//   - pitch, yaw, roll: angles in degrees
	SetEulerAngles(pitch, yaw, roll float32)

	// SetEulerAnglesV is SetEulerAngles taking (pitch, yaw, roll) as a vector.
	//
	// Parameters:
	//   - angles: (pitch, yaw, roll) in degrees
	SetEulerAnglesV(angles mgl32.Vec3)

	// SetDepthRange switches the clip-space depth convention of the projection.
	//
	// Parameters:
	//   - depthRange: the new depth convention
	SetDepthRange(depthRange DepthRange)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at the origin looking down -Z with +Y up,
// a 75° vertical field of view, near/far planes at 0.01/1000 and an aspect ratio of width/height.
// The returned camera starts dirty so the first matrix access computes valid matrices.
//
// Parameters:
//   - width: initial viewport width, used only to seed the aspect ratio
//   - height: initial viewport height, used only to seed the aspect ratio
//   - options: functional options applied after the defaults
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(width, height int, options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		up:         mgl32.Vec3{0, 1, 0},
		fov:        defaultFOVAngle,
		aspect:     float32(width) / float32(height),
		near:       defaultNearPlaneDistance,
		far:        defaultFarPlaneDistance,
		depthRange: DepthRangeNegativeOneToOne,
		state:      cacheStale,
	}
	c.setEulerAngles(0, -90, 0)

	for _, option := range options {
		option(c)
	}
	c.state = cacheStale
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) ForwardVector() mgl32.Vec3 {
	return c.forward
}

func (c *cameraImpl) UpVector() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) EulerAngles() mgl32.Vec3 {
	return c.eulerAngles
}

func (c *cameraImpl) Pitch() float32 {
	return c.eulerAngles[0]
}

func (c *cameraImpl) Yaw() float32 {
	return c.eulerAngles[1]
}

func (c *cameraImpl) Roll() float32 {
	return c.eulerAngles[2]
}

func (c *cameraImpl) NearPlaneDistance() float32 {
	return c.near
}

func (c *cameraImpl) FarPlaneDistance() float32 {
	return c.far
}

func (c *cameraImpl) AspectRatio() float32 {
	return c.aspect
}

func (c *cameraImpl) FOVAngle() float32 {
	return c.fov
}

func (c *cameraImpl) DepthRange() DepthRange {
	return c.depthRange
}

func (c *cameraImpl) ViewTransform() mgl32.Mat4 {
	c.refresh()
	return c.view
}

func (c *cameraImpl) PerspectiveTransform() mgl32.Mat4 {
	c.refresh()
	return c.projection
}

func (c *cameraImpl) CameraTransform() mgl32.Mat4 {
	c.refresh()
	return c.combined
}

func (c *cameraImpl) InverseProjectionTransform() mgl32.Mat4 {
	c.refresh()
	return c.inverseProjection
}

func (c *cameraImpl) InverseCameraTransform() mgl32.Mat4 {
	c.refresh()
	return c.inverseCombined
}

func (c *cameraImpl) IsDirty() bool {
	return c.state == cacheStale
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.refresh()
	if c.depthRange == DepthRangeZeroToOne {
		return common.ExtractFrustumFromMatrixZO(c.combined)
	}
	return common.ExtractFrustumFromMatrix(c.combined)
}

func (c *cameraImpl) ScreenRay(x, y, width, height float32) (origin, direction mgl32.Vec3) {
	c.refresh()

	ndcX := 2*x/width - 1
	ndcY := 1 - 2*y/height
	nearZ := float32(-1)
	if c.depthRange == DepthRangeZeroToOne {
		nearZ = 0
	}

	eye := c.inverseProjection.Mul4x1(mgl32.Vec4{ndcX, ndcY, nearZ, 1})
	eye = mgl32.Vec4{eye.X(), eye.Y(), -1, 0}
	world := c.view.Inv().Mul4x1(eye)
	return c.position, world.Vec3().Normalize()
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.refresh()
	return GPUCameraUniform{
		View:                  c.view,
		Projection:            c.projection,
		ViewProjection:        c.combined,
		InverseViewProjection: c.inverseCombined,
		Position:              c.position.Vec4(1),
		Forward:               c.forward.Vec4(0),
		ClipParams:            mgl32.Vec4{c.near, c.far, common.Radians(c.fov), c.aspect},
	}
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.state = cacheStale
}

func (c *cameraImpl) SetTargetPosition(target mgl32.Vec3) {
	c.SetLookAtDirection(target.Sub(c.position))
}

func (c *cameraImpl) SetLookAtDirection(direction mgl32.Vec3) {
	c.forward = direction.Normalize()
	c.state = cacheStale
}

func (c *cameraImpl) SetUpVector(up mgl32.Vec3) {
	c.up = up
	c.state = cacheStale
}

func (c *cameraImpl) SetNearPlaneDistance(distance float32) {
	c.near = distance
	c.state = cacheStale
}

func (c *cameraImpl) SetFarPlaneDistance(distance float32) {
	c.far = distance
	c.state = cacheStale
}

func (c *cameraImpl) SetFOVAngle(degrees float32) {
	c.fov = degrees
	c.state = cacheStale
}

func (c *cameraImpl) SetAspectRatio(ratio float32) {
	c.aspect = ratio
	c.state = cacheStale
}

func (c *cameraImpl) SetViewportSize(width, height int) {
	c.SetAspectRatio(float32(width) / float32(height))
}

func (c *cameraImpl) SetEulerAngles(pitch, yaw, roll float32) {
	c.setEulerAngles(pitch, yaw, roll)
}

func (c *cameraImpl) SetEulerAnglesV(angles mgl32.Vec3) {
	c.setEulerAngles(angles[0], angles[1], angles[2])
}

func (c *cameraImpl) SetDepthRange(depthRange DepthRange) {
	c.depthRange = depthRange
	c.state = cacheStale
}

// setEulerAngles stores the angles in radians and routes the derived direction through SetLookAtDirection.
func (c *cameraImpl) setEulerAngles(pitch, yaw, roll float32) {
	c.eulerAngles = mgl32.Vec3{common.Radians(pitch), common.Radians(yaw), common.Radians(roll)}
	c.SetLookAtDirection(common.EulerDirection(c.eulerAngles[0], c.eulerAngles[1]))
}

// refresh recomputes every cached matrix in one pass when the cache is stale.
func (c *cameraImpl) refresh() {
	if c.state == cacheFresh {
		return
	}

	c.view = mgl32.LookAtV(c.position, c.position.Add(c.forward), c.up)

	fovY := common.Radians(c.fov)
	if c.depthRange == DepthRangeZeroToOne {
		c.projection = common.PerspectiveZO(fovY, c.aspect, c.near, c.far)
	} else {
		c.projection = mgl32.Perspective(fovY, c.aspect, c.near, c.far)
	}

	c.combined = c.projection.Mul4(c.view)
	c.inverseProjection = c.projection.Inv()
	c.inverseCombined = c.combined.Inv()
	c.state = cacheFresh
}
