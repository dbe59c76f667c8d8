package scene

import "github.com/go-gl/mathgl/mgl32"

// Bounds accepted by primitive setters.
const (
	MaxCoordinate = 30.0
	MinExtent     = 0.001
	MaxExtent     = 20.0
)

// Sphere is an analytic sphere primitive.
type Sphere struct {
	center mgl32.Vec3
	radius float32

	// Material is edited in place; its setters report changes the same way the sphere's do.
	Material Material
}

// NewSphere creates a sphere with the center and radius clamped to the accepted ranges.
//
// Parameters:
//   - center: world-space center, each component in [-MaxCoordinate, MaxCoordinate]
//   - radius: radius in [MinExtent, MaxExtent]
//   - material: the surface material
//
// Returns:
//   - Sphere: the sphere
func NewSphere(center mgl32.Vec3, radius float32, material Material) Sphere {
	s := Sphere{radius: MinExtent, Material: material}
	s.SetCenter(center)
	s.SetRadius(radius)
	return s
}

func (s *Sphere) Center() mgl32.Vec3 {
	return s.center
}

func (s *Sphere) Radius() float32 {
	return s.radius
}

// SetCenter moves the sphere, clamped to [-MaxCoordinate, MaxCoordinate] per axis.
//
// Returns:
//   - bool: true if the center changed
func (s *Sphere) SetCenter(center mgl32.Vec3) bool {
	return setVec3(&s.center, center, -MaxCoordinate, MaxCoordinate)
}

// SetRadius resizes the sphere, clamped to [MinExtent, MaxExtent].
//
// Returns:
//   - bool: true if the radius changed
func (s *Sphere) SetRadius(radius float32) bool {
	return setFloat(&s.radius, radius, MinExtent, MaxExtent)
}

// GPU converts the sphere to its std430 representation.
func (s *Sphere) GPU() GPUSphere {
	return GPUSphere{
		Center:   s.center,
		Radius:   s.radius,
		Material: s.Material.GPU(),
	}
}

// AABB is an axis-aligned box primitive positioned by its center.
type AABB struct {
	position   mgl32.Vec3
	dimensions mgl32.Vec3

	// Material is edited in place; its setters report changes the same way the box's do.
	Material Material
}

// NewAABB creates a box with position and dimensions clamped to the accepted ranges.
//
// Parameters:
//   - position: world-space center, each component in [-MaxCoordinate, MaxCoordinate]
//   - dimensions: full edge lengths, each in [MinExtent, MaxExtent]
//   - material: the surface material
//
// Returns:
//   - AABB: the box
func NewAABB(position, dimensions mgl32.Vec3, material Material) AABB {
	b := AABB{dimensions: mgl32.Vec3{MinExtent, MinExtent, MinExtent}, Material: material}
	b.SetPosition(position)
	b.SetDimensions(dimensions)
	return b
}

func (b *AABB) Position() mgl32.Vec3 {
	return b.position
}

func (b *AABB) Dimensions() mgl32.Vec3 {
	return b.dimensions
}

// Min returns the minimum corner.
func (b *AABB) Min() mgl32.Vec3 {
	return b.position.Sub(b.dimensions.Mul(0.5))
}

// Max returns the maximum corner.
func (b *AABB) Max() mgl32.Vec3 {
	return b.position.Add(b.dimensions.Mul(0.5))
}

// SetPosition moves the box, clamped to [-MaxCoordinate, MaxCoordinate] per axis.
//
// Returns:
//   - bool: true if the position changed
func (b *AABB) SetPosition(position mgl32.Vec3) bool {
	return setVec3(&b.position, position, -MaxCoordinate, MaxCoordinate)
}

// SetDimensions resizes the box, clamped to [MinExtent, MaxExtent] per axis.
//
// Returns:
//   - bool: true if the dimensions changed
func (b *AABB) SetDimensions(dimensions mgl32.Vec3) bool {
	return setVec3(&b.dimensions, dimensions, MinExtent, MaxExtent)
}

// GPU converts the box to its std430 representation.
func (b *AABB) GPU() GPUBox {
	return GPUBox{
		Position:   b.position.Vec4(0),
		Dimensions: b.dimensions.Vec4(0),
		Material:   b.Material.GPU(),
	}
}
