package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the signed distance from the plane to point p.
// Positive values lie on the side the normal points to.
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a combined projection * view matrix
// built for the OpenGL [-1, 1] depth range.
// Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj mgl32.Mat4) Frustum {
	var f Frustum

	// Row i of a column-major matrix is (m[i], m[4+i], m[8+i], m[12+i]).
	row := func(i int) (mgl32.Vec3, float32) {
		return mgl32.Vec3{viewProj[i], viewProj[4+i], viewProj[8+i]}, viewProj[12+i]
	}
	r0, d0 := row(0)
	r1, d1 := row(1)
	r2, d2 := row(2)
	r3, d3 := row(3)

	f.Planes[FrustumLeft] = Plane{Normal: r3.Add(r0), Distance: d3 + d0}
	f.Planes[FrustumRight] = Plane{Normal: r3.Sub(r0), Distance: d3 - d0}
	f.Planes[FrustumBottom] = Plane{Normal: r3.Add(r1), Distance: d3 + d1}
	f.Planes[FrustumTop] = Plane{Normal: r3.Sub(r1), Distance: d3 - d1}
	f.Planes[FrustumNear] = Plane{Normal: r3.Add(r2), Distance: d3 + d2}
	f.Planes[FrustumFar] = Plane{Normal: r3.Sub(r2), Distance: d3 - d2}

	for i := range f.Planes {
		f.normalizePlane(i)
	}

	return f
}

// ExtractFrustumFromMatrixZO extracts frustum planes from a combined matrix whose
// projection maps depth to [0, 1]. Only the near plane differs from ExtractFrustumFromMatrix.
//
// Parameters:
//   - viewProj: the combined matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrixZO(viewProj mgl32.Mat4) Frustum {
	f := ExtractFrustumFromMatrix(viewProj)
	f.Planes[FrustumNear] = Plane{
		Normal:   mgl32.Vec3{viewProj[2], viewProj[6], viewProj[10]},
		Distance: viewProj[14],
	}
	f.normalizePlane(FrustumNear)
	return f
}

// ContainsPoint reports whether point lies inside or on every frustum plane.
//
// Parameters:
//   - point: world-space point
//
// Returns:
//   - bool: true if the point is inside the frustum
func (f Frustum) ContainsPoint(point mgl32.Vec3) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(point) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether a sphere is at least partially inside the frustum.
//
// Parameters:
//   - center: world-space sphere center
//   - radius: sphere radius
//
// Returns:
//   - bool: false only if the sphere lies entirely outside one plane
func (f Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// IntersectsAABB reports whether an axis-aligned box is at least partially inside the frustum.
// For each plane the box corner furthest along the plane normal is tested.
//
// Parameters:
//   - minimum: the box's minimum corner
//   - maximum: the box's maximum corner
//
// Returns:
//   - bool: false only if the box lies entirely outside one plane
func (f Frustum) IntersectsAABB(minimum, maximum mgl32.Vec3) bool {
	for _, p := range f.Planes {
		var positive mgl32.Vec3
		for axis := range 3 {
			if p.Normal[axis] >= 0 {
				positive[axis] = maximum[axis]
			} else {
				positive[axis] = minimum[axis]
			}
		}
		if p.SignedDistance(positive) < 0 {
			return false
		}
	}
	return true
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := float32(math.Sqrt(float64(p.Normal.Dot(p.Normal))))

	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Mul(invLen)
		p.Distance *= invLen
	}
}
