package scene

import "github.com/go-gl/mathgl/mgl32"

// Triangle is a path-traced triangle with its geometric normal. Every field is a vec4
// so the struct packs into std430 arrays without padding: vertices carry w = 1 and
// the normal carries w = 0.
type Triangle struct {
	V1     mgl32.Vec4
	V2     mgl32.Vec4
	V3     mgl32.Vec4
	Normal mgl32.Vec4
}

// NewTriangle builds a triangle from three vertices. The normal is
// cross(v2 - v1, v3 - v1) and is left unnormalized so its length stays twice the area.
//
// Parameters:
//   - v1, v2, v3: the vertices in counter-clockwise order
//
// Returns:
//   - Triangle: the triangle
func NewTriangle(v1, v2, v3 mgl32.Vec3) Triangle {
	return Triangle{
		V1:     v1.Vec4(1),
		V2:     v2.Vec4(1),
		V3:     v3.Vec4(1),
		Normal: v2.Sub(v1).Cross(v3.Sub(v1)).Vec4(0),
	}
}

// Transformed returns the triangle with every vertex transformed by m. The normal is
// rebuilt from the transformed vertices, which stays correct under non-uniform scale.
//
// Parameters:
//   - m: the transform to apply
//
// Returns:
//   - Triangle: the transformed triangle
func (t Triangle) Transformed(m mgl32.Mat4) Triangle {
	return NewTriangle(
		mgl32.TransformCoordinate(t.V1.Vec3(), m),
		mgl32.TransformCoordinate(t.V2.Vec3(), m),
		mgl32.TransformCoordinate(t.V3.Vec3(), m),
	)
}
