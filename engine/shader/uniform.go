package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformKind is the GLSL type carried by a UniformValue.
type UniformKind int

const (
	uniformInvalid UniformKind = iota
	UniformInt
	UniformBool
	UniformFloat
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat3
	UniformMat4
)

// String returns the GLSL type name of the kind.
func (k UniformKind) String() string {
	switch k {
	case UniformInt:
		return "int"
	case UniformBool:
		return "bool"
	case UniformFloat:
		return "float"
	case UniformVec2:
		return "vec2"
	case UniformVec3:
		return "vec3"
	case UniformVec4:
		return "vec4"
	case UniformMat3:
		return "mat3"
	case UniformMat4:
		return "mat4"
	default:
		return "invalid"
	}
}

// ErrInvalidUniform is returned when a zero UniformValue is applied.
var ErrInvalidUniform = errors.New("invalid uniform value")

// UniformValue is a tagged union over the uniform types the samples upload.
// The zero value is invalid; build values with the typed constructors.
type UniformValue struct {
	kind UniformKind
	i    int32
	f    [16]float32
}

// Int wraps an int uniform.
func Int(v int32) UniformValue {
	return UniformValue{kind: UniformInt, i: v}
}

// Bool wraps a bool uniform. GLSL bools are uploaded as ints.
func Bool(v bool) UniformValue {
	u := UniformValue{kind: UniformBool}
	if v {
		u.i = 1
	}
	return u
}

// Float wraps a float uniform.
func Float(v float32) UniformValue {
	u := UniformValue{kind: UniformFloat}
	u.f[0] = v
	return u
}

// Vec2 wraps a vec2 uniform.
func Vec2(v mgl32.Vec2) UniformValue {
	u := UniformValue{kind: UniformVec2}
	copy(u.f[:], v[:])
	return u
}

// Vec3 wraps a vec3 uniform.
func Vec3(v mgl32.Vec3) UniformValue {
	u := UniformValue{kind: UniformVec3}
	copy(u.f[:], v[:])
	return u
}

// Vec4 wraps a vec4 uniform.
func Vec4(v mgl32.Vec4) UniformValue {
	u := UniformValue{kind: UniformVec4}
	copy(u.f[:], v[:])
	return u
}

// Mat3 wraps a column-major mat3 uniform.
func Mat3(m mgl32.Mat3) UniformValue {
	u := UniformValue{kind: UniformMat3}
	copy(u.f[:], m[:])
	return u
}

// Mat4 wraps a column-major mat4 uniform.
func Mat4(m mgl32.Mat4) UniformValue {
	u := UniformValue{kind: UniformMat4, f: m}
	return u
}

// Kind returns the GLSL type carried by u.
func (u UniformValue) Kind() UniformKind {
	return u.kind
}

// UniformUploader receives typed uniform uploads. The OpenGL compiler implements it
// with glUniform*; tests record the calls.
type UniformUploader interface {
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, v mgl32.Vec2)
	Uniform3f(location int32, v mgl32.Vec3)
	Uniform4f(location int32, v mgl32.Vec4)
	UniformMatrix3f(location int32, m mgl32.Mat3)
	UniformMatrix4f(location int32, m mgl32.Mat4)
}

// Apply dispatches value to the uploader method matching its kind. A location of -1
// is the driver's "not active" marker and uploads nothing.
//
// Parameters:
//   - u: the uploader receiving the call
//   - location: the uniform location in the bound program
//   - value: the value to upload
//
// Returns:
//   - error: ErrInvalidUniform if value was not built with a constructor
func Apply(u UniformUploader, location int32, value UniformValue) error {
	if value.kind == uniformInvalid {
		return ErrInvalidUniform
	}
	if location < 0 {
		return nil
	}
	switch value.kind {
	case UniformInt, UniformBool:
		u.Uniform1i(location, value.i)
	case UniformFloat:
		u.Uniform1f(location, value.f[0])
	case UniformVec2:
		u.Uniform2f(location, mgl32.Vec2(value.f[:2]))
	case UniformVec3:
		u.Uniform3f(location, mgl32.Vec3(value.f[:3]))
	case UniformVec4:
		u.Uniform4f(location, mgl32.Vec4(value.f[:4]))
	case UniformMat3:
		u.UniformMatrix3f(location, mgl32.Mat3(value.f[:9]))
	case UniformMat4:
		u.UniformMatrix4f(location, mgl32.Mat4(value.f))
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidUniform, value.kind)
	}
	return nil
}
