package common

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// PutMat4 writes a 4x4 matrix into buf in column-major, little-endian order.
// buf must hold at least 64 bytes.
//
// Parameters:
//   - buf: destination byte slice
//   - m: the matrix to write
func PutMat4(buf []byte, m mgl32.Mat4) {
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(m[i]))
	}
}

// PutVec4 writes a 4-component vector into buf as little-endian float32 values.
// buf must hold at least 16 bytes.
//
// Parameters:
//   - buf: destination byte slice
//   - v: the vector to write
func PutVec4(buf []byte, v mgl32.Vec4) {
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v[i]))
	}
}

// Radians converts an angle in degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * (math.Pi / 180.0)
}

// Degrees converts an angle in radians to degrees.
func Degrees(radians float32) float32 {
	return radians * (180.0 / math.Pi)
}

// EulerDirection converts pitch and yaw (radians) into a unit viewing direction.
// Yaw is measured from +X towards +Z, so pitch=0, yaw=-90° points down -Z.
// Roll does not participate; a direction vector has no roll.
//
// Parameters:
//   - pitch: elevation angle in radians
//   - yaw: heading angle in radians
//
// Returns:
//   - mgl32.Vec3: the normalized direction
func EulerDirection(pitch, yaw float32) mgl32.Vec3 {
	cp := float32(math.Cos(float64(pitch)))
	sp := float32(math.Sin(float64(pitch)))
	cy := float32(math.Cos(float64(yaw)))
	sy := float32(math.Sin(float64(yaw)))
	return mgl32.Vec3{cy * cp, sp, sy * cp}.Normalize()
}

// PerspectiveZO creates a right-handed perspective projection matrix that maps
// view-space depth to the [0, 1] clip range used by WebGPU, Vulkan and
// glClipControl(GL_ZERO_TO_ONE). mgl32.Perspective covers the OpenGL [-1, 1] range.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func PerspectiveZO(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// IsFinite reports whether every element of m is neither NaN nor infinite.
//
// Parameters:
//   - m: the matrix to check
//
// Returns:
//   - bool: true if all 16 elements are finite
func IsFinite(m mgl32.Mat4) bool {
	for _, v := range m {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
