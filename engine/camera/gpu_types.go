package camera

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraUniformSource is the canonical GLSL definition of the CameraUniform block.
// Matches GPUCameraUniform layout exactly (304 bytes, std140 aligned).
// Shaders pull it in with `#include <camera_uniform>`.
//
//go:embed assets/camera_uniform.glsl
var GPUCameraUniformSource string

// GPUCameraUniformBinding is the uniform block binding point declared in GPUCameraUniformSource.
const GPUCameraUniformBinding = 0

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the GLSL CameraUniform block layout exactly (see GPUCameraUniformSource).
// Size: 304 bytes (std140).
type GPUCameraUniform struct {
	View                  mgl32.Mat4 // offset   0
	Projection            mgl32.Mat4 // offset  64
	ViewProjection        mgl32.Mat4 // offset 128
	InverseViewProjection mgl32.Mat4 // offset 192
	Position              mgl32.Vec4 // offset 256: world-space eye position, w = 1
	Forward               mgl32.Vec4 // offset 272: unit viewing direction, w = 0
	ClipParams            mgl32.Vec4 // offset 288: near, far, fovY (radians), aspect
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (304)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	common.PutMat4(buf[0:], g.View)
	common.PutMat4(buf[64:], g.Projection)
	common.PutMat4(buf[128:], g.ViewProjection)
	common.PutMat4(buf[192:], g.InverseViewProjection)
	common.PutVec4(buf[256:], g.Position)
	common.PutVec4(buf[272:], g.Forward)
	common.PutVec4(buf[288:], g.ClipParams)
	return buf
}
