package scene

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUSceneTypesSource is the canonical GLSL definition of the Material, Sphere, Box,
// Triangle and ModelRange structs. Matches the GPU* layouts below exactly (std430).
// Shaders pull it in with `#include <scene_types>`.
//
//go:embed assets/scene_types.glsl
var GPUSceneTypesSource string

// Storage buffer binding points used by the path tracing sample.
const (
	GPUSphereBinding     = 1
	GPUBoxBinding        = 2
	GPUTriangleBinding   = 3
	GPUModelRangeBinding = 4
)

// GPUMaterial is the GPU-aligned representation of a Material.
// Size: 64 bytes (std430).
type GPUMaterial struct {
	Albedo                mgl32.Vec3 // offset  0
	Type                  int32      // offset 12
	Emissive              mgl32.Vec3 // offset 16
	EmissiveStrength      float32    // offset 28
	Absorbance            mgl32.Vec3 // offset 32
	IOR                   float32    // offset 44
	ReflectionProbability float32    // offset 48
	ReflectionRoughness   float32    // offset 52
	RefractionProbability float32    // offset 56
	RefractionRoughness   float32    // offset 60
}

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Put writes the material into buf, which must hold at least 64 bytes.
func (g *GPUMaterial) Put(buf []byte) {
	putVec3(buf[0:], g.Albedo)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(g.Type))
	putVec3(buf[16:], g.Emissive)
	putFloat(buf[28:], g.EmissiveStrength)
	putVec3(buf[32:], g.Absorbance)
	putFloat(buf[44:], g.IOR)
	putFloat(buf[48:], g.ReflectionProbability)
	putFloat(buf[52:], g.ReflectionRoughness)
	putFloat(buf[56:], g.RefractionProbability)
	putFloat(buf[60:], g.RefractionRoughness)
}

// GPUSphere is the GPU-aligned representation of a Sphere.
// Size: 80 bytes (std430).
type GPUSphere struct {
	Center   mgl32.Vec3  // offset  0
	Radius   float32     // offset 12
	Material GPUMaterial // offset 16
}

// Size returns the size of the GPUSphere struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUSphere) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSphere struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPUSphere) Marshal() []byte {
	buf := make([]byte, g.Size())
	putVec3(buf[0:], g.Center)
	putFloat(buf[12:], g.Radius)
	g.Material.Put(buf[16:])
	return buf
}

// GPUBox is the GPU-aligned representation of an AABB.
// Size: 96 bytes (std430).
type GPUBox struct {
	Position   mgl32.Vec4  // offset  0
	Dimensions mgl32.Vec4  // offset 16
	Material   GPUMaterial // offset 32
}

// Size returns the size of the GPUBox struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUBox) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUBox struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
func (g *GPUBox) Marshal() []byte {
	buf := make([]byte, g.Size())
	common.PutVec4(buf[0:], g.Position)
	common.PutVec4(buf[16:], g.Dimensions)
	g.Material.Put(buf[32:])
	return buf
}

// GPUTriangle is the GPU-aligned representation of a Triangle. Triangle already has
// the std430 layout, so the two convert directly.
// Size: 64 bytes (std430).
type GPUTriangle Triangle

// Size returns the size of the GPUTriangle struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUTriangle) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUTriangle struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUTriangle) Marshal() []byte {
	buf := make([]byte, g.Size())
	common.PutVec4(buf[0:], g.V1)
	common.PutVec4(buf[16:], g.V2)
	common.PutVec4(buf[32:], g.V3)
	common.PutVec4(buf[48:], g.Normal)
	return buf
}

// GPUModelRange locates one model's triangles inside the shared triangle buffer.
// Size: 80 bytes (std430).
type GPUModelRange struct {
	FirstTriangle uint32      // offset  0
	TriangleCount uint32      // offset  4
	_pad          [2]uint32   // offset  8
	Material      GPUMaterial // offset 16
}

// Size returns the size of the GPUModelRange struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUModelRange) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUModelRange struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPUModelRange) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], g.FirstTriangle)
	binary.LittleEndian.PutUint32(buf[4:8], g.TriangleCount)
	g.Material.Put(buf[16:])
	return buf
}

func putFloat(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v))
}

func putVec3(buf []byte, v mgl32.Vec3) {
	putFloat(buf[0:], v[0])
	putFloat(buf[4:], v[1])
	putFloat(buf[8:], v[2])
}
