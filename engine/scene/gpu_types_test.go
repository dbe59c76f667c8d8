package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestGPUTypeSizes(t *testing.T) {
	var (
		material GPUMaterial
		sphere   GPUSphere
		box      GPUBox
		triangle GPUTriangle
		rng      GPUModelRange
	)
	assert.Equal(t, 64, material.Size())
	assert.Equal(t, 80, sphere.Size())
	assert.Equal(t, 96, box.Size())
	assert.Equal(t, 64, triangle.Size())
	assert.Equal(t, 80, rng.Size())
}

func TestGPUSphereMarshal(t *testing.T) {
	material := NewMaterial(
		WithMaterialType(MaterialEmissive),
		WithAlbedo(mgl32.Vec3{0.1, 0.2, 0.3}),
		WithEmission(mgl32.Vec3{1, 1, 0}, 4),
		WithRefraction(0.5, 0.25, 2, mgl32.Vec3{0.5, 0.5, 0.5}),
	)
	s := NewSphere(mgl32.Vec3{1, 2, 3}, 4, material)
	g := s.GPU()
	buf := g.Marshal()
	require.Len(t, buf, 80)

	assert.Equal(t, float32(1), floatAt(buf, 0))
	assert.Equal(t, float32(3), floatAt(buf, 8))
	assert.Equal(t, float32(4), floatAt(buf, 12))

	// material starts at 16
	assert.Equal(t, float32(0.2), floatAt(buf, 20))
	assert.Equal(t, uint32(MaterialEmissive), binary.LittleEndian.Uint32(buf[28:]))
	assert.Equal(t, float32(4), floatAt(buf, 44), "emissive strength")
	assert.Equal(t, float32(0.5), floatAt(buf, 48), "absorbance.x")
	assert.Equal(t, float32(2), floatAt(buf, 60), "ior")
	assert.Equal(t, float32(0.5), floatAt(buf, 72), "refraction probability")
	assert.Equal(t, float32(0.25), floatAt(buf, 76), "refraction roughness")
}

func TestGPUBoxMarshal(t *testing.T) {
	b := NewAABB(mgl32.Vec3{-1, 0, 1}, mgl32.Vec3{2, 2, 2}, NewMaterial())
	g := b.GPU()
	buf := g.Marshal()
	require.Len(t, buf, 96)
	assert.Equal(t, float32(-1), floatAt(buf, 0))
	assert.Equal(t, float32(0), floatAt(buf, 12), "position w")
	assert.Equal(t, float32(2), floatAt(buf, 16))
	assert.Equal(t, float32(1), floatAt(buf, 32), "albedo.r")
	assert.Equal(t, float32(1.5), floatAt(buf, 76), "ior")
}

func TestGPUTriangleMarshal(t *testing.T) {
	g := GPUTriangle(NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}))
	buf := g.Marshal()
	require.Len(t, buf, 64)
	assert.Equal(t, float32(1), floatAt(buf, 12), "v1.w")
	assert.Equal(t, float32(1), floatAt(buf, 16), "v2.x")
	assert.Equal(t, float32(1), floatAt(buf, 56), "normal.z")
	assert.Equal(t, float32(0), floatAt(buf, 60), "normal.w")
}

func TestGPUModelRangeMarshal(t *testing.T) {
	g := GPUModelRange{FirstTriangle: 12, TriangleCount: 3, Material: GPUMaterial{IOR: 1.25}}
	buf := g.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, uint32(12), binary.LittleEndian.Uint32(buf[0:]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(buf[4:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[8:]))
	assert.Equal(t, float32(1.25), floatAt(buf, 60))
}

func TestGPUSceneTypesSource(t *testing.T) {
	assert.Contains(t, GPUSceneTypesSource, "struct Material")
	assert.Contains(t, GPUSceneTypesSource, "struct Triangle")
	assert.Contains(t, GPUSceneTypesSource, "#define EMISSIVE   4")
}
