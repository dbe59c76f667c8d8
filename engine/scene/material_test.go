package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, MaterialLambertian, m.Type())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.Albedo())
	assert.Equal(t, mgl32.Vec3{}, m.Emissive())
	assert.Equal(t, float32(1), m.EmissiveStrength())
	assert.Equal(t, float32(1.5), m.IOR())
	assert.Zero(t, m.ReflectionProbability())
	assert.Zero(t, m.RefractionProbability())
}

func TestMaterialOptions(t *testing.T) {
	m := NewMaterial(
		WithMaterialType(MaterialDielectric),
		WithAlbedo(mgl32.Vec3{0.5, 2, -1}),
		WithEmission(mgl32.Vec3{1, 0.5, 0}, 50),
		WithReflection(0.25, 0.1),
		WithRefraction(0.5, 0.2, 1.33, mgl32.Vec3{0.1, 0.2, 0.3}),
	)
	assert.Equal(t, MaterialDielectric, m.Type())
	assert.Equal(t, mgl32.Vec3{0.5, 1, 0}, m.Albedo())
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0}, m.Emissive())
	assert.Equal(t, float32(MaxEmissiveStrength), m.EmissiveStrength())
	assert.Equal(t, float32(0.25), m.ReflectionProbability())
	assert.Equal(t, float32(0.1), m.ReflectionRoughness())
	assert.Equal(t, float32(0.5), m.RefractionProbability())
	assert.Equal(t, float32(0.2), m.RefractionRoughness())
	assert.Equal(t, float32(1.33), m.IOR())
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, m.Absorbance())
}

func TestMaterialSettersReportChange(t *testing.T) {
	m := NewMaterial()

	assert.False(t, m.SetAlbedo(mgl32.Vec3{1, 1, 1}), "same value")
	assert.False(t, m.SetAlbedo(mgl32.Vec3{3, 3, 3}), "clamps to the current value")
	assert.True(t, m.SetAlbedo(mgl32.Vec3{1, 0.5, 1}))

	assert.False(t, m.SetIOR(1.5))
	assert.True(t, m.SetIOR(0.2))
	assert.Equal(t, float32(MinIOR), m.IOR())
	assert.False(t, m.SetIOR(-3), "clamps to the current value")
	assert.True(t, m.SetIOR(9))
	assert.Equal(t, float32(MaxIOR), m.IOR())

	assert.True(t, m.SetEmissiveStrength(0))
	assert.Equal(t, float32(MinEmissiveStrength), m.EmissiveStrength())
}

func TestMaterialSetType(t *testing.T) {
	m := NewMaterial()
	assert.False(t, m.SetType(MaterialLambertian))
	assert.True(t, m.SetType(MaterialEmissive))
	assert.False(t, m.SetType(MaterialType(7)))
	assert.False(t, m.SetType(MaterialType(-1)))
	assert.Equal(t, MaterialEmissive, m.Type())
}

func TestMaterialProbabilitiesSumToOne(t *testing.T) {
	m := NewMaterial()
	assert.True(t, m.SetRefractionProbability(0.7))
	assert.True(t, m.SetReflectionProbability(0.6))
	assert.Equal(t, float32(0.6), m.ReflectionProbability())
	assert.InDelta(t, 0.4, m.RefractionProbability(), 1e-6)

	assert.True(t, m.SetRefractionProbability(0.9))
	assert.InDelta(t, 0.1, m.ReflectionProbability(), 1e-6)
	assert.Equal(t, float32(0.9), m.RefractionProbability())
}

func TestMaterialRefractionRoughnessIsIndependent(t *testing.T) {
	m := NewMaterial()
	assert.True(t, m.SetRefractionProbability(0.3))
	assert.True(t, m.SetRefractionRoughness(0.8))
	assert.Equal(t, float32(0.8), m.RefractionRoughness())
	assert.Equal(t, float32(0.3), m.RefractionProbability())
	assert.False(t, m.SetRefractionRoughness(0.8))
}

func TestMaterialTypeString(t *testing.T) {
	assert.Equal(t, "lambertian", MaterialLambertian.String())
	assert.Equal(t, "metallic", MaterialMetallic.String())
	assert.Equal(t, "dielectric", MaterialDielectric.String())
	assert.Equal(t, "isotropic", MaterialIsotropic.String())
	assert.Equal(t, "emissive", MaterialEmissive.String())
	assert.Equal(t, "unknown", MaterialType(12).String())
}
