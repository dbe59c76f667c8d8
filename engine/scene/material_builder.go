package scene

import "github.com/go-gl/mathgl/mgl32"

// MaterialBuilderOption is a function that configures a Material. Every option goes
// through the matching clamping setter.
type MaterialBuilderOption func(*Material)

// WithMaterialType sets the scattering model.
//
// Parameters:
//   - t: the material type
//
// Returns:
//   - MaterialBuilderOption: a function that applies the type to a Material
func WithMaterialType(t MaterialType) MaterialBuilderOption {
	return func(m *Material) {
		m.SetType(t)
	}
}

// WithAlbedo sets the surface color.
//
// Parameters:
//   - albedo: RGB in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the albedo to a Material
func WithAlbedo(albedo mgl32.Vec3) MaterialBuilderOption {
	return func(m *Material) {
		m.SetAlbedo(albedo)
	}
}

// WithEmission sets the emitted color and its strength.
//
// Parameters:
//   - color: RGB in [0, 1]
//   - strength: the emission multiplier
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emission to a Material
func WithEmission(color mgl32.Vec3, strength float32) MaterialBuilderOption {
	return func(m *Material) {
		m.SetEmissive(color)
		m.SetEmissiveStrength(strength)
	}
}

// WithReflection sets the reflection probability and roughness.
//
// Parameters:
//   - probability: the chance a ray reflects
//   - roughness: how blurry reflections are
//
// Returns:
//   - MaterialBuilderOption: a function that applies the reflection parameters to a Material
func WithReflection(probability, roughness float32) MaterialBuilderOption {
	return func(m *Material) {
		m.SetReflectionProbability(probability)
		m.SetReflectionRoughness(roughness)
	}
}

// WithRefraction sets the refraction probability, roughness, index of refraction and absorbance.
//
// Parameters:
//   - probability: the chance a ray refracts
//   - roughness: how blurry refractions are
//   - ior: the index of refraction
//   - absorbance: Beer's law absorbance per channel
//
// Returns:
//   - MaterialBuilderOption: a function that applies the refraction parameters to a Material
func WithRefraction(probability, roughness, ior float32, absorbance mgl32.Vec3) MaterialBuilderOption {
	return func(m *Material) {
		m.SetRefractionProbability(probability)
		m.SetRefractionRoughness(roughness)
		m.SetIOR(ior)
		m.SetAbsorbance(absorbance)
	}
}
