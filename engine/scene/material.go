package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialType selects the scattering model the path tracer applies to a surface.
// The values are shared with the GLSL constants in GPUSceneTypesSource.
type MaterialType int32

const (
	MaterialLambertian MaterialType = iota
	MaterialMetallic
	MaterialDielectric
	MaterialIsotropic
	MaterialEmissive
)

// String returns the lower-case name of the material type.
func (t MaterialType) String() string {
	switch t {
	case MaterialLambertian:
		return "lambertian"
	case MaterialMetallic:
		return "metallic"
	case MaterialDielectric:
		return "dielectric"
	case MaterialIsotropic:
		return "isotropic"
	case MaterialEmissive:
		return "emissive"
	default:
		return "unknown"
	}
}

// Value ranges accepted by the Material setters.
const (
	MinIOR              = 1.0
	MaxIOR              = 5.0
	MinEmissiveStrength = 0.01
	MaxEmissiveStrength = 20.0
)

// changeEpsilon is float32 machine epsilon. Setters treat smaller differences as no change.
const changeEpsilon = 1.1920929e-07

// Material describes how a path-traced surface scatters light. Every setter clamps its
// input to the accepted range and reports whether the stored value actually changed,
// so callers can skip GPU uploads when nothing did.
type Material struct {
	materialType          MaterialType
	albedo                mgl32.Vec3
	emissive              mgl32.Vec3
	emissiveStrength      float32
	absorbance            mgl32.Vec3
	ior                   float32
	reflectionProbability float32
	reflectionRoughness   float32
	refractionProbability float32
	refractionRoughness   float32
}

// NewMaterial returns a white lambertian material with glass-like refraction parameters.
//
// Parameters:
//   - options: functional options applied through the clamping setters
//
// Returns:
//   - Material: the configured material
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := Material{
		materialType:     MaterialLambertian,
		albedo:           mgl32.Vec3{1, 1, 1},
		emissiveStrength: 1,
		ior:              1.5,
	}
	for _, opt := range options {
		opt(&m)
	}
	return m
}

func (m *Material) Type() MaterialType {
	return m.materialType
}

func (m *Material) Albedo() mgl32.Vec3 {
	return m.albedo
}

func (m *Material) Emissive() mgl32.Vec3 {
	return m.emissive
}

func (m *Material) EmissiveStrength() float32 {
	return m.emissiveStrength
}

func (m *Material) Absorbance() mgl32.Vec3 {
	return m.absorbance
}

func (m *Material) IOR() float32 {
	return m.ior
}

func (m *Material) ReflectionProbability() float32 {
	return m.reflectionProbability
}

func (m *Material) ReflectionRoughness() float32 {
	return m.reflectionRoughness
}

func (m *Material) RefractionProbability() float32 {
	return m.refractionProbability
}

func (m *Material) RefractionRoughness() float32 {
	return m.refractionRoughness
}

// SetType changes the scattering model. Unknown types are rejected.
//
// Parameters:
//   - t: the material type
//
// Returns:
//   - bool: true if the type changed
func (m *Material) SetType(t MaterialType) bool {
	if t < MaterialLambertian || t > MaterialEmissive || t == m.materialType {
		return false
	}
	m.materialType = t
	return true
}

// SetAlbedo sets the surface color, clamped to [0, 1] per channel.
func (m *Material) SetAlbedo(albedo mgl32.Vec3) bool {
	return setVec3(&m.albedo, albedo, 0, 1)
}

// SetEmissive sets the emitted color, clamped to [0, 1] per channel.
func (m *Material) SetEmissive(emissive mgl32.Vec3) bool {
	return setVec3(&m.emissive, emissive, 0, 1)
}

// SetEmissiveStrength scales the emitted color, clamped to [MinEmissiveStrength, MaxEmissiveStrength].
func (m *Material) SetEmissiveStrength(strength float32) bool {
	return setFloat(&m.emissiveStrength, strength, MinEmissiveStrength, MaxEmissiveStrength)
}

// SetAbsorbance sets the Beer's law absorbance of dielectrics, clamped to [0, 1] per channel.
func (m *Material) SetAbsorbance(absorbance mgl32.Vec3) bool {
	return setVec3(&m.absorbance, absorbance, 0, 1)
}

// SetIOR sets the index of refraction, clamped to [MinIOR, MaxIOR].
func (m *Material) SetIOR(ior float32) bool {
	return setFloat(&m.ior, ior, MinIOR, MaxIOR)
}

// SetReflectionProbability sets the chance a ray reflects, clamped to [0, 1].
// The refraction probability is lowered if the two would sum past 1.
//
// Parameters:
//   - p: the reflection probability
//
// Returns:
//   - bool: true if the reflection probability changed
func (m *Material) SetReflectionProbability(p float32) bool {
	if !setFloat(&m.reflectionProbability, p, 0, 1) {
		return false
	}
	if m.reflectionProbability+m.refractionProbability > 1 {
		m.refractionProbability = 1 - m.reflectionProbability
	}
	return true
}

// SetReflectionRoughness sets how blurry reflections are, clamped to [0, 1].
func (m *Material) SetReflectionRoughness(r float32) bool {
	return setFloat(&m.reflectionRoughness, r, 0, 1)
}

// SetRefractionProbability sets the chance a ray refracts, clamped to [0, 1].
// The reflection probability is lowered if the two would sum past 1.
//
// Parameters:
//   - p: the refraction probability
//
// Returns:
//   - bool: true if the refraction probability changed
func (m *Material) SetRefractionProbability(p float32) bool {
	if !setFloat(&m.refractionProbability, p, 0, 1) {
		return false
	}
	if m.reflectionProbability+m.refractionProbability > 1 {
		m.reflectionProbability = 1 - m.refractionProbability
	}
	return true
}

// SetRefractionRoughness sets how blurry refractions are, clamped to [0, 1].
func (m *Material) SetRefractionRoughness(r float32) bool {
	return setFloat(&m.refractionRoughness, r, 0, 1)
}

// GPU converts the material to its std430 representation.
//
// Returns:
//   - GPUMaterial: the packed material
func (m *Material) GPU() GPUMaterial {
	return GPUMaterial{
		Albedo:                m.albedo,
		Type:                  int32(m.materialType),
		Emissive:              m.emissive,
		EmissiveStrength:      m.emissiveStrength,
		Absorbance:            m.absorbance,
		IOR:                   m.ior,
		ReflectionProbability: m.reflectionProbability,
		ReflectionRoughness:   m.reflectionRoughness,
		RefractionProbability: m.refractionProbability,
		RefractionRoughness:   m.refractionRoughness,
	}
}

// setFloat clamps v into [low, high] and stores it in dst if it differs by more than changeEpsilon.
func setFloat(dst *float32, v, low, high float32) bool {
	v = common.Clamp(v, low, high)
	diff := v - *dst
	if diff <= changeEpsilon && diff >= -changeEpsilon {
		return false
	}
	*dst = v
	return true
}

// setVec3 clamps each component of v into [low, high] and stores it in dst if any
// component differs by more than changeEpsilon.
func setVec3(dst *mgl32.Vec3, v mgl32.Vec3, low, high float32) bool {
	changed := false
	for i := range v {
		v[i] = common.Clamp(v[i], low, high)
		diff := v[i] - dst[i]
		if diff > changeEpsilon || diff < -changeEpsilon {
			changed = true
		}
	}
	if changed {
		*dst = v
	}
	return changed
}
