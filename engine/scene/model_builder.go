package scene

import "github.com/Carmen-Shannon/oxy-gl/engine/transform"

// ModelBuilderOption is a function that configures a model instance.
type ModelBuilderOption func(*model)

// WithModelName overrides the model name, which defaults to the mesh name.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: a function that applies the name to a model instance
func WithModelName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithModelTransform places the model with an existing transform. Defaults to identity.
//
// Parameters:
//   - t: the transform
//
// Returns:
//   - ModelBuilderOption: a function that applies the transform to a model instance
func WithModelTransform(t transform.Transform) ModelBuilderOption {
	return func(m *model) {
		m.transform = t
	}
}

// WithModelMaterial sets the material every triangle of the model is shaded with.
//
// Parameters:
//   - material: the material
//
// Returns:
//   - ModelBuilderOption: a function that applies the material to a model instance
func WithModelMaterial(material Material) ModelBuilderOption {
	return func(m *model) {
		m.material = material
	}
}
