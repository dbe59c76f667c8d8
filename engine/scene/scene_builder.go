package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithSpheres adds initial spheres to the scene.
//
// Parameters:
//   - spheres: the spheres to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSpheres(spheres ...Sphere) SceneBuilderOption {
	return func(s *scene) {
		s.spheres = append(s.spheres, spheres...)
	}
}

// WithBoxes adds initial boxes to the scene.
//
// Parameters:
//   - boxes: the boxes to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBoxes(boxes ...AABB) SceneBuilderOption {
	return func(s *scene) {
		s.boxes = append(s.boxes, boxes...)
	}
}

// WithModels adds initial models to the scene.
//
// Parameters:
//   - models: the models to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithModels(models ...Model) SceneBuilderOption {
	return func(s *scene) {
		s.models = append(s.models, models...)
	}
}

// WithComputeWorkers sets the number of worker goroutines that recalculate model
// triangles during Prepare. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}
