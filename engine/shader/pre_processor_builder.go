package shader

// PreProcessorBuilderOption is a function that configures a preProcessor instance.
type PreProcessorBuilderOption func(*preProcessor)

// WithInclude registers source under name so that `#include <name>` expands to it.
// Registering an existing name replaces it.
//
// Parameters:
//   - name: the include name, without angle brackets
//   - source: the GLSL source to inject
//
// Returns:
//   - PreProcessorBuilderOption: a function that applies the registration to a preProcessor instance
func WithInclude(name, source string) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		p.registry[name] = source
	}
}

// WithIncludeDir sets the directory that file includes in inline source are resolved against.
// Defaults to the working directory.
//
// Parameters:
//   - dir: the include directory
//
// Returns:
//   - PreProcessorBuilderOption: a function that applies the directory to a preProcessor instance
func WithIncludeDir(dir string) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		p.includeDir = dir
	}
}
