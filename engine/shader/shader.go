package shader

import (
	"fmt"
	"slices"
	"sync"
)

// Stage identifies the pipeline stage a shader is compiled for.
type Stage int

const (
	// StageVertex processes vertices in a render pipeline.
	StageVertex Stage = iota

	// StageFragment shades fragments in pair with a vertex shader.
	StageFragment

	// StageGeometry emits primitives between the vertex and fragment stages.
	StageGeometry

	// StageCompute is a standalone compute stage dispatched with glDispatchCompute.
	StageCompute

	// StageTessControl is the tessellation control stage.
	StageTessControl

	// StageTessEvaluation is the tessellation evaluation stage.
	StageTessEvaluation
)

// String returns the upper-case stage name used in compile error messages.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	case StageGeometry:
		return "GEOMETRY"
	case StageCompute:
		return "COMPUTE"
	case StageTessControl:
		return "TESS_CONTROL"
	case StageTessEvaluation:
		return "TESS_EVALUATION"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// shader is the implementation of the Shader interface.
type shader struct {
	mu sync.RWMutex

	key          string
	path         string
	stage        Stage
	source       string
	declarations []Declaration
	dependencies []string

	pp PreProcessor
}

// Shader is a single GLSL stage loaded from disk with its includes expanded. It holds
// CPU-side data only; compiling happens in LoadProgram.
type Shader interface {
	// Key retrieves the unique identifier for this shader.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Path returns the file the shader was read from.
	//
	// Returns:
	//   - string: the source path
	Path() string

	// Stage returns the pipeline stage the shader targets.
	//
	// Returns:
	//   - Stage: the shader stage
	Stage() Stage

	// Source retrieves the pre-processed GLSL source.
	//
	// Returns:
	//   - string: the GLSL source with includes expanded
	Source() string

	// Declarations returns the uniform and buffer declarations found in the source
	// and its includes.
	//
	// Returns:
	//   - []Declaration: the declarations in expansion order
	Declarations() []Declaration

	// Declaration looks up a declaration by its variable or block name.
	//
	// Parameters:
	//   - name: a plain uniform name, block instance name or block type name
	//
	// Returns:
	//   - Declaration: the matching declaration
	//   - bool: true if one was found
	Declaration(name string) (Declaration, bool)

	// Dependencies returns the absolute paths of the source file and every file it includes.
	// A watcher uses these to reload the shader when any of them change.
	//
	// Returns:
	//   - []string: the file paths
	Dependencies() []string

	// Reload reads and pre-processes the source file again. On failure the previous
	// source is kept.
	//
	// Returns:
	//   - error: an error if the file cannot be read or pre-processed
	Reload() error
}

var _ Shader = &shader{}

// NewShader reads sourcePath and expands its includes.
//
// Parameters:
//   - key: a unique identifier for the shader, used in logs and watcher events
//   - stage: the pipeline stage to compile the shader for
//   - sourcePath: the file path to read GLSL source from
//   - options: pre-processor options, such as extra registry includes
//
// Returns:
//   - Shader: the loaded shader
//   - error: an error if the path is empty or the source cannot be read or pre-processed
func NewShader(key string, stage Stage, sourcePath string, options ...PreProcessorBuilderOption) (Shader, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("shader %s: no source path", key)
	}
	s := &shader{
		key:   key,
		path:  sourcePath,
		stage: stage,
		pp:    NewPreProcessor(options...),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Path() string {
	return s.path
}

func (s *shader) Stage() Stage {
	return s.stage
}

func (s *shader) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *shader) Declarations() []Declaration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.declarations
}

func (s *shader) Declaration(name string) (Declaration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.declarations {
		if d.Name == name || (d.Kind != DeclarationUniform && d.Type == name) {
			return d, true
		}
	}
	return Declaration{}, false
}

func (s *shader) Dependencies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dependencies
}

func (s *shader) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, err := s.pp.ProcessFile(s.path)
	if err != nil {
		return fmt.Errorf("shader %s: failed to pre-process %q: %w", s.key, s.path, err)
	}
	s.source = source
	s.declarations = slices.Clone(s.pp.Declarations())
	s.dependencies = slices.Clone(s.pp.Dependencies())
	return nil
}
