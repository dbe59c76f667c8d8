// pre_processor.go implements the GLSL include pre-processor. It expands two forms of
// #include directive before the source reaches the driver:
//
//	#include <camera_uniform>  // registry include, source embedded from a Go GPU type
//	#include "noise.glsl"      // file include, resolved relative to the including file
//
// Every include is expanded at most once per Process call, so shared headers can be
// included from several files without redefinition errors. A file that includes itself,
// directly or through another file, is reported as an include cycle.
package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
)

// Registry keys of the engine's GLSL blocks.
const (
	IncludeCameraUniform = "camera_uniform"
	IncludeSceneTypes    = "scene_types"
)

// sourceLabel names inline source passed to Process in error messages.
const sourceLabel = "<source>"

var includePattern = regexp.MustCompile(`^\s*#\s*include\b(.*)$`)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// registry maps <name> includes to their GLSL source.
	registry map[string]string

	// includeDir resolves file includes found in inline source passed to Process.
	includeDir string

	// declarations accumulates during a Process call. Reset at the start of each call.
	declarations []Declaration

	// dependencies lists every file read during the most recent call, in read order.
	dependencies []string

	included map[string]bool
	stack    []string
}

// PreProcessor expands #include directives in GLSL source and collects the resource
// declarations found in the expanded result.
type PreProcessor interface {
	// Process expands the includes of inline source. File includes are resolved against
	// the pre-processor's include directory.
	//
	// The declarations and dependency lists are reset at the start of each call.
	//
	// Parameters:
	//   - source: the raw GLSL source
	//
	// Returns:
	//   - string: the expanded source
	//   - error: an error if an include is malformed, unknown, unreadable or cyclic
	Process(source string) (string, error)

	// ProcessFile reads path and expands its includes. File includes are resolved
	// relative to the directory of the file containing them.
	//
	// Parameters:
	//   - path: the shader file to read
	//
	// Returns:
	//   - string: the expanded source
	//   - error: an error if the file cannot be read or an include fails
	ProcessFile(path string) (string, error)

	// Declarations returns the declarations collected during the most recent call,
	// in expansion order.
	//
	// Returns:
	//   - []Declaration: the declarations, nil if nothing was processed yet
	Declarations() []Declaration

	// Dependencies returns the absolute paths of every file read during the most
	// recent call, the processed file itself first.
	//
	// Returns:
	//   - []string: the file paths
	Dependencies() []string
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a new PreProcessor with the engine's GLSL blocks registered.
//
// Parameters:
//   - options: variadic list of PreProcessorBuilderOption functions to configure the pre-processor
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor(options ...PreProcessorBuilderOption) PreProcessor {
	p := &preProcessor{
		registry: map[string]string{
			IncludeCameraUniform: camera.GPUCameraUniformSource,
			IncludeSceneTypes:    scene.GPUSceneTypesSource,
		},
		includeDir: ".",
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *preProcessor) Process(source string) (string, error) {
	p.reset()
	return p.expand(source, sourceLabel, p.includeDir)
}

func (p *preProcessor) ProcessFile(path string) (string, error) {
	p.reset()
	abs, err := filepath.Abs(common.ToNativeSeparators(path))
	if err != nil {
		return "", err
	}
	return p.expandFile(abs)
}

func (p *preProcessor) Declarations() []Declaration {
	return p.declarations
}

func (p *preProcessor) Dependencies() []string {
	return p.dependencies
}

func (p *preProcessor) reset() {
	p.declarations = nil
	p.dependencies = nil
	p.included = make(map[string]bool)
	p.stack = p.stack[:0]
}

// expandFile reads and expands a file that has not been included yet.
func (p *preProcessor) expandFile(abs string) (string, error) {
	if slices.Contains(p.stack, abs) {
		chain := append(slices.Clone(p.stack), abs)
		return "", fmt.Errorf("include cycle: %s", strings.Join(chain, " -> "))
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", abs, err)
	}
	p.included[abs] = true
	p.dependencies = append(p.dependencies, abs)

	p.stack = append(p.stack, abs)
	defer func() { p.stack = p.stack[:len(p.stack)-1] }()

	return p.expand(string(data), abs, filepath.Dir(abs))
}

// expand walks source line by line, replacing include directives with the expanded
// source they name. Declarations are scanned on the unexpanded text so that their
// line numbers refer to the file they were written in.
func (p *preProcessor) expand(source, file, dir string) (string, error) {
	p.declarations = append(p.declarations, scanDeclarations(source, file)...)

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		m := includePattern.FindStringSubmatch(line)
		if m == nil {
			out = append(out, line)
			continue
		}

		arg := strings.TrimSpace(m[1])
		switch {
		case len(arg) > 2 && arg[0] == '<' && arg[len(arg)-1] == '>':
			name := arg[1 : len(arg)-1]
			src, ok := p.registry[name]
			if !ok {
				return "", fmt.Errorf("%s: line %d: unknown include <%s>", file, i+1, name)
			}
			key := "<" + name + ">"
			if p.included[key] {
				continue
			}
			p.included[key] = true
			expanded, err := p.expand(src, key, dir)
			if err != nil {
				return "", err
			}
			out = append(out, expanded)
		case len(arg) > 2 && arg[0] == '"' && arg[len(arg)-1] == '"':
			target := common.ToNativeSeparators(arg[1 : len(arg)-1])
			if !filepath.IsAbs(target) {
				target = filepath.Join(dir, target)
			}
			abs, err := filepath.Abs(target)
			if err != nil {
				return "", fmt.Errorf("%s: line %d: %w", file, i+1, err)
			}
			if p.included[abs] && !slices.Contains(p.stack, abs) {
				continue
			}
			expanded, err := p.expandFile(abs)
			if err != nil {
				return "", fmt.Errorf("%s: line %d: %w", file, i+1, err)
			}
			out = append(out, expanded)
		default:
			return "", fmt.Errorf("%s: line %d: malformed #include %q", file, i+1, arg)
		}
	}
	return strings.Join(out, "\n"), nil
}
