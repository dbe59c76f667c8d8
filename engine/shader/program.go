package shader

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrNoStages is returned when a program is requested without any shader stages.
var ErrNoStages = errors.New("no shader stages")

// Compiler turns pre-processed shader sources into driver objects. NewGLCompiler
// returns the OpenGL implementation; it must only be used on the thread that owns
// the GL context.
type Compiler interface {
	UniformUploader

	// CompileStage compiles a single stage.
	//
	// Parameters:
	//   - source: the pre-processed GLSL source
	//   - stage: the stage to compile for
	//
	// Returns:
	//   - uint32: the stage handle
	//   - error: the driver's info log wrapped in an error on failure
	CompileStage(source string, stage Stage) (uint32, error)

	// LinkProgram links compiled stages into a program and detaches them afterwards.
	// The stages are not deleted.
	//
	// Parameters:
	//   - stages: the compiled stage handles
	//
	// Returns:
	//   - uint32: the program handle
	//   - error: the driver's info log wrapped in an error on failure
	LinkProgram(stages []uint32) (uint32, error)

	// DeleteStage releases a compiled stage.
	DeleteStage(stage uint32)

	// DeleteProgram releases a linked program.
	DeleteProgram(program uint32)

	// UseProgram makes program current. 0 unbinds.
	UseProgram(program uint32)

	// UniformLocation returns the location of an active uniform, or -1.
	UniformLocation(program uint32, name string) int32
}

// program is the implementation of the Program interface.
type program struct {
	mu sync.Mutex

	name      string
	compiler  Compiler
	shaders   []Shader
	handle    uint32
	locations map[string]int32
}

// Program is a linked shader program together with the shaders it was built from.
type Program interface {
	// Name returns the program name used in errors and watcher events.
	//
	// Returns:
	//   - string: the program name
	Name() string

	// Handle returns the driver handle of the linked program.
	//
	// Returns:
	//   - uint32: the program handle
	Handle() uint32

	// Shaders returns the stages the program was linked from.
	//
	// Returns:
	//   - []Shader: the shaders
	Shaders() []Shader

	// Dependencies returns every file the program's shaders were read from, without duplicates.
	//
	// Returns:
	//   - []string: the file paths
	Dependencies() []string

	// Bind makes the program current.
	Bind()

	// Unbind clears the current program.
	Unbind()

	// SetUniform uploads value to the named uniform of the bound program. Locations are
	// looked up once and cached. Uniforms the driver optimised away are skipped silently.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to upload
	//
	// Returns:
	//   - error: ErrInvalidUniform if value is the zero UniformValue
	SetUniform(name string, value UniformValue) error

	// Reload re-reads every shader from disk and relinks. On any failure the previously
	// linked program stays in use.
	//
	// Returns:
	//   - error: the pre-process, compile or link error
	Reload() error

	// Delete releases the program handle.
	Delete()
}

var _ Program = &program{}

// LoadProgram compiles and links shaders into a program. Stages are detached and
// deleted once the program is linked, whether or not linking succeeded.
//
// Parameters:
//   - compiler: the driver backend
//   - name: the program name
//   - shaders: the stages to link
//
// Returns:
//   - Program: the linked program
//   - error: ErrNoStages, or a compile or link error naming the failing stage
func LoadProgram(compiler Compiler, name string, shaders ...Shader) (Program, error) {
	handle, err := link(compiler, name, shaders)
	if err != nil {
		return nil, err
	}
	return &program{
		name:      name,
		compiler:  compiler,
		shaders:   shaders,
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

func link(compiler Compiler, name string, shaders []Shader) (uint32, error) {
	if len(shaders) == 0 {
		return 0, fmt.Errorf("program %s: %w", name, ErrNoStages)
	}

	stages := make([]uint32, 0, len(shaders))
	defer func() {
		for _, s := range stages {
			compiler.DeleteStage(s)
		}
	}()

	for _, s := range shaders {
		handle, err := compiler.CompileStage(s.Source(), s.Stage())
		if err != nil {
			return 0, fmt.Errorf("program %s: failed to compile %s component (%s): %w", name, s.Stage(), s.Path(), err)
		}
		stages = append(stages, handle)
	}

	handle, err := compiler.LinkProgram(stages)
	if err != nil {
		return 0, fmt.Errorf("program %s: failed to link: %w", name, err)
	}
	return handle, nil
}

func (p *program) Name() string {
	return p.name
}

func (p *program) Handle() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handle
}

func (p *program) Shaders() []Shader {
	return p.shaders
}

func (p *program) Dependencies() []string {
	var deps []string
	for _, s := range p.shaders {
		for _, d := range s.Dependencies() {
			if !slices.Contains(deps, d) {
				deps = append(deps, d)
			}
		}
	}
	return deps
}

func (p *program) Bind() {
	p.compiler.UseProgram(p.Handle())
}

func (p *program) Unbind() {
	p.compiler.UseProgram(0)
}

func (p *program) SetUniform(name string, value UniformValue) error {
	p.mu.Lock()
	loc, ok := p.locations[name]
	if !ok {
		loc = p.compiler.UniformLocation(p.handle, name)
		p.locations[name] = loc
	}
	p.mu.Unlock()

	if err := Apply(p.compiler, loc, value); err != nil {
		return fmt.Errorf("program %s: uniform %q: %w", p.name, name, err)
	}
	return nil
}

func (p *program) Reload() error {
	for _, s := range p.shaders {
		if err := s.Reload(); err != nil {
			return err
		}
	}
	handle, err := link(p.compiler, p.name, p.shaders)
	if err != nil {
		return err
	}

	p.mu.Lock()
	old := p.handle
	p.handle = handle
	clear(p.locations)
	p.mu.Unlock()

	p.compiler.DeleteProgram(old)
	return nil
}

func (p *program) Delete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle != 0 {
		p.compiler.DeleteProgram(p.handle)
		p.handle = 0
	}
}
