package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrCompile wraps the driver's info log when a stage fails to compile.
	ErrCompile = errors.New("compile failed")

	// ErrLink wraps the driver's info log when a program fails to link.
	ErrLink = errors.New("link failed")
)

// glCompiler is the OpenGL implementation of the Compiler interface.
type glCompiler struct{}

var _ Compiler = &glCompiler{}

// NewGLCompiler creates a Compiler backed by the current OpenGL context.
// gl.Init must have been called on the calling thread.
//
// Returns:
//   - Compiler: the OpenGL compiler
func NewGLCompiler() Compiler {
	return &glCompiler{}
}

func glStage(s Stage) uint32 {
	switch s {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	case StageGeometry:
		return gl.GEOMETRY_SHADER
	case StageCompute:
		return gl.COMPUTE_SHADER
	case StageTessControl:
		return gl.TESS_CONTROL_SHADER
	case StageTessEvaluation:
		return gl.TESS_EVALUATION_SHADER
	default:
		return 0
	}
}

func (c *glCompiler) CompileStage(source string, stage Stage) (uint32, error) {
	kind := glStage(stage)
	if kind == 0 {
		return 0, fmt.Errorf("%w: unknown stage %s", ErrCompile, stage)
	}

	handle := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &length)
		infoLog := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(handle, length, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("%w: %s", ErrCompile, strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

func (c *glCompiler) LinkProgram(stages []uint32) (uint32, error) {
	handle := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(handle, s)
	}
	gl.LinkProgram(handle)
	for _, s := range stages {
		gl.DetachShader(handle, s)
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
		infoLog := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(handle, length, nil, gl.Str(infoLog))
		gl.DeleteProgram(handle)
		return 0, fmt.Errorf("%w: %s", ErrLink, strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

func (c *glCompiler) DeleteStage(stage uint32) {
	gl.DeleteShader(stage)
}

func (c *glCompiler) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *glCompiler) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *glCompiler) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *glCompiler) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (c *glCompiler) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (c *glCompiler) Uniform2f(location int32, v mgl32.Vec2) {
	gl.Uniform2f(location, v[0], v[1])
}

func (c *glCompiler) Uniform3f(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (c *glCompiler) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (c *glCompiler) UniformMatrix3f(location int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (c *glCompiler) UniformMatrix4f(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
