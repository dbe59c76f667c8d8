package shader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompiler records driver calls in place of an OpenGL context.
type fakeCompiler struct {
	recordingUploader

	next      uint32
	compiled  []string
	deleted   []uint32
	linked    [][]uint32
	programs  []uint32
	dropped   []uint32
	used      []uint32
	lookups   map[string]int
	locations map[string]int32
	failStage Stage
	failOn    string
	failLink  bool
}

func newFakeCompiler() *fakeCompiler {
	return &fakeCompiler{
		next:      1,
		failStage: -1,
		lookups:   make(map[string]int),
		locations: map[string]int32{"dt": 2, "centerOfGravity": 5},
	}
}

func (c *fakeCompiler) CompileStage(source string, stage Stage) (uint32, error) {
	if stage == c.failStage || (c.failOn != "" && source == c.failOn) {
		return 0, fmt.Errorf("%w: 0:1: syntax error", ErrCompile)
	}
	c.compiled = append(c.compiled, source)
	c.next++
	return c.next, nil
}

func (c *fakeCompiler) LinkProgram(stages []uint32) (uint32, error) {
	c.linked = append(c.linked, append([]uint32(nil), stages...))
	if c.failLink {
		return 0, fmt.Errorf("%w: missing main", ErrLink)
	}
	c.next++
	c.programs = append(c.programs, c.next)
	return c.next, nil
}

func (c *fakeCompiler) DeleteStage(stage uint32) {
	c.deleted = append(c.deleted, stage)
}

func (c *fakeCompiler) DeleteProgram(program uint32) {
	c.dropped = append(c.dropped, program)
}

func (c *fakeCompiler) UseProgram(program uint32) {
	c.used = append(c.used, program)
}

func (c *fakeCompiler) UniformLocation(program uint32, name string) int32 {
	c.lookups[name]++
	if loc, ok := c.locations[name]; ok {
		return loc
	}
	return -1
}

func loadTestShaders(t *testing.T) (vert, frag Shader) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "particle.vert"), "#version 460 core\n#include <camera_uniform>\nvoid main() {}\n")
	writeFile(t, filepath.Join(dir, "particle.frag"), "#version 460 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n")

	vert, err := NewShader("particle_vert", StageVertex, filepath.Join(dir, "particle.vert"))
	require.NoError(t, err)
	frag, err = NewShader("particle_frag", StageFragment, filepath.Join(dir, "particle.frag"))
	require.NoError(t, err)
	return vert, frag
}

func TestLoadProgram(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()

	p, err := LoadProgram(c, "particles", vert, frag)
	require.NoError(t, err)

	assert.Equal(t, "particles", p.Name())
	assert.Equal(t, []string{vert.Source(), frag.Source()}, c.compiled)
	require.Len(t, c.linked, 1)
	assert.Equal(t, c.linked[0], c.deleted, "every stage is deleted after linking")
	assert.Equal(t, c.programs[0], p.Handle())
	assert.Len(t, p.Shaders(), 2)
}

func TestLoadProgramNoStages(t *testing.T) {
	_, err := LoadProgram(newFakeCompiler(), "empty")
	assert.ErrorIs(t, err, ErrNoStages)
}

func TestLoadProgramCompileFailure(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()
	c.failStage = StageFragment

	_, err := LoadProgram(c, "particles", vert, frag)
	require.ErrorIs(t, err, ErrCompile)
	assert.Contains(t, err.Error(), "failed to compile FRAGMENT component")
	assert.Contains(t, err.Error(), "particle.frag")
	assert.Empty(t, c.linked)
	assert.Len(t, c.deleted, 1, "the vertex stage compiled before the failure is released")
}

func TestLoadProgramLinkFailure(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()
	c.failLink = true

	_, err := LoadProgram(c, "particles", vert, frag)
	require.ErrorIs(t, err, ErrLink)
	assert.Contains(t, err.Error(), "program particles: failed to link")
	assert.Len(t, c.deleted, 2)
}

func TestProgramBindUnbind(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()
	p, err := LoadProgram(c, "particles", vert, frag)
	require.NoError(t, err)

	p.Bind()
	p.Unbind()
	assert.Equal(t, []uint32{p.Handle(), 0}, c.used)
}

func TestProgramSetUniformCachesLocation(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()
	p, err := LoadProgram(c, "particles", vert, frag)
	require.NoError(t, err)

	require.NoError(t, p.SetUniform("dt", Float(0.016)))
	require.NoError(t, p.SetUniform("dt", Float(0.017)))
	require.NoError(t, p.SetUniform("centerOfGravity", Vec3(mgl32.Vec3{0, 0, 25})))

	assert.Equal(t, 1, c.lookups["dt"])
	assert.Equal(t, []string{"1f@2", "1f@2", "3f@5"}, c.calls)
	assert.Equal(t, float32(0.017), c.floats[1])
}

func TestProgramSetUniformInactive(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()
	p, err := LoadProgram(c, "particles", vert, frag)
	require.NoError(t, err)

	require.NoError(t, p.SetUniform("optimisedAway", Int(3)))
	require.NoError(t, p.SetUniform("optimisedAway", Int(4)))
	assert.Empty(t, c.calls)
	assert.Equal(t, 1, c.lookups["optimisedAway"])

	err = p.SetUniform("dt", UniformValue{})
	assert.ErrorIs(t, err, ErrInvalidUniform)
}

func TestProgramReload(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()
	p, err := LoadProgram(c, "particles", vert, frag)
	require.NoError(t, err)
	first := p.Handle()
	require.NoError(t, p.SetUniform("dt", Float(1)))

	require.NoError(t, os.WriteFile(frag.Path(), []byte("#version 460 core\nout vec4 color;\nvoid main() { color = vec4(0.5); }\n"), 0o644))
	require.NoError(t, p.Reload())

	assert.NotEqual(t, first, p.Handle())
	assert.Equal(t, []uint32{first}, c.dropped)
	assert.Contains(t, frag.Source(), "vec4(0.5)")

	require.NoError(t, p.SetUniform("dt", Float(1)))
	assert.Equal(t, 2, c.lookups["dt"], "locations are looked up again after relinking")
}

func TestProgramReloadFailureKeepsProgram(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()
	p, err := LoadProgram(c, "particles", vert, frag)
	require.NoError(t, err)
	first := p.Handle()

	broken := "#version 460 core\nvoid main() { oops }\n"
	c.failOn = broken
	require.NoError(t, os.WriteFile(frag.Path(), []byte(broken), 0o644))

	err = p.Reload()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCompile))
	assert.Equal(t, first, p.Handle())
	assert.Empty(t, c.dropped)
}

func TestProgramDependencies(t *testing.T) {
	dir := t.TempDir()
	common := writeFile(t, filepath.Join(dir, "common.glsl"), "float f() { return 1.0; }\n")
	vertPath := writeFile(t, filepath.Join(dir, "a.vert"), "#include \"common.glsl\"\nvoid main() {}\n")
	fragPath := writeFile(t, filepath.Join(dir, "a.frag"), "#include \"common.glsl\"\nvoid main() {}\n")

	vert, err := NewShader("a_vert", StageVertex, vertPath)
	require.NoError(t, err)
	frag, err := NewShader("a_frag", StageFragment, fragPath)
	require.NoError(t, err)

	p, err := LoadProgram(newFakeCompiler(), "a", vert, frag)
	require.NoError(t, err)
	assert.Equal(t, []string{vertPath, common, fragPath}, p.Dependencies())
}

func TestProgramDelete(t *testing.T) {
	vert, frag := loadTestShaders(t)
	c := newFakeCompiler()
	p, err := LoadProgram(c, "particles", vert, frag)
	require.NoError(t, err)
	handle := p.Handle()

	p.Delete()
	p.Delete()
	assert.Equal(t, []uint32{handle}, c.dropped)
	assert.Zero(t, p.Handle())
}
