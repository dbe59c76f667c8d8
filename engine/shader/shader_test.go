package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "particle.comp"), "#version 460 core\n#include <camera_uniform>\nuniform float dt;\nvoid main() {}\n")

	s, err := NewShader("particle_comp", StageCompute, path)
	require.NoError(t, err)

	assert.Equal(t, "particle_comp", s.Key())
	assert.Equal(t, path, s.Path())
	assert.Equal(t, StageCompute, s.Stage())
	assert.Contains(t, s.Source(), "uniform CameraUniform")
	assert.Equal(t, []string{path}, s.Dependencies())

	dt, ok := s.Declaration("dt")
	require.True(t, ok)
	assert.Equal(t, DeclarationUniform, dt.Kind)
	assert.Equal(t, 3, dt.Line)

	block, ok := s.Declaration("CameraUniform")
	require.True(t, ok)
	assert.Equal(t, "camera", block.Name)

	_, ok = s.Declaration("float")
	assert.False(t, ok, "plain uniform types are not names")
}

func TestNewShaderErrors(t *testing.T) {
	_, err := NewShader("none", StageVertex, "")
	assert.ErrorContains(t, err, "no source path")

	_, err = NewShader("missing", StageVertex, filepath.Join(t.TempDir(), "missing.vert"))
	assert.ErrorContains(t, err, "shader missing: failed to pre-process")
}

func TestShaderReloadKeepsSourceOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "a.frag"), "void main() {}\n")

	s, err := NewShader("a", StageFragment, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("#include <nothing>\n"), 0o644))
	require.Error(t, s.Reload())
	assert.Equal(t, "void main() {}\n", s.Source())

	require.NoError(t, os.WriteFile(path, []byte("uniform int frame;\nvoid main() {}\n"), 0o644))
	require.NoError(t, s.Reload())
	assert.Contains(t, s.Source(), "uniform int frame;")
	assert.Len(t, s.Declarations(), 1)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "VERTEX", StageVertex.String())
	assert.Equal(t, "FRAGMENT", StageFragment.String())
	assert.Equal(t, "GEOMETRY", StageGeometry.String())
	assert.Equal(t, "COMPUTE", StageCompute.String())
	assert.Equal(t, "TESS_CONTROL", StageTessControl.String())
	assert.Equal(t, "TESS_EVALUATION", StageTessEvaluation.String())
	assert.Equal(t, "Stage(9)", Stage(9).String())
}
