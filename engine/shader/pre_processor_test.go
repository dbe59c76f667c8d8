package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessInjectsCameraUniform(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process("#version 460 core\n#include <camera_uniform>\nvoid main() {}\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "#version 460 core\n"))
	assert.Contains(t, out, camera.GPUCameraUniformSource)
	assert.NotContains(t, out, "#include")

	decl, ok := findDeclaration(pp.Declarations(), "camera")
	require.True(t, ok)
	assert.Equal(t, DeclarationUniformBlock, decl.Kind)
	assert.Equal(t, "CameraUniform", decl.Type)
	require.NotNil(t, decl.Binding)
	assert.Equal(t, camera.GPUCameraUniformBinding, *decl.Binding)
	assert.Equal(t, "<camera_uniform>", decl.File)
}

func TestProcessRegistryIncludeOnce(t *testing.T) {
	pp := NewPreProcessor(WithInclude("consts", "const float PI = 3.14159;"))
	out, err := pp.Process("#include <consts>\n#include <consts>\n")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "const float PI"))
}

func TestProcessFileRelativeIncludes(t *testing.T) {
	dir := t.TempDir()
	main := writeFile(t, filepath.Join(dir, "main.comp"), "#version 460 core\n#include \"lib/noise.glsl\"\nvoid main() {}\n")
	noise := writeFile(t, filepath.Join(dir, "lib", "noise.glsl"), "#include \"hash.glsl\"\nfloat noise(vec3 p) { return hash(p); }\n")
	hash := writeFile(t, filepath.Join(dir, "lib", "hash.glsl"), "float hash(vec3 p) { return fract(p.x); }\n")

	pp := NewPreProcessor()
	out, err := pp.ProcessFile(main)
	require.NoError(t, err)

	hashAt := strings.Index(out, "float hash")
	noiseAt := strings.Index(out, "float noise")
	mainAt := strings.Index(out, "void main")
	require.True(t, hashAt >= 0 && noiseAt >= 0 && mainAt >= 0, out)
	assert.Less(t, hashAt, noiseAt)
	assert.Less(t, noiseAt, mainAt)

	assert.Equal(t, []string{main, noise, hash}, pp.Dependencies())
}

func TestProcessFileIncludeOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "common.glsl"), "struct Ray { vec3 origin; vec3 direction; };\n")
	writeFile(t, filepath.Join(dir, "a.glsl"), "#include \"common.glsl\"\n")
	main := writeFile(t, filepath.Join(dir, "main.frag"), "#include \"common.glsl\"\n#include \"a.glsl\"\n")

	out, err := NewPreProcessor().ProcessFile(main)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "struct Ray"))
}

func TestProcessFileCycle(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.glsl"), "#include \"b.glsl\"\n")
	writeFile(t, filepath.Join(dir, "b.glsl"), "#include \"a.glsl\"\n")

	_, err := NewPreProcessor().ProcessFile(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include cycle")
}

func TestProcessSelfInclude(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.glsl"), "#include \"a.glsl\"\n")

	_, err := NewPreProcessor().ProcessFile(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include cycle")
}

func TestProcessErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "unknown registry include", source: "void f();\n#include <missing>\n", want: "line 2: unknown include <missing>"},
		{name: "bare include", source: "#include missing.glsl\n", want: "line 1: malformed #include"},
		{name: "empty include", source: "#include\n", want: "line 1: malformed #include"},
		{name: "missing file", source: "#include \"missing.glsl\"\n", want: "failed to read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPreProcessor(WithIncludeDir(t.TempDir())).Process(tt.source)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProcessIncludeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "util.glsl"), "float square(float x) { return x * x; }\n")

	out, err := NewPreProcessor(WithIncludeDir(dir)).Process("#include \"util.glsl\"\n")
	require.NoError(t, err)
	assert.Contains(t, out, "float square")
}

func TestProcessResetsState(t *testing.T) {
	pp := NewPreProcessor()
	_, err := pp.Process("uniform float dt;\n")
	require.NoError(t, err)
	require.Len(t, pp.Declarations(), 1)

	_, err = pp.Process("uniform int frame;\n")
	require.NoError(t, err)
	require.Len(t, pp.Declarations(), 1)
	assert.Equal(t, "frame", pp.Declarations()[0].Name)
}

func TestProcessLeavesOtherDirectives(t *testing.T) {
	source := "#version 460 core\n#define WORKGROUP 256\n#ifdef WORKGROUP\n#endif\n"
	out, err := NewPreProcessor().Process(source)
	require.NoError(t, err)
	assert.Equal(t, source, out)
}

func findDeclaration(decls []Declaration, name string) (Declaration, bool) {
	for _, d := range decls {
		if d.Name == name {
			return d, true
		}
	}
	return Declaration{}, false
}
