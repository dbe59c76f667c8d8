package common

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// native rewrites '/' separators to the platform separator.
func native(path string) string {
	return strings.ReplaceAll(path, "/", string(os.PathSeparator))
}

func TestToNativeSeparators(t *testing.T) {
	foreign := strings.ReplaceAll("assets/meshes/bunny.obj", "/", string(foreignSeparator))
	assert.Equal(t, native("assets/meshes/bunny.obj"), ToNativeSeparators(foreign))
	assert.Equal(t, "bunny.obj", ToNativeSeparators("bunny.obj"))
}

func TestDirectory(t *testing.T) {
	assert.Equal(t, native("assets/meshes/"), Directory("assets/meshes/bunny.obj"))
	assert.Equal(t, native("/"), Directory("/bunny.obj"))
	assert.Equal(t, "", Directory("bunny.obj"))
}

func TestAssetName(t *testing.T) {
	tests := map[string]string{
		"assets/meshes/bunny.obj":   "bunny",
		"bunny.obj":                 "bunny",
		"shaders/particle.vert":     "particle",
		"data/imgui_layout.tar.ini": "imgui_layout.tar",
		"data/README":               "README",
	}
	for in, want := range tests {
		assert.Equal(t, want, AssetName(in), in)
	}
}

func TestAssetExtension(t *testing.T) {
	assert.Equal(t, "obj", AssetExtension("assets/meshes/bunny.obj"))
	assert.Equal(t, "ini", AssetExtension("imgui_layout.tar.ini"))
	assert.Equal(t, "Makefile", AssetExtension("Makefile"))
}
