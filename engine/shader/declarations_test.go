package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const particleCompute = `#version 460 core
layout(local_size_x = 256) in;

struct Particle {
    vec4 position;
    vec4 velocity;
};

layout(std430, binding = 1) buffer Particles {
    Particle particles[];
};

layout(std430, binding = 2) readonly buffer Attractors {
    vec4 attractors[];
} attractorData;

uniform float dt;
uniform bool isRunning;
layout(location = 3) uniform vec3 centerOfGravity;
uniform float weights[4];
// uniform float commentedOut;

void main() {}
`

func TestScanDeclarations(t *testing.T) {
	decls := scanDeclarations(particleCompute, "particle.comp")
	require.Len(t, decls, 6)

	particles := decls[0]
	assert.Equal(t, DeclarationBuffer, particles.Kind)
	assert.Equal(t, "Particles", particles.Type)
	assert.Empty(t, particles.Name)
	require.NotNil(t, particles.Binding)
	assert.Equal(t, 1, *particles.Binding)
	assert.Nil(t, particles.Location)
	assert.Equal(t, 9, particles.Line)
	assert.Equal(t, "particle.comp", particles.File)

	attractors := decls[1]
	assert.Equal(t, DeclarationBuffer, attractors.Kind)
	assert.Equal(t, "Attractors", attractors.Type)
	assert.Equal(t, "attractorData", attractors.Name)
	require.NotNil(t, attractors.Binding)
	assert.Equal(t, 2, *attractors.Binding)
	assert.Equal(t, 13, attractors.Line)

	dt := decls[2]
	assert.Equal(t, DeclarationUniform, dt.Kind)
	assert.Equal(t, "float", dt.Type)
	assert.Equal(t, "dt", dt.Name)
	assert.Nil(t, dt.Binding)
	assert.Equal(t, 17, dt.Line)

	assert.Equal(t, "isRunning", decls[3].Name)
	assert.Equal(t, "bool", decls[3].Type)

	cog := decls[4]
	assert.Equal(t, "centerOfGravity", cog.Name)
	require.NotNil(t, cog.Location)
	assert.Equal(t, 3, *cog.Location)
	assert.Nil(t, cog.Binding)

	assert.Equal(t, "weights", decls[5].Name)
}

func TestScanDeclarationsUniformBlock(t *testing.T) {
	src := "  layout(std140, binding=4) uniform Globals {\n    float time;\n  } globals;\n"
	decls := scanDeclarations(src, "<source>")
	require.Len(t, decls, 1)
	assert.Equal(t, DeclarationUniformBlock, decls[0].Kind)
	assert.Equal(t, "Globals", decls[0].Type)
	assert.Equal(t, "globals", decls[0].Name)
	require.NotNil(t, decls[0].Binding)
	assert.Equal(t, 4, *decls[0].Binding)
	assert.Equal(t, 1, decls[0].Line)
}

func TestScanDeclarationsEmpty(t *testing.T) {
	assert.Empty(t, scanDeclarations("void main() {}\n", "<source>"))
}

func TestDeclarationKindString(t *testing.T) {
	assert.Equal(t, "uniform", DeclarationUniform.String())
	assert.Equal(t, "uniform block", DeclarationUniformBlock.String())
	assert.Equal(t, "buffer", DeclarationBuffer.String())
	assert.Equal(t, "unknown", DeclarationKind(42).String())
}
