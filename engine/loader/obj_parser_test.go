package loader

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOBJFaceFormats(t *testing.T) {
	src := `# a comment
o shape
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0 1.0
vt 0 0
vt 1 0
vt 1 1 0
vn 0 0 1
usemtl ignored
f 1 2 3
f 1/1 2/2 3/3
f 1//1 2//1 3//1
f 1/1/1 2/2/1 3/3/1   # trailing comment
f -4 -3 -2
`
	doc, err := parseOBJ(strings.NewReader(src))
	require.NoError(t, err)

	assert.Len(t, doc.positions, 4)
	assert.Len(t, doc.uvs, 3)
	assert.Len(t, doc.normals, 1)
	require.Len(t, doc.triangles, 5)

	assert.Equal(t, objFaceVertex{position: 0, uv: -1, normal: -1}, doc.triangles[0][0])
	assert.Equal(t, objFaceVertex{position: 1, uv: 1, normal: -1}, doc.triangles[1][1])
	assert.Equal(t, objFaceVertex{position: 2, uv: -1, normal: 0}, doc.triangles[2][2])
	assert.Equal(t, objFaceVertex{position: 2, uv: 2, normal: 0}, doc.triangles[3][2])
	assert.Equal(t, [3]objFaceVertex{
		{position: 0, uv: -1, normal: -1},
		{position: 1, uv: -1, normal: -1},
		{position: 2, uv: -1, normal: -1},
	}, doc.triangles[4])
	assert.Equal(t, mgl32.Vec2{1, 1}, doc.uvs[2])
}

func TestParseOBJFanTriangulation(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv -1 1 0\nf 1 2 3 4 5\n"
	doc, err := parseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, doc.triangles, 3)

	positions := func(tri [3]objFaceVertex) [3]int {
		return [3]int{tri[0].position, tri[1].position, tri[2].position}
	}
	assert.Equal(t, [3]int{0, 1, 2}, positions(doc.triangles[0]))
	assert.Equal(t, [3]int{0, 2, 3}, positions(doc.triangles[1]))
	assert.Equal(t, [3]int{0, 3, 4}, positions(doc.triangles[2]))
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		line    string
	}{
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", errInvalidIndex, "line 4"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", errInvalidIndex, "line 4"},
		{"negative out of range", "v 0 0 0\nf -1 -2 -3\n", errInvalidIndex, "line 2"},
		{"forward reference", "f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n", errInvalidIndex, "line 1"},
		{"bad number", "v 0 zero 0\n", errMalformedStatement, "line 1"},
		{"short vertex", "v 1 2\n", errMalformedStatement, "line 1"},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n", errDegenerateFace, "line 3"},
		{"too many slashes", "v 0 0 0\nf 1/1/1/1 1 1\n", errMalformedStatement, "line 2"},
		{"missing uv", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n", errInvalidIndex, "line 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOBJ(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}
