package loader

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// objLoaderBackendImpl is the implementation of objLoaderBackend.
type objLoaderBackendImpl struct {
	normalize bool
}

// objLoaderBackend is a loaderBackend implementation for Wavefront OBJ files.
type objLoaderBackend interface {
	loaderBackend
}

var _ objLoaderBackend = &objLoaderBackendImpl{}

// newOBJLoaderBackend creates a new OBJ loader backend.
//
// Parameters:
//   - normalize: center and rescale loaded meshes into [-1, 1]
//
// Returns:
//   - objLoaderBackend: the loader backend for OBJ files
func newOBJLoaderBackend(normalize bool) objLoaderBackend {
	return &objLoaderBackendImpl{normalize: normalize}
}

func (b *objLoaderBackendImpl) Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return b.LoadReader(f)
}

func (b *objLoaderBackendImpl) LoadReader(r io.Reader) (*Mesh, error) {
	doc, err := parseOBJ(r)
	if err != nil {
		return nil, err
	}

	mesh := buildMesh(doc)
	if b.normalize {
		mesh.Normalize()
	}
	if len(mesh.Normals) == 0 {
		mesh.RecalculateNormals()
	}
	return mesh, nil
}

// buildMesh flattens the triangulated faces into an indexed mesh, merging corners that
// share a position. The first texture coordinate and normal seen for a position win.
func buildMesh(doc *objDocument) *Mesh {
	hasUV := len(doc.uvs) > 0
	hasNormals := len(doc.normals) > 0

	mesh := &Mesh{
		Indices: make([]uint32, 0, 3*len(doc.triangles)),
	}
	unique := make(map[mgl32.Vec3]uint32, len(doc.positions))

	for _, triangle := range doc.triangles {
		for _, corner := range triangle {
			position := doc.positions[corner.position]
			index, ok := unique[position]
			if !ok {
				index = uint32(len(mesh.Vertices))
				unique[position] = index
				mesh.Vertices = append(mesh.Vertices, position)

				if hasUV {
					var uv mgl32.Vec2
					if corner.uv >= 0 {
						uv = doc.uvs[corner.uv]
					}
					mesh.UV = append(mesh.UV, uv)
				}
				if hasNormals {
					var n mgl32.Vec3
					if corner.normal >= 0 {
						n = doc.normals[corner.normal]
					}
					mesh.Normals = append(mesh.Normals, n)
				}
			}
			mesh.Indices = append(mesh.Indices, index)
		}
	}
	return mesh
}
