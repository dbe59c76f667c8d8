package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Common errors returned by the parser
var (
	errMalformedStatement = errors.New("malformed statement")
	errInvalidIndex       = errors.New("invalid index")
	errDegenerateFace     = errors.New("face needs at least 3 vertices")
)

// objFaceVertex references one corner of a face. Indices are 0-based; -1 means absent.
type objFaceVertex struct {
	position int
	uv       int
	normal   int
}

// objDocument holds the raw attribute pools and the triangulated faces of an OBJ file.
type objDocument struct {
	positions []mgl32.Vec3
	uvs       []mgl32.Vec2
	normals   []mgl32.Vec3
	triangles [][3]objFaceVertex
}

// parseOBJ reads Wavefront OBJ geometry from r.
// Supported statements are v, vt, vn and f; polygons are fan-triangulated.
// Comments, groups, materials and every other statement are ignored.
//
// Parameters:
//   - r: reader providing OBJ text
//
// Returns:
//   - *objDocument: the parsed geometry
//   - error: error naming the offending line if parsing fails
func parseOBJ(r io.Reader) (*objDocument, error) {
	doc := &objDocument{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var v mgl32.Vec3
			v, err = parseVec3(fields[1:])
			doc.positions = append(doc.positions, v)
		case "vn":
			var n mgl32.Vec3
			n, err = parseVec3(fields[1:])
			doc.normals = append(doc.normals, n)
		case "vt":
			var uv mgl32.Vec2
			uv, err = parseVec2(fields[1:])
			doc.uvs = append(doc.uvs, uv)
		case "f":
			err = doc.parseFace(fields[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// parseFace resolves the corners of a face statement and appends its fan triangulation.
func (d *objDocument) parseFace(fields []string) error {
	if len(fields) < 3 {
		return errDegenerateFace
	}

	corners := make([]objFaceVertex, len(fields))
	for i, field := range fields {
		parts := strings.Split(field, "/")
		if len(parts) > 3 || parts[0] == "" {
			return fmt.Errorf("%w: face vertex %q", errMalformedStatement, field)
		}

		c := objFaceVertex{uv: -1, normal: -1}
		var err error
		if c.position, err = resolveIndex(parts[0], len(d.positions)); err != nil {
			return err
		}
		if len(parts) > 1 && parts[1] != "" {
			if c.uv, err = resolveIndex(parts[1], len(d.uvs)); err != nil {
				return err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if c.normal, err = resolveIndex(parts[2], len(d.normals)); err != nil {
				return err
			}
		}
		corners[i] = c
	}

	for i := 1; i+1 < len(corners); i++ {
		d.triangles = append(d.triangles, [3]objFaceVertex{corners[0], corners[i], corners[i+1]})
	}
	return nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index into a 0-based index
// into a pool that currently holds count elements.
func resolveIndex(raw string, count int) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w %q", errInvalidIndex, raw)
	}

	index := n - 1
	if n < 0 {
		index = count + n
	}
	if n == 0 || index < 0 || index >= count {
		return 0, fmt.Errorf("%w %d: %d elements defined", errInvalidIndex, n, count)
	}
	return index, nil
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("%w: want 3 components, got %d", errMalformedStatement, len(fields))
	}
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, fmt.Errorf("%w: %w", errMalformedStatement, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseVec2 reads a texture coordinate; v defaults to 0 and a w component is ignored.
func parseVec2(fields []string) (mgl32.Vec2, error) {
	var uv mgl32.Vec2
	if len(fields) < 1 {
		return uv, fmt.Errorf("%w: texture coordinate without components", errMalformedStatement)
	}
	for i := range min(2, len(fields)) {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return uv, fmt.Errorf("%w: %w", errMalformedStatement, err)
		}
		uv[i] = float32(f)
	}
	return uv, nil
}
