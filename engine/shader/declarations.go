// declarations.go scans GLSL source for resource declarations so that samples can
// wire buffers to binding points without hard-coding names twice. Three forms are
// recognised:
//
//	uniform vec3 centerOfGravity;                                  // DeclarationUniform
//	layout(std140, binding = 0) uniform CameraUniform { ... } cam; // DeclarationUniformBlock
//	layout(std430, binding = 1) readonly buffer Particles { ... }; // DeclarationBuffer
//
// Block comments are not stripped; a declaration inside /* */ is still reported.
package shader

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// DeclarationKind identifies what kind of GLSL resource a Declaration describes.
type DeclarationKind int

const (
	// DeclarationUniform is a plain (non-block) uniform such as `uniform float dt;`.
	DeclarationUniform DeclarationKind = iota

	// DeclarationUniformBlock is an interface block backed by a uniform buffer.
	DeclarationUniformBlock

	// DeclarationBuffer is an interface block backed by a shader storage buffer.
	DeclarationBuffer
)

// String returns the GLSL keyword family of the kind.
func (k DeclarationKind) String() string {
	switch k {
	case DeclarationUniform:
		return "uniform"
	case DeclarationUniformBlock:
		return "uniform block"
	case DeclarationBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Declaration is a single resource declaration found in a shader source.
type Declaration struct {
	// Kind is the declaration family.
	Kind DeclarationKind

	// Name is the variable name for plain uniforms and the instance name for blocks.
	// Blocks declared without an instance name leave it empty.
	Name string

	// Type is the GLSL type for plain uniforms and the block name for blocks.
	Type string

	// Binding is the layout binding point, nil when the declaration has none.
	Binding *int

	// Location is the explicit uniform location, nil when the declaration has none.
	Location *int

	// File is the file (or <name> for registry includes) the declaration came from.
	File string

	// Line is the 1-based line number within File.
	Line int
}

var (
	blockPattern = regexp.MustCompile(`(?m)^[ \t]*(?:layout\s*\(([^)]*)\)\s*)?(?:(?:readonly|writeonly|coherent|volatile|restrict)\s+)*(uniform|buffer)\s+(\w+)\s*\{[^}]*\}\s*(\w*)`)
	plainPattern = regexp.MustCompile(`(?m)^[ \t]*(?:layout\s*\(([^)]*)\)\s*)?uniform\s+(\w+)\s+(\w+)\s*(?:\[[^\]]*\])?\s*(?:=[^;]*)?;`)
)

// scanDeclarations returns every declaration in source in source order.
func scanDeclarations(source, file string) []Declaration {
	type found struct {
		offset int
		decl   Declaration
	}
	var all []found

	for _, m := range blockPattern.FindAllStringSubmatchIndex(source, -1) {
		d := Declaration{
			Kind: DeclarationUniformBlock,
			Type: source[m[6]:m[7]],
			Name: source[m[8]:m[9]],
			File: file,
		}
		if source[m[4]:m[5]] == "buffer" {
			d.Kind = DeclarationBuffer
		}
		if m[2] >= 0 {
			d.Binding, d.Location = parseLayout(source[m[2]:m[3]])
		}
		all = append(all, found{offset: m[0], decl: d})
	}

	for _, m := range plainPattern.FindAllStringSubmatchIndex(source, -1) {
		d := Declaration{
			Kind: DeclarationUniform,
			Type: source[m[4]:m[5]],
			Name: source[m[6]:m[7]],
			File: file,
		}
		if m[2] >= 0 {
			d.Binding, d.Location = parseLayout(source[m[2]:m[3]])
		}
		all = append(all, found{offset: m[0], decl: d})
	}

	// the two patterns never overlap, merge them back into source order
	slices.SortFunc(all, func(a, b found) int { return a.offset - b.offset })
	out := make([]Declaration, len(all))
	for i, f := range all {
		f.decl.Line = lineOf(source, f.offset)
		out[i] = f.decl
	}
	return out
}

// parseLayout pulls binding and location out of a layout qualifier list.
func parseLayout(qualifiers string) (binding, location *int) {
	for part := range strings.SplitSeq(qualifiers, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(key) {
		case "binding":
			binding = &n
		case "location":
			location = &n
		}
	}
	return binding, location
}

// lineOf returns the 1-based line number of offset in source. The match may begin
// with leading indentation, so the offset is advanced past spaces and tabs first.
func lineOf(source string, offset int) int {
	for offset < len(source) && (source[offset] == ' ' || source[offset] == '\t') {
		offset++
	}
	return 1 + strings.Count(source[:offset], "\n")
}
