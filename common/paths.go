package common

import (
	"os"
	"strings"
)

// foreignSeparator is the path separator of the other platform family.
var foreignSeparator = func() byte {
	if os.PathSeparator == '\\' {
		return '/'
	}
	return '\\'
}()

// ToNativeSeparators replaces every foreign path separator in path with os.PathSeparator,
// so asset paths written on one platform resolve on another.
//
// Parameters:
//   - path: the path to convert
//
// Returns:
//   - string: the converted path
func ToNativeSeparators(path string) string {
	return strings.ReplaceAll(path, string(foreignSeparator), string(os.PathSeparator))
}

// Directory returns everything up to and including the last separator of path.
// It returns an empty string if path has no separator.
//
// Parameters:
//   - path: the asset path
//
// Returns:
//   - string: the directory portion, with trailing separator
func Directory(path string) string {
	path = ToNativeSeparators(path)
	i := strings.LastIndexByte(path, os.PathSeparator)
	if i < 0 {
		return ""
	}
	return path[:i+1]
}

// AssetName returns the file name of path without its directory or extension.
// "assets/meshes/bunny.obj" yields "bunny".
//
// Parameters:
//   - path: the asset path
//
// Returns:
//   - string: the bare asset name
func AssetName(path string) string {
	path = ToNativeSeparators(path)
	name := path[strings.LastIndexByte(path, os.PathSeparator)+1:]
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[:dot]
	}
	return name
}

// AssetExtension returns the text after the last '.' in path, without the dot.
// If path contains no '.', the whole path is returned unchanged.
//
// Parameters:
//   - path: the asset path
//
// Returns:
//   - string: the extension
func AssetExtension(path string) string {
	if dot := strings.LastIndexByte(path, '.'); dot >= 0 {
		return path[dot+1:]
	}
	return path
}
