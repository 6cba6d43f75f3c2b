// Package tspath implements the path-handling conventions the resolver
// must match byte-for-byte with the rest of the toolchain: paths are
// normalized to forward slashes regardless of host OS, trailing
// separators are stripped except at the root, and a drive letter (`C:`)
// or a leading `/` both count as "rooted".
package tspath

import (
	"strings"
)

const DirectorySeparator = '/'

// Path is a normalized absolute path, optionally case-folded for
// case-insensitive file systems. It is suitable as a map key.
type Path string

// ComparePathsOptions captures the two pieces of host state every path
// comparison needs: what "here" means, and whether the file system
// cares about case.
type ComparePathsOptions struct {
	CurrentDirectory          string
	UseCaseSensitiveFileNames bool
}

func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// IsRootedDiskPath reports whether path is already absolute: a leading
// `/`, or a Windows drive letter such as `C:`.
func IsRootedDiskPath(path string) bool {
	if path == "" {
		return false
	}
	path = NormalizeSlashes(path)
	if path[0] == DirectorySeparator {
		return true
	}
	return isVolumeCharacter(path[0]) && len(path) > 1 && path[1] == ':'
}

func isVolumeCharacter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// GetDirectoryPath returns everything before the last path separator, or
// "." if path has none.
func GetDirectoryPath(path string) string {
	path = NormalizeSlashes(path)
	path = RemoveTrailingDirectorySeparator(path)
	idx := strings.LastIndexByte(path, DirectorySeparator)
	if idx < 0 {
		return "."
	}
	if idx == 0 {
		return "/"
	}
	// Keep the drive-letter root ("C:/") intact.
	if idx == 2 && len(path) > 1 && path[1] == ':' {
		return path[:idx+1]
	}
	return path[:idx]
}

func GetBaseFileName(path string) string {
	path = RemoveTrailingDirectorySeparator(NormalizeSlashes(path))
	idx := strings.LastIndexByte(path, DirectorySeparator)
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}

func RemoveTrailingDirectorySeparator(path string) string {
	if len(path) > 1 && path[len(path)-1] == DirectorySeparator {
		return path[:len(path)-1]
	}
	return path
}

// EnsureTrailingDirectorySeparator is used by workspace-containment
// checks so that a trailing path separator keeps "pkg" from matching
// "pkg-foo".
func EnsureTrailingDirectorySeparator(path string) string {
	if path == "" || path[len(path)-1] == DirectorySeparator {
		return path
	}
	return path + string(DirectorySeparator)
}

// CombinePaths joins path segments with `/`, treating any segment that
// is itself rooted as resetting the combination. The result is not
// normalized: `.` and `..` segments are kept as written (see
// NormalizePath).
func CombinePaths(base string, segments ...string) string {
	result := NormalizeSlashes(base)
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		segment = NormalizeSlashes(segment)
		if IsRootedDiskPath(segment) {
			result = segment
			continue
		}
		result = EnsureTrailingDirectorySeparator(result) + segment
	}
	return result
}

// NormalizePath collapses `.`, `..`, and repeated separators in an
// absolute or relative path string without touching the file system.
func NormalizePath(path string) string {
	path = NormalizeSlashes(path)
	rooted := IsRootedDiskPath(path)
	var prefix string
	rest := path
	if rooted {
		if len(path) > 1 && path[1] == ':' {
			prefix = path[:3]
			rest = path[3:]
		} else {
			prefix = "/"
			rest = path[1:]
		}
	}

	segments := strings.Split(rest, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
			} else if !rooted {
				out = append(out, seg)
			}
		default:
			out = append(out, seg)
		}
	}
	joined := strings.Join(out, "/")
	return prefix + joined
}

// GetNormalizedAbsolutePath resolves fileName against currentDirectory
// (if fileName is not already rooted) and normalizes the result.
func GetNormalizedAbsolutePath(fileName string, currentDirectory string) string {
	if !IsRootedDiskPath(fileName) && currentDirectory != "" {
		fileName = CombinePaths(currentDirectory, fileName)
	}
	return NormalizePath(fileName)
}

// ToPath normalizes fileName into a Path, case-folding it when the file
// system is case-insensitive so it can be used as a stable map key.
func ToPath(fileName string, currentDirectory string, useCaseSensitiveFileNames bool) Path {
	abs := GetNormalizedAbsolutePath(fileName, currentDirectory)
	if !useCaseSensitiveFileNames {
		abs = strings.ToLower(abs)
	}
	return Path(abs)
}

// ContainsPath reports whether child lies within (or equals) parent,
// comparing with a trailing separator so "pkg" never matches "pkg-foo".
func ContainsPath(parent string, child string, options ComparePathsOptions) bool {
	p := GetNormalizedAbsolutePath(parent, options.CurrentDirectory)
	c := GetNormalizedAbsolutePath(child, options.CurrentDirectory)
	if !options.UseCaseSensitiveFileNames {
		p = strings.ToLower(p)
		c = strings.ToLower(c)
	}
	if p == c {
		return true
	}
	return strings.HasPrefix(c, EnsureTrailingDirectorySeparator(p))
}

// RelativeFrom returns child's path relative to parent, assuming
// ContainsPath(parent, child, options) is true.
func RelativeFrom(parent string, child string, options ComparePathsOptions) string {
	p := EnsureTrailingDirectorySeparator(GetNormalizedAbsolutePath(parent, options.CurrentDirectory))
	c := GetNormalizedAbsolutePath(child, options.CurrentDirectory)
	if options.UseCaseSensitiveFileNames {
		return strings.TrimPrefix(c, p)
	}
	lowerP := strings.ToLower(p)
	lowerC := strings.ToLower(c)
	if strings.HasPrefix(lowerC, lowerP) {
		return c[len(p):]
	}
	return c
}

func TryGetExtensionFromPath(path string, extensions []string) (string, bool) {
	// extensions must be checked longest-first so ".d.ts" wins over ".ts".
	for _, ext := range extensions {
		if FileExtensionIs(path, ext) {
			return ext, true
		}
	}
	return "", false
}

func FileExtensionIs(path string, extension string) bool {
	return len(path) > len(extension) && strings.HasSuffix(path, extension)
}

func FileExtensionIsOneOf(path string, extensions []string) bool {
	for _, ext := range extensions {
		if FileExtensionIs(path, ext) {
			return true
		}
	}
	return false
}

func RemoveExtension(path string, extension string) string {
	return strings.TrimSuffix(path, extension)
}

func IsDeclarationFileName(fileName string) bool {
	return FileExtensionIs(fileName, ".d.ts")
}
