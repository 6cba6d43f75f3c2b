package module

import (
	"strings"

	"github.com/tom-un/rnx-kit/internal/tspath"
)

// RefKind discriminates the three shapes a specifier can take.
type RefKind int8

const (
	RefFile RefKind = iota
	RefPackage
	RefBuiltin
)

// Ref is the parsed form of a specifier as it appeared in a containing
// file: a bare package reference, a relative/absolute file reference, or
// (when classified downstream by the failure-suppression predicate) a
// builtin. The parser itself never returns RefBuiltin — see ParseRef.
type Ref struct {
	Kind RefKind

	// Package fields.
	Scope   string // without the leading "@"; empty when unscoped.
	Name    string
	SubPath string // set only when a sub-path followed the package name.

	// File field.
	Path string
}

// HasSubPath reports whether a Package ref carried a sub-path.
func (r Ref) HasSubPath() bool {
	return r.Kind == RefPackage && r.SubPath != ""
}

// ParseRef classifies a specifier, evaluated top to bottom:
//  1. relative/absolute/drive-letter specifiers are File.
//  2. `@scope/name(/rest)?` or `name(/rest)?` are Package.
//  3. anything else is treated defensively as an unresolvable File.
func ParseRef(spec string) Ref {
	if isFileSpecifier(spec) {
		return Ref{Kind: RefFile, Path: spec}
	}
	if scope, name, subPath, ok := parsePackageSpecifier(spec); ok {
		return Ref{Kind: RefPackage, Scope: scope, Name: name, SubPath: subPath}
	}
	return Ref{Kind: RefFile, Path: spec}
}

func isFileSpecifier(spec string) bool {
	if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") {
		return true
	}
	return tspath.IsRootedDiskPath(spec)
}

// parsePackageSpecifier splits "@scope/name/rest", "name/rest", or a
// bare "name" into its parts. scope and name must be non-empty and
// contain no path separator in their own segment.
func parsePackageSpecifier(spec string) (scope, name, subPath string, ok bool) {
	if spec == "" {
		return "", "", "", false
	}
	if spec[0] == '@' {
		rest := spec[1:]
		slash := strings.IndexByte(rest, '/')
		if slash <= 0 {
			// "@scope" with no name is not a valid package reference.
			return "", "", "", false
		}
		scope = rest[:slash]
		remainder := rest[slash+1:]
		nameEnd := strings.IndexByte(remainder, '/')
		if nameEnd < 0 {
			name = remainder
		} else {
			name = remainder[:nameEnd]
			subPath = remainder[nameEnd+1:]
		}
		if name == "" {
			return "", "", "", false
		}
		return scope, name, subPath, true
	}

	nameEnd := strings.IndexByte(spec, '/')
	if nameEnd < 0 {
		return "", spec, "", true
	}
	return "", spec[:nameEnd], spec[nameEnd+1:], true
}

// QualifiedName returns the name a workspace or node_modules directory
// would be registered under: "@scope/name" or "name".
func (r Ref) QualifiedName() string {
	if r.Scope != "" {
		return "@" + r.Scope + "/" + r.Name
	}
	return r.Name
}
