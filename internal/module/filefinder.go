package module

import (
	"sort"
	"strings"

	"github.com/tom-un/rnx-kit/internal/core"
	"github.com/tom-un/rnx-kit/internal/tspath"
)

// ResolvedModule is what the compiler host ultimately consumes. Every
// success path in this package constructs one; its Extension is always
// one of the allowed extensions passed to the finder, by construction,
// never by a post-hoc check.
type ResolvedModule struct {
	AbsolutePath string
	Extension    Extension
}

// PlatformExtensions builds the ordered probing list: the target
// platform first, then each extra platform extension in the order
// given, then "" (no platform suffix) last and always present. The
// leading "." is prepended once here so downstream code never has to
// special-case the empty sentinel. Duplicates (a --platformExtensions
// token repeating the platform itself, or repeating each other) are
// dropped rather than probed twice.
func PlatformExtensions(platform string, extra []string) []string {
	exts := make([]string, 0, len(extra)+2)
	exts = core.AppendIfUnique(exts, "."+platform)
	for _, e := range extra {
		exts = core.AppendIfUnique(exts, "."+e)
	}
	return core.AppendIfUnique(exts, "")
}

// findModuleFile searches a directory for the file a module path
// actually resolves to: given a directory to search, a logical module
// path relative to it, and the extensions the containing file's
// resolution context allows, locate the file the compiler should
// consume.
func (p *probe) findModuleFile(searchDir, modulePath string, allowedExts []Extension, platformExts []string) (*ResolvedModule, bool) {
	if ext, trimmedPath, ok := matchExplicitExtension(modulePath, allowedExts); ok {
		full := tspath.NormalizePath(tspath.CombinePaths(searchDir, trimmedPath+ext))
		if p.isFile(full) {
			return &ResolvedModule{AbsolutePath: full, Extension: ext}, true
		}
		if ext == ExtJs || ext == ExtJsx {
			// "import './foo.js'" is allowed to resolve to './foo.ts':
			// retry the broad search with the extension stripped.
			return p.findModuleFileCrossProduct(searchDir, trimmedPath, allowedExts, platformExts)
		}
		return nil, false
	}
	return p.findModuleFileCrossProduct(searchDir, modulePath, allowedExts, platformExts)
}

// findModuleFileCrossProduct runs the platform x extension
// cross-product, then the directory-index fallback.
func (p *probe) findModuleFileCrossProduct(searchDir, modulePath string, allowedExts []Extension, platformExts []string) (*ResolvedModule, bool) {
	for _, pext := range platformExts {
		for _, ext := range allowedExts {
			full := tspath.NormalizePath(tspath.CombinePaths(searchDir, modulePath+pext+ext))
			if p.isFile(full) {
				return &ResolvedModule{AbsolutePath: full, Extension: ext}, true
			}
		}
	}

	dir := tspath.NormalizePath(tspath.CombinePaths(searchDir, modulePath))
	if p.isDirectory(dir) {
		return p.findModuleFile(dir, "index", allowedExts, platformExts)
	}
	return nil, false
}

// matchExplicitExtension finds the longest extension in the closed set
// that both suffixes modulePath and is a member of allowedExts.
func matchExplicitExtension(modulePath string, allowedExts []Extension) (ext string, trimmedPath string, ok bool) {
	candidates := make([]string, 0, len(allowedExts))
	candidates = append(candidates, allowedExts...)
	sort.Slice(candidates, func(i, j int) bool { return len(candidates[i]) > len(candidates[j]) })
	for _, e := range candidates {
		if strings.HasSuffix(modulePath, e) && len(modulePath) > len(e) {
			return e, strings.TrimSuffix(modulePath, e), true
		}
	}
	return "", modulePath, false
}
