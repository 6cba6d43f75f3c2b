package module

import (
	"github.com/tom-un/rnx-kit/internal/tspath"
)

// findPackageDependencyDir walks upward from startDir looking for
// node_modules/<scope>/<name> or node_modules/<name>, iteratively
// rather than recursively so a deep monorepo never risks a stack
// surprise.
func (p *probe) findPackageDependencyDir(ref Ref, startDir string) (string, bool) {
	current := startDir
	for {
		candidate := tspath.CombinePaths(current, "node_modules", ref.QualifiedName())
		if p.isDirectory(candidate) {
			return candidate, true
		}
		parent := tspath.GetDirectoryPath(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// resolvePackage is the external-package locator: it walks node_modules
// upward for ref, resolves an entry point inside the package it finds,
// and falls back to the @types scope when nothing resolves.
func (p *probe) resolvePackage(ref Ref, startDir string, allowedExts []Extension, platformExts []string, cache *manifestCache) (*ResolvedModule, bool, error) {
	if pkgDir, ok := p.findPackageDependencyDir(ref, startDir); ok {
		m, ok, err := p.resolveInPackage(pkgDir, ref, allowedExts, platformExts, cache)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return m, true, nil
		}
	}

	typesRef := Ref{Kind: RefPackage, Scope: "types", Name: mangleTypesName(ref), SubPath: ref.SubPath}
	if pkgDir, ok := p.findPackageDependencyDir(typesRef, startDir); ok {
		return p.resolveInPackage(pkgDir, typesRef, []Extension{ExtDts}, platformExts, cache)
	}
	return nil, false, nil
}

// resolveInPackage resolves ref's sub-path inside pkgDir, retrying against
// the package's own entry point when the sub-path names no runtime file but
// the package ships a type-only sidecar at its root (a bare .d.ts, or a
// manifest "types" field) instead.
func (p *probe) resolveInPackage(pkgDir string, ref Ref, allowedExts []Extension, platformExts []string, cache *manifestCache) (*ResolvedModule, bool, error) {
	m, ok, err := p.resolveEntryPoint(pkgDir, ref.SubPath, ref.HasSubPath(), allowedExts, platformExts, cache)
	if err != nil {
		return nil, false, err
	}
	if ok {
		return m, true, nil
	}
	if ref.HasSubPath() {
		m, ok, err := p.resolveEntryPoint(pkgDir, "", false, []Extension{ExtDts}, platformExts, cache)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return m, true, nil
		}
	}
	return nil, false, nil
}

// mangleTypesName produces the @types package name a scoped package
// maps to: "@scope/name" becomes "scope__name"; an unscoped package
// keeps its own name.
func mangleTypesName(ref Ref) string {
	if ref.Scope == "" {
		return ref.Name
	}
	return ref.Scope + "__" + ref.Name
}
