package module

import (
	"github.com/zeebo/xxh3"

	"github.com/tom-un/rnx-kit/internal/packagejson"
)

// manifestCache memoizes one package.json read per directory for the
// lifetime of a single ResolveModuleNames call: a deep node_modules
// walk can probe the same package directory from several sibling
// specifiers, and re-parsing the same manifest each time is wasted
// work. Keys are the xxh3 hash of the directory string rather than the
// raw string; the cache itself is shared by pointer across resolver
// helper calls.
type manifestCache struct {
	entries map[uint64]cachedManifest
}

type cachedManifest struct {
	fields packagejson.Fields
	ok     bool
}

func newManifestCache() *manifestCache {
	return &manifestCache{entries: make(map[uint64]cachedManifest)}
}

func manifestCacheKey(dir string) uint64 {
	return xxh3.HashString(dir)
}

func (p *probe) readPackageManifestCached(dir string, cache *manifestCache) (packagejson.Fields, bool, error) {
	key := manifestCacheKey(dir)
	if cached, ok := cache.entries[key]; ok {
		return cached.fields, cached.ok, nil
	}
	fields, ok, err := p.readPackageManifest(dir)
	if err != nil {
		return packagejson.Fields{}, false, err
	}
	cache.entries[key] = cachedManifest{fields: fields, ok: ok}
	return fields, ok, nil
}

// resolveEntryPoint is the package entry-point resolver: given a
// package directory and an optional sub-path, it resolves via the
// sub-path, or via the types/typings/main manifest fields, or finally
// via the bare "index" fallback.
func (p *probe) resolveEntryPoint(pkgDir string, subPath string, hasSubPath bool, allowedExts []Extension, platformExts []string, cache *manifestCache) (*ResolvedModule, bool, error) {
	if hasSubPath {
		m, ok := p.findModuleFile(pkgDir, subPath, allowedExts, platformExts)
		return m, ok, nil
	}

	fields, hasManifest, err := p.readPackageManifestCached(pkgDir, cache)
	if err != nil {
		return nil, false, err
	}
	if !hasManifest {
		m, ok := p.findModuleFile(pkgDir, "index", allowedExts, platformExts)
		return m, ok, nil
	}

	wantsDts := extensionAllowed(allowedExts, ExtDts)

	if wantsDts {
		if types, ok := fields.Types.GetValue(); ok && types != "" {
			p.trace.Log("Package has 'types' field '%s'.", types)
			if m, ok := p.findModuleFile(pkgDir, types, allowedExts, platformExts); ok {
				return m, true, nil
			}
		} else if typings, ok := fields.Typings.GetValue(); ok && typings != "" {
			p.trace.Log("Package has 'typings' field '%s'.", typings)
			if m, ok := p.findModuleFile(pkgDir, typings, allowedExts, platformExts); ok {
				return m, true, nil
			}
		}
	}

	if main, ok := fields.Main.GetValue(); ok && main != "" {
		p.trace.Log("Package has 'main' field '%s'.", main)
		if m, ok := p.findModuleFile(pkgDir, main, allowedExts, platformExts); ok {
			return m, true, nil
		}
	}

	m, ok := p.findModuleFile(pkgDir, "index", allowedExts, platformExts)
	return m, ok, nil
}

func extensionAllowed(allowedExts []Extension, ext Extension) bool {
	for _, e := range allowedExts {
		if e == ext {
			return true
		}
	}
	return false
}
