package module

import (
	"github.com/tom-un/rnx-kit/internal/core"
	"github.com/tom-un/rnx-kit/internal/packagejson"
	"github.com/tom-un/rnx-kit/internal/tspath"
	"github.com/tom-un/rnx-kit/internal/vfs"
)

// ResolverConfig is the value-oriented configuration passed at
// construction; nothing inside it is mutated after NewResolver returns.
type ResolverConfig struct {
	Platform                     string
	ExtraPlatformExtensions      []string
	DisableRNPackageSubstitution bool
	CheckJS                      bool
	ResolveJSONModule            bool
	TraceMode                    TraceMode
	TraceSink                    Sink
}

// Resolver is the orchestrating handle: one per compile, holding the
// read-only workspace index and the trace log alongside the resolved
// configuration. It is not safe to share across goroutines: resolution
// is single-threaded cooperative with synchronous blocking I/O.
type Resolver struct {
	cfg          ResolverConfig
	platform     string
	platformExts []string
	probe        *probe
	trace        *TraceLog
	workspaces   *WorkspaceIndex

	cache       map[string]*ResolvedModule
	cacheExists map[string]bool
}

// NewResolver constructs a resolver for one compile. Workspace
// enumeration happens here, once, before the resolver is used for any
// resolution.
func NewResolver(cfg ResolverConfig, fs vfs.FS, workspaceRoot string) (*Resolver, error) {
	platform := NormalizePlatform(cfg.Platform)
	trace := NewTraceLog(cfg.TraceMode, cfg.TraceSink)
	workspaces, err := EnumerateWorkspaces(fs, workspaceRoot)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		cfg:          cfg,
		platform:     platform,
		platformExts: PlatformExtensions(platform, cfg.ExtraPlatformExtensions),
		probe:        newProbe(fs, trace),
		trace:        trace,
		workspaces:   workspaces,
		cache:        make(map[string]*ResolvedModule),
		cacheExists:  make(map[string]bool),
	}, nil
}

// Trace is the pass-through call point the compiler host uses to funnel
// its own trace messages through this resolver's sink.
func (r *Resolver) Trace(message string) {
	r.trace.Log("%s", message)
}

// Err returns the first fatal sink-flush error observed, if any.
func (r *Resolver) Err() error {
	return r.trace.Err()
}

func (r *Resolver) extensionsFor(containingFile string) []Extension {
	isDts := tspath.IsDeclarationFileName(containingFile)
	return ExtensionsFor(isDts, Options{CheckJS: r.cfg.CheckJS, ResolveJSONModule: r.cfg.ResolveJSONModule})
}

// ResolveModuleNames resolves every name in names against containingFile,
// in order, returning a slice of equal length. Each specifier opens and
// closes its own trace transaction.
func (r *Resolver) ResolveModuleNames(names []string, containingFile string) ([]*ResolvedModule, error) {
	extensions := r.extensionsFor(containingFile)
	cache := newManifestCache()
	results := make([]*ResolvedModule, len(names))

	for i, name := range names {
		m, err := r.resolveOne(name, containingFile, extensions, cache)
		if err != nil {
			return nil, err
		}
		results[i] = m
		r.cache[cacheKey(name, containingFile)] = m
		r.cacheExists[cacheKey(name, containingFile)] = true
	}
	return results, nil
}

func cacheKey(name, containingFile string) string {
	return containingFile + "\x00" + name
}

// CachedResolution returns the result of the most recent
// ResolveModuleNames call that resolved name against containingFile, if
// any. Safe without locking because only one ResolveModuleNames call is
// ever in flight on a given resolver.
func (r *Resolver) CachedResolution(name, containingFile string) (*ResolvedModule, bool) {
	key := cacheKey(name, containingFile)
	if !r.cacheExists[key] {
		return nil, false
	}
	return r.cache[key], true
}

// ResolveTypeReferenceDirectives runs the same engine over
// /// <reference types="..."/> style names.
func (r *Resolver) ResolveTypeReferenceDirectives(names []string, containingFile string) ([]*ResolvedModule, error) {
	return r.ResolveModuleNames(names, containingFile)
}

func (r *Resolver) resolveOne(name string, containingFile string, extensions []Extension, cache *manifestCache) (*ResolvedModule, error) {
	r.trace.Begin()
	r.trace.Log("======== Resolving module '%s' from '%s' ========", name, containingFile)

	effective, subTrace, substituted := Substitute(name, r.platform, r.cfg.DisableRNPackageSubstitution)
	if substituted {
		r.trace.Log("%s", subTrace)
	}

	containingDir := tspath.GetDirectoryPath(containingFile)

	m, err := r.resolveEffective(effective, containingDir, containingFile, extensions, cache)
	if err != nil {
		return nil, err
	}

	if m != nil {
		r.trace.Log("File %s exists - using it as a module resolution result.", m.AbsolutePath)
		r.trace.Log("======== Module name '%s' was successfully resolved to '%s' ========", name, m.AbsolutePath)
		r.trace.EndSuccess()
		return m, nil
	}

	r.trace.Log("Failed to resolve module %s to a file.", name)
	r.trace.Log("======== Module name '%s' failed to resolve ========", name)
	if shouldShowResolverFailure(name) {
		r.trace.EndFailure()
	} else {
		r.trace.Reset()
	}
	return nil, nil
}

func (r *Resolver) resolveEffective(effective, containingDir, containingFile string, extensions []Extension, cache *manifestCache) (*ResolvedModule, error) {
	if wref, ok := r.workspaces.QueryWorkspaceModuleRef(effective, containingFile); ok {
		r.trace.Log("Loading module '%s' from workspace package '%s'.", effective, wref.Workspace.Name)
		m, ok, err := r.probe.resolveEntryPoint(wref.Workspace.RootPath, wref.SubPath, wref.SubPath != "", extensions, r.platformExts, cache)
		if err != nil {
			return nil, err
		}
		return core.IfElse(ok, m, nil), nil
	}

	ref := ParseRef(effective)
	switch ref.Kind {
	case RefPackage:
		m, ok, err := r.probe.resolvePackage(ref, containingDir, extensions, r.platformExts, cache)
		if err != nil {
			return nil, err
		}
		return core.IfElse(ok, m, nil), nil
	default:
		r.trace.Log("Loading module '%s' from file directory '%s'.", ref.Path, containingDir)
		m, ok := r.probe.findModuleFile(containingDir, ref.Path, extensions, r.platformExts)
		return core.IfElse(ok, m, nil), nil
	}
}

// PackageJSONScope describes the nearest enclosing package.json a file
// falls under.
type PackageJSONScope struct {
	Directory string
	Fields    packagejson.Fields
}

func (r *Resolver) PackageJSONScope(fileName string) (PackageJSONScope, bool) {
	current := tspath.GetDirectoryPath(fileName)
	for {
		fields, ok, err := r.probe.readPackageManifest(current)
		if err == nil && ok {
			return PackageJSONScope{Directory: current, Fields: fields}, true
		}
		parent := tspath.GetDirectoryPath(current)
		if parent == current {
			return PackageJSONScope{}, false
		}
		current = parent
	}
}
