package module

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/tom-un/rnx-kit/internal/packagejson"
	"github.com/tom-un/rnx-kit/internal/tspath"
	"github.com/tom-un/rnx-kit/internal/vfs"
)

// Workspace is an in-repo package discovered by the monorepo enumerator.
type Workspace struct {
	Name     string
	RootPath string
	Manifest packagejson.Fields
}

// WorkspaceIndex is the immutable-after-construction set of workspaces
// for one monorepo. Every query is a linear scan: the set is small
// enough (dozens to low hundreds of packages) that an index is not
// worth the bookkeeping, and a scan is trivially safe to call from
// multiple places without locking.
type WorkspaceIndex struct {
	workspaces []Workspace
	opts       tspath.ComparePathsOptions
}

// workspaceManifest is the pnpm-workspace.yaml shape: a list of glob
// patterns, each resolved relative to the manifest's directory.
type workspaceManifest struct {
	Packages []string `yaml:"packages"`
}

// EnumerateWorkspaces discovers every package under root named by a
// pnpm-workspace.yaml-style manifest. Absent a manifest, root itself is
// checked as a lone workspace. Glob expansion runs sequentially; the
// per-directory manifest reads then run concurrently since they are
// independent and side-effect free. This happens once, before any Resolver exists, so it never competes with
// the single-threaded resolution guarantee.
func EnumerateWorkspaces(fs vfs.FS, root string) (*WorkspaceIndex, error) {
	opts := tspath.ComparePathsOptions{CurrentDirectory: root, UseCaseSensitiveFileNames: fs.UseCaseSensitiveFileNames()}
	root = tspath.GetNormalizedAbsolutePath(root, "")

	patterns, err := readWorkspaceManifest(fs, root)
	if err != nil {
		return nil, err
	}

	dirs, err := expandWorkspaceGlobs(fs, root, patterns)
	if err != nil {
		return nil, err
	}

	workspaces := make([]Workspace, len(dirs))
	g := new(errgroup.Group)
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			manifest, ok, err := newProbe(fs, NewTraceLog(TraceNever, nil)).readPackageManifest(dir)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			name, hasName := manifest.Name.GetValue()
			if !hasName {
				return nil
			}
			workspaces[i] = Workspace{Name: name, RootPath: dir, Manifest: manifest}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Workspace, 0, len(workspaces))
	for _, w := range workspaces {
		if w.Name != "" {
			out = append(out, w)
		}
	}
	return &WorkspaceIndex{workspaces: out, opts: opts}, nil
}

func readWorkspaceManifest(fs vfs.FS, root string) ([]string, error) {
	path := tspath.CombinePaths(root, "pnpm-workspace.yaml")
	content, ok := fs.ReadFile(path)
	if !ok {
		return nil, nil
	}
	var manifest workspaceManifest
	if err := yaml.Unmarshal([]byte(content), &manifest); err != nil {
		return nil, fmt.Errorf("module: malformed workspace manifest %s: %w", path, err)
	}
	return manifest.Packages, nil
}

// expandWorkspaceGlobs turns the manifest's patterns into concrete
// package directories. With no manifest, root is the only candidate
// package: a single-package repo is a workspace of one.
func expandWorkspaceGlobs(fs vfs.FS, root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return []string{root}, nil
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, pattern := range patterns {
		negate := strings.HasPrefix(pattern, "!")
		if negate {
			pattern = pattern[1:]
		}
		matches, err := globDirectories(fs, root, pattern)
		if err != nil {
			return nil, fmt.Errorf("module: invalid workspace glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if negate {
				delete(seen, m)
				continue
			}
			if !seen[m] {
				seen[m] = true
				dirs = append(dirs, m)
			}
		}
	}
	return dirs, nil
}

// globDirectories walks root's subtree (to the depth the pattern can
// possibly need) and matches each candidate against pattern with
// doublestar, the same glob dialect pnpm-workspace.yaml uses.
func globDirectories(fs vfs.FS, root, pattern string) ([]string, error) {
	var matches []string
	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, dir)
		}
		entries := fs.GetAccessibleEntries(dir)
		for _, name := range entries.Directories {
			if name == "node_modules" || strings.HasPrefix(name, ".") {
				continue
			}
			childRel := name
			if rel != "" {
				childRel = rel + "/" + name
			}
			if doublestar.MatchUnvalidated(pattern, childRel) || isPrefixOfPattern(pattern, childRel) {
				if err := walk(tspath.CombinePaths(dir, name), childRel); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(root, ""); err != nil {
		return nil, err
	}
	return matches, nil
}

// isPrefixOfPattern reports whether descending into rel could still
// reach a match for pattern, so the walk does not have to materialize
// the whole tree before filtering.
func isPrefixOfPattern(pattern, rel string) bool {
	if strings.Contains(pattern, "**") {
		return true
	}
	relSegs := strings.Split(rel, "/")
	patSegs := strings.Split(pattern, "/")
	if len(relSegs) > len(patSegs) {
		return false
	}
	for i, seg := range relSegs {
		ok, err := doublestar.Match(patSegs[i], seg)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// ByName returns the workspace whose manifest name matches exactly.
func (w *WorkspaceIndex) ByName(name string) (Workspace, bool) {
	for _, ws := range w.workspaces {
		if ws.Name == name {
			return ws, true
		}
	}
	return Workspace{}, false
}

// ContainingPath returns the workspace that owns absPath, matching
// with a trailing separator so "pkg" never matches "pkg-foo".
func (w *WorkspaceIndex) ContainingPath(absPath string) (Workspace, bool) {
	for _, ws := range w.workspaces {
		if tspath.ContainsPath(ws.RootPath, absPath, w.opts) {
			return ws, true
		}
	}
	return Workspace{}, false
}

// WorkspaceRef is the result of matching a specifier against the
// workspace index: the owning workspace, plus the sub-path (if any)
// the specifier points at within it.
type WorkspaceRef struct {
	Workspace Workspace
	SubPath   string
}

// QueryWorkspaceModuleRef resolves a specifier against the workspace
// index the way the engine needs it: a Package ref matches a workspace
// by qualified name; a File ref matches when it points inside a
// workspace's root once resolved against the containing file's
// directory.
func (w *WorkspaceIndex) QueryWorkspaceModuleRef(spec string, containingFile string) (WorkspaceRef, bool) {
	ref := ParseRef(spec)
	switch ref.Kind {
	case RefPackage:
		ws, ok := w.ByName(ref.QualifiedName())
		if !ok {
			return WorkspaceRef{}, false
		}
		return WorkspaceRef{Workspace: ws, SubPath: ref.SubPath}, true
	case RefFile:
		dir := tspath.GetDirectoryPath(containingFile)
		abs := tspath.GetNormalizedAbsolutePath(ref.Path, dir)
		ws, ok := w.ContainingPath(abs)
		if !ok {
			return WorkspaceRef{}, false
		}
		sub := tspath.RelativeFrom(ws.RootPath, abs, w.opts)
		return WorkspaceRef{Workspace: ws, SubPath: sub}, true
	default:
		return WorkspaceRef{}, false
	}
}
