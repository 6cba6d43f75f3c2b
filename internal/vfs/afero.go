package vfs

import (
	"errors"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

var errNotFound = errors.New("vfs: not found")

// IsCaseSensitiveHost reports whether the current OS's default
// filesystem treats case as significant. Darwin and Windows default to
// case-insensitive filesystems; everything else (notably Linux) is
// case-sensitive.
func IsCaseSensitiveHost() bool {
	return runtime.GOOS != "windows" && runtime.GOOS != "darwin"
}

// aferoFS adapts an afero.Fs to the resolver's FS seam. afero gives us
// one implementation for the real OS (afero.NewOsFs) and one for tests
// (afero.NewMemMapFs) without the resolver ever knowing which it has.
type aferoFS struct {
	fs            afero.Fs
	caseSensitive bool
}

// NewOS returns the FS backing real compiler runs: the host operating
// system's filesystem, probed through afero so the resolver's probe
// I/O never touches os directly.
func NewOS(caseSensitive bool) FS {
	return &aferoFS{fs: afero.NewOsFs(), caseSensitive: caseSensitive}
}

// NewFromAfero wraps an arbitrary afero.Fs (e.g. a MemMapFs seeded by a
// test, or a BasePathFs rooted at a fixture directory).
func NewFromAfero(fs afero.Fs, caseSensitive bool) FS {
	return &aferoFS{fs: fs, caseSensitive: caseSensitive}
}

func (a *aferoFS) UseCaseSensitiveFileNames() bool {
	return a.caseSensitive
}

func (a *aferoFS) FileExists(path string) bool {
	info, err := a.statResolved(path)
	return err == nil && !info.IsDir()
}

func (a *aferoFS) DirectoryExists(path string) bool {
	info, err := a.statResolved(path)
	return err == nil && info.IsDir()
}

func (a *aferoFS) ReadFile(path string) (string, bool) {
	resolved, ok := a.resolveCase(path)
	if !ok {
		return "", false
	}
	f, err := a.fs.Open(resolved)
	if err != nil {
		return "", false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (a *aferoFS) GetAccessibleEntries(path string) Entries {
	resolved, ok := a.resolveCase(path)
	if !ok {
		return Entries{}
	}
	infos, err := afero.ReadDir(a.fs, resolved)
	if err != nil {
		return Entries{}
	}
	var entries Entries
	for _, info := range infos {
		if info.IsDir() {
			entries.Directories = append(entries.Directories, info.Name())
		} else {
			entries.Files = append(entries.Files, info.Name())
		}
	}
	sort.Strings(entries.Files)
	sort.Strings(entries.Directories)
	return entries
}

func (a *aferoFS) statResolved(path string) (info interface{ IsDir() bool }, err error) {
	resolved, ok := a.resolveCase(path)
	if !ok {
		return nil, errNotFound
	}
	return a.fs.Stat(resolved)
}

// resolveCase re-derives the on-disk casing of path one segment at a
// time when the filesystem is case-insensitive, so that a specifier
// written with the wrong case still matches — mirroring how real
// case-insensitive filesystems (and the rest of the toolchain) behave.
func (a *aferoFS) resolveCase(path string) (string, bool) {
	if a.caseSensitive {
		return path, true
	}
	if _, err := a.fs.Stat(path); err == nil {
		return path, true
	}
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	current := "/"
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		infos, err := afero.ReadDir(a.fs, current)
		if err != nil {
			return "", false
		}
		matched := ""
		for _, info := range infos {
			if strings.EqualFold(info.Name(), segment) {
				matched = info.Name()
				break
			}
		}
		if matched == "" {
			return "", false
		}
		if current == "/" {
			current = current + matched
		} else {
			current = current + "/" + matched
		}
	}
	return current, true
}
