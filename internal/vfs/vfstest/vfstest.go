// Package vfstest builds in-memory filesystem trees for resolver tests.
package vfstest

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/tom-un/rnx-kit/internal/vfs"
)

// FromMap builds a vfs.FS from a map of absolute path to file content.
// Intermediate directories are created implicitly. Pass caseSensitive
// to simulate Linux/macOS-APFS(case-sensitive)/Windows behavior.
func FromMap(files map[string]string, caseSensitive bool) vfs.FS {
	mem := afero.NewMemMapFs()
	for path, content := range files {
		path = strings.TrimSpace(path)
		if err := afero.WriteFile(mem, path, []byte(content), 0o644); err != nil {
			panic("vfstest: " + err.Error())
		}
	}
	return vfs.NewFromAfero(mem, caseSensitive)
}
