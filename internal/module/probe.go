package module

import (
	"fmt"

	"github.com/tom-un/rnx-kit/internal/packagejson"
	"github.com/tom-un/rnx-kit/internal/vfs"
)

// probe wraps a vfs.FS with the trace-on-miss behavior the resolver
// requires byte-for-byte: every failed isFile/isDirectory probe appends
// exactly one line to the current trace transaction.
type probe struct {
	fs    vfs.FS
	trace *TraceLog
}

func newProbe(fs vfs.FS, trace *TraceLog) *probe {
	return &probe{fs: fs, trace: trace}
}

func (p *probe) isFile(path string) bool {
	if p.fs.FileExists(path) {
		return true
	}
	p.trace.Log("File %s does not exist.", path)
	return false
}

func (p *probe) isDirectory(path string) bool {
	if p.fs.DirectoryExists(path) {
		return true
	}
	p.trace.Log("Directory %s does not exist.", path)
	return false
}

// readPackageManifest reads and parses dir's package.json. A missing
// manifest is reported as (zero, false, nil) — not every directory
// probed by the entry-point resolver or the upward node_modules walk
// has one. A manifest that exists but fails to parse is fatal and
// carries the offending directory in its error text.
func (p *probe) readPackageManifest(dir string) (packagejson.Fields, bool, error) {
	path := dir + "/package.json"
	content, ok := p.fs.ReadFile(path)
	if !ok {
		return packagejson.Fields{}, false, nil
	}
	fields, err := packagejson.Parse([]byte(content))
	if err != nil {
		return packagejson.Fields{}, false, fmt.Errorf("module: malformed package.json in %s: %w", dir, err)
	}
	return fields, true, nil
}
