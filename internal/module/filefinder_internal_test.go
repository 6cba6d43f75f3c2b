package module

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tom-un/rnx-kit/internal/vfs/vfstest"
)

func newTestProbe(files map[string]string) *probe {
	fs := vfstest.FromMap(files, true)
	return newProbe(fs, NewTraceLog(TraceNever, nil))
}

func TestFindModuleFilePlatformPriority(t *testing.T) {
	t.Parallel()
	p := newTestProbe(map[string]string{
		"/repo/src/App.ios.tsx": "export default 1;",
		"/repo/src/App.ts":      "export default 1;",
	})
	platformExts := PlatformExtensions("ios", []string{"native"})
	m, ok := p.findModuleFile("/repo/src", "App", []Extension{ExtTs, ExtTsx, ExtDts}, platformExts)
	assert.Check(t, ok)
	assert.Equal(t, m.AbsolutePath, "/repo/src/App.ios.tsx")
	assert.Equal(t, m.Extension, ExtTsx)
}

func TestFindModuleFileExtensionPriorityWithinTier(t *testing.T) {
	t.Parallel()
	p := newTestProbe(map[string]string{
		"/repo/src/App.tsx": "x",
		"/repo/src/App.d.ts": "x",
	})
	platformExts := PlatformExtensions("ios", nil)
	m, ok := p.findModuleFile("/repo/src", "App", []Extension{ExtTs, ExtTsx, ExtDts}, platformExts)
	assert.Check(t, ok)
	assert.Equal(t, m.Extension, ExtTsx)
}

func TestFindModuleFileDirectoryIndexFallback(t *testing.T) {
	t.Parallel()
	p := newTestProbe(map[string]string{
		"/repo/src/widgets/index.ts": "x",
	})
	platformExts := PlatformExtensions("ios", nil)
	m, ok := p.findModuleFile("/repo/src", "widgets", []Extension{ExtTs, ExtTsx, ExtDts}, platformExts)
	assert.Check(t, ok)
	assert.Equal(t, m.AbsolutePath, "/repo/src/widgets/index.ts")
}

func TestFindModuleFileExplicitExtensionFastPathMiss(t *testing.T) {
	t.Parallel()
	p := newTestProbe(map[string]string{
		"/repo/src/App.tsx": "x",
	})
	platformExts := PlatformExtensions("ios", nil)
	_, ok := p.findModuleFile("/repo/src", "App.ts", []Extension{ExtTs, ExtTsx, ExtDts}, platformExts)
	assert.Check(t, !ok)
}

func TestFindModuleFileJsRetryResolvesToTs(t *testing.T) {
	t.Parallel()
	p := newTestProbe(map[string]string{
		"/repo/src/foo.ts": "x",
	})
	platformExts := PlatformExtensions("ios", nil)
	m, ok := p.findModuleFile("/repo/src", "foo.js", []Extension{ExtTs, ExtTsx, ExtDts, ExtJs, ExtJsx}, platformExts)
	assert.Check(t, ok)
	assert.Equal(t, m.AbsolutePath, "/repo/src/foo.ts")
	assert.Equal(t, m.Extension, ExtTs)
}

func TestPlatformExtensionsDropsDuplicates(t *testing.T) {
	t.Parallel()
	exts := PlatformExtensions("ios", []string{"native", "ios", "native"})
	assert.DeepEqual(t, exts, []string{".ios", ".native", ""})
}

func TestFindModuleFileNoMatch(t *testing.T) {
	t.Parallel()
	p := newTestProbe(map[string]string{})
	platformExts := PlatformExtensions("ios", nil)
	_, ok := p.findModuleFile("/repo/src", "Missing", []Extension{ExtTs}, platformExts)
	assert.Check(t, !ok)
}
