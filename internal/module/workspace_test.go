package module_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tom-un/rnx-kit/internal/module"
	"github.com/tom-un/rnx-kit/internal/vfs/vfstest"
)

func TestEnumerateWorkspacesNoManifestIsSinglePackage(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/repo/package.json": `{"name":"@acme/root"}`,
	}, true)
	idx, err := module.EnumerateWorkspaces(fs, "/repo")
	assert.NilError(t, err)
	ws, ok := idx.ByName("@acme/root")
	assert.Check(t, ok)
	assert.Equal(t, ws.RootPath, "/repo")
}

func TestEnumerateWorkspacesExpandsGlobs(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/repo/pnpm-workspace.yaml":      "packages:\n  - \"packages/*\"\n",
		"/repo/packages/ui/package.json": `{"name":"@acme/ui"}`,
		"/repo/packages/cli/package.json": `{"name":"@acme/cli"}`,
	}, true)
	idx, err := module.EnumerateWorkspaces(fs, "/repo")
	assert.NilError(t, err)

	ui, ok := idx.ByName("@acme/ui")
	assert.Check(t, ok)
	assert.Equal(t, ui.RootPath, "/repo/packages/ui")

	cli, ok := idx.ByName("@acme/cli")
	assert.Check(t, ok)
	assert.Equal(t, cli.RootPath, "/repo/packages/cli")

	_, ok = idx.ByName("@acme/missing")
	assert.Check(t, !ok)
}

func TestWorkspaceIndexContainingPathAvoidsPrefixFalseMatch(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/repo/pnpm-workspace.yaml":          "packages:\n  - \"packages/*\"\n",
		"/repo/packages/pkg/package.json":    `{"name":"pkg"}`,
		"/repo/packages/pkg-foo/package.json": `{"name":"pkg-foo"}`,
	}, true)
	idx, err := module.EnumerateWorkspaces(fs, "/repo")
	assert.NilError(t, err)

	ws, ok := idx.ContainingPath("/repo/packages/pkg/src/index.ts")
	assert.Check(t, ok)
	assert.Equal(t, ws.Name, "pkg")

	ws2, ok := idx.ContainingPath("/repo/packages/pkg-foo/src/index.ts")
	assert.Check(t, ok)
	assert.Equal(t, ws2.Name, "pkg-foo")
}

func TestQueryWorkspaceModuleRefByFile(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/repo/pnpm-workspace.yaml":       "packages:\n  - \"packages/*\"\n",
		"/repo/packages/ui/package.json":  `{"name":"@acme/ui"}`,
		"/repo/packages/ui/src/Button.ts": "x",
	}, true)
	idx, err := module.EnumerateWorkspaces(fs, "/repo")
	assert.NilError(t, err)

	ref, ok := idx.QueryWorkspaceModuleRef("./Button", "/repo/packages/ui/src/index.ts")
	assert.Check(t, ok)
	assert.Equal(t, ref.Workspace.Name, "@acme/ui")
	assert.Equal(t, ref.SubPath, "src/Button")
}
