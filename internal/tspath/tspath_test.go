package tspath_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tom-un/rnx-kit/internal/tspath"
)

func TestNormalizeSlashes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.NormalizeSlashes(`C:\repo\src`), "C:/repo/src")
}

func TestIsRootedDiskPath(t *testing.T) {
	t.Parallel()
	cases := []struct {
		path string
		want bool
	}{
		{"/repo/src", true},
		{"C:/repo", true},
		{"repo/src", false},
		{"./repo", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, tspath.IsRootedDiskPath(c.path), c.want, c.path)
	}
}

func TestCombinePaths(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.CombinePaths("/repo", "src", "index.ts"), "/repo/src/index.ts")
	assert.Equal(t, tspath.CombinePaths("/repo/src", "/other"), "/other")
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.NormalizePath("/repo/src/../lib/./index.ts"), "/repo/lib/index.ts")
}

func TestContainsPathAvoidsPrefixFalseMatch(t *testing.T) {
	t.Parallel()
	opts := tspath.ComparePathsOptions{UseCaseSensitiveFileNames: true}
	assert.Check(t, tspath.ContainsPath("/repo/packages/pkg", "/repo/packages/pkg/src/index.ts", opts))
	assert.Check(t, !tspath.ContainsPath("/repo/packages/pkg", "/repo/packages/pkg-foo/src/index.ts", opts))
}

func TestRelativeFrom(t *testing.T) {
	t.Parallel()
	opts := tspath.ComparePathsOptions{UseCaseSensitiveFileNames: true}
	got := tspath.RelativeFrom("/repo/packages/pkg", "/repo/packages/pkg/src/index.ts", opts)
	assert.Equal(t, got, "src/index.ts")
}

func TestFileExtensionIs(t *testing.T) {
	t.Parallel()
	assert.Check(t, tspath.FileExtensionIs("foo.d.ts", ".d.ts"))
	assert.Check(t, !tspath.FileExtensionIs(".d.ts", ".d.ts"))
}

func TestIsDeclarationFileName(t *testing.T) {
	t.Parallel()
	assert.Check(t, tspath.IsDeclarationFileName("foo.d.ts"))
	assert.Check(t, !tspath.IsDeclarationFileName("foo.ts"))
}
