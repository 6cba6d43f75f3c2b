package module_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/tom-un/rnx-kit/internal/module"
)

func TestParseRefFile(t *testing.T) {
	t.Parallel()
	for _, spec := range []string{"./App", "../lib/index", "/abs/path", "C:/win/path"} {
		ref := module.ParseRef(spec)
		assert.Equal(t, ref.Kind, module.RefFile, spec)
		assert.Equal(t, ref.Path, spec)
	}
}

func TestParseRefScopedPackage(t *testing.T) {
	t.Parallel()
	ref := module.ParseRef("@acme/ui/Button")
	assert.Equal(t, ref.Kind, module.RefPackage)
	assert.Equal(t, ref.Scope, "acme")
	assert.Equal(t, ref.Name, "ui")
	assert.Equal(t, ref.SubPath, "Button")
	assert.Equal(t, ref.QualifiedName(), "@acme/ui")
}

func TestParseRefBarePackage(t *testing.T) {
	t.Parallel()
	ref := module.ParseRef("lodash/isString")
	assert.Equal(t, ref.Kind, module.RefPackage)
	assert.Equal(t, ref.Scope, "")
	assert.Equal(t, ref.Name, "lodash")
	assert.Equal(t, ref.SubPath, "isString")
	assert.Check(t, ref.HasSubPath())
}

func TestParseRefScopeWithoutNameIsDefensiveFile(t *testing.T) {
	t.Parallel()
	ref := module.ParseRef("@acme")
	assert.Equal(t, ref.Kind, module.RefFile)
	assert.Equal(t, ref.Path, "@acme")
}

func TestParseRefStructuralDiff(t *testing.T) {
	t.Parallel()
	got := module.ParseRef("@acme/ui/Button")
	want := module.Ref{Kind: module.RefPackage, Scope: "acme", Name: "ui", SubPath: "Button"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseRef mismatch (-want +got):\n%s", diff)
	}
}

func TestIsBuiltin(t *testing.T) {
	t.Parallel()
	assert.Check(t, module.IsBuiltin("fs"))
	assert.Check(t, module.IsBuiltin("fs/promises"))
	assert.Check(t, module.IsBuiltin("NODE:path"))
	assert.Check(t, !module.IsBuiltin("react-native"))
}
