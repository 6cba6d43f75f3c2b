package main

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestValidateFlagDependenciesRequiresPlatform(t *testing.T) {
	t.Parallel()
	err := validateFlagDependencies(flags{traceResolutionLog: "out.log"})
	assert.ErrorContains(t, err, "--platform")
}

func TestValidateFlagDependenciesOKWithPlatform(t *testing.T) {
	t.Parallel()
	err := validateFlagDependencies(flags{platform: "ios", disableRNPackageSubstitution: true})
	assert.NilError(t, err)
}

func TestValidateFlagDependenciesOKWithNoDependents(t *testing.T) {
	t.Parallel()
	err := validateFlagDependencies(flags{})
	assert.NilError(t, err)
}
