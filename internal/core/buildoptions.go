package core

// BuildOptions is the plain-struct configuration shape compiler options
// flow through: CLI flags populate it directly, with no intervening
// config framework. Tristate fields let a flag's absence (TSUnknown)
// be distinguished from an explicit --no-checkJs (TSFalse).
type BuildOptions struct {
	noCopy

	CheckJS                                Tristate
	ResolveJSONModule                      Tristate
	TraceResolution                        Tristate
	TraceReactNativeModuleResolutionErrors Tristate
	DisableRNPackageSubstitution           Tristate
}

// CheckJSOrDefault resolves CheckJS against the compiler's default
// (off) when the flag was never specified.
func (o *BuildOptions) CheckJSOrDefault() bool {
	return o.CheckJS.IsTrue()
}

func (o *BuildOptions) ResolveJSONModuleOrDefault() bool {
	return o.ResolveJSONModule.IsTrue()
}

func (o *BuildOptions) TraceResolutionOrDefault() bool {
	return o.TraceResolution.IsTrue()
}

func (o *BuildOptions) TraceReactNativeModuleResolutionErrorsOrDefault() bool {
	return o.TraceReactNativeModuleResolutionErrors.IsTrue()
}

func (o *BuildOptions) DisableRNPackageSubstitutionOrDefault() bool {
	return o.DisableRNPackageSubstitution.IsTrue()
}
