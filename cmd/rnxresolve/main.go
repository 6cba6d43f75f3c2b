// Command rnxresolve drives the module resolver standalone, printing
// what a specifier resolves to without running a full compile. It
// exists to exercise internal/module's external interface end to end
// and as a debugging aid for the resolution trace.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tom-un/rnx-kit/internal/core"
	"github.com/tom-un/rnx-kit/internal/module"
	"github.com/tom-un/rnx-kit/internal/vfs"
)

type flags struct {
	platform                     string
	platformExtensions           string
	disableRNPackageSubstitution bool
	traceReactNativeErrors       bool
	traceResolutionLog           string
	checkJS                      bool
	resolveJSONModule            bool
	traceResolution              bool
}

func main() {
	var f flags
	root := &cobra.Command{
		Use:   "rnxresolve <containing-file> <specifier...>",
		Short: "Resolve module specifiers the way the React-Native-aware compiler driver would",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, args[0], args[1:])
		},
	}

	fl := root.Flags()
	fl.StringVar(&f.platform, "platform", "", "target platform (ios, android, windows, macos, win32, ...)")
	fl.StringVar(&f.platformExtensions, "platformExtensions", "", "comma-separated extra platform extension tokens")
	fl.BoolVar(&f.disableRNPackageSubstitution, "disableReactNativePackageSubstitution", false, "disable react-native -> platform-package substitution")
	fl.BoolVar(&f.traceReactNativeErrors, "traceReactNativeModuleResolutionErrors", false, "trace only resolution failures")
	fl.StringVar(&f.traceResolutionLog, "traceResolutionLog", "", "write the resolution trace to this file instead of stdout")
	fl.BoolVar(&f.checkJS, "checkJs", false, "allow .js/.jsx as resolvable extensions")
	fl.BoolVar(&f.resolveJSONModule, "resolveJsonModule", false, "allow .json as a resolvable extension")
	fl.BoolVar(&f.traceResolution, "traceResolution", false, "trace every resolution attempt, success or failure")

	root.PreRunE = func(cmd *cobra.Command, args []string) error {
		return validateFlagDependencies(f)
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(5)
	}
}

// validateFlagDependencies enforces the usage rule that
// --platformExtensions, --disableReactNativePackageSubstitution,
// --traceReactNativeModuleResolutionErrors, and --traceResolutionLog
// only make sense alongside --platform.
func validateFlagDependencies(f flags) error {
	if f.platform != "" {
		return nil
	}
	var dependent []string
	if f.platformExtensions != "" {
		dependent = append(dependent, "--platformExtensions")
	}
	if f.disableRNPackageSubstitution {
		dependent = append(dependent, "--disableReactNativePackageSubstitution")
	}
	if f.traceReactNativeErrors {
		dependent = append(dependent, "--traceReactNativeModuleResolutionErrors")
	}
	if f.traceResolutionLog != "" {
		dependent = append(dependent, "--traceResolutionLog")
	}
	if len(dependent) > 0 {
		return fmt.Errorf("usage: %s requires --platform", strings.Join(dependent, ", "))
	}
	return nil
}

func run(f flags, containingFile string, specifiers []string) error {
	var extra []string
	if f.platformExtensions != "" {
		extra = strings.Split(f.platformExtensions, ",")
	}

	var sink module.Sink
	if f.traceResolutionLog != "" {
		sink = module.FileSink{Path: f.traceResolutionLog}
	} else {
		sink = module.StdoutSink{Writer: os.Stdout}
	}

	opts := &core.BuildOptions{
		CheckJS:                                core.TristateFromBool(f.checkJS),
		ResolveJSONModule:                      core.TristateFromBool(f.resolveJSONModule),
		TraceResolution:                        core.TristateFromBool(f.traceResolution),
		TraceReactNativeModuleResolutionErrors: core.TristateFromBool(f.traceReactNativeErrors),
		DisableRNPackageSubstitution:           core.TristateFromBool(f.disableRNPackageSubstitution),
	}

	cfg := module.ResolverConfig{
		Platform:                     f.platform,
		ExtraPlatformExtensions:      extra,
		DisableRNPackageSubstitution: opts.DisableRNPackageSubstitutionOrDefault(),
		CheckJS:                      opts.CheckJSOrDefault(),
		ResolveJSONModule:            opts.ResolveJSONModuleOrDefault(),
		TraceMode:                    module.ResolveTraceMode(opts.TraceResolutionOrDefault(), opts.TraceReactNativeModuleResolutionErrorsOrDefault()),
		TraceSink:                    sink,
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	resolver, err := module.NewResolver(cfg, vfs.NewOS(vfs.IsCaseSensitiveHost()), cwd)
	if err != nil {
		return err
	}

	results, err := resolver.ResolveModuleNames(specifiers, containingFile)
	if err != nil {
		return err
	}
	if err := resolver.Err(); err != nil {
		return err
	}

	for i, spec := range specifiers {
		m := results[i]
		if m == nil {
			fmt.Printf("%s -> (unresolved)\n", spec)
			continue
		}
		fmt.Printf("%s -> %s (%s)\n", spec, m.AbsolutePath, m.Extension)
	}
	return nil
}
