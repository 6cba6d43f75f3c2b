package module

// Extension is one of the closed set of filename suffixes the resolver
// will ever match. The set is ordered — precedence among extensions is
// a sequence, never a set.
type Extension = string

const (
	ExtDts  Extension = ".d.ts"
	ExtTs   Extension = ".ts"
	ExtTsx  Extension = ".tsx"
	ExtJs   Extension = ".js"
	ExtJsx  Extension = ".jsx"
	ExtJson Extension = ".json"
)

// AllExtensionsByLength lists every extension the closed set defines,
// longest-first, so TryGetExtensionFromPath's longest-match rule never
// mistakes ".ts" for the suffix of a ".d.ts" file — longest match
// wins, always.
var AllExtensionsByLength = []string{ExtDts, ExtJson, ExtTsx, ExtJsx, ExtTs, ExtJs}

// Options is the subset of compiler options the extension table and the
// broader resolver consult.
type Options struct {
	CheckJS          bool
	ResolveJSONModule bool
}

// ExtensionsFor returns the ordered, allowed extension list for
// resolving a specifier that appears in containingFileIsDts:
//
//   - from a .d.ts containing file: [.d.ts, .ts] — the .ts entry lets
//     `import "./foo.d"` resolve to "./foo.d.ts".
//   - otherwise: [.ts, .tsx, .d.ts], +[.js, .jsx] if CheckJS, +[.json] if
//     ResolveJSONModule.
func ExtensionsFor(containingFileIsDts bool, opts Options) []Extension {
	if containingFileIsDts {
		return []Extension{ExtDts, ExtTs}
	}
	exts := []Extension{ExtTs, ExtTsx, ExtDts}
	if opts.CheckJS {
		exts = append(exts, ExtJs, ExtJsx)
	}
	if opts.ResolveJSONModule {
		exts = append(exts, ExtJson)
	}
	return exts
}
