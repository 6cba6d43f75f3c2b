package module

import "strings"

// builtinModules is the reserved specifier list consulted only by the
// failure-suppression predicate — the parser itself never returns
// RefBuiltin. This is Node's CommonJS builtin module list as of the
// platforms React Native targets (no experimental/internal modules),
// plus "fs/promises" since it postdates most hand-rolled builtin lists.
var builtinModules = map[string]bool{
	"assert": true, "buffer": true, "child_process": true, "cluster": true,
	"console": true, "constants": true, "crypto": true, "dgram": true,
	"dns": true, "domain": true, "events": true, "fs": true,
	"fs/promises": true, "http": true, "http2": true, "https": true,
	"inspector": true, "module": true, "net": true, "os": true,
	"path": true, "perf_hooks": true, "process": true, "punycode": true,
	"querystring": true, "readline": true, "repl": true, "stream": true,
	"string_decoder": true, "sys": true, "timers": true, "tls": true,
	"trace_events": true, "tty": true, "url": true, "util": true,
	"v8": true, "vm": true, "wasi": true, "worker_threads": true,
	"zlib": true,
}

// IsBuiltin reports whether spec refers to a builtin module: the fixed
// list above, or any specifier spelled with a "node:" prefix regardless
// of case.
func IsBuiltin(spec string) bool {
	if strings.HasPrefix(strings.ToLower(spec), "node:") {
		return true
	}
	return builtinModules[spec]
}
