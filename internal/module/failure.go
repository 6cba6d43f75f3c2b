package module

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/tom-un/rnx-kit/internal/tspath"
)

// multimediaExtensionPattern matches the asset extensions a bundler
// handles outside the type checker; a missing resolution for one of
// these is expected, not a real module-not-found error.
var multimediaExtensionPattern = regexp2.MustCompile(
	`(aac|aiff|bmp|caf|gif|html|jpeg|jpg|m4a|m4v|mov|mp3|mp4|mpeg|mpg|obj|otf|pdf|png|psd|svg|ttf|wav|webm|webp|css)$`,
	regexp2.IgnoreCase,
)

// shouldShowResolverFailure reports whether a failed resolution for
// name is worth surfacing to the trace sink. Builtins, node:-prefixed
// specifiers, and asset-like extensions are expected to fail and are
// suppressed.
func shouldShowResolverFailure(name string) bool {
	if IsBuiltin(name) {
		return false
	}
	if strings.HasPrefix(strings.ToLower(name), "node:") {
		return false
	}
	ext := tspath.GetBaseFileName(name)
	if idx := strings.LastIndexByte(ext, '.'); idx >= 0 {
		ext = ext[idx:]
	} else {
		ext = ""
	}
	matched, err := multimediaExtensionPattern.MatchString(ext)
	if err == nil && matched {
		return false
	}
	return true
}
