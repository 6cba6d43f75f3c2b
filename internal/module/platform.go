package module

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// platformPackages is the closed react-native -> platform-package
// substitution map. Platforms outside this map simply have no
// substitution: they silently opt out rather than error.
var platformPackages = map[string]string{
	"windows": "react-native-windows",
	"macos":   "react-native-macos",
	"win32":   "@office-iss/react-native-win32",
}

const reactNativeToken = "react-native"

var lowerCaser = cases.Lower(language.Und)

// NormalizePlatform lowercases a platform token the way every call site
// expects it.
func NormalizePlatform(platform string) string {
	return lowerCaser.String(platform)
}

// Substitute rewrites a leading "react-native" token to the
// platform-specific package name. It returns the (possibly unchanged)
// specifier and, when a rewrite happened, a trace line the caller
// should log.
func Substitute(spec string, platform string, disabled bool) (result string, trace string, substituted bool) {
	if disabled {
		return spec, "", false
	}
	mapped, ok := platformPackages[platform]
	if !ok {
		return spec, "", false
	}
	if !startsWithToken(spec, reactNativeToken) {
		return spec, "", false
	}
	rewritten := mapped + spec[len(reactNativeToken):]
	return rewritten, fmt.Sprintf("Substituting module '%s' with '%s'.", spec, rewritten), true
}

// startsWithToken reports whether spec begins with token as a whole
// package-name token: token alone, or token immediately followed by
// "/" (a sub-path) or "?" (a query suffix some bundlers attach).
func startsWithToken(spec, token string) bool {
	if !strings.HasPrefix(spec, token) {
		return false
	}
	rest := spec[len(token):]
	return rest == "" || rest[0] == '/' || rest[0] == '?'
}
