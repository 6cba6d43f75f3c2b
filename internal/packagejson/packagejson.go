// Package packagejson decodes the handful of package.json fields the
// resolver actually consults: name, types, typings, main, homepage,
// version. Everything else in a real package.json — exports
// conditions, typesVersions, dependency maps — belongs to path-mapping
// machinery this resolver deliberately does not implement, so it is
// not modeled here.
package packagejson

import (
	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Fields is the parsed subset of a package.json the resolver reads.
// Absent fields decode to the zero Expected, which GetValue reports as
// not-present rather than as an empty string — callers only act on a
// field once they've confirmed the manifest actually sets it.
type Fields struct {
	Name    Expected[string] `json:"name"`
	Version Expected[string] `json:"version"`
	Main    Expected[string] `json:"main"`
	Types   Expected[string] `json:"types"`
	Typings Expected[string] `json:"typings"`

	// Homepage is read-only metadata; the resolver never acts on it, but
	// diagnostics can cite it (e.g. "see <homepage> for this package's
	// typings layout").
	Homepage Expected[string] `json:"homepage"`
}

// Parse decodes a package.json document. A malformed document is a
// fatal resolver error, propagated to the caller as-is so it can be
// wrapped with the offending directory.
func Parse(data []byte) (Fields, error) {
	var f Fields
	if err := json.Unmarshal(data, &f, jsontext.AllowDuplicateNames(true)); err != nil {
		return Fields{}, err
	}
	return f, nil
}
