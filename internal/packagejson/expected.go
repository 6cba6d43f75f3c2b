package packagejson

import (
	"bytes"

	json "github.com/go-json-experiment/json"
)

func unmarshalValue[T any](data []byte, v *T) error {
	return json.Unmarshal(data, v)
}

// Expected wraps a field that may be entirely absent from a JSON
// document. Unlike the zero value of T, Expected distinguishes "the key
// was never written" from "the key was written as the zero value": a
// manifest with `"main": ""` is different from one with no `main` field
// at all.
type Expected[T any] struct {
	value   T
	present bool
}

// GetValue returns the decoded value and whether the field was present
// in the source document.
func (e Expected[T]) GetValue() (T, bool) {
	return e.value, e.present
}

var null = []byte("null")

// UnmarshalJSON implements the v1-compatible Unmarshaler interface that
// github.com/go-json-experiment/json honors for field types, so Expected
// can be embedded directly in Fields without a custom decoder.
func (e *Expected[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		var zero T
		e.value = zero
		e.present = false
		return nil
	}
	var v T
	if err := unmarshalValue(data, &v); err != nil {
		return err
	}
	e.value = v
	e.present = true
	return nil
}
