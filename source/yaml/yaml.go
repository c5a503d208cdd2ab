// Package yaml decodes YAML payloads into evaluator input via yaml.v3,
// normalizing nested mappings to string-keyed maps.
package yaml

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	chausie "github.com/reoring/chausie"
	"github.com/reoring/chausie/i18n"
)

// Decode parses a YAML document into an any-tree with string-keyed maps
// throughout.
func Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

// DecodeObject is Decode restricted to a top-level mapping.
func DecodeObject(data []byte) (map[string]any, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("yaml: top-level value is not a mapping")
	}
	return m, nil
}

// Clean decodes a YAML mapping and evaluates it against the schema in one
// call. Malformed input surfaces as a parse-error ValidationError at the
// root path.
func Clean(sd chausie.SchemaDefinition, data []byte, ctx any) (map[string]any, error) {
	m, err := DecodeObject(data)
	if err != nil {
		return nil, &chausie.ValidationError{Errors: []chausie.Error{{
			Code: chausie.CodeParseError,
			Msg:  i18n.T(chausie.CodeParseError, nil),
		}}}
	}
	return chausie.Clean(sd, m, ctx)
}

// normalize rewrites map[any]any nodes (yaml.v3 emits them for non-string
// keys) into map[string]any and recurses through containers.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	default:
		return v
	}
}
