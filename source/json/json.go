// Package json decodes JSON payloads into evaluator input using
// goccy/go-json, preserving numbers as json.Number so integer fields do not
// lose precision through float64.
package json

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"

	chausie "github.com/reoring/chausie"
	"github.com/reoring/chausie/i18n"
)

// Decode parses a single JSON document into an any-tree. Numbers decode as
// json.Number.
func Decode(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// reject trailing content after the first document
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("json: trailing data after top-level value")
	}
	return v, nil
}

// DecodeObject is Decode restricted to a top-level object.
func DecodeObject(data []byte) (map[string]any, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("json: top-level value is not an object")
	}
	return m, nil
}

// Clean decodes a JSON object and evaluates it against the schema in one
// call. Malformed input surfaces as a parse-error ValidationError at the
// root path, keeping the failure shape uniform for handlers.
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

// MarshalError renders a ValidationError in its serialized response shape.
func MarshalError(ve *chausie.ValidationError) ([]byte, error) {
	return j.Marshal(ve.Serialize())
}

// MarshalRecord renders a serialized record (or any value) as JSON.
func MarshalRecord(record any) ([]byte, error) {
	return j.Marshal(record)
}
