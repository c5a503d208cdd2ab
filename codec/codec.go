// Package codec pairs a wire-to-domain validator with the matching
// domain-to-wire serialize transform, so a field round-trips through Clean
// and Serialize with one declaration.
package codec

import (
	chausie "github.com/reoring/chausie"
	"github.com/reoring/chausie/dsl"
)

// Codec converts between a wire representation and a domain value.
type Codec struct {
	// Validator decodes the wire value into the domain value.
	Validator chausie.Validator
	// Serialize encodes the domain value back to its canonical wire form.
	Serialize func(v any) any
}

// Field builds a field spec around the codec: its validator heads the chain
// and its serialize transform is installed as the SerializeFunc.
func (c Codec) Field(validators ...chausie.Validator) *dsl.FieldBuilder {
	return dsl.Field(append([]chausie.Validator{c.Validator}, validators...)...).
		SerializeFunc(c.Serialize)
}

// Identity passes values through unchanged in both directions.
func Identity() Codec {
	return Codec{
		Validator: dsl.Noop(),
		Serialize: func(v any) any { return v },
	}
}
