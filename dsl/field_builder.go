package dsl

import (
	"sort"

	chausie "github.com/reoring/chausie"
)

// FieldBuilder assembles an immutable chausie.Field. Validators chain in the
// order given; dependencies are derived from the validators' Uses
// declarations at Build time.
type FieldBuilder struct {
	validators    []chausie.Validator
	accepts       []string
	nullability   chausie.Nullability
	serializeTo   string
	serializeFunc func(any) any
}

// Field starts a field definition from a validator chain. Nullability
// defaults to Required.
func Field(validators ...chausie.Validator) *FieldBuilder {
	return &FieldBuilder{
		validators:  validators,
		nullability: chausie.Required(),
	}
}

// Parent prepends another field's validator chain, mirroring validator reuse
// across fields. Only the validators are reused.
func (b *FieldBuilder) Parent(f chausie.Field) *FieldBuilder {
	b.validators = append(append([]chausie.Validator{}, f.Validators...), b.validators...)
	return b
}

// Then appends more validators to the chain.
func (b *FieldBuilder) Then(validators ...chausie.Validator) *FieldBuilder {
	b.validators = append(b.validators, validators...)
	return b
}

// Accepts sets the input keys to try, in order of precedence. Unset means
// the field's own schema name.
func (b *FieldBuilder) Accepts(names ...string) *FieldBuilder {
	b.accepts = names
	return b
}

// Required marks the field as required (the default).
func (b *FieldBuilder) Required() *FieldBuilder {
	b.nullability = chausie.Required()
	return b
}

// Optional allows null and resolves omitted input to the Omitted sentinel.
func (b *FieldBuilder) Optional() *FieldBuilder {
	b.nullability = chausie.Optional()
	return b
}

// OptionalValue allows null and resolves omitted input to v.
func (b *FieldBuilder) OptionalValue(v any) *FieldBuilder {
	b.nullability = chausie.OptionalValue(v)
	return b
}

// Nullability sets an explicit nullability policy.
func (b *FieldBuilder) Nullability(n chausie.Nullability) *FieldBuilder {
	b.nullability = n
	return b
}

// SerializeTo overrides the output key used during serialization.
func (b *FieldBuilder) SerializeTo(name string) *FieldBuilder {
	b.serializeTo = name
	return b
}

// SerializeFunc sets the transform applied during serialization.
func (b *FieldBuilder) SerializeFunc(fn func(any) any) *FieldBuilder {
	b.serializeFunc = fn
	return b
}

// Build finalizes the immutable Field. The field's DependsOn is the sorted
// union of the validators' Uses declarations.
func (b *FieldBuilder) Build() chausie.Field {
	validators := b.validators
	if len(validators) == 0 {
		validators = []chausie.Validator{Noop()}
	}
	depSet := map[string]bool{}
	for _, v := range validators {
		for _, dep := range v.Uses {
			depSet[dep] = true
		}
	}
	deps := make([]string, 0, len(depSet))
	for dep := range depSet {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return chausie.Field{
		Validators:    append([]chausie.Validator{}, validators...),
		Accepts:       append([]string{}, b.accepts...),
		SerializeTo:   b.serializeTo,
		SerializeFunc: b.serializeFunc,
		Nullability:   b.nullability,
		DependsOn:     deps,
	}
}
