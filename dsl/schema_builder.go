package dsl

import chausie "github.com/reoring/chausie"

// SchemaBuilder assembles a SchemaDefinition, preserving field declaration
// order.
type SchemaBuilder struct {
	defs []chausie.FieldDef
}

// Schema creates a new schema builder.
func Schema() *SchemaBuilder {
	return &SchemaBuilder{}
}

// Field registers a field under name.
func (b *SchemaBuilder) Field(name string, f *FieldBuilder) *SchemaBuilder {
	b.defs = append(b.defs, chausie.FieldDef{Name: name, Field: f.Build()})
	return b
}

// Def registers a prebuilt field spec under name.
func (b *SchemaBuilder) Def(name string, f chausie.Field) *SchemaBuilder {
	b.defs = append(b.defs, chausie.FieldDef{Name: name, Field: f})
	return b
}

// Build validates the dependency graph and returns the immutable
// SchemaDefinition. Cyclic or dangling dependencies fail here, never at
// Clean time.
func (b *SchemaBuilder) Build() (chausie.SchemaDefinition, error) {
	return chausie.NewSchemaDefinition(b.defs)
}

// MustBuild is like Build but panics on error. Use it for package-level
// schema definitions.
func (b *SchemaBuilder) MustBuild() chausie.SchemaDefinition {
	sd, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sd
}
