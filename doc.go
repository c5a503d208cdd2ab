// Package chausie is a declarative data-cleaning and validation engine.
//
// A SchemaDefinition maps field names to immutable Fields, each carrying an
// ordered validator chain, input aliases, a nullability policy, and the names
// of sibling fields it depends on. Clean evaluates a schema against raw input
// (a map or a struct), resolving inter-field dependencies through a dynamic
// readiness queue, and returns either a validated record or a
// *ValidationError aggregating every field-level failure with its path.
//
// Schemas are built once with the builders in the dsl subpackage and may be
// shared by any number of concurrent Clean calls; evaluation itself is pure
// and synchronous.
package chausie
