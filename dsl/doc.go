// Package dsl provides the builders used to define chausie schemas: a
// schema builder, a field builder, constructors for validators, and a stock
// library of coercing validators (string, int, bool, datetime, regex, url,
// email, enum, list, nested schema).
//
// A typical definition:
//
//	var userSchema = dsl.Schema().
//		Field("name", dsl.Field(dsl.String())).
//		Field("email", dsl.Field(dsl.Email(254)).Accepts("email", "email_address")).
//		Field("age", dsl.Field(dsl.Int()).Optional()).
//		MustBuild()
//
// Builders run once at definition time; the resulting SchemaDefinition is
// immutable and safe for concurrent Clean calls.
package dsl
