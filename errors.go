package chausie

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention).
// They double as i18n dictionary keys.
const (
	CodeRequired       = "required"
	CodeRequiredNull   = "required_null"
	CodeNullNotAllowed = "null_not_allowed"
	CodeInvalidType    = "invalid_type"
	CodeCoerce         = "coerce"
	CodeIntParse       = "int_parse"
	CodeFloatParse     = "float_parse"
	CodeNotBoolean     = "not_boolean"
	CodeDatetimeParse  = "datetime_parse"
	CodeInvalidEnum    = "invalid_enum"
	CodePattern        = "pattern"
	CodeNotFound       = "not_found"
	CodeParseError     = "parse_error"
	CodeTooLong        = "too_long"
	// URL scheme allow/deny list violations.
	CodeSchemeNotAllowed = "scheme_not_allowed"
	// Custom validator failures without a more specific code.
	CodeCustom = "custom"
)

// Error is a single validation failure at a specific field path. Validators
// return it (or Errors) to fail the field; the engine qualifies Path with the
// field's position in the schema.
type Error struct {
	Code string
	Msg  string
	Path Path
}

// Error implements the error interface for interop with errors helpers.
func (e Error) Error() string {
	if len(e.Path) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s at %s", e.Msg, e.Path.Pointer())
}

// withPrefix returns a copy of e with prefix prepended to its path.
func (e Error) withPrefix(prefix Path) Error {
	if len(prefix) == 0 {
		return e
	}
	return Error{Code: e.Code, Msg: e.Msg, Path: prefix.Join(e.Path)}
}

// ValidationError aggregates every field-level failure of one Clean call.
type ValidationError struct {
	Errors []Error
}

// Error summarizes the first few entries.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(e.Errors)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := e.Errors[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Serialize renders the field-level errors as a plain map, useful for REST
// responses and test assertions. The shape is
// {"errors": [{"msg": ..., "field": [segments...]}]}.
func (e *ValidationError) Serialize() map[string]any {
	out := make([]map[string]any, 0, len(e.Errors))
	for _, it := range e.Errors {
		out = append(out, map[string]any{"msg": it.Msg, "field": it.Path.Segments()})
	}
	return map[string]any{"errors": out}
}

// AsValidationError extracts a *ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ContextRequiredError signals a schema/caller mismatch: a validator declared
// a required context but Clean was called without one. It is fatal and never
// aggregated with field errors.
type ContextRequiredError struct {
	Path Path
}

func (e *ContextRequiredError) Error() string {
	return fmt.Sprintf("chausie: context is required for evaluating this schema (at %s)", e.Path.Pointer())
}

// ErrUnresolvableDependencies is returned (wrapped) by schema construction
// when the declared field dependencies contain a cycle or reference unknown
// fields. It is never produced at Clean time.
var ErrUnresolvableDependencies = errors.New("chausie: field dependencies could not be resolved")
