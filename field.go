package chausie

import "github.com/reoring/chausie/i18n"

// Nullability governs how an omitted or null input is handled before the
// validator chain runs.
type Nullability struct {
	// AllowNull lets an explicit null pass through untouched.
	AllowNull bool
	// Optional makes an omitted input resolve to OmittedValue instead of an
	// error.
	Optional bool
	// OmittedValue is the value an optional field holds when the input was
	// omitted. Defaults to the Omitted sentinel.
	OmittedValue any
}

// Required is the default nullability: input must be present and non-null.
func Required() Nullability {
	return Nullability{}
}

// Optional allows null and resolves omitted input to the Omitted sentinel.
func Optional() Nullability {
	return Nullability{AllowNull: true, Optional: true, OmittedValue: Omitted}
}

// OptionalValue allows null and resolves omitted input to v.
func OptionalValue(v any) Nullability {
	return Nullability{AllowNull: true, Optional: true, OmittedValue: v}
}

// VCtx carries the inputs available to one validator invocation.
type VCtx struct {
	// Context is the caller-supplied opaque context, or the EmptyContext
	// sentinel when Clean was called without one.
	Context any
	// Value is the running value produced by the previous validator in the
	// chain (the raw input for the first).
	Value any
	// Resolved holds the already-validated values of the sibling fields the
	// validator declared in Uses, keyed by field name.
	Resolved map[string]any
}

// Validator is one link of a field's chain. Fn returns the new running
// value, or an Error/Errors to fail the field, or an UnvalidatedWrapped to
// have the engine recurse into elements, or a Value passthrough. Returning
// any other non-nil error aborts the whole Clean call as a fatal failure.
//
// Dependencies on sibling fields are declared statically in Uses; the engine
// will not evaluate the field until every listed sibling holds a Value.
type Validator struct {
	Fn func(VCtx) any

	// WantsValue marks validators that consume the running value. The
	// nullability policy only applies when at least one validator in the
	// chain wants a value.
	WantsValue bool

	// WantsContext marks validators that consume the caller context. When
	// set and ContextOptional is false, evaluating without a context is a
	// fatal ContextRequiredError.
	WantsContext bool

	// ContextOptional suppresses the fatal check for validators that merely
	// forward the context when present (for example nested schemas).
	ContextOptional bool

	// Uses lists sibling field names whose validated values this validator
	// reads. The reserved names "value" and "context" must not appear here.
	Uses []string
}

// Field is an immutable validation/coercion spec for one schema attribute.
// Construct it with the dsl package builders; treat it as read-only.
type Field struct {
	// Validators run in declaration order.
	Validators []Validator

	// Accepts lists input keys to try, in order. Empty means the field's own
	// schema name.
	Accepts []string

	// SerializeTo overrides the output key during serialization.
	SerializeTo string

	// SerializeFunc transforms the value during serialization. Nil means
	// passthrough.
	SerializeFunc func(any) any

	Nullability Nullability

	// DependsOn is the union of the validators' Uses declarations.
	DependsOn []string
}

// wantsValue reports whether any validator in the chain consumes the running
// value.
func (f Field) wantsValue() bool {
	for _, v := range f.Validators {
		if v.WantsValue {
			return true
		}
	}
	return false
}

// RunValidators resolves nullability and drives the validator chain for one
// raw input value. path is the field's position in the schema, resolved the
// sibling results gathered so far. The trailing error is non-nil only for
// fatal failures (context required); field-level failures come back as an
// Errors result.
func (f Field) RunValidators(path Path, raw any, ctx any, resolved map[string]Result) (Result, error) {
	if (IsOmitted(raw) || raw == nil) && f.wantsValue() {
		if raw == nil {
			if f.Nullability.AllowNull {
				return Value{V: nil}, nil
			}
			code := CodeNullNotAllowed
			if !f.Nullability.Optional {
				code = CodeRequiredNull
			}
			return Errors{Prefix: path, Errs: []Error{{Code: code, Msg: i18n.T(code, nil)}}}, nil
		}
		if !f.Nullability.Optional {
			return Errors{Prefix: path, Errs: []Error{{Code: CodeRequired, Msg: i18n.T(CodeRequired, nil)}}}, nil
		}
		return Value{V: f.Nullability.OmittedValue}, nil
	}

	running := raw
	for _, v := range f.Validators {
		if v.WantsContext && !v.ContextOptional && IsEmptyContext(ctx) {
			return nil, &ContextRequiredError{Path: path}
		}

		var siblings map[string]any
		if len(v.Uses) > 0 {
			siblings = make(map[string]any, len(v.Uses))
			for _, dep := range v.Uses {
				if r, ok := resolved[dep]; ok {
					if val, ok := r.(Value); ok {
						siblings[dep] = val.V
					}
				}
			}
		}

		out := v.Fn(VCtx{Context: ctx, Value: running, Resolved: siblings})
		switch r := out.(type) {
		case Error:
			return Errors{Prefix: path, Errs: []Error{r}}, nil
		case Errors:
			return Errors{Prefix: path, Errs: r.Flatten()}, nil
		case UnvalidatedWrapped:
			validated := make([]any, 0, len(r.Items))
			var elemErrs []Error
			for i, item := range r.Items {
				res, err := r.Inner.RunValidators(Path{}.Index(i), item, ctx, resolved)
				if err != nil {
					return nil, err
				}
				switch rr := res.(type) {
				case Errors:
					elemErrs = append(elemErrs, rr.Flatten()...)
				case Value:
					validated = append(validated, rr.V)
				}
			}
			if len(elemErrs) > 0 {
				return Errors{Prefix: path, Errs: elemErrs}, nil
			}
			running = r.Construct(validated)
		case Value:
			running = r.V
		case error:
			// fatal: a programmer error surfaced by a validator
			return nil, r
		default:
			running = out
		}
	}
	return Value{V: running}, nil
}
