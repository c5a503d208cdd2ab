package dsl

import chausie "github.com/reoring/chausie"

// Noop passes the running value through unchanged. Useful as the sole
// validator of a field that should accept anything.
func Noop() chausie.Validator {
	return chausie.Validator{
		WantsValue: true,
		Fn:         func(vc chausie.VCtx) any { return vc.Value },
	}
}

// Map lifts a value transform into a validator. fn may return the new value
// or an Error/Errors to fail the field.
func Map(fn func(value any) any) chausie.Validator {
	return chausie.Validator{
		WantsValue: true,
		Fn:         func(vc chausie.VCtx) any { return fn(vc.Value) },
	}
}

// CtxMap lifts a context-aware value transform into a validator. Evaluating
// a schema containing one without supplying a context is a fatal
// ContextRequiredError.
func CtxMap(fn func(value, ctx any) any) chausie.Validator {
	return chausie.Validator{
		WantsValue:   true,
		WantsContext: true,
		Fn:           func(vc chausie.VCtx) any { return fn(vc.Value, vc.Context) },
	}
}

// Derive builds a validator that computes this field from sibling fields
// instead of its own input. The field is not evaluated until every named
// sibling holds a validated value, available via vc.Resolved.
func Derive(fn func(vc chausie.VCtx) any, deps ...string) chausie.Validator {
	return chausie.Validator{
		Uses: deps,
		Fn:   fn,
	}
}

// DeriveCtx is Derive for computations that also need the caller context.
func DeriveCtx(fn func(vc chausie.VCtx) any, deps ...string) chausie.Validator {
	return chausie.Validator{
		Uses:         deps,
		WantsContext: true,
		Fn:           fn,
	}
}

// MapUses builds a validator that consumes the running value and the named
// sibling fields.
func MapUses(fn func(vc chausie.VCtx) any, deps ...string) chausie.Validator {
	return chausie.Validator{
		Uses:       deps,
		WantsValue: true,
		Fn:         fn,
	}
}

// CtxMapUses builds a validator that consumes the running value, the caller
// context, and the named sibling fields.
func CtxMapUses(fn func(vc chausie.VCtx) any, deps ...string) chausie.Validator {
	return chausie.Validator{
		Uses:         deps,
		WantsValue:   true,
		WantsContext: true,
		Fn:           fn,
	}
}
