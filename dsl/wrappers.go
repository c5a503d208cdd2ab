package dsl

import (
	"errors"
	"reflect"

	chausie "github.com/reoring/chausie"
	"github.com/reoring/chausie/i18n"
)

// List validates that the value is list-like and has every element pass
// inner's full validator chain (including its nullability). Element errors
// are collected under the element's index, not short-circuited; on success
// the running value becomes an ordered []any of the validated elements.
func List(inner chausie.Field) chausie.Validator {
	return Map(func(value any) any {
		items, ok := normalizeSlice(value)
		if !ok {
			return chausie.Error{Code: chausie.CodeInvalidType, Msg: i18n.T(chausie.CodeInvalidType, nil)}
		}
		return chausie.UnvalidatedWrapped{
			Items:     items,
			Inner:     inner,
			Construct: func(validated []any) any { return validated },
		}
	})
}

// normalizeSlice converts any slice or array into []any.
func normalizeSlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// Nested delegates to an inner schema definition's Clean, forwarding the
// caller context when one was supplied. The inner validated record becomes
// the field's value; inner failures flatten under this field's path.
func Nested(sd chausie.SchemaDefinition) chausie.Validator {
	return chausie.Validator{
		WantsValue:      true,
		WantsContext:    true,
		ContextOptional: true,
		Fn: func(vc chausie.VCtx) any {
			record, err := chausie.Clean(sd, vc.Value, vc.Context)
			if err != nil {
				if ve, ok := chausie.AsValidationError(err); ok {
					return chausie.Errors{Errs: ve.Errors}
				}
				// fatal (context required inside the nested schema)
				return err
			}
			return record
		},
	}
}

// EnumFunc validates by attempting to construct the enum type from the raw
// value; any construction failure becomes a single invalid-enum Error.
func EnumFunc[E any](construct func(raw any) (E, error)) chausie.Validator {
	return Map(func(value any) any {
		e, err := construct(value)
		if err != nil {
			return chausie.Error{Code: chausie.CodeInvalidEnum, Msg: i18n.T(chausie.CodeInvalidEnum, nil)}
		}
		return e
	})
}

var errNotAMember = errors.New("not a member of the enum")

// Enum validates a string-kinded enum against its allowed members.
func Enum[E ~string](allowed ...E) chausie.Validator {
	return EnumFunc(func(raw any) (E, error) {
		var s string
		switch v := raw.(type) {
		case string:
			s = v
		case E:
			s = string(v)
		default:
			var zero E
			return zero, errNotAMember
		}
		for _, a := range allowed {
			if string(a) == s {
				return a, nil
			}
		}
		var zero E
		return zero, errNotAMember
	})
}

// Reference adapts a fetch function into a context-using validator that
// resolves the running value as a primary key. A not-found failure becomes a
// field Error; any other lookup failure is reported as a custom field Error
// rather than aborting the schema.
func Reference(fetch func(ctx any, pk any) (any, error)) chausie.Validator {
	return CtxMap(func(value, ctx any) any {
		obj, err := fetch(ctx, value)
		if err != nil {
			if errors.Is(err, chausie.ErrReferenceNotFound) {
				return chausie.Error{Code: chausie.CodeNotFound, Msg: i18n.T(chausie.CodeNotFound, nil)}
			}
			return chausie.Error{Code: chausie.CodeCustom, Msg: err.Error()}
		}
		return obj
	})
}
