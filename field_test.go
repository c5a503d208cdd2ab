package chausie_test

import (
	"errors"
	"strings"
	"testing"

	chausie "github.com/reoring/chausie"
	"github.com/reoring/chausie/dsl"
)

func runField(t *testing.T, f chausie.Field, raw any) (chausie.Result, error) {
	t.Helper()
	return f.RunValidators(chausie.Path{}.Field("x"), raw, chausie.EmptyContext, nil)
}

func TestRunValidators_ChainOrder(t *testing.T) {
	f := dsl.Field(
		dsl.Map(func(value any) any { return value.(string) + "b" }),
		dsl.Map(func(value any) any { return value.(string) + "c" }),
	).Build()
	res, err := runField(t, f, "a")
	if err != nil {
		t.Fatalf("unexpected fatal %v", err)
	}
	v, ok := res.(chausie.Value)
	if !ok || v.V != "abc" {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestRunValidators_StopsOnFirstError(t *testing.T) {
	reached := false
	f := dsl.Field(
		dsl.Map(func(value any) any {
			return chausie.Error{Code: chausie.CodeCustom, Msg: "boom"}
		}),
		dsl.Map(func(value any) any {
			reached = true
			return value
		}),
	).Build()
	res, err := runField(t, f, "a")
	if err != nil {
		t.Fatalf("unexpected fatal %v", err)
	}
	batch, ok := res.(chausie.Errors)
	if !ok || len(batch.Errs) != 1 || batch.Errs[0].Msg != "boom" {
		t.Fatalf("unexpected result %#v", res)
	}
	if reached {
		t.Fatalf("chain must stop at the first error")
	}
	if got := batch.Flatten()[0].Path.Pointer(); got != "/x" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestRunValidators_ValueResultUnwraps(t *testing.T) {
	f := dsl.Field(
		dsl.Map(func(value any) any { return chausie.Value{V: 42} }),
		dsl.Map(func(value any) any { return value.(int) + 1 }),
	).Build()
	res, err := runField(t, f, "ignored")
	if err != nil {
		t.Fatalf("unexpected fatal %v", err)
	}
	if v := res.(chausie.Value); v.V != 43 {
		t.Fatalf("unexpected value %#v", v.V)
	}
}

func TestRunValidators_PlainErrorIsFatal(t *testing.T) {
	sentinel := errors.New("programmer mistake")
	f := dsl.Field(dsl.Map(func(value any) any { return sentinel })).Build()
	_, err := runField(t, f, "a")
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected fatal passthrough, got %v", err)
	}
}

func TestRunValidators_NullabilityMatrix(t *testing.T) {
	cases := []struct {
		name    string
		n       chausie.Nullability
		raw     any
		wantMsg string // empty means a Value result
		wantVal any
	}{
		{"required omitted", chausie.Required(), chausie.Omitted, "Value is required.", nil},
		{"required null", chausie.Required(), nil, "Value is required, and must not be null.", nil},
		{"optional omitted", chausie.Optional(), chausie.Omitted, "", chausie.Omitted},
		{"optional null", chausie.Optional(), nil, "", nil},
		{"optional default", chausie.OptionalValue("dflt"), chausie.Omitted, "", "dflt"},
		{"non-null optional null", chausie.Nullability{Optional: true}, nil, "Value must not be null.", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := dsl.Field(dsl.Noop()).Nullability(tc.n).Build()
			res, err := runField(t, f, tc.raw)
			if err != nil {
				t.Fatalf("unexpected fatal %v", err)
			}
			if tc.wantMsg != "" {
				batch, ok := res.(chausie.Errors)
				if !ok || len(batch.Errs) != 1 || batch.Errs[0].Msg != tc.wantMsg {
					t.Fatalf("unexpected result %#v", res)
				}
				return
			}
			v, ok := res.(chausie.Value)
			if !ok || v.V != tc.wantVal {
				t.Fatalf("unexpected result %#v", res)
			}
		})
	}
}

func TestRunValidators_NullabilitySkippedWithoutValueConsumer(t *testing.T) {
	// a pure derivation never looks at its own input, so omitted input must
	// not trigger the required check
	f := dsl.Field(dsl.Derive(func(vc chausie.VCtx) any { return "derived" }, "self")).Build()
	res, err := f.RunValidators(chausie.Path{}.Field("x"), chausie.Omitted, chausie.EmptyContext,
		map[string]chausie.Result{"self": chausie.Value{V: nil}})
	if err != nil {
		t.Fatalf("unexpected fatal %v", err)
	}
	if v := res.(chausie.Value); v.V != "derived" {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestRunValidators_SiblingInjection(t *testing.T) {
	f := dsl.Field(dsl.Derive(func(vc chausie.VCtx) any {
		if _, leaked := vc.Resolved["bad"]; leaked {
			return chausie.Error{Code: chausie.CodeCustom, Msg: "failed sibling leaked"}
		}
		return vc.Resolved["good"].(string) + "!"
	}, "good", "bad")).Build()

	resolved := map[string]chausie.Result{
		"good": chausie.Value{V: "ok"},
		"bad":  chausie.Errors{Errs: []chausie.Error{{Code: chausie.CodeCustom}}},
	}
	res, err := f.RunValidators(chausie.Path{}.Field("x"), chausie.Omitted, chausie.EmptyContext, resolved)
	if err != nil {
		t.Fatalf("unexpected fatal %v", err)
	}
	v, ok := res.(chausie.Value)
	if !ok {
		t.Fatalf("unexpected result %#v", res)
	}
	if v.V != "ok!" {
		t.Fatalf("unexpected value %#v", v.V)
	}
}

func TestRunValidators_ContextOptional(t *testing.T) {
	f := dsl.Field(chausie.Validator{
		WantsValue:      true,
		WantsContext:    true,
		ContextOptional: true,
		Fn: func(vc chausie.VCtx) any {
			if chausie.IsEmptyContext(vc.Context) {
				return "no-ctx"
			}
			return "ctx"
		},
	}).Build()
	res, err := runField(t, f, "a")
	if err != nil {
		t.Fatalf("unexpected fatal %v", err)
	}
	if v := res.(chausie.Value); v.V != "no-ctx" {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestContextRequiredError_Message(t *testing.T) {
	err := &chausie.ContextRequiredError{Path: chausie.Path{}.Field("organization")}
	if !strings.Contains(err.Error(), "/organization") {
		t.Fatalf("message should carry the path, got %q", err.Error())
	}
}

func TestFieldBuilder_ParentAndThen(t *testing.T) {
	base := dsl.Field(dsl.Map(func(value any) any {
		return strings.ToLower(value.(string))
	})).Build()

	f := dsl.Field(dsl.Map(func(value any) any {
		return strings.TrimSpace(value.(string))
	})).Parent(base).Then(dsl.Map(func(value any) any {
		return value.(string) + "."
	})).Build()

	res, err := runField(t, f, "  HELLO ")
	if err != nil {
		t.Fatalf("unexpected fatal %v", err)
	}
	if v := res.(chausie.Value); v.V != "hello." {
		t.Fatalf("unexpected value %#v", v.V)
	}
}
