package chausie

// OmittedValue is the sentinel type for values absent from the input. It is
// distinct from nil: nil means an explicit null was supplied, Omitted means
// the key was never present.
type OmittedValue struct{}

func (OmittedValue) String() string { return "omitted" }

// Omitted is the singleton omitted sentinel.
var Omitted = OmittedValue{}

// IsOmitted reports whether v is the omitted sentinel.
func IsOmitted(v any) bool {
	_, ok := v.(OmittedValue)
	return ok
}

// EmptyContextValue is the sentinel type for "no context supplied". It is
// distinct from a nil context, which a caller may pass deliberately.
type EmptyContextValue struct{}

func (EmptyContextValue) String() string { return "empty" }

// EmptyContext is the singleton empty-context sentinel.
var EmptyContext = EmptyContextValue{}

// IsEmptyContext reports whether ctx is the empty-context sentinel.
func IsEmptyContext(ctx any) bool {
	_, ok := ctx.(EmptyContextValue)
	return ok
}
