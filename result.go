package chausie

// Result is the outcome of evaluating one field: either a Value or an
// Errors batch. It is a sealed sum; no other implementations exist.
type Result interface {
	isResult()
}

// Value wraps a successfully computed field value. V may hold the Omitted
// sentinel for absent-but-optional fields.
type Value struct {
	V any
}

func (Value) isResult() {}

// Errors is a batch of field errors sharing a path prefix, used for list
// elements and nested schemas.
type Errors struct {
	Prefix Path
	Errs   []Error
}

func (Errors) isResult() {}

// Flatten path-qualifies every entry with the batch prefix.
func (e Errors) Flatten() []Error {
	out := make([]Error, 0, len(e.Errs))
	for _, err := range e.Errs {
		out = append(out, err.withPrefix(e.Prefix))
	}
	return out
}

// UnvalidatedWrapped is the intermediate a composite validator (for example
// a list) returns: the raw elements, the inner Field each element must pass,
// and a reconstruction function the engine calls with the validated elements
// before the outer chain continues.
type UnvalidatedWrapped struct {
	Items     []any
	Inner     Field
	Construct func(validated []any) any
}
