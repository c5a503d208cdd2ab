package chausie

import (
	"fmt"
	"sort"
)

// selfKey is the synthetic, pre-satisfied result every Clean call seeds, so
// zero-dependency derived fields may declare an unused "self" dependency for
// uniformity.
const selfKey = "self"

// FieldDef pairs a field name with its spec, preserving declaration order.
type FieldDef struct {
	Name  string
	Field Field
}

// SchemaDefinition is an immutable mapping of field name to Field. Build it
// once per schema type and share it freely: Clean never mutates it.
type SchemaDefinition struct {
	fields map[string]Field
	order  []string
}

// NewSchemaDefinition constructs a definition from ordered field defs and
// verifies the dependency graph is acyclic and resolvable. A cyclic or
// dangling dependency fails construction (wrapping
// ErrUnresolvableDependencies), never a later Clean call.
func NewSchemaDefinition(defs []FieldDef) (SchemaDefinition, error) {
	fields := make(map[string]Field, len(defs))
	order := make([]string, 0, len(defs))
	for _, d := range defs {
		if _, dup := fields[d.Name]; dup {
			return SchemaDefinition{}, fmt.Errorf("chausie: duplicate field %q", d.Name)
		}
		fields[d.Name] = d.Field
		order = append(order, d.Name)
	}
	if err := checkDependencyLoops(fields); err != nil {
		return SchemaDefinition{}, err
	}
	return SchemaDefinition{fields: fields, order: order}, nil
}

// MustSchemaDefinition is like NewSchemaDefinition but panics on error. Use
// it for package-level schema construction.
func MustSchemaDefinition(defs []FieldDef) SchemaDefinition {
	sd, err := NewSchemaDefinition(defs)
	if err != nil {
		panic(err)
	}
	return sd
}

// Names returns the field names in declaration order.
func (sd SchemaDefinition) Names() []string {
	return append([]string{}, sd.order...)
}

// Field looks up a field spec by name.
func (sd SchemaDefinition) Field(name string) (Field, bool) {
	f, ok := sd.fields[name]
	return f, ok
}

// checkDependencyLoops catches top-level dependency loops with a repeated
// relaxation pass: keep moving fields whose dependencies are fully seen into
// the seen set; a full pass without progress means a cycle (or a dependency
// on a field that does not exist).
func checkDependencyLoops(fields map[string]Field) error {
	remaining := make(map[string][]string, len(fields))
	for name, f := range fields {
		remaining[name] = f.DependsOn
	}
	seen := map[string]bool{selfKey: true}
	for len(remaining) > 0 {
		progressed := false
		for name, deps := range remaining {
			ok := true
			for _, dep := range deps {
				if !seen[dep] {
					ok = false
					break
				}
			}
			if ok {
				seen[name] = true
				delete(remaining, name)
				progressed = true
			}
		}
		if !progressed {
			stuck := make([]string, 0, len(remaining))
			for name := range remaining {
				stuck = append(stuck, name)
			}
			sort.Strings(stuck)
			return fmt.Errorf("%w: remaining fields %v", ErrUnresolvableDependencies, stuck)
		}
	}
	return nil
}

type pendingField struct {
	name  string
	field Field
}

// Clean evaluates raw input against a schema definition and returns the
// validated record, or a *ValidationError carrying every field-level
// failure. data may be a map[string]any or a struct (see Get). ctx is passed
// through unchanged to validators that declared a context; pass EmptyContext
// when there is none.
//
// Fields evaluate only once all of their dependencies hold a Value; a field
// whose dependency failed is skipped silently and appears in neither the
// record nor the error list. A fatal error (context required) aborts
// immediately and is returned as-is, never aggregated.
func Clean(sd SchemaDefinition, data any, ctx any) (map[string]any, error) {
	results := map[string]Result{selfKey: Value{V: nil}}

	var queue, delayed []pendingField
	for _, name := range sd.order {
		f := sd.fields[name]
		ready := true
		for _, dep := range f.DependsOn {
			if _, ok := results[dep]; !ok {
				ready = false
				break
			}
		}
		if ready {
			queue = append(queue, pendingField{name: name, field: f})
		} else {
			delayed = append(delayed, pendingField{name: name, field: f})
		}
	}

	evalOrder := make([]string, 0, len(sd.order))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		accepts := cur.field.Accepts
		if len(accepts) == 0 {
			accepts = []string{cur.name}
		}
		raw := any(Omitted)
		for _, alias := range accepts {
			if v := Get(data, alias, Omitted); !IsOmitted(v) {
				raw = v
				break
			}
		}

		res, err := cur.field.RunValidators(Path{}.Field(cur.name), raw, ctx, results)
		if err != nil {
			return nil, err
		}
		results[cur.name] = res
		evalOrder = append(evalOrder, cur.name)

		// promote delayed fields whose dependencies now all hold a Value
		if len(delayed) > 0 {
			still := delayed[:0]
			for _, p := range delayed {
				satisfied := true
				for _, dep := range p.field.DependsOn {
					if r, ok := results[dep]; !ok {
						satisfied = false
						break
					} else if _, isValue := r.(Value); !isValue {
						satisfied = false
						break
					}
				}
				if satisfied {
					queue = append(queue, p)
				} else {
					still = append(still, p)
				}
			}
			delayed = still
		}
	}

	var errs []Error
	for _, name := range evalOrder {
		if batch, ok := results[name].(Errors); ok {
			errs = append(errs, batch.Flatten()...)
		}
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	record := make(map[string]any, len(results)-1)
	for name, r := range results {
		if name == selfKey {
			continue
		}
		record[name] = r.(Value).V
	}
	return record, nil
}

// Serialize maps a validated record back to an output mapping, respecting
// each field's SerializeTo and SerializeFunc. Entries whose final value is
// the Omitted sentinel are dropped.
func Serialize(sd SchemaDefinition, record map[string]any) map[string]any {
	out := make(map[string]any, len(sd.order))
	for _, name := range sd.order {
		f := sd.fields[name]
		v, ok := record[name]
		if !ok {
			continue
		}
		if f.SerializeFunc != nil {
			v = f.SerializeFunc(v)
		}
		if IsOmitted(v) {
			continue
		}
		key := name
		if f.SerializeTo != "" {
			key = f.SerializeTo
		}
		out[key] = v
	}
	return out
}
