package chausie

import (
	"reflect"
	"strings"
)

// Get retrieves key from a dict-like or attribute-like source, falling back
// to def when absent. Maps are looked up directly; structs (and pointers to
// structs) resolve field keys via ResolveStructKey.
func Get(src any, key string, def any) any {
	switch m := src.(type) {
	case map[string]any:
		if v, ok := m[key]; ok {
			return v
		}
		return def
	}

	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return def
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		mv := rv.MapIndex(reflect.ValueOf(key))
		if mv.IsValid() {
			return mv.Interface()
		}
		return def
	}
	if rv.Kind() != reflect.Struct {
		return def
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if ResolveStructKey(sf) == key {
			return rv.Field(i).Interface()
		}
	}
	return def
}

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key used by the evaluator and serializer.
// Priority: chausie:"name=..." > json tag name > field name; "-" disables
// the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ct := sf.Tag.Get("chausie"); ct != "" {
		for _, p := range strings.Split(ct, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
