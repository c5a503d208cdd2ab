package chausie

import (
	"strconv"
	"strings"
)

// Path locates a value inside the input being cleaned. Segments are field
// names (string) or list indexes (int), outermost first. The zero value is
// the root path.
type Path []any

// Field returns a new Path extended with a field-name segment.
func (p Path) Field(name string) Path {
	return append(append(Path{}, p...), name)
}

// Index returns a new Path extended with a list-index segment.
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), i)
}

// Join returns a new Path with all of child's segments appended.
func (p Path) Join(child Path) Path {
	return append(append(Path{}, p...), child...)
}

// Segments exposes the raw segment slice for serialization.
func (p Path) Segments() []any {
	return append([]any{}, p...)
}

// Pointer renders the path as an RFC 6901 JSON Pointer, for example
// /items/2/price. The root path renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		switch s := seg.(type) {
		case string:
			// escape '~' -> '~0', '/' -> '~1' per RFC 6901
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1"))
		case int:
			b.WriteString(strconv.Itoa(s))
		default:
			b.WriteString("?")
		}
	}
	return b.String()
}
