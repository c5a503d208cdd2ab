package codec

import (
	"time"

	"github.com/reoring/chausie/dsl"
)

// TimeRFC3339 decodes RFC 3339 strings into time.Time and serializes back to
// the canonical form: UTC, RFC3339Nano with trailing zeros trimmed.
func TimeRFC3339() Codec {
	return Codec{
		Validator: dsl.DateTime(),
		Serialize: func(v any) any {
			t, ok := v.(time.Time)
			if !ok {
				return v
			}
			return t.UTC().Format(time.RFC3339Nano)
		},
	}
}
