package dsl

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	chausie "github.com/reoring/chausie"
	"github.com/reoring/chausie/i18n"
)

// String validates that the value is a string.
func String() chausie.Validator {
	return Map(func(value any) any {
		if s, ok := value.(string); ok {
			return s
		}
		return chausie.Error{Code: chausie.CodeInvalidType, Msg: i18n.T(chausie.CodeInvalidType, nil)}
	})
}

// Int coerces the value to an int64. Integer kinds pass through; strings and
// JSON numbers are parsed.
func Int() chausie.Validator {
	return Map(func(value any) any {
		switch n := value.(type) {
		case int:
			return int64(n)
		case int8:
			return int64(n)
		case int16:
			return int64(n)
		case int32:
			return int64(n)
		case int64:
			return n
		case uint:
			return int64(n)
		case uint8:
			return int64(n)
		case uint16:
			return int64(n)
		case uint32:
			return int64(n)
		case uint64:
			return int64(n)
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return chausie.Error{Code: chausie.CodeIntParse, Msg: i18n.T(chausie.CodeIntParse, nil)}
			}
			return i
		case string:
			i, err := strconv.ParseInt(n, 10, 64)
			if err != nil {
				return chausie.Error{Code: chausie.CodeIntParse, Msg: i18n.T(chausie.CodeIntParse, nil)}
			}
			return i
		}
		return chausie.Error{Code: chausie.CodeCoerce, Msg: i18n.T(chausie.CodeCoerce, nil)}
	})
}

// Float coerces the value to a float64.
func Float() chausie.Validator {
	return Map(func(value any) any {
		switch n := value.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return chausie.Error{Code: chausie.CodeFloatParse, Msg: i18n.T(chausie.CodeFloatParse, nil)}
			}
			return f
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return chausie.Error{Code: chausie.CodeFloatParse, Msg: i18n.T(chausie.CodeFloatParse, nil)}
			}
			return f
		}
		return chausie.Error{Code: chausie.CodeCoerce, Msg: i18n.T(chausie.CodeCoerce, nil)}
	})
}

// Bool validates that the value is a bool. No coercion.
func Bool() chausie.Validator {
	return Map(func(value any) any {
		if b, ok := value.(bool); ok {
			return b
		}
		return chausie.Error{Code: chausie.CodeNotBoolean, Msg: i18n.T(chausie.CodeNotBoolean, nil)}
	})
}

// datetime layouts tried in order. RFC 3339 first; the rest cover common
// date-only and space-separated inputs.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateTime parses a string into a time.Time, trying RFC 3339 first.
func DateTime() chausie.Validator {
	return Map(func(value any) any {
		s, ok := value.(string)
		if !ok {
			return chausie.Error{Code: chausie.CodeInvalidType, Msg: i18n.T(chausie.CodeInvalidType, nil)}
		}
		for _, layout := range datetimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return chausie.Error{Code: chausie.CodeDatetimeParse, Msg: i18n.T(chausie.CodeDatetimeParse, nil)}
	})
}

// Regex validates a string against pattern, anchored at the start. The
// pattern is compiled at definition time; an invalid pattern panics.
func Regex(pattern string) chausie.Validator {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	return Map(func(value any) any {
		s, ok := value.(string)
		if !ok {
			return chausie.Error{Code: chausie.CodeInvalidType, Msg: i18n.T(chausie.CodeInvalidType, nil)}
		}
		if !re.MatchString(s) {
			return chausie.Error{Code: chausie.CodePattern, Msg: i18n.T(chausie.CodePattern, nil)}
		}
		return s
	})
}

// urlOptions configures URL validation.
type urlOptions struct {
	requireTLD    bool
	defaultScheme string
	allowed       []string
	disallowed    []string
}

// URLOption customizes the URL validator.
type URLOption func(*urlOptions)

// URLDefaultScheme prepends scheme to inputs that carry none instead of
// rejecting them.
func URLDefaultScheme(scheme string) URLOption {
	return func(o *urlOptions) { o.defaultScheme = normalizeScheme(scheme) }
}

// URLAllowSchemes restricts accepted URLs to the given schemes.
func URLAllowSchemes(schemes ...string) URLOption {
	return func(o *urlOptions) { o.allowed = schemes }
}

// URLDisallowSchemes rejects URLs using any of the given schemes.
func URLDisallowSchemes(schemes ...string) URLOption {
	return func(o *urlOptions) { o.disallowed = schemes }
}

// URLNoTLD accepts hostnames without a top-level domain.
func URLNoTLD() URLOption {
	return func(o *urlOptions) { o.requireTLD = false }
}

func normalizeScheme(sch string) string {
	if strings.HasSuffix(sch, "://") || strings.HasSuffix(sch, ":") {
		return sch
	}
	return sch + "://"
}

// ff01-ff5f are full-width characters, not allowed.
const urlAlphaNumericAndSymbols = `0-9a-z\x{00a1}-\x{ff00}\x{ff5f}-\x{ffff}`

var urlSchemeRe = regexp.MustCompile(`(?i)^[a-z]+://`)

// URL validates http-style URLs: scheme, FQDN or IPv4 host, optional port,
// optional path/query. By default a scheme and a TLD are required.
func URL(opts ...URLOption) chausie.Validator {
	o := urlOptions{requireTLD: true}
	for _, opt := range opts {
		opt(&o)
	}

	tldPart := ""
	if o.requireTLD {
		tldPart = `\.[` + urlAlphaNumericAndSymbols + `-]{2,63}`
	}
	schemePart := `[a-z]+://`
	if o.defaultScheme != "" {
		schemePart = `(?:` + schemePart + `)?`
	}
	re := regexp.MustCompile(
		`(?i)^` + schemePart +
			`(?:[-` + urlAlphaNumericAndSymbols + `@:%_+.~#?&/\\=]{1,256}` + tldPart +
			`|(?:[0-9]{1,3}\.){3}[0-9]{1,3})(?::[0-9]+)?(?:[/?].*)?$`,
	)

	hasScheme := func(s, scheme string) bool {
		return len(s) >= len(scheme) && strings.EqualFold(s[:len(scheme)], scheme)
	}

	return Map(func(value any) any {
		s, ok := value.(string)
		if !ok {
			return chausie.Error{Code: chausie.CodeInvalidType, Msg: i18n.T(chausie.CodeInvalidType, nil)}
		}
		if !re.MatchString(s) {
			return chausie.Error{Code: chausie.CodePattern, Msg: i18n.T(chausie.CodePattern, nil)}
		}
		if !urlSchemeRe.MatchString(s) {
			s = o.defaultScheme + s
		}
		if len(o.allowed) > 0 {
			match := false
			for _, sch := range o.allowed {
				if hasScheme(s, normalizeScheme(sch)) {
					match = true
					break
				}
			}
			if !match {
				return chausie.Error{
					Code: chausie.CodeSchemeNotAllowed,
					Msg: fmt.Sprintf(
						"This URL uses a scheme that's not allowed. You can only use %s.",
						strings.Join(o.allowed, " or "),
					),
				}
			}
		}
		for _, sch := range o.disallowed {
			if hasScheme(s, normalizeScheme(sch)) {
				return chausie.Error{
					Code: chausie.CodeSchemeNotAllowed,
					Msg:  "This URL uses a scheme that's not allowed.",
				}
			}
		}
		return s
	})
}

var emailRe = regexp.MustCompile(`(?i)^[^.@\s][^@\s]*@[^.@\s][^@\s]*\.[a-z]{2,63}$`)

// Email validates an email address: leading/trailing whitespace is trimmed
// before validation, the default maximum length is 254, and the local and
// domain parts must be structurally sound (no leading, trailing, or
// consecutive dots).
func Email(maxLength ...int) chausie.Validator {
	limit := 254
	if len(maxLength) > 0 {
		limit = maxLength[0]
	}
	return Map(func(value any) any {
		s, ok := value.(string)
		if !ok {
			return chausie.Error{Code: chausie.CodeInvalidType, Msg: i18n.T(chausie.CodeInvalidType, nil)}
		}
		s = strings.TrimSpace(s)
		if len(s) > limit {
			return chausie.Error{
				Code: chausie.CodeTooLong,
				Msg:  fmt.Sprintf("Email exceeds max length of %d", limit),
			}
		}
		at := strings.LastIndexByte(s, '@')
		if !emailRe.MatchString(s) ||
			strings.Contains(s, "..") ||
			strings.Count(s, "@") != 1 ||
			strings.HasSuffix(s[:at], ".") {
			return chausie.Error{Code: chausie.CodePattern, Msg: i18n.T(chausie.CodePattern, nil)}
		}
		return s
	})
}
