// Package middleware validates JSON request bodies at the HTTP boundary and
// hands the validated record to the next handler through the request context.
package middleware

import (
	"context"
	"io"
	"net/http"

	chausie "github.com/reoring/chausie"
	chjson "github.com/reoring/chausie/source/json"
)

// ctxKeyRecord is the typed context key the validated record is stored under.
type ctxKeyRecord struct{}

// ContextWithRecord attaches a validated record to the context.
func ContextWithRecord(ctx context.Context, record map[string]any) context.Context {
	return context.WithValue(ctx, ctxKeyRecord{}, record)
}

// RecordFromContext retrieves the validated record stored by ValidateJSON.
func RecordFromContext(ctx context.Context) (map[string]any, bool) {
	record, ok := ctx.Value(ctxKeyRecord{}).(map[string]any)
	return record, ok
}

// ValidateJSON decodes the request body as JSON and evaluates it against sd.
// On success the validated record is stored in the request context; field
// failures produce a 400 response carrying the serialized error shape. The
// validation context passed to Clean is the request's context.Context, so
// reference validators can reach request-scoped stores through it.
func ValidateJSON(sd chausie.SchemaDefinition, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "could not read request body", http.StatusBadRequest)
			return
		}
		record, err := chjson.Clean(sd, body, r.Context())
		if err != nil {
			if ve, ok := chausie.AsValidationError(err); ok {
				writeError(w, ve)
				return
			}
			// fatal: schema/caller mismatch, not client input
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithRecord(r.Context(), record)))
	})
}

func writeError(w http.ResponseWriter, ve *chausie.ValidationError) {
	payload, err := chjson.MarshalError(ve)
	if err != nil {
		http.Error(w, "could not encode error response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(payload)
}
