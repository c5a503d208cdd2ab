package chausie

import "errors"

// ErrReferenceNotFound is the failure a ReferenceSource reports when no
// object exists for a primary key.
var ErrReferenceNotFound = errors.New("chausie: referenced object not found")

// ReferenceSource is the contract ORM adapters expose to reference
// validators. Implementations live outside the core; the engine only ever
// observes their failures as a validator returning an Error.
type ReferenceSource interface {
	// FetchExisting returns the object identified by pk, or an error wrapping
	// ErrReferenceNotFound.
	FetchExisting(pk any) (any, error)

	// OriginalData returns the object's current attributes as a record, for
	// merge-on-update semantics.
	OriginalData(obj any) map[string]any
}
