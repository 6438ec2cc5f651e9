package schema

import "errors"

// === Registry errors ===
var (
	// ErrIDConflict is returned by Map.Register when an $id is already bound
	// to a different root schema.
	ErrIDConflict = errors.New("schema id already registered to a different root")

	// ErrIDEmpty is returned by Map.Register when called with an empty id.
	ErrIDEmpty = errors.New("schema id must not be empty")
)

// === Validation entry errors ===
var (
	// ErrNilDocument describes a nil document. Validate does not return
	// it; it reports a nil document by returning false.
	ErrNilDocument = errors.New("document is nil")

	// ErrNilSchema describes a nil schema. Validate does not return it;
	// it reports a nil schema by returning false.
	ErrNilSchema = errors.New("schema is nil")

	// ErrSchemaNotObject describes a schema root that is not an Object.
	// Validate does not return it; it reports such a root by returning
	// false.
	ErrSchemaNotObject = errors.New("schema root must be an object")
)
