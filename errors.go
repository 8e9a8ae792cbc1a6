package pyg

import "errors"

// Scene graph errors. All operation failures unwrap to one of these
// sentinels; match with errors.Is.
var (
	// ErrDuplicateID is returned when a caller-supplied id is already held
	// by a live object or component in the scene's registry.
	ErrDuplicateID = errors.New("id already in use")

	// ErrInvalidHierarchy is returned for self-parenting or any reparent
	// that would introduce a cycle.
	ErrInvalidHierarchy = errors.New("invalid hierarchy")

	// ErrUseAfterDestroy is returned when an operation is invoked on an
	// object whose destruction has completed.
	ErrUseAfterDestroy = errors.New("object has been destroyed")

	// ErrTypeMismatch is returned when a property is set with a value whose
	// type tag disagrees with the property's declared type.
	ErrTypeMismatch = errors.New("property type mismatch")

	// ErrNotFound is returned by lookups that found no match where the
	// caller expected one.
	ErrNotFound = errors.New("not found")
)
