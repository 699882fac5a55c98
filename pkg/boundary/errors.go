package boundary

import "errors"

var (
	// ErrMissingField indicates a required wire-format field was absent.
	// Geometric fields are never silently defaulted.
	ErrMissingField = errors.New("boundary: missing required field")

	// ErrBadVector indicates a vector-valued wire field did not have
	// exactly three components.
	ErrBadVector = errors.New("boundary: vector field must have three components")

	// ErrUnknownKind indicates an unrecognized condition discriminant.
	ErrUnknownKind = errors.New("boundary: unknown condition kind")

	// ErrNotSerializable indicates a condition variant with no wire
	// representation (the implicit Free condition).
	ErrNotSerializable = errors.New("boundary: condition has no wire representation")
)
