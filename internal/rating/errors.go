package rating

import "errors"

var (
	// ErrUnknownStandard is returned for a standard key or value that is not supported.
	ErrUnknownStandard = errors.New("unknown rating standard")

	// ErrShapeMismatch is returned when batch inputs cannot be broadcast to a common length.
	ErrShapeMismatch = errors.New("batch inputs have incompatible lengths")
)
