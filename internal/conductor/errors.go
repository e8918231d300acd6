package conductor

import "errors"

var (
	// ErrInvalidConductor is returned when conductor constants violate an invariant.
	ErrInvalidConductor = errors.New("invalid conductor")

	// ErrUnknownConductor is returned when a conductor name is not in the catalog.
	ErrUnknownConductor = errors.New("unknown conductor")
)
