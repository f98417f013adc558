package model

import "errors"

// Sentinel kinds shared by every domain package. Callers match with errors.Is.
var (
	// ErrInvalidArgument marks an unrecognized selector (fault kind, flow law,
	// borehole, piezometer relation, triple-point variant) or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomainPrecondition marks input outside the mathematical domain of a
	// formula, e.g. a non-positive absolute temperature.
	ErrDomainPrecondition = errors.New("domain precondition violated")
)
