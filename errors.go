package neopop

import "errors"

// Errors returned when decoding configuration values.
var (
	// ErrUnknownDirection is returned for a direction name that is not recognised.
	ErrUnknownDirection = errors.New("neopop: unknown edge direction")

	// ErrInvalidInclination is returned for a negative or non-finite
	// inclination, or an inclination given for a corner direction.
	ErrInvalidInclination = errors.New("neopop: invalid inclination")

	// ErrUnknownPosition is returned for a position name that is not recognised.
	ErrUnknownPosition = errors.New("neopop: unknown position")

	// ErrUnknownShimmer is returned for a shimmer kind that is not recognised.
	ErrUnknownShimmer = errors.New("neopop: unknown shimmer kind")
)
