package seating

import "errors"

var (
	// ErrInvalidCapacity is returned when the configured table capacity is not a positive integer.
	ErrInvalidCapacity = errors.New("table capacity must be a positive integer")
	// ErrUnknownOrderPolicy is returned when a category ordering policy string is not recognised.
	ErrUnknownOrderPolicy = errors.New(`category order must be "first-seen" or "largest-first"`)
)
