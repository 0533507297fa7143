package records

import "errors"

// Sentinel kinds for record errors.
var (
	ErrInvalidWorkout = errors.New("invalid workout submission")
)
