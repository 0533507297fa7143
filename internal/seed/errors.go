package seed

import "errors"

// Sentinel kinds for fixture errors.
var (
	ErrNoAthletes       = errors.New("fixtures contain no athletes")
	ErrMissingID        = errors.New("missing id")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrUnknownReference = errors.New("unknown reference")
)
