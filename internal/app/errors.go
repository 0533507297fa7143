package service

import (
	"errors"
)

// Sentinel errors returned by service operations. The HTTP layer maps
// these onto status codes with errors.Is.
var (
	ErrNotStarted       = errors.New("service not started")
	ErrUnknownAthlete   = errors.New("unknown athlete")
	ErrUnknownTrainer   = errors.New("unknown trainer")
	ErrUnknownRecruiter = errors.New("unknown recruiter")
	ErrUnknownWorkout   = errors.New("unknown workout")
	ErrUnknownRole      = errors.New("unknown role")
)
