package records

import "time"

// Option applies a configuration option to the Journal.
type Option func(*Journal)

// WithClock overrides the journal's time source.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		if now != nil {
			j.now = now
		}
	}
}
