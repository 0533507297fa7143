// Package records reconciles the two workout sources, immutable seed
// records and locally appended submissions, into one effective list per
// athlete.
package records

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	store "github.com/okian/varsity/internal/adapters/store"
	"github.com/okian/varsity/internal/domain/model"
)

// loggedKeyPurpose scopes each athlete's logged-workout list in the store.
const loggedKeyPurpose = "logged_workouts"

// Draft is a workout submission before a record is constructed. An
// invalid draft never becomes a Workout.
type Draft struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (d Draft) validate() error {
	if strings.TrimSpace(d.Type) == "" {
		return fmt.Errorf("%w: missing type", ErrInvalidWorkout)
	}
	if d.DurationMinutes < 1 {
		return fmt.Errorf("%w: duration must be at least one minute", ErrInvalidWorkout)
	}
	return nil
}

// Journal appends new workout submissions and produces the effective,
// read-ordered list for an athlete. Logged workouts are persisted
// per athlete, newest-first, and are append-only: no deletion or edit
// operation exists.
type Journal struct {
	store *store.Store
	now   func() time.Time

	// id minting state: time-based ids must stay unique within a
	// session even when two appends land on the same millisecond.
	mu        sync.Mutex
	lastStamp int64
}

// NewJournal creates a Journal over the given store.
func NewJournal(st *store.Store, opts ...Option) *Journal {
	j := &Journal{
		store: st,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Append validates the draft, constructs a new unverified workout with a
// fresh time-based id and today's date, inserts it at the head of the
// athlete's logged list, and persists the updated list immediately.
func (j *Journal) Append(ctx context.Context, athleteID string, d Draft) (model.Workout, error) {
	if err := d.validate(); err != nil {
		return model.Workout{}, err
	}

	now := j.now()
	w := model.Workout{
		ID:              j.mintID(now),
		Date:            now.Format(model.DateLayout),
		Type:            strings.TrimSpace(d.Type),
		DurationMinutes: d.DurationMinutes,
		Verified:        false,
	}

	key := store.Key(loggedKeyPurpose, athleteID)
	logged := store.Get(ctx, j.store, key, []model.Workout(nil))
	logged = append([]model.Workout{w}, logged...)
	store.Set(ctx, j.store, key, logged)

	return w, nil
}

// Logged returns the athlete's runtime-submitted workouts, newest-first.
func (j *Journal) Logged(ctx context.Context, athleteID string) []model.Workout {
	return store.Get(ctx, j.store, store.Key(loggedKeyPurpose, athleteID), []model.Workout(nil))
}

// Effective returns logged ++ seed, logged-first. No chronological
// re-sort is performed: newest submissions always float to the top
// regardless of their date. That ordering is policy, not an accident.
func (j *Journal) Effective(ctx context.Context, athlete model.Athlete) []model.Workout {
	logged := j.Logged(ctx, athlete.ID)

	effective := make([]model.Workout, 0, len(logged)+len(athlete.Workouts))
	effective = append(effective, logged...)
	effective = append(effective, athlete.Workouts...)
	return effective
}

// mintID issues a time-based workout id unique within the session. A
// collision on the same millisecond bumps the stamp forward.
func (j *Journal) mintID(now time.Time) string {
	j.mu.Lock()
	defer j.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= j.lastStamp {
		ms = j.lastStamp + 1
	}
	j.lastStamp = ms
	return fmt.Sprintf("w%d", ms)
}
