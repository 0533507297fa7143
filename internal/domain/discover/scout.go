package discover

import (
	"context"

	store "github.com/okian/varsity/internal/adapters/store"
	"github.com/okian/varsity/internal/domain/model"
)

// Store key purposes for recruiter-scoped state.
const (
	watchlistKeyPurpose = "watchlist"
	notesKeyPurpose     = "notes"
)

// Scout holds one recruiter's watchlist and scouting notes, persisted
// under the recruiter's scope.
type Scout struct {
	store     *store.Store
	recruiter model.Recruiter
}

// NewScout creates the scout state accessor for a recruiter.
func NewScout(st *store.Store, recruiter model.Recruiter) *Scout {
	return &Scout{store: st, recruiter: recruiter}
}

func (s *Scout) watchKey() string {
	return store.Key(watchlistKeyPurpose, s.recruiter.ID)
}

func (s *Scout) notesKey() string {
	return store.Key(notesKeyPurpose, s.recruiter.ID)
}

// Watchlist returns the recruiter's watched athlete ids. A recruiter
// whose watchlist was never stored gets the seed default; an explicitly
// emptied watchlist stays empty. The presence check, not the value,
// makes that distinction.
func (s *Scout) Watchlist(ctx context.Context) []string {
	if !store.Exists(ctx, s.store, s.watchKey()) {
		defaults := make([]string, len(s.recruiter.DefaultWatchlist))
		copy(defaults, s.recruiter.DefaultWatchlist)
		return defaults
	}
	return store.Get(ctx, s.store, s.watchKey(), []string{})
}

// Watching reports whether the athlete is on the watchlist.
func (s *Scout) Watching(ctx context.Context, athleteID string) bool {
	for _, id := range s.Watchlist(ctx) {
		if id == athleteID {
			return true
		}
	}
	return false
}

// Toggle flips the athlete's membership on the watchlist, a symmetric
// difference on a single id, and persists immediately. It returns
// whether the athlete is watched after the toggle.
func (s *Scout) Toggle(ctx context.Context, athleteID string) bool {
	current := s.Watchlist(ctx)

	next := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == athleteID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, athleteID)
	}

	store.Set(ctx, s.store, s.watchKey(), next)
	return !removed
}

// SetNote stores free-text scouting notes for an athlete.
func (s *Scout) SetNote(ctx context.Context, athleteID, text string) {
	notes := s.Notes(ctx)
	if notes == nil {
		notes = make(map[string]string, 1)
	}
	notes[athleteID] = text
	store.Set(ctx, s.store, s.notesKey(), notes)
}

// Note returns the stored note for an athlete, empty when none exists.
func (s *Scout) Note(ctx context.Context, athleteID string) string {
	return s.Notes(ctx)[athleteID]
}

// Notes returns all notes keyed by athlete id.
func (s *Scout) Notes(ctx context.Context) map[string]string {
	return store.Get(ctx, s.store, s.notesKey(), map[string]string(nil))
}
