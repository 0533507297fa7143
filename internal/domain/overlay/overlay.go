// Package overlay tracks trainer review decisions as a layer over the
// workout records. Decisions never mutate the records themselves; a
// workout's own verified flag and the overlay are independent and may
// disagree.
package overlay

import (
	"context"
	"sort"
	"sync"

	store "github.com/okian/varsity/internal/adapters/store"
	"github.com/okian/varsity/internal/domain/model"
)

// reviewKeyPurpose scopes each trainer's decision map in the store.
const reviewKeyPurpose = "review"

// Decision is the review state of a workout id. Pending is implicit:
// any id absent from the board. Verified and Flagged are terminal;
// there is no transition out of either, and none between them.
type Decision int

const (
	Pending Decision = iota
	Verified
	Flagged
)

// String returns the wire name of the decision.
func (d Decision) String() string {
	switch d {
	case Verified:
		return "verified"
	case Flagged:
		return "flagged"
	default:
		return "pending"
	}
}

// Terminal reports whether the state admits no further transitions.
func (d Decision) Terminal() bool {
	return d == Verified || d == Flagged
}

func decisionFromName(name string) (Decision, bool) {
	switch name {
	case "verified":
		return Verified, true
	case "flagged":
		return Flagged, true
	default:
		return Pending, false
	}
}

// Board holds one trainer's decisions. Keeping a single map from
// workout id to decision makes the mutual-exclusion invariant
// structural: an id cannot be both verified and flagged.
type Board struct {
	store     *store.Store
	trainerID string

	mu        sync.RWMutex
	decisions map[string]Decision
}

// NewBoard loads (or freshly creates) the review board for a trainer.
// Unrecognized persisted values are dropped rather than failing the load.
func NewBoard(ctx context.Context, st *store.Store, trainerID string) *Board {
	b := &Board{
		store:     st,
		trainerID: trainerID,
		decisions: make(map[string]Decision),
	}

	persisted := store.Get(ctx, st, b.key(), map[string]string(nil))
	for id, name := range persisted {
		if d, ok := decisionFromName(name); ok {
			b.decisions[id] = d
		}
	}
	return b
}

func (b *Board) key() string {
	return store.Key(reviewKeyPurpose, b.trainerID)
}

// TrainerID returns the owning trainer's id.
func (b *Board) TrainerID() string {
	return b.trainerID
}

// Decide records the trainer's decision for a workout id and persists
// the board. The first decision wins: deciding an already-decided id is
// an idempotent no-op that returns the standing decision and false.
func (b *Board) Decide(ctx context.Context, workoutID string, approved bool) (Decision, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if standing, ok := b.decisions[workoutID]; ok {
		return standing, false
	}

	d := Flagged
	if approved {
		d = Verified
	}
	b.decisions[workoutID] = d

	b.persistLocked(ctx)
	return d, true
}

// Decision returns the review state of a workout id; absent ids are
// Pending.
func (b *Board) Decision(workoutID string) Decision {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.decisions[workoutID]
}

// VerifiedIDs returns the sorted ids the trainer approved.
func (b *Board) VerifiedIDs() []string {
	return b.idsIn(Verified)
}

// FlaggedIDs returns the sorted ids the trainer flagged.
func (b *Board) FlaggedIDs() []string {
	return b.idsIn(Flagged)
}

// DecidedCount returns the number of decided ids on the board.
func (b *Board) DecidedCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.decisions)
}

func (b *Board) idsIn(d Decision) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var ids []string
	for id, got := range b.decisions {
		if got == d {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// persistLocked writes the board through the store. Must be called with
// b.mu held.
func (b *Board) persistLocked(ctx context.Context) {
	out := make(map[string]string, len(b.decisions))
	for id, d := range b.decisions {
		out[id] = d.String()
	}
	store.Set(ctx, b.store, b.key(), out)
}

// PendingItem is one entry in a trainer's review queue.
type PendingItem struct {
	AthleteID   string        `json:"athlete_id"`
	AthleteName string        `json:"athlete_name"`
	Workout     model.Workout `json:"workout"`
}

// ReviewQueue lists, for every athlete, every workout in the effective
// list whose own verified flag is false and whose id is still Pending
// on the board. Seed and logged submissions flow through the same
// unverified check; the queue does not distinguish provenance.
func ReviewQueue(athletes []model.Athlete, effectiveOf func(model.Athlete) []model.Workout, b *Board) []PendingItem {
	var queue []PendingItem
	for _, a := range athletes {
		for _, w := range effectiveOf(a) {
			if w.Verified {
				continue
			}
			if b.Decision(w.ID) != Pending {
				continue
			}
			queue = append(queue, PendingItem{
				AthleteID:   a.ID,
				AthleteName: a.Name,
				Workout:     w,
			})
		}
	}
	return queue
}
