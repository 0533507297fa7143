package service

import (
	"sync"
	"time"
)

// defaultFeedCapacity bounds the activity feed when no capacity option
// is supplied.
const defaultFeedCapacity = 50

// Activity is one entry on the recent-activity feed: a workout logged,
// a review decision, or a watchlist change.
type Activity struct {
	At      time.Time `json:"at"`
	Kind    string    `json:"kind"`
	ActorID string    `json:"actor_id"`
	Message string    `json:"message"`
}

// Activity kinds.
const (
	ActivityWorkoutLogged = "workout_logged"
	ActivityDecision      = "review_decision"
	ActivityWatchlist     = "watchlist_toggle"
)

// Feed is a bounded, in-memory ring of recent activity, newest-first.
// Entries past capacity fall off the tail; the feed is ephemeral and
// never persisted.
type Feed struct {
	mu       sync.RWMutex
	entries  []Activity
	capacity int
	closed   bool
}

// NewFeed creates a feed bounded at the given capacity. A non-positive
// capacity falls back to the default.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	return &Feed{capacity: capacity}
}

// Add pushes an entry onto the head of the feed. Returns false when the
// feed is closed and the entry was dropped.
func (f *Feed) Add(a Activity) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false
	}

	f.entries = append([]Activity{a}, f.entries...)
	if len(f.entries) > f.capacity {
		f.entries = f.entries[:f.capacity]
	}
	return true
}

// Recent returns a copy of the feed, newest-first.
func (f *Feed) Recent() []Activity {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Activity, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the current number of entries.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

// Close stops the feed; further Adds are dropped. Idempotent.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// IsClosed reports whether the feed has been closed.
func (f *Feed) IsClosed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}
