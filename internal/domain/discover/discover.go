// Package discover implements the recruiter-side filter and ranking
// pipeline over the athlete collection, plus per-recruiter watchlist
// and scouting-note state.
package discover

import (
	"sort"
	"strings"

	"github.com/okian/varsity/internal/domain/model"
)

// Query is the conjunctive filter over the athlete collection. Zero
// values mean "not provided": every provided predicate must hold.
type Query struct {
	// Text matches case-insensitively against name, school, and
	// position as substrings; any of the three fields may hit.
	Text string
	// MinScore keeps athletes at or above the reliability score.
	MinScore int
	// Position keeps exact position matches.
	Position string
	// GradYear keeps exact graduation-year matches.
	GradYear int
	// VerifiedOnly keeps athletes with at least one verified workout
	// in the effective list.
	VerifiedOnly bool
}

// Filter applies the query over the athletes, AND across all provided
// predicates. effectiveOf supplies the effective workout list for the
// VerifiedOnly predicate.
func Filter(athletes []model.Athlete, effectiveOf func(model.Athlete) []model.Workout, q Query) []model.Athlete {
	var out []model.Athlete
	for _, a := range athletes {
		if !matches(a, effectiveOf, q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(a model.Athlete, effectiveOf func(model.Athlete) []model.Workout, q Query) bool {
	if q.Text != "" && !textMatches(a, q.Text) {
		return false
	}
	if q.MinScore > 0 && a.ReliabilityScore < float64(q.MinScore) {
		return false
	}
	if q.Position != "" && !strings.EqualFold(a.Position, q.Position) {
		return false
	}
	if q.GradYear > 0 && a.GradYear != q.GradYear {
		return false
	}
	if q.VerifiedOnly && !hasVerifiedWorkout(effectiveOf(a)) {
		return false
	}
	return true
}

func textMatches(a model.Athlete, text string) bool {
	needle := strings.ToLower(text)
	for _, field := range []string{a.Name, a.School, a.Position} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func hasVerifiedWorkout(ws []model.Workout) bool {
	for _, w := range ws {
		if w.Verified {
			return true
		}
	}
	return false
}

// SortKey selects the single active ranking comparator. There is never
// a multi-key sort.
type SortKey int

const (
	// ByReliability orders by reliability score descending, name
	// ascending on ties.
	ByReliability SortKey = iota
	// ByStat orders by a named stat; direction follows the metric's
	// semantics via SortSpec.Descending.
	ByStat
	// ByName orders by name ascending.
	ByName
)

// SortSpec names the active comparator. Stat and Descending only apply
// to ByStat.
type SortSpec struct {
	Key        SortKey
	Stat       string
	Descending bool
}

// Rank returns a new slice ordered by the selected comparator. Athletes
// missing the named stat sink to the bottom regardless of direction.
func Rank(athletes []model.Athlete, spec SortSpec) []model.Athlete {
	out := make([]model.Athlete, len(athletes))
	copy(out, athletes)

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], spec)
	})
	return out
}

func less(a, b model.Athlete, spec SortSpec) bool {
	switch spec.Key {
	case ByStat:
		av, aok := a.Stats[spec.Stat]
		bv, bok := b.Stats[spec.Stat]
		if aok != bok {
			return aok // athletes carrying the stat rank first
		}
		if !aok || av.Value == bv.Value {
			return a.Name < b.Name
		}
		if spec.Descending {
			return av.Value > bv.Value
		}
		return av.Value < bv.Value
	case ByName:
		return a.Name < b.Name
	default: // ByReliability
		if a.ReliabilityScore != b.ReliabilityScore {
			return a.ReliabilityScore > b.ReliabilityScore
		}
		return a.Name < b.Name
	}
}
