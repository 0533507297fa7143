// Package scoring computes the composite trust scores derived from an
// athlete's reliability breakdown and effective workout list. Every
// function here is deterministic and side-effect free; no derived score
// is ever persisted.
package scoring

import (
	"math"

	"github.com/okian/varsity/internal/domain/model"
)

const (
	// frequencyTargetSessions is the workout count at which the
	// frequency factor saturates at 100.
	frequencyTargetSessions = 5

	maxScore = 100
	minScore = 0
)

// weightTolerance bounds float drift when validating that weights sum to 1.
const weightTolerance = 1e-9

// Weights are the five retention factors' relative weights. They must
// sum to 1.0 for any reweighting.
type Weights struct {
	Consistency  float64 `koanf:"consistency"`
	Verification float64 `koanf:"verification"`
	Progress     float64 `koanf:"progress"`
	Frequency    float64 `koanf:"frequency"`
	VerifiedPct  float64 `koanf:"verified_pct"`
}

// DefaultWeights returns the standard retention weighting.
func DefaultWeights() Weights {
	return Weights{
		Consistency:  0.25,
		Verification: 0.20,
		Progress:     0.20,
		Frequency:    0.15,
		VerifiedPct:  0.20,
	}
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.Consistency + w.Verification + w.Progress + w.Frequency + w.VerifiedPct
}

// Valid reports whether all weights are non-negative and sum to 1.0.
func (w Weights) Valid() bool {
	for _, v := range []float64{w.Consistency, w.Verification, w.Progress, w.Frequency, w.VerifiedPct} {
		if v < 0 {
			return false
		}
	}
	return math.Abs(w.Sum()-1.0) < weightTolerance
}

// RetentionFactors is the derived breakdown behind a retention score.
// Computed on demand, never stored.
type RetentionFactors struct {
	Consistency  float64 `json:"consistency"`
	Verification float64 `json:"verification"`
	Progress     float64 `json:"progress"`
	Frequency    float64 `json:"frequency"`
	VerifiedPct  float64 `json:"verified_pct"`
}

// WorkoutFrequency maps the workout count onto [0,100], saturating at
// frequencyTargetSessions sessions.
func WorkoutFrequency(workouts []model.Workout) float64 {
	f := 100 * float64(len(workouts)) / frequencyTargetSessions
	return math.Min(maxScore, f)
}

// VerifiedPct is the percentage of workouts whose own verified flag is
// set. The max(1, n) guard keeps zero-workout athletes at 0 rather than
// dividing by zero.
func VerifiedPct(workouts []model.Workout) float64 {
	verified := 0
	for _, w := range workouts {
		if w.Verified {
			verified++
		}
	}
	return 100 * float64(verified) / math.Max(1, float64(len(workouts)))
}

// Retention computes the composite retention score and its factor
// breakdown from the athlete's static breakdown and effective workout
// list.
func Retention(breakdown model.ReliabilityBreakdown, workouts []model.Workout, w Weights) (int, RetentionFactors) {
	f := RetentionFactors{
		Consistency:  breakdown.Consistency,
		Verification: breakdown.Verification,
		Progress:     breakdown.Progress,
		Frequency:    WorkoutFrequency(workouts),
		VerifiedPct:  VerifiedPct(workouts),
	}

	raw := w.Consistency*f.Consistency +
		w.Verification*f.Verification +
		w.Progress*f.Progress +
		w.Frequency*f.Frequency +
		w.VerifiedPct*f.VerifiedPct

	return clampScore(int(math.Round(raw))), f
}

// RetentionScore is Retention without the factor breakdown.
func RetentionScore(breakdown model.ReliabilityBreakdown, workouts []model.Workout, w Weights) int {
	score, _ := Retention(breakdown, workouts, w)
	return score
}

// CombineReadiness returns the percent-to-target for a combine metric,
// in [0,100]. For lower-is-better metrics (elapsed times) the direction
// of progress inverts: closing the gap always increases the percentage.
func CombineReadiness(current, target float64, lowerIsBetter bool) int {
	var pct float64
	if lowerIsBetter {
		switch {
		case current <= 0 || current <= target:
			pct = maxScore
		case target <= 0:
			pct = minScore
		default:
			pct = 100 * target / current
		}
	} else {
		switch {
		case target <= 0 || current >= target:
			pct = maxScore
		case current <= 0:
			pct = minScore
		default:
			pct = 100 * current / target
		}
	}
	return clampScore(int(math.Round(pct)))
}

func clampScore(s int) int {
	if s < minScore {
		return minScore
	}
	if s > maxScore {
		return maxScore
	}
	return s
}
