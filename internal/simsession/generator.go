package simsession

import (
	"crypto/rand"
	"math/big"
)

// Workout draft generation ranges.
const (
	minDurationMinutes   = 20
	durationRangeMinutes = 70
	approvalPercent      = 70
	percentDivisor       = 100
)

// workoutTypes is the pool drafts are drawn from.
var workoutTypes = []string{
	"Strength",
	"Speed",
	"Conditioning",
	"Agility",
	"Film Study",
	"Recovery",
}

// draft is a workout submission body.
type draft struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
}

// randomInt returns a uniform int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateDraft produces a random, always-valid workout draft.
func generateDraft() draft {
	return draft{
		Type:            workoutTypes[randomInt(len(workoutTypes))],
		DurationMinutes: minDurationMinutes + randomInt(durationRangeMinutes),
	}
}

// approveRoll decides whether a simulated trainer approves a workout.
// Roughly approvalPercent of decisions come out verified.
func approveRoll() bool {
	return randomInt(percentDivisor) < approvalPercent
}
