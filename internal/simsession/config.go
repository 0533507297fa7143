// Package simsession drives a complete demo session against a running
// varsity service: logging workouts, reviewing them as a trainer, and
// scouting the roster as a recruiter, then verifying the results.
package simsession

import "time"

// Config holds configuration for a simulated session.
type Config struct {
	BaseURL   string        // Base URL of the service
	Workouts  int           // Workouts to log per athlete
	TrainerID string        // Trainer running the review pass
	Recruiter string        // Recruiter running the scouting pass
	Timeout   time.Duration // HTTP request timeout
	Verbose   bool          // Enable verbose output
}

// Athlete mirrors the roster read shape.
type Athlete struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Position         string  `json:"position"`
	School           string  `json:"school"`
	ReliabilityScore float64 `json:"reliability_score"`
}

// Workout mirrors the workout read shape.
type Workout struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Verified        bool   `json:"verified"`
}

// PendingItem mirrors one review queue entry.
type PendingItem struct {
	AthleteID   string  `json:"athlete_id"`
	AthleteName string  `json:"athlete_name"`
	Workout     Workout `json:"workout"`
}

// Board mirrors the GET /review/{trainerID} shape.
type Board struct {
	Queue    []PendingItem `json:"queue"`
	Verified []string      `json:"verified"`
	Flagged  []string      `json:"flagged"`
}

// DecisionAck mirrors the POST /review/{trainerID} response.
type DecisionAck struct {
	WorkoutID string `json:"workout_id"`
	Decision  string `json:"decision"`
	Changed   bool   `json:"changed"`
}

// Readiness mirrors the GET /athletes/{id}/readiness response.
type Readiness struct {
	AthleteID      string `json:"athlete_id"`
	RetentionScore int    `json:"retention_score"`
	RetentionLabel string `json:"retention_label"`
}

// ToggleAck mirrors the POST /watchlist/{recruiterID} response.
type ToggleAck struct {
	AthleteID string `json:"athlete_id"`
	Watched   bool   `json:"watched"`
}

// Stats holds session statistics.
type Stats struct {
	WorkoutsLogged    int
	WorkoutsRejected  int
	DecisionsVerified int
	DecisionsFlagged  int
	DecisionRepeats   int
	WatchlistToggles  int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
