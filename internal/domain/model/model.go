// Package model contains domain models passed between layers.
package model

// DateLayout is the display granularity for workout dates; there is no
// clock component anywhere in the domain.
const DateLayout = "2006-01-02"

// Roles known to the service. Settings are scoped by role.
const (
	RoleAthlete   = "athlete"
	RoleTrainer   = "trainer"
	RoleRecruiter = "recruiter"
	RoleParent    = "parent"
)

// Workout is a single training session. Seed workouts come from fixtures
// and carry a fixed Verified flag that is never updated after creation.
// Logged workouts are appended at runtime and always start unverified.
type Workout struct {
	ID              string `json:"id" yaml:"id"`
	Date            string `json:"date" yaml:"date"`
	Type            string `json:"type" yaml:"type"`
	DurationMinutes int    `json:"duration_minutes" yaml:"duration_minutes"`
	Verified        bool   `json:"verified" yaml:"verified"`
}

// ReliabilityBreakdown holds the three static percentages carried on each
// athlete fixture.
type ReliabilityBreakdown struct {
	Consistency  float64 `json:"consistency" yaml:"consistency"`
	Verification float64 `json:"verification" yaml:"verification"`
	Progress     float64 `json:"progress" yaml:"progress"`
}

// StatValue is a named performance stat, e.g. "bench_press": {225, "lbs"}.
type StatValue struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// TrendPoint is one sample of a weekly time series.
type TrendPoint struct {
	Week  string  `json:"week" yaml:"week"`
	Value float64 `json:"value" yaml:"value"`
}

// CombineMetric pairs a current measurement with its combine target.
// For elapsed-time metrics LowerIsBetter is true and the direction of
// progress inverts.
type CombineMetric struct {
	Name          string  `json:"name" yaml:"name"`
	Current       float64 `json:"current" yaml:"current"`
	Target        float64 `json:"target" yaml:"target"`
	Unit          string  `json:"unit" yaml:"unit"`
	LowerIsBetter bool    `json:"lower_is_better" yaml:"lower_is_better"`
}

// Athlete is an identity plus immutable profile created once at startup
// from fixture data. It is never mutated in place; all further state is
// layered on via the persistence layer, keyed by athlete id.
type Athlete struct {
	ID               string               `json:"id" yaml:"id"`
	Name             string               `json:"name" yaml:"name"`
	Position         string               `json:"position" yaml:"position"`
	School           string               `json:"school" yaml:"school"`
	GradYear         int                  `json:"grad_year" yaml:"grad_year"`
	HeightCM         float64              `json:"height_cm" yaml:"height_cm"`
	WeightKG         float64              `json:"weight_kg" yaml:"weight_kg"`
	ReliabilityScore float64              `json:"reliability_score" yaml:"reliability_score"`
	Breakdown        ReliabilityBreakdown `json:"breakdown" yaml:"breakdown"`
	Workouts         []Workout            `json:"workouts" yaml:"workouts"`
	Stats            map[string]StatValue `json:"stats" yaml:"stats"`
	Trend            []TrendPoint         `json:"trend" yaml:"trend"`
	Combine          []CombineMetric      `json:"combine" yaml:"combine"`
}

// Trainer is a seed account reviewing athlete submissions.
type Trainer struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	AthleteIDs []string `json:"athlete_ids" yaml:"athlete_ids"`
}

// Recruiter is a seed account scouting the roster. DefaultWatchlist seeds
// the recruiter's watchlist the first time it is read.
type Recruiter struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Email            string   `json:"email" yaml:"email"`
	Organization     string   `json:"organization" yaml:"organization"`
	DefaultWatchlist []string `json:"default_watchlist" yaml:"default_watchlist"`
}
