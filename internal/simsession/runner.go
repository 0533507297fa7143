package simsession

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/okian/varsity/pkg/logger"
)

// Run executes the complete simulated session: an athlete pass logging
// workouts, a trainer pass clearing the review queue, and a recruiter
// pass scouting the roster, then verifies the results.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	client := newHTTPClient(config.Timeout)
	runID := uuid.New().String()

	logger.Get().Info(ctx, "starting simulated session",
		logger.String("baseURL", config.BaseURL),
		logger.String("runID", runID),
		logger.Int("workoutsPerAthlete", config.Workouts),
		logger.String("trainer", config.TrainerID),
		logger.String("recruiter", config.Recruiter))

	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	athletes, err := fetchRoster(ctx, client, config)
	if err != nil {
		return fmt.Errorf("roster fetch failed: %w", err)
	}

	if err := athletePass(ctx, client, config, athletes, stats); err != nil {
		return fmt.Errorf("athlete pass failed: %w", err)
	}

	if err := trainerPass(ctx, client, config, stats); err != nil {
		return fmt.Errorf("trainer pass failed: %w", err)
	}

	if err := recruiterPass(ctx, client, config, runID, stats); err != nil {
		return fmt.Errorf("recruiter pass failed: %w", err)
	}

	if err := verifySession(ctx, client, config, athletes, stats); err != nil {
		return fmt.Errorf("session verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "session completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	if err := client.Get(ctx, config.BaseURL+"/healthz", nil); err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	color.Green("service is healthy")
	return nil
}

// fetchRoster retrieves the athlete roster.
func fetchRoster(ctx context.Context, client *HTTPClient, config *Config) ([]Athlete, error) {
	var athletes []Athlete
	if err := client.Get(ctx, config.BaseURL+"/athletes", &athletes); err != nil {
		return nil, err
	}
	if len(athletes) == 0 {
		return nil, fmt.Errorf("empty roster")
	}
	color.Cyan("roster: %d athletes", len(athletes))
	return athletes, nil
}

// athletePass logs the configured number of workouts for every athlete.
func athletePass(ctx context.Context, client *HTTPClient, config *Config, athletes []Athlete, stats *Stats) error {
	for _, a := range athletes {
		for i := 0; i < config.Workouts; i++ {
			d := generateDraft()
			var created Workout
			url := config.BaseURL + "/athletes/" + a.ID + "/workouts"
			if err := client.Post(ctx, url, d, &created); err != nil {
				stats.WorkoutsRejected++
				if config.Verbose {
					color.Red("  %s: rejected %s: %v", a.Name, d.Type, err)
				}
				continue
			}
			stats.WorkoutsLogged++
			if config.Verbose {
				color.White("  %s logged %s (%d min) -> %s", a.Name, created.Type, created.DurationMinutes, created.ID)
			}
		}
	}
	color.Green("athlete pass: %d workouts logged", stats.WorkoutsLogged)
	return nil
}

// trainerPass drains the trainer's review queue, approving roughly
// seven in ten submissions.
func trainerPass(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) error {
	url := config.BaseURL + "/review/" + config.TrainerID

	var board Board
	if err := client.Get(ctx, url, &board); err != nil {
		return err
	}
	color.Cyan("review queue for %s: %d pending", config.TrainerID, len(board.Queue))

	for _, item := range board.Queue {
		approved := approveRoll()
		var ack DecisionAck
		body := map[string]any{"workout_id": item.Workout.ID, "approved": approved}
		if err := client.Post(ctx, url, body, &ack); err != nil {
			return err
		}

		switch {
		case !ack.Changed:
			stats.DecisionRepeats++
		case ack.Decision == "verified":
			stats.DecisionsVerified++
		default:
			stats.DecisionsFlagged++
		}

		if config.Verbose {
			color.White("  %s (%s): %s", item.Workout.ID, item.AthleteName, ack.Decision)
		}
	}

	color.Green("trainer pass: %d verified, %d flagged", stats.DecisionsVerified, stats.DecisionsFlagged)
	return nil
}

// recruiterPass runs a discovery query, toggles the top hit onto the
// watchlist, and leaves a scouting note tagged with the run id.
func recruiterPass(ctx context.Context, client *HTTPClient, config *Config, runID string, stats *Stats) error {
	var hits []Athlete
	if err := client.Get(ctx, config.BaseURL+"/discover?sort=reliability", &hits); err != nil {
		return err
	}
	if len(hits) == 0 {
		return fmt.Errorf("discovery returned no athletes")
	}
	top := hits[0]
	color.Cyan("discovery: top athlete %s (score %.0f)", top.Name, top.ReliabilityScore)

	var ack ToggleAck
	url := config.BaseURL + "/watchlist/" + config.Recruiter
	if err := client.Post(ctx, url, map[string]string{"athlete_id": top.ID}, &ack); err != nil {
		return err
	}
	stats.WatchlistToggles++

	noteURL := config.BaseURL + "/notes/" + config.Recruiter + "/" + top.ID
	note := map[string]string{"text": "session " + runID + ": strong outing"}
	if err := client.Put(ctx, noteURL, note, nil); err != nil {
		return err
	}

	color.Green("recruiter pass: %s watched=%v, note saved", top.Name, ack.Watched)
	return nil
}

// displayFinalStats prints the final session statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("workoutsLogged", stats.WorkoutsLogged),
		logger.Int("workoutsRejected", stats.WorkoutsRejected),
		logger.Int("decisionsVerified", stats.DecisionsVerified),
		logger.Int("decisionsFlagged", stats.DecisionsFlagged),
		logger.Int("decisionRepeats", stats.DecisionRepeats),
		logger.Int("watchlistToggles", stats.WatchlistToggles),
		logger.String("duration", stats.Duration.String()))
}
