package main

import (
	"context"
	"os"
	"time"

	"github.com/okian/varsity/internal/simsession"
	"github.com/okian/varsity/pkg/logger"
	"github.com/spf13/cobra"
)

// Default configuration constants.
const (
	defaultWorkouts       = 2
	defaultTimeout        = 10 * time.Second
	defaultSessionTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL   string
		workouts  int
		trainerID string
		recruiter string
		timeout   time.Duration
		verbose   bool
	)

	root := &cobra.Command{
		Use:   "session-sim",
		Short: "Drive a full demo session against a running varsity service",
		Long: `session-sim exercises the whole API surface of a running varsity
service: it logs workouts for every athlete, clears the trainer's
review queue, runs a discovery query as a recruiter, and then verifies
the review-board and scoring invariants the service promises.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(); err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, cancel := context.WithTimeout(cmd.Context(), defaultSessionTimeout)
			defer cancel()

			return simsession.Run(ctx, &simsession.Config{
				BaseURL:   baseURL,
				Workouts:  workouts,
				TrainerID: trainerID,
				Recruiter: recruiter,
				Timeout:   timeout,
				Verbose:   verbose,
			})
		},
	}

	root.Flags().StringVar(&baseURL, "url", "http://localhost:9080", "base URL of the service")
	root.Flags().IntVar(&workouts, "workouts", defaultWorkouts, "workouts to log per athlete")
	root.Flags().StringVar(&trainerID, "trainer", "t1", "trainer id running the review pass")
	root.Flags().StringVar(&recruiter, "recruiter", "r1", "recruiter id running the scouting pass")
	root.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "HTTP request timeout")
	root.Flags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
