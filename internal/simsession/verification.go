package simsession

import (
	"context"
	"fmt"

	"github.com/fatih/color"
)

// verifySession checks the invariants the service promises: decided
// workouts leave the queue, decisions are sticky, and readiness is
// deterministic for an unchanged workout history.
func verifySession(ctx context.Context, client *HTTPClient, config *Config, athletes []Athlete, stats *Stats) error {
	color.Cyan("verifying session results...")

	var board Board
	if err := client.Get(ctx, config.BaseURL+"/review/"+config.TrainerID, &board); err != nil {
		return err
	}

	// Every decided id must be out of the pending queue.
	decided := make(map[string]struct{}, len(board.Verified)+len(board.Flagged))
	for _, id := range board.Verified {
		decided[id] = struct{}{}
	}
	for _, id := range board.Flagged {
		if _, dup := decided[id]; dup {
			return fmt.Errorf("workout %s is both verified and flagged", id)
		}
		decided[id] = struct{}{}
	}
	for _, item := range board.Queue {
		if _, ok := decided[item.Workout.ID]; ok {
			return fmt.Errorf("decided workout %s still pending", item.Workout.ID)
		}
	}
	color.Green("review board consistent: %d decided, %d pending", len(decided), len(board.Queue))

	// A repeated decision must not flip the standing outcome.
	if len(board.Verified) > 0 {
		target := board.Verified[0]
		var ack DecisionAck
		body := map[string]any{"workout_id": target, "approved": false}
		if err := client.Post(ctx, config.BaseURL+"/review/"+config.TrainerID, body, &ack); err != nil {
			return err
		}
		if ack.Changed || ack.Decision != "verified" {
			return fmt.Errorf("decision for %s flipped on repeat: %s", target, ack.Decision)
		}
		stats.DecisionRepeats++
		color.Green("decision stickiness verified on %s", target)
	}

	// Readiness must be identical across back-to-back reads.
	probe := athletes[0]
	var first, second Readiness
	url := config.BaseURL + "/athletes/" + probe.ID + "/readiness"
	if err := client.Get(ctx, url, &first); err != nil {
		return err
	}
	if err := client.Get(ctx, url, &second); err != nil {
		return err
	}
	if first.RetentionScore != second.RetentionScore || first.RetentionLabel != second.RetentionLabel {
		return fmt.Errorf("readiness not deterministic for %s: %d/%s vs %d/%s",
			probe.ID, first.RetentionScore, first.RetentionLabel, second.RetentionScore, second.RetentionLabel)
	}
	color.Green("readiness deterministic for %s: %d (%s)", probe.Name, first.RetentionScore, first.RetentionLabel)

	return nil
}
