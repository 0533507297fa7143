// Package seed loads the read-only fixture collections the service is
// bootstrapped from. Fixtures are loaded once at startup and never
// written back; all mutable state lives in the persistence layer.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/okian/varsity/internal/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Data holds the seed collections.
type Data struct {
	Athletes   []model.Athlete   `yaml:"athletes"`
	Trainers   []model.Trainer   `yaml:"trainers"`
	Recruiters []model.Recruiter `yaml:"recruiters"`
}

// Load parses the embedded fixtures.
func Load() (*Data, error) {
	return parse(fixturesYAML)
}

func parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Data) validate() error {
	if len(d.Athletes) == 0 {
		return ErrNoAthletes
	}

	athleteIDs := make(map[string]struct{}, len(d.Athletes))
	workoutIDs := make(map[string]struct{})
	for _, a := range d.Athletes {
		if a.ID == "" {
			return fmt.Errorf("%w: athlete %q", ErrMissingID, a.Name)
		}
		if _, dup := athleteIDs[a.ID]; dup {
			return fmt.Errorf("%w: athlete id %q", ErrDuplicateID, a.ID)
		}
		athleteIDs[a.ID] = struct{}{}

		for _, w := range a.Workouts {
			if w.ID == "" {
				return fmt.Errorf("%w: workout on athlete %q", ErrMissingID, a.ID)
			}
			if _, dup := workoutIDs[w.ID]; dup {
				return fmt.Errorf("%w: workout id %q", ErrDuplicateID, w.ID)
			}
			workoutIDs[w.ID] = struct{}{}
		}
	}

	for _, t := range d.Trainers {
		for _, id := range t.AthleteIDs {
			if _, ok := athleteIDs[id]; !ok {
				return fmt.Errorf("%w: trainer %q references athlete %q", ErrUnknownReference, t.ID, id)
			}
		}
	}
	for _, r := range d.Recruiters {
		for _, id := range r.DefaultWatchlist {
			if _, ok := athleteIDs[id]; !ok {
				return fmt.Errorf("%w: recruiter %q watches athlete %q", ErrUnknownReference, r.ID, id)
			}
		}
	}
	return nil
}

// Athlete returns the seed athlete with the given id.
func (d *Data) Athlete(id string) (model.Athlete, bool) {
	for _, a := range d.Athletes {
		if a.ID == id {
			return a, true
		}
	}
	return model.Athlete{}, false
}

// Trainer returns the seed trainer with the given id.
func (d *Data) Trainer(id string) (model.Trainer, bool) {
	for _, t := range d.Trainers {
		if t.ID == id {
			return t, true
		}
	}
	return model.Trainer{}, false
}

// Recruiter returns the seed recruiter with the given id.
func (d *Data) Recruiter(id string) (model.Recruiter, bool) {
	for _, r := range d.Recruiters {
		if r.ID == id {
			return r, true
		}
	}
	return model.Recruiter{}, false
}
