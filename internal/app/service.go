// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	store "github.com/okian/varsity/internal/adapters/store"
	"github.com/okian/varsity/internal/domain/discover"
	"github.com/okian/varsity/internal/domain/model"
	"github.com/okian/varsity/internal/domain/overlay"
	"github.com/okian/varsity/internal/domain/records"
	"github.com/okian/varsity/internal/domain/scoring"
	"github.com/okian/varsity/internal/seed"
	"github.com/okian/varsity/pkg/logger"
	"github.com/okian/varsity/pkg/metrics"
)

// Service implements the API dependencies for the verification and
// trust-scoring engine. Seed collections are loaded once at Start; all
// mutable state flows through the persistence layer.
type Service struct {
	mu sync.RWMutex

	// Core components
	store   *store.Store
	seeds   *seed.Data
	journal *records.Journal
	boards  map[string]*overlay.Board
	scouts  map[string]*discover.Scout
	feed    *Feed

	// Configuration
	driver       store.Driver
	namespace    string
	weights      scoring.Weights
	feedCapacity int
	rosterLimit  int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDriver sets the persistence driver backing the store.
func WithDriver(d store.Driver) Option {
	return func(s *Service) {
		if d != nil {
			s.driver = d
		}
	}
}

// WithNamespace sets the store key namespace.
func WithNamespace(ns string) Option {
	return func(s *Service) {
		if ns != "" {
			s.namespace = ns
		}
	}
}

// WithWeights overrides the retention factor weights. Invalid weights
// are ignored and the default weighting stays in effect.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		if w.Valid() {
			s.weights = w
		}
	}
}

// WithFeedCapacity bounds the recent-activity feed.
func WithFeedCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.feedCapacity = n
		}
	}
}

// WithRosterLimit caps list responses from Athletes and Discover.
func WithRosterLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.rosterLimit = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		namespace:    "varsity",
		weights:      scoring.DefaultWeights(),
		feedCapacity: defaultFeedCapacity,
		rosterLimit:  100,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the seed collections and initializes the store, journal,
// review boards, and scout state.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting trust engine...")

	seeds, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed fixtures: %w", err)
	}
	s.seeds = seeds

	if s.driver == nil {
		s.driver = store.NewMemDriver()
	}
	s.store = store.New(s.driver,
		store.WithNamespace(s.namespace),
		store.WithLogger(s.logger),
	)

	s.journal = records.NewJournal(s.store)
	s.feed = NewFeed(s.feedCapacity)

	s.boards = make(map[string]*overlay.Board, len(seeds.Trainers))
	for _, t := range seeds.Trainers {
		s.boards[t.ID] = overlay.NewBoard(ctx, s.store, t.ID)
	}

	s.scouts = make(map[string]*discover.Scout, len(seeds.Recruiters))
	for _, r := range seeds.Recruiters {
		s.scouts[r.ID] = discover.NewScout(s.store, r)
	}

	metrics.UpdateRosterSize(len(seeds.Athletes))

	s.started = true
	s.logger.Info(ctx, "trust engine started",
		logger.Int("athletes", len(seeds.Athletes)),
		logger.Int("trainers", len(seeds.Trainers)),
		logger.Int("recruiters", len(seeds.Recruiters)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping trust engine...")

	if s.feed != nil {
		_ = s.feed.Close()
	}
	if s.store != nil {
		_ = s.store.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "trust engine stopped")
}

// Athletes returns the roster, capped at the configured limit.
func (s *Service) Athletes(ctx context.Context) []model.Athlete {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil
	}

	athletes := s.seeds.Athletes
	if len(athletes) > s.rosterLimit {
		athletes = athletes[:s.rosterLimit]
	}
	out := make([]model.Athlete, len(athletes))
	copy(out, athletes)
	return out
}

// Athlete returns the seed athlete with the given id.
func (s *Service) Athlete(ctx context.Context, id string) (model.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return model.Athlete{}, ErrNotStarted
	}
	a, ok := s.seeds.Athlete(id)
	if !ok {
		return model.Athlete{}, fmt.Errorf("%w: %s", ErrUnknownAthlete, id)
	}
	return a, nil
}

// Workouts returns the athlete's effective workout list: runtime
// submissions first, then seed records.
func (s *Service) Workouts(ctx context.Context, athleteID string) ([]model.Workout, error) {
	a, err := s.Athlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return s.journal.Effective(ctx, a), nil
}

// LogWorkout appends a new workout submission for the athlete.
func (s *Service) LogWorkout(ctx context.Context, athleteID string, d records.Draft) (model.Workout, error) {
	a, err := s.Athlete(ctx, athleteID)
	if err != nil {
		return model.Workout{}, err
	}

	w, err := s.journal.Append(ctx, a.ID, d)
	if err != nil {
		metrics.RecordWorkoutRejected()
		return model.Workout{}, err
	}

	metrics.RecordWorkoutLogged()
	s.feed.Add(Activity{
		At:      time.Now(),
		Kind:    ActivityWorkoutLogged,
		ActorID: a.ID,
		Message: fmt.Sprintf("%s logged %s (%d min)", a.Name, w.Type, w.DurationMinutes),
	})

	s.logger.Debug(ctx, "workout logged",
		logger.String("athleteID", a.ID),
		logger.String("workoutID", w.ID),
		logger.String("type", w.Type),
	)
	return w, nil
}

// Readiness is the derived, never-persisted scoring view of one athlete.
type Readiness struct {
	AthleteID        string                   `json:"athlete_id"`
	RetentionScore   int                      `json:"retention_score"`
	RetentionLabel   string                   `json:"retention_label"`
	ReliabilityLabel string                   `json:"reliability_label"`
	Factors          scoring.RetentionFactors `json:"factors"`
	Combine          []CombineReadiness       `json:"combine"`
}

// CombineReadiness is one combine metric's percent-to-target.
type CombineReadiness struct {
	Name          string  `json:"name"`
	Current       float64 `json:"current"`
	Target        float64 `json:"target"`
	Unit          string  `json:"unit"`
	LowerIsBetter bool    `json:"lower_is_better"`
	Percent       int     `json:"percent"`
}

// Readiness computes the athlete's retention score, labels, and combine
// readiness from the effective workout list. Nothing here is stored.
func (s *Service) Readiness(ctx context.Context, athleteID string) (Readiness, error) {
	a, err := s.Athlete(ctx, athleteID)
	if err != nil {
		return Readiness{}, err
	}

	effective := s.journal.Effective(ctx, a)
	score, factors := scoring.Retention(a.Breakdown, effective, s.weights)

	combine := make([]CombineReadiness, 0, len(a.Combine))
	for _, m := range a.Combine {
		combine = append(combine, CombineReadiness{
			Name:          m.Name,
			Current:       m.Current,
			Target:        m.Target,
			Unit:          m.Unit,
			LowerIsBetter: m.LowerIsBetter,
			Percent:       scoring.CombineReadiness(m.Current, m.Target, m.LowerIsBetter),
		})
	}

	return Readiness{
		AthleteID:        a.ID,
		RetentionScore:   score,
		RetentionLabel:   scoring.RetentionLabel(score),
		ReliabilityLabel: scoring.ReliabilityLabel(a.ReliabilityScore),
		Factors:          factors,
		Combine:          combine,
	}, nil
}

// ReviewQueue returns the trainer's pending review items across their
// assigned athletes.
func (s *Service) ReviewQueue(ctx context.Context, trainerID string) ([]overlay.PendingItem, error) {
	board, athletes, err := s.trainerScope(trainerID)
	if err != nil {
		return nil, err
	}

	queue := overlay.ReviewQueue(athletes, func(a model.Athlete) []model.Workout {
		return s.journal.Effective(ctx, a)
	}, board)

	metrics.UpdateReviewQueueSize(len(queue))
	return queue, nil
}

// Decide records a trainer's review decision on a workout. The first
// decision wins; repeats return the standing decision unchanged.
func (s *Service) Decide(ctx context.Context, trainerID, workoutID string, approved bool) (overlay.Decision, bool, error) {
	board, athletes, err := s.trainerScope(trainerID)
	if err != nil {
		return overlay.Pending, false, err
	}

	owner, ok := s.workoutOwner(ctx, athletes, workoutID)
	if !ok {
		return overlay.Pending, false, fmt.Errorf("%w: %s", ErrUnknownWorkout, workoutID)
	}

	d, changed := board.Decide(ctx, workoutID, approved)
	if !changed {
		metrics.RecordDecisionRepeat()
		return d, false, nil
	}

	metrics.RecordDecision(d.String())
	s.feed.Add(Activity{
		At:      time.Now(),
		Kind:    ActivityDecision,
		ActorID: trainerID,
		Message: fmt.Sprintf("workout %s of %s marked %s", workoutID, owner.Name, d),
	})

	s.logger.Debug(ctx, "review decision recorded",
		logger.String("trainerID", trainerID),
		logger.String("workoutID", workoutID),
		logger.String("decision", d.String()),
	)
	return d, true, nil
}

// Board returns the trainer's review board.
func (s *Service) Board(trainerID string) (*overlay.Board, error) {
	board, _, err := s.trainerScope(trainerID)
	return board, err
}

// Discover filters and ranks the roster, capped at the configured limit.
func (s *Service) Discover(ctx context.Context, q discover.Query, spec discover.SortSpec) []model.Athlete {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil
	}

	matched := discover.Filter(s.seeds.Athletes, func(a model.Athlete) []model.Workout {
		return s.journal.Effective(ctx, a)
	}, q)

	ranked := discover.Rank(matched, spec)
	if len(ranked) > s.rosterLimit {
		ranked = ranked[:s.rosterLimit]
	}
	return ranked
}

// Watchlist returns the recruiter's watched athlete ids.
func (s *Service) Watchlist(ctx context.Context, recruiterID string) ([]string, error) {
	scout, err := s.scout(recruiterID)
	if err != nil {
		return nil, err
	}
	return scout.Watchlist(ctx), nil
}

// ToggleWatch flips an athlete's membership on the recruiter's
// watchlist and reports whether the athlete is watched afterwards.
func (s *Service) ToggleWatch(ctx context.Context, recruiterID, athleteID string) (bool, error) {
	scout, err := s.scout(recruiterID)
	if err != nil {
		return false, err
	}
	a, err := s.Athlete(ctx, athleteID)
	if err != nil {
		return false, err
	}

	watched := scout.Toggle(ctx, athleteID)

	metrics.RecordWatchlistToggle()
	verb := "removed"
	if watched {
		verb = "added"
	}
	s.feed.Add(Activity{
		At:      time.Now(),
		Kind:    ActivityWatchlist,
		ActorID: recruiterID,
		Message: fmt.Sprintf("%s %s on watchlist", a.Name, verb),
	})
	return watched, nil
}

// SetNote stores a recruiter's free-text note on an athlete.
func (s *Service) SetNote(ctx context.Context, recruiterID, athleteID, text string) error {
	scout, err := s.scout(recruiterID)
	if err != nil {
		return err
	}
	if _, err := s.Athlete(ctx, athleteID); err != nil {
		return err
	}
	scout.SetNote(ctx, athleteID, text)
	return nil
}

// Notes returns the recruiter's notes keyed by athlete id.
func (s *Service) Notes(ctx context.Context, recruiterID string) (map[string]string, error) {
	scout, err := s.scout(recruiterID)
	if err != nil {
		return nil, err
	}
	return scout.Notes(ctx), nil
}

// Settings returns the stored settings for a role, or the computed
// defaults when none were stored.
func (s *Service) Settings(ctx context.Context, role string) (model.Settings, error) {
	if err := s.checkRole(role); err != nil {
		return model.Settings{}, err
	}
	key := store.Key("settings", role)
	return store.Get(ctx, s.store, key, model.DefaultSettings(role)), nil
}

// SaveSettings persists the settings for a role.
func (s *Service) SaveSettings(ctx context.Context, role string, v model.Settings) error {
	if err := s.checkRole(role); err != nil {
		return err
	}
	store.Set(ctx, s.store, store.Key("settings", role), v)
	return nil
}

// Activity returns the recent-activity feed, newest-first.
func (s *Service) Activity(ctx context.Context) []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil
	}
	return s.feed.Recent()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"rosterLimit": s.rosterLimit,
	}

	if s.started {
		ctx := context.Background()
		decided := 0
		for _, b := range s.boards {
			decided += b.DecidedCount()
		}

		stats["athletes"] = len(s.seeds.Athletes)
		stats["trainers"] = len(s.seeds.Trainers)
		stats["recruiters"] = len(s.seeds.Recruiters)
		stats["storedKeys"] = s.store.Count(ctx)
		stats["decisions"] = decided
		stats["feedLength"] = s.feed.Len()

		metrics.UpdateRosterSize(len(s.seeds.Athletes))
	}

	return stats
}

func (s *Service) trainerScope(trainerID string) (*overlay.Board, []model.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, nil, ErrNotStarted
	}
	t, ok := s.seeds.Trainer(trainerID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTrainer, trainerID)
	}

	athletes := make([]model.Athlete, 0, len(t.AthleteIDs))
	for _, id := range t.AthleteIDs {
		if a, ok := s.seeds.Athlete(id); ok {
			athletes = append(athletes, a)
		}
	}
	return s.boards[trainerID], athletes, nil
}

func (s *Service) scout(recruiterID string) (*discover.Scout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	scout, ok := s.scouts[recruiterID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecruiter, recruiterID)
	}
	return scout, nil
}

func (s *Service) workoutOwner(ctx context.Context, athletes []model.Athlete, workoutID string) (model.Athlete, bool) {
	for _, a := range athletes {
		for _, w := range s.journal.Effective(ctx, a) {
			if w.ID == workoutID {
				return a, true
			}
		}
	}
	return model.Athlete{}, false
}

func (s *Service) checkRole(role string) error {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return ErrNotStarted
	}

	switch role {
	case model.RoleAthlete, model.RoleTrainer, model.RoleRecruiter, model.RoleParent:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
}
