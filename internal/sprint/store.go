// Package sprint owns the active-sprint lifecycle: creation, daily check-in
// merging, progress metrics, and finalization into the completed history.
package sprint

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/sprintplanner/internal/config"
	"github.com/akyairhashvil/sprintplanner/internal/models"
	"github.com/akyairhashvil/sprintplanner/internal/storage"
	"github.com/akyairhashvil/sprintplanner/internal/util"
)

// Store is the single source of truth for the active sprint and the
// completed-sprint history. It is the only component that talks to the
// persistence gateway. Not safe for concurrent use; the application drives
// it from a single event loop.
type Store struct {
	gw    storage.Gateway
	clock func() time.Time

	active    *models.Sprint
	completed []models.Sprint
	// checkins indexes sprint id -> date string -> check-in.
	checkins map[string]map[string]models.DailyCheckin
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// NewStore builds a Store and loads all three records from the gateway.
// Absent or corrupt records load as empty state, never as an error.
func NewStore(ctx context.Context, gw storage.Gateway, opts ...Option) *Store {
	s := &Store{
		gw:       gw,
		clock:    time.Now,
		checkins: make(map[string]map[string]models.DailyCheckin),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	if raw, ok := s.getRecord(ctx, storage.KeyActiveSprint); ok {
		var active models.Sprint
		if err := json.Unmarshal([]byte(raw), &active); err != nil {
			util.LogError("load active sprint", err)
		} else {
			s.active = &active
		}
	}
	if raw, ok := s.getRecord(ctx, storage.KeyCompletedSprints); ok {
		if err := json.Unmarshal([]byte(raw), &s.completed); err != nil {
			util.LogError("load completed sprints", err)
			s.completed = nil
		}
	}
	if raw, ok := s.getRecord(ctx, storage.KeyDailyCheckins); ok {
		if err := json.Unmarshal([]byte(raw), &s.checkins); err != nil {
			util.LogError("load daily checkins", err)
			s.checkins = make(map[string]map[string]models.DailyCheckin)
		}
	}
	if s.checkins == nil {
		s.checkins = make(map[string]map[string]models.DailyCheckin)
	}
}

func (s *Store) getRecord(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.gw.Get(ctx, key)
	if err != nil {
		util.LogError("read "+key, err)
		return "", false
	}
	return raw, ok
}

// CreateSprint starts a new active sprint. Any existing active sprint is
// replaced wholesale; warning the user about that belongs to the UI.
func (s *Store) CreateSprint(ctx context.Context, name string, startDate time.Time, duration int, goals []models.Goal) (models.Sprint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Sprint{}, validationErr("name", "must not be empty")
	}
	if len(goals) == 0 {
		return models.Sprint{}, validationErr("goals", "at least one goal is required")
	}
	if duration < 1 || duration > config.MaxSprintDays {
		return models.Sprint{}, validationErr("duration", fmt.Sprintf("must be 1-%d days", config.MaxSprintDays))
	}

	now := s.clock()
	start := DateOnly(startDate)
	sprint := models.Sprint{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, duration-1),
		Duration:  duration,
		Goals:     normalizeGoals(goals, now),
		Status:    models.StatusActive,
		CreatedAt: now,
	}

	s.active = &sprint
	if err := s.persistActive(ctx); err != nil {
		return sprint, err
	}
	return sprint, nil
}

// normalizeGoals assigns ids to goals that lack one and resets accumulated
// state so a new sprint always starts from zero hours.
func normalizeGoals(goals []models.Goal, now time.Time) []models.Goal {
	out := make([]models.Goal, len(goals))
	for i, g := range goals {
		if g.ID == "" {
			g.ID = strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.Itoa(i)
		}
		g.ActualHours = 0
		g.FinalStatus = ""
		out[i] = g
	}
	return out
}

// UpdateGoals replaces the active sprint's goal list wholesale. Callers are
// trusted to echo back the same goal ids augmented with new values.
func (s *Store) UpdateGoals(ctx context.Context, goals []models.Goal) error {
	if s.active == nil {
		return ErrNoActiveSprint
	}
	s.active.Goals = goals
	return s.persistActive(ctx)
}

// CompleteSprint finalizes the active sprint, appends it to history, and
// clears the active slot.
func (s *Store) CompleteSprint(ctx context.Context, statuses map[string]models.FinalStatus, reflections models.Reflections, rating int) (models.Sprint, error) {
	if s.active == nil {
		return models.Sprint{}, ErrNoActiveSprint
	}

	done := Finalize(*s.active, statuses, reflections, rating, s.clock())
	s.completed = append(s.completed, done)
	s.active = nil

	if err := s.persistCompleted(ctx); err != nil {
		return done, err
	}
	if err := s.gw.Remove(ctx, storage.KeyActiveSprint); err != nil {
		util.LogError("clear active sprint", err)
		return done, fmt.Errorf("clear active sprint: %w", err)
	}
	return done, nil
}

// SaveDailyUpdate persists the check-in for the given date (last write wins)
// and merges its goal updates into the active sprint.
//
// Re-saving the same day does not double-count hours: the previously saved
// check-in's per-goal hours are subtracted before the new hours are applied.
func (s *Store) SaveDailyUpdate(ctx context.Context, date string, checkin models.DailyCheckin) error {
	if s.active == nil {
		return ErrNoActiveSprint
	}

	checkin.Date = date
	if checkin.Timestamp.IsZero() {
		checkin.Timestamp = s.clock()
	}
	if len(checkin.FocusGoals) > config.MaxFocusGoals {
		checkin.FocusGoals = checkin.FocusGoals[:config.MaxFocusGoals]
	}

	var prior *models.DailyCheckin
	if byDate, ok := s.checkins[s.active.ID]; ok {
		if existing, ok := byDate[date]; ok {
			prior = &existing
		}
	}

	if s.checkins[s.active.ID] == nil {
		s.checkins[s.active.ID] = make(map[string]models.DailyCheckin)
	}
	s.checkins[s.active.ID][date] = checkin
	if err := s.persistCheckins(ctx); err != nil {
		return err
	}

	updates := rebaseUpdates(checkin.GoalUpdates, appliedHours(prior))
	return s.UpdateGoals(ctx, MergeGoalUpdates(s.active.Goals, updates))
}

// rebaseUpdates converts absolute per-day hours into deltas against what an
// earlier save of the same day already contributed.
func rebaseUpdates(updates []models.GoalUpdate, applied map[string]float64) []models.GoalUpdate {
	if len(applied) == 0 {
		return updates
	}
	out := make([]models.GoalUpdate, len(updates))
	for i, u := range updates {
		u.HoursWorked -= applied[u.GoalID]
		out[i] = u
	}
	return out
}

// Progress returns the derived metrics for the active sprint at the given
// instant, or nil when no sprint is active.
func (s *Store) Progress(now time.Time) *models.Progress {
	if s.active == nil {
		return nil
	}
	p := CalculateProgress(s.active.StartDate, s.active.EndDate, s.active.Goals, now)
	return &p
}

// TodayCheckin returns today's check-in for the active sprint, or nil.
func (s *Store) TodayCheckin() *models.DailyCheckin {
	if s.active == nil {
		return nil
	}
	today := s.clock().Format(config.DateLayout)
	if byDate, ok := s.checkins[s.active.ID]; ok {
		if checkin, ok := byDate[today]; ok {
			return &checkin
		}
	}
	return nil
}

// Active returns the current active sprint, or nil.
func (s *Store) Active() *models.Sprint {
	return s.active
}

// Completed returns the sprint history, most recently completed first.
func (s *Store) Completed() []models.Sprint {
	out := make([]models.Sprint, len(s.completed))
	copy(out, s.completed)
	sort.SliceStable(out, func(i, j int) bool {
		return util.Deref(out[i].CompletedAt).After(util.Deref(out[j].CompletedAt))
	})
	return out
}

// Checkins returns the per-date check-in index for a sprint.
func (s *Store) Checkins(sprintID string) map[string]models.DailyCheckin {
	return s.checkins[sprintID]
}

func (s *Store) persistActive(ctx context.Context) error {
	raw, err := json.Marshal(s.active)
	if err != nil {
		return fmt.Errorf("encode active sprint: %w", err)
	}
	if err := s.gw.Set(ctx, storage.KeyActiveSprint, string(raw)); err != nil {
		util.LogError("persist active sprint", err)
		return fmt.Errorf("persist active sprint: %w", err)
	}
	return nil
}

func (s *Store) persistCompleted(ctx context.Context) error {
	raw, err := json.Marshal(s.completed)
	if err != nil {
		return fmt.Errorf("encode completed sprints: %w", err)
	}
	if err := s.gw.Set(ctx, storage.KeyCompletedSprints, string(raw)); err != nil {
		util.LogError("persist completed sprints", err)
		return fmt.Errorf("persist completed sprints: %w", err)
	}
	return nil
}

func (s *Store) persistCheckins(ctx context.Context) error {
	raw, err := json.Marshal(s.checkins)
	if err != nil {
		return fmt.Errorf("encode daily checkins: %w", err)
	}
	if err := s.gw.Set(ctx, storage.KeyDailyCheckins, string(raw)); err != nil {
		util.LogError("persist daily checkins", err)
		return fmt.Errorf("persist daily checkins: %w", err)
	}
	return nil
}
