// ABOUTME: Session owns profile, ledger, goals, and notification feed for one user.
// ABOUTME: Every operation holds a single mutex so reminder ticks never interleave with mutations.
package session

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/nutri/internal/achievement"
	"github.com/harperreed/nutri/internal/catalog"
	"github.com/harperreed/nutri/internal/energy"
	"github.com/harperreed/nutri/internal/feed"
	"github.com/harperreed/nutri/internal/goals"
	"github.com/harperreed/nutri/internal/ledger"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/reminder"
)

// Options configures a new Session. Zero values pick defaults.
type Options struct {
	Catalog        *catalog.Catalog
	Goals          *models.DailyGoals
	Location       *time.Location
	Clock          func() time.Time
	Logger         *log.Logger
	ReminderPolicy reminder.Policy
	TickPeriod     time.Duration
}

// Session is the explicit owner of all tracker state.
type Session struct {
	mu        sync.Mutex
	clock     func() time.Time
	loc       *time.Location
	logger    *log.Logger
	catalog   *catalog.Catalog
	ledger    *ledger.Ledger
	goals     *goals.Store
	feed      *feed.Feed
	planner   *reminder.Planner
	scheduler *reminder.Scheduler
	profile   *models.UserProfile
}

// New creates a session with no profile and the configured goals.
func New(opts Options) *Session {
	s := &Session{
		clock:   opts.Clock,
		loc:     opts.Location,
		logger:  opts.Logger,
		catalog: opts.Catalog,
		feed:    feed.New(),
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}

	initial := models.DefaultGoals()
	if opts.Goals != nil {
		initial = *opts.Goals
	}
	s.goals = goals.NewStore(initial)
	s.ledger = ledger.New(s.loc)
	s.planner = reminder.NewPlanner(opts.ReminderPolicy, s.loc)
	s.scheduler = reminder.NewScheduler(opts.TickPeriod, s.Tick,
		reminder.WithClock(s.clock),
		reminder.WithLogger(s.logger),
	)
	return s
}

// Catalog returns the food catalog the session records against.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Location returns the time zone used for calendar days and reminder hours.
func (s *Session) Location() *time.Location {
	return s.loc
}

// StartReminders begins the periodic reminder loop.
func (s *Session) StartReminders(ctx context.Context) error {
	return s.scheduler.Start(ctx)
}

// Close stops the reminder loop. No reminders are emitted after Close
// returns. Safe to call more than once.
func (s *Session) Close() {
	s.scheduler.Stop()
}

// SetProfile validates and stores p, copies its calorie target into the
// goals, and re-evaluates achievements.
func (s *Session) SetProfile(p models.UserProfile) (int, error) {
	target, err := energy.DailyCalorieTarget(p)
	if err != nil {
		s.logger.Warn("profile rejected", "err", err)
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
	s.goals.SetCalories(target)
	s.logger.Info("profile set", "target", target, "goal", p.Goal, "activity", p.ActivityLevel)
	s.evaluate()
	return target, nil
}

// ClearProfile drops the profile; calorie targeting falls back to goals.
func (s *Session) ClearProfile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.logger.Info("profile cleared")
	s.evaluate()
}

// Profile returns a copy of the current profile, or nil.
func (s *Session) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// RecordFood logs quantity servings of the catalog food foodID now.
func (s *Session) RecordFood(foodID string, quantity float64) (models.ConsumedEntry, error) {
	return s.RecordFoodAt(foodID, quantity, s.clock())
}

// RecordFoodAt logs a food at an explicit time. Unknown foods and
// non-positive quantities leave the ledger unchanged.
func (s *Session) RecordFoodAt(foodID string, quantity float64, at time.Time) (models.ConsumedEntry, error) {
	food, err := s.catalog.Lookup(foodID)
	if err != nil {
		s.logger.Warn("record food rejected", "food", foodID, "err", err)
		return models.ConsumedEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, err := s.ledger.RecordFood(food, quantity, at)
	if err != nil {
		s.logger.Warn("record food rejected", "food", foodID, "quantity", quantity, "err", err)
		return models.ConsumedEntry{}, err
	}
	s.logger.Debug("food recorded", "food", food.Name, "quantity", quantity)
	s.evaluate()
	return entry, nil
}

// AdjustWater changes the water counter by delta servings, floored at 0.
func (s *Session) AdjustWater(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.ledger.AdjustWater(delta)
	s.evaluate()
	return n
}

// AdjustExercise changes the exercise counter by delta minutes, floored at 0.
func (s *Session) AdjustExercise(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.ledger.AdjustExercise(delta)
	s.evaluate()
	return n
}

// SetGoals merges patch into the current goals.
func (s *Session) SetGoals(patch models.GoalsPatch) models.DailyGoals {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.goals.Set(patch)
	s.logger.Info("goals updated", "calories", g.Calories, "water", g.WaterServings)
	s.evaluate()
	return g
}

// Goals returns the current goals.
func (s *Session) Goals() models.DailyGoals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals.Current()
}

// CalorieTarget returns the profile-derived target, or the calorie goal
// when no profile is set.
func (s *Session) CalorieTarget() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return energy.TargetOrGoal(s.profile, s.goals.Current())
}

// TodayTotals sums today's consumed food.
func (s *Session) TodayTotals() models.MacroTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TodayTotals(s.clock())
}

// TodayEntries returns today's consumed food in insertion order.
func (s *Session) TodayEntries() []models.ConsumedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TodayEntries(s.clock())
}

// Water returns the water counter.
func (s *Session) Water() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Water()
}

// Exercise returns the exercise counter.
func (s *Session) Exercise() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Exercise()
}

// Notifications returns the feed, most recent first.
func (s *Session) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.All()
}

// UnreadCount returns the number of unread notifications.
func (s *Session) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.UnreadCount()
}

// MarkNotificationRead flags one notification. Unknown IDs are ignored.
func (s *Session) MarkNotificationRead(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.MarkRead(id)
}

// MarkAllRead flags every notification as read.
func (s *Session) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed.MarkAllRead()
}

// ResolveNotification finds a notification ID from a full UUID or a
// unique prefix of one.
func (s *Session) ResolveNotification(idOrPrefix string) (uuid.UUID, error) {
	if id, err := uuid.Parse(idOrPrefix); err == nil {
		return id, nil
	}
	if idOrPrefix == "" {
		return uuid.Nil, fmt.Errorf("not found: empty id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var matches []uuid.UUID
	for _, n := range s.feed.All() {
		if strings.HasPrefix(n.ID.String(), idOrPrefix) {
			matches = append(matches, n.ID)
		}
	}
	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("not found: %s", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return uuid.Nil, fmt.Errorf("ambiguous prefix %s: matches multiple notifications", idOrPrefix)
	}
}

// Tick runs one reminder check at now. The scheduler calls it every period.
func (s *Session) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.planner.Plan(now, s.ledger.Water(), s.goals.Current().WaterServings)
	s.emit(batch)
}

// evaluate runs the achievement evaluator. Callers hold s.mu.
func (s *Session) evaluate() {
	now := s.clock()
	batch := achievement.Evaluate(achievement.State{
		Now:     now,
		Loc:     s.loc,
		Totals:  s.ledger.TodayTotals(now),
		Water:   s.ledger.Water(),
		Goals:   s.goals.Current(),
		Profile: s.profile,
	}, s.feed)
	s.emit(batch)
}

// emit prepends batch to the feed. Callers hold s.mu.
func (s *Session) emit(batch []models.Notification) {
	if len(batch) == 0 {
		return
	}
	s.feed.Prepend(batch...)
	for _, n := range batch {
		s.logger.Debug("notification", "kind", n.Kind, "topic", n.Topic, "id", n.ID.String()[:8])
	}
}

// remaining returns target minus consumed, rounded and floored at 0.
func remaining(target int, consumed float64) int {
	return max(int(math.Round(float64(target)-consumed)), 0)
}
