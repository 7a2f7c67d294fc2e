// ABOUTME: Dashboard snapshot combining totals, targets, and progress.
// ABOUTME: Everything a presentation layer needs in one consistent read.
package session

import (
	"time"

	"github.com/harperreed/nutri/internal/energy"
	"github.com/harperreed/nutri/internal/ledger"
	"github.com/harperreed/nutri/internal/models"
)

// Progress holds percentage-of-goal figures. Zero goals never yield NaN.
type Progress struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Water    float64 `json:"water"`
	Exercise float64 `json:"exercise"`
}

// Snapshot is a point-in-time view of the session. Times are in the
// session's location.
type Snapshot struct {
	At                time.Time              `json:"at"`
	Day               string                 `json:"day"`
	Totals            models.MacroTotals     `json:"totals"`
	Goals             models.DailyGoals      `json:"goals"`
	CalorieTarget     int                    `json:"calorie_target"`
	CaloriesRemaining int                    `json:"calories_remaining"`
	Progress          Progress               `json:"progress"`
	Water             int                    `json:"water_servings"`
	Exercise          int                    `json:"exercise_minutes"`
	HasProfile        bool                   `json:"has_profile"`
	Unread            int                    `json:"unread"`
	Entries           []models.ConsumedEntry `json:"entries"`
}

// Snapshot reads all dashboard figures under one lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	totals := s.ledger.TodayTotals(now)
	g := s.goals.Current()
	target := energy.TargetOrGoal(s.profile, g)
	water, exercise := s.ledger.Water(), s.ledger.Exercise()

	entries := s.ledger.TodayEntries(now)
	for i := range entries {
		entries[i].ConsumedAt = entries[i].ConsumedAt.In(s.loc)
	}

	return Snapshot{
		At:                now.In(s.loc),
		Day:               ledger.DayKey(now, s.loc),
		Totals:            totals,
		Goals:             g,
		CalorieTarget:     target,
		CaloriesRemaining: remaining(target, totals.Calories),
		Progress: Progress{
			Calories: models.Progress(totals.Calories, float64(target)),
			ProteinG: models.Progress(totals.ProteinG, float64(g.ProteinG)),
			CarbsG:   models.Progress(totals.CarbsG, float64(g.CarbsG)),
			FatG:     models.Progress(totals.FatG, float64(g.FatG)),
			Water:    models.Progress(float64(water), float64(g.WaterServings)),
			Exercise: models.Progress(float64(exercise), float64(g.ExerciseMinutes)),
		},
		Water:      water,
		Exercise:   exercise,
		HasProfile: s.profile != nil,
		Unread:     s.feed.UnreadCount(),
		Entries:    entries,
	}
}
