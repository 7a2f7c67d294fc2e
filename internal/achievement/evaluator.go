// ABOUTME: Achievement evaluator comparing today's intake against goals.
// ABOUTME: Emits at most one achievement per topic per calendar day.
package achievement

import (
	"time"

	"github.com/harperreed/nutri/internal/energy"
	"github.com/harperreed/nutri/internal/feed"
	"github.com/harperreed/nutri/internal/ledger"
	"github.com/harperreed/nutri/internal/models"
)

// CalorieThreshold is the fraction of the calorie target that counts as
// reaching it.
const CalorieThreshold = 0.9

// State is the read-only input for one evaluation.
type State struct {
	Now     time.Time
	Loc     *time.Location
	Totals  models.MacroTotals
	Water   int
	Goals   models.DailyGoals
	Profile *models.UserProfile
}

// Evaluate returns the achievements newly satisfied by s that f does not
// already hold for s.Now's calendar day. Calorie comes before hydration.
// The caller prepends the result to f.
func Evaluate(s State, f *feed.Feed) []models.Notification {
	var out []models.Notification

	target := energy.TargetOrGoal(s.Profile, s.Goals)
	if s.Totals.Calories >= CalorieThreshold*float64(target) && !emittedToday(f, models.TopicCalories, s) {
		out = append(out, models.NewNotification(models.KindAchievement, models.TopicCalories, s.Now))
	}

	if s.Water >= s.Goals.WaterServings && !emittedToday(f, models.TopicHydration, s) {
		out = append(out, models.NewNotification(models.KindAchievement, models.TopicHydration, s.Now))
	}

	return out
}

// emittedToday checks for a read or unread achievement with topic on the
// same calendar day as s.Now.
func emittedToday(f *feed.Feed, topic models.Topic, s State) bool {
	return f.Any(func(n models.Notification) bool {
		return n.Kind == models.KindAchievement && n.Topic == topic &&
			ledger.SameDay(n.CreatedAt, s.Now, s.Loc)
	})
}
