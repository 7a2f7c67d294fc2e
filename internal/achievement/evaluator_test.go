// ABOUTME: Tests for the achievement evaluator.
// ABOUTME: Covers thresholds, per-day de-duplication, and emission order.
package achievement

import (
	"testing"
	"time"

	"github.com/harperreed/nutri/internal/feed"
	"github.com/harperreed/nutri/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day1 = time.Date(2026, 6, 10, 13, 0, 0, 0, time.UTC)

func baseState() State {
	return State{
		Now:   day1,
		Loc:   time.UTC,
		Goals: models.DefaultGoals(),
	}
}

func TestNothingBelowThreshold(t *testing.T) {
	s := baseState()
	s.Totals.Calories = 1799
	s.Water = 7
	assert.Empty(t, Evaluate(s, feed.New()))
}

func TestCalorieAchievementAtNinetyPercent(t *testing.T) {
	s := baseState()
	s.Totals.Calories = 1800

	got := Evaluate(s, feed.New())
	require.Len(t, got, 1)
	assert.Equal(t, models.TopicCalories, got[0].Topic)
	assert.Equal(t, models.KindAchievement, got[0].Kind)
	assert.False(t, got[0].Read)
}

func TestProfileTargetOverridesGoal(t *testing.T) {
	s := baseState()
	s.Profile = &models.UserProfile{
		Age: 30, Gender: models.GenderMale, WeightKG: 70, HeightCM: 175,
		ActivityLevel: models.ActivityModerate, Goal: models.GoalMaintain,
	}
	// 90% of 2628 is 2365.2; goal-based threshold would be 1800.
	s.Totals.Calories = 2000
	assert.Empty(t, Evaluate(s, feed.New()))

	s.Totals.Calories = 2366
	got := Evaluate(s, feed.New())
	require.Len(t, got, 1)
	assert.Equal(t, models.TopicCalories, got[0].Topic)
}

func TestCalorieBeforeHydration(t *testing.T) {
	s := baseState()
	s.Totals.Calories = 2500
	s.Water = 8

	got := Evaluate(s, feed.New())
	require.Len(t, got, 2)
	assert.Equal(t, models.TopicCalories, got[0].Topic)
	assert.Equal(t, models.TopicHydration, got[1].Topic)
}

func TestOncePerDayEvenWhenRead(t *testing.T) {
	f := feed.New()
	s := baseState()
	s.Totals.Calories = 1900

	f.Prepend(Evaluate(s, f)...)
	require.Equal(t, 1, f.Len())
	f.MarkAllRead()

	s.Now = day1.Add(3 * time.Hour)
	s.Totals.Calories = 2400
	assert.Empty(t, Evaluate(s, f))

	s.Now = day1.Add(24 * time.Hour)
	got := Evaluate(s, f)
	require.Len(t, got, 1)
	assert.Equal(t, models.TopicCalories, got[0].Topic)
}

func TestRemindersDoNotBlockAchievements(t *testing.T) {
	f := feed.New()
	f.Prepend(models.NewNotification(models.KindReminder, models.TopicWater, day1))

	s := baseState()
	s.Water = 9
	got := Evaluate(s, f)
	require.Len(t, got, 1)
	assert.Equal(t, models.TopicHydration, got[0].Topic)
}

func TestZeroGoalsDoNotPanic(t *testing.T) {
	s := baseState()
	s.Goals = models.DailyGoals{}
	got := Evaluate(s, feed.New())
	assert.Len(t, got, 2)
}
