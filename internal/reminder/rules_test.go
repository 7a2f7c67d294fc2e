// ABOUTME: Tests for reminder rules and the planner policies.
// ABOUTME: Pins meal hours, hydration cadence, and re-firing behavior.
package reminder

import (
	"testing"
	"time"

	"github.com/harperreed/nutri/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDue(t *testing.T) {
	tests := []struct {
		name      string
		hour      int
		water     int
		waterGoal int
		want      []models.Topic
	}{
		{"breakfast with water due", 8, 0, 8, []models.Topic{models.TopicBreakfast, models.TopicWater}},
		{"breakfast water met", 8, 8, 8, []models.Topic{models.TopicBreakfast}},
		{"lunch", 12, 8, 8, []models.Topic{models.TopicLunch}},
		{"dinner odd hour no water", 19, 0, 8, []models.Topic{models.TopicDinner}},
		{"even hour water only", 14, 3, 8, []models.Topic{models.TopicWater}},
		{"midnight counts as even", 0, 0, 8, []models.Topic{models.TopicWater}},
		{"odd hour nothing", 9, 0, 8, nil},
		{"zero water goal", 10, 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Due(tt.hour, tt.water, tt.waterGoal))
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyEveryTick, p)

	p, err = ParsePolicy("once_per_hour")
	require.NoError(t, err)
	assert.Equal(t, PolicyOncePerHour, p)

	_, err = ParsePolicy("sometimes")
	assert.Error(t, err)
}

func TestPlannerEveryTickRepeats(t *testing.T) {
	p := NewPlanner(PolicyEveryTick, time.UTC)
	at := time.Date(2026, 2, 3, 8, 0, 0, 0, time.UTC)

	first := p.Plan(at, 8, 8)
	second := p.Plan(at.Add(time.Minute), 8, 8)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, models.TopicBreakfast, second[0].Topic)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.Equal(t, models.KindReminder, second[0].Kind)
}

func TestPlannerOncePerHour(t *testing.T) {
	p := NewPlanner(PolicyOncePerHour, time.UTC)
	at := time.Date(2026, 2, 3, 8, 0, 0, 0, time.UTC)

	assert.Len(t, p.Plan(at, 0, 8), 2)
	assert.Empty(t, p.Plan(at.Add(30*time.Minute), 0, 8))

	// Next even hour fires water again.
	got := p.Plan(at.Add(2*time.Hour), 0, 8)
	require.Len(t, got, 1)
	assert.Equal(t, models.TopicWater, got[0].Topic)

	// Same hour next day fires again.
	assert.Len(t, p.Plan(at.Add(24*time.Hour), 0, 8), 2)
}

func TestPlannerUsesLocalHour(t *testing.T) {
	loc := time.FixedZone("UTC-4", -4*60*60)
	p := NewPlanner(PolicyEveryTick, loc)
	// 12:00 UTC is 08:00 local.
	got := p.Plan(time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC), 8, 8)
	require.Len(t, got, 1)
	assert.Equal(t, models.TopicBreakfast, got[0].Topic)
}

func TestNewPlannerDefaultsInvalidPolicy(t *testing.T) {
	assert.Equal(t, PolicyEveryTick, NewPlanner("bogus", nil).Policy())
}
