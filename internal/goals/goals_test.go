// ABOUTME: Tests for the goal store.
// ABOUTME: Verifies partial merge and non-negativity.
package goals

import (
	"testing"

	"github.com/harperreed/nutri/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSetMergesOnlyProvidedFields(t *testing.T) {
	s := NewStore(models.DefaultGoals())
	protein := 120
	got := s.Set(models.GoalsPatch{ProteinG: &protein})

	want := models.DefaultGoals()
	want.ProteinG = 120
	assert.Equal(t, want, got)
	assert.Equal(t, want, s.Current())
}

func TestEmptyPatchIsNoop(t *testing.T) {
	s := NewStore(models.DefaultGoals())
	assert.Equal(t, models.DefaultGoals(), s.Set(models.GoalsPatch{}))
}

func TestOutOfRangeValuesAccepted(t *testing.T) {
	s := NewStore(models.DefaultGoals())
	huge := 99999
	s.Set(models.GoalsPatch{Calories: &huge})
	assert.Equal(t, 99999, s.Current().Calories)
}

func TestNegativeValuesClamp(t *testing.T) {
	s := NewStore(models.DailyGoals{Calories: -10, WaterServings: 8})
	assert.Equal(t, 0, s.Current().Calories)
	assert.Equal(t, 8, s.Current().WaterServings)
}

func TestSetCalories(t *testing.T) {
	s := NewStore(models.DefaultGoals())
	s.SetCalories(2628)
	assert.Equal(t, 2628, s.Current().Calories)
	assert.Equal(t, 150, s.Current().ProteinG)
}
