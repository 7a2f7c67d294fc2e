// ABOUTME: Goal store holding the single current DailyGoals instance.
// ABOUTME: Partial updates merge field by field.
package goals

import "github.com/harperreed/nutri/internal/models"

// Store holds the current daily targets.
type Store struct {
	current models.DailyGoals
}

// NewStore creates a store seeded with initial. Negative fields clamp to 0.
func NewStore(initial models.DailyGoals) *Store {
	s := &Store{}
	s.current = models.GoalsPatch{
		Calories:        &initial.Calories,
		ProteinG:        &initial.ProteinG,
		CarbsG:          &initial.CarbsG,
		FatG:            &initial.FatG,
		WaterServings:   &initial.WaterServings,
		ExerciseMinutes: &initial.ExerciseMinutes,
	}.Apply(models.DailyGoals{})
	return s
}

// Set merges patch into the current goals and returns the result.
func (s *Store) Set(patch models.GoalsPatch) models.DailyGoals {
	s.current = patch.Apply(s.current)
	return s.current
}

// SetCalories replaces only the calorie target.
func (s *Store) SetCalories(calories int) models.DailyGoals {
	return s.Set(models.GoalsPatch{Calories: &calories})
}

// Current returns a copy of the current goals.
func (s *Store) Current() models.DailyGoals {
	return s.current
}
