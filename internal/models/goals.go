// ABOUTME: DailyGoals targets and GoalsPatch partial updates.
// ABOUTME: Includes the zero-safe Progress percentage helper.
package models

// DailyGoals holds the current daily targets.
type DailyGoals struct {
	Calories        int `json:"calories" yaml:"calories"`
	ProteinG        int `json:"protein_g" yaml:"protein_g"`
	CarbsG          int `json:"carbs_g" yaml:"carbs_g"`
	FatG            int `json:"fat_g" yaml:"fat_g"`
	WaterServings   int `json:"water_servings" yaml:"water_servings"`
	ExerciseMinutes int `json:"exercise_minutes" yaml:"exercise_minutes"`
}

// DefaultGoals returns the targets a fresh session starts with.
func DefaultGoals() DailyGoals {
	return DailyGoals{
		Calories:        2000,
		ProteinG:        150,
		CarbsG:          250,
		FatG:            67,
		WaterServings:   8,
		ExerciseMinutes: 30,
	}
}

// GoalsPatch carries the fields a user edited. Nil fields are left unchanged.
type GoalsPatch struct {
	Calories        *int `json:"calories,omitempty"`
	ProteinG        *int `json:"protein_g,omitempty"`
	CarbsG          *int `json:"carbs_g,omitempty"`
	FatG            *int `json:"fat_g,omitempty"`
	WaterServings   *int `json:"water_servings,omitempty"`
	ExerciseMinutes *int `json:"exercise_minutes,omitempty"`
}

// IsEmpty reports whether the patch sets no field.
func (p GoalsPatch) IsEmpty() bool {
	return p.Calories == nil && p.ProteinG == nil && p.CarbsG == nil &&
		p.FatG == nil && p.WaterServings == nil && p.ExerciseMinutes == nil
}

// Apply returns g with the patch merged in. Negative values clamp to 0.
func (p GoalsPatch) Apply(g DailyGoals) DailyGoals {
	merge := func(dst *int, src *int) {
		if src == nil {
			return
		}
		*dst = max(*src, 0)
	}
	merge(&g.Calories, p.Calories)
	merge(&g.ProteinG, p.ProteinG)
	merge(&g.CarbsG, p.CarbsG)
	merge(&g.FatG, p.FatG)
	merge(&g.WaterServings, p.WaterServings)
	merge(&g.ExerciseMinutes, p.ExerciseMinutes)
	return g
}

// Progress returns consumed as a percentage of goal. A zero goal yields 0
// when nothing was consumed and 100 otherwise, never NaN or Inf.
func Progress(consumed, goal float64) float64 {
	if goal <= 0 {
		if consumed <= 0 {
			return 0
		}
		return 100
	}
	return consumed / goal * 100
}
