// ABOUTME: Energy model: Harris-Benedict basal rate, activity scaling, goal adjustment.
// ABOUTME: Pure functions; results are rounded with math.Round (half away from zero).
package energy

import (
	"errors"
	"fmt"
	"math"

	"github.com/harperreed/nutri/internal/models"
)

// ErrInvalidProfile is returned for non-positive age, weight, or height, or
// an unknown enum value.
var ErrInvalidProfile = errors.New("energy: invalid profile")

// GoalAdjustment is the daily calorie deficit or surplus for lose/gain goals.
const GoalAdjustment = 500.0

// activityMultipliers maps each activity level to its expenditure multiplier.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// Breakdown carries every stage of the calculation for display.
type Breakdown struct {
	Basal  float64
	Total  float64
	Target int
}

// Multiplier returns the activity multiplier for lvl.
func Multiplier(lvl models.ActivityLevel) (float64, bool) {
	m, ok := activityMultipliers[lvl]
	return m, ok
}

// Validate checks the profile without computing anything.
func Validate(p models.UserProfile) error {
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive, got %d", ErrInvalidProfile, p.Age)
	}
	if p.WeightKG <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %g", ErrInvalidProfile, p.WeightKG)
	}
	if p.HeightCM <= 0 {
		return fmt.Errorf("%w: height must be positive, got %g", ErrInvalidProfile, p.HeightCM)
	}
	if err := p.ValidateEnums(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

// BasalRate returns the Harris-Benedict basal metabolic rate in kcal/day.
func BasalRate(p models.UserProfile) (float64, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	return basal(p), nil
}

func basal(p models.UserProfile) float64 {
	age := float64(p.Age)
	if p.Gender == models.GenderMale {
		return 88.362 + 13.397*p.WeightKG + 4.799*p.HeightCM - 5.677*age
	}
	return 447.593 + 9.247*p.WeightKG + 3.098*p.HeightCM - 4.330*age
}

// Compute returns basal rate, total expenditure, and the rounded target.
func Compute(p models.UserProfile) (Breakdown, error) {
	if err := Validate(p); err != nil {
		return Breakdown{}, err
	}
	b := basal(p)
	total := b * activityMultipliers[p.ActivityLevel]

	adjusted := total
	switch p.Goal {
	case models.GoalLose:
		adjusted -= GoalAdjustment
	case models.GoalGain:
		adjusted += GoalAdjustment
	}

	return Breakdown{Basal: b, Total: total, Target: int(math.Round(adjusted))}, nil
}

// DailyCalorieTarget returns the rounded daily calorie target for p.
func DailyCalorieTarget(p models.UserProfile) (int, error) {
	b, err := Compute(p)
	if err != nil {
		return 0, err
	}
	return b.Target, nil
}

// TargetOrGoal returns the profile-derived target when a profile is present,
// otherwise the stored calorie goal. An invalid profile falls back to goals.
func TargetOrGoal(p *models.UserProfile, goals models.DailyGoals) int {
	if p == nil {
		return goals.Calories
	}
	target, err := DailyCalorieTarget(*p)
	if err != nil {
		return goals.Calories
	}
	return target
}
