// ABOUTME: UserProfile model and its enums (gender, activity level, weight goal).
// ABOUTME: Profiles are replaced wholesale on edit and validated before use.
package models

import (
	"errors"
	"fmt"
)

// ErrInvalidEnum is returned when a profile enum holds an unknown value.
var ErrInvalidEnum = errors.New("models: invalid enum value")

// Gender selects the basal rate formula branch.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales the basal rate into total expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// WeightGoal adjusts total expenditure into a daily calorie target.
type WeightGoal string

const (
	GoalLose     WeightGoal = "lose"
	GoalMaintain WeightGoal = "maintain"
	GoalGain     WeightGoal = "gain"
)

// AllActivityLevels lists activity levels from least to most active.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// IsValid reports whether g is a known gender.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// IsValid reports whether a is a known activity level.
func (a ActivityLevel) IsValid() bool {
	for _, lvl := range AllActivityLevels {
		if lvl == a {
			return true
		}
	}
	return false
}

// IsValid reports whether w is a known weight goal.
func (w WeightGoal) IsValid() bool {
	switch w {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	default:
		return false
	}
}

// UserProfile holds the body and lifestyle data the energy model needs.
type UserProfile struct {
	Age           int           `json:"age" yaml:"age"`
	Gender        Gender        `json:"gender" yaml:"gender"`
	WeightKG      float64       `json:"weight_kg" yaml:"weight_kg"`
	HeightCM      float64       `json:"height_cm" yaml:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level" yaml:"activity_level"`
	Goal          WeightGoal    `json:"goal" yaml:"goal"`
}

// ValidateEnums checks the enum fields only. Numeric ranges are the energy
// model's concern.
func (p UserProfile) ValidateEnums() error {
	if !p.Gender.IsValid() {
		return fmt.Errorf("%w: gender %q", ErrInvalidEnum, p.Gender)
	}
	if !p.ActivityLevel.IsValid() {
		return fmt.Errorf("%w: activity level %q", ErrInvalidEnum, p.ActivityLevel)
	}
	if !p.Goal.IsValid() {
		return fmt.Errorf("%w: goal %q", ErrInvalidEnum, p.Goal)
	}
	return nil
}
