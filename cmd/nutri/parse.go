// ABOUTME: Argument parsing helpers for the interactive shell.
// ABOUTME: Turns key=value pairs and deltas into goal patches and profiles.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/nutri/internal/models"
)

// splitPair splits "key=value", lowercasing the key.
func splitPair(arg string) (string, string, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || key == "" || value == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", arg)
	}
	return strings.ToLower(key), value, nil
}

func parseGoalsPatch(args []string) (models.GoalsPatch, error) {
	var patch models.GoalsPatch
	if len(args) == 0 {
		return patch, fmt.Errorf("usage: goals calories=N protein=N carbs=N fat=N water=N exercise=N")
	}
	for _, arg := range args {
		key, raw, err := splitPair(arg)
		if err != nil {
			return patch, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return patch, fmt.Errorf("invalid value for %s: %s", key, raw)
		}
		switch key {
		case "calories", "kcal":
			patch.Calories = &n
		case "protein":
			patch.ProteinG = &n
		case "carbs":
			patch.CarbsG = &n
		case "fat":
			patch.FatG = &n
		case "water":
			patch.WaterServings = &n
		case "exercise":
			patch.ExerciseMinutes = &n
		default:
			return patch, fmt.Errorf("unknown goal: %s", key)
		}
	}
	return patch, nil
}

// parseProfile applies key=value pairs on top of base.
func parseProfile(args []string, base models.UserProfile) (models.UserProfile, error) {
	p := base
	if len(args) == 0 {
		return p, fmt.Errorf("usage: profile age=N gender=male|female weight=KG height=CM activity=LEVEL goal=lose|maintain|gain")
	}
	for _, arg := range args {
		key, raw, err := splitPair(arg)
		if err != nil {
			return p, err
		}
		switch key {
		case "age":
			n, err := strconv.Atoi(raw)
			if err != nil {
				return p, fmt.Errorf("invalid age: %s", raw)
			}
			p.Age = n
		case "gender":
			p.Gender = models.Gender(strings.ToLower(raw))
		case "weight":
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return p, fmt.Errorf("invalid weight: %s", raw)
			}
			p.WeightKG = f
		case "height":
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return p, fmt.Errorf("invalid height: %s", raw)
			}
			p.HeightCM = f
		case "activity":
			p.ActivityLevel = models.ActivityLevel(strings.ToLower(raw))
		case "goal":
			p.Goal = models.WeightGoal(strings.ToLower(raw))
		default:
			return p, fmt.Errorf("unknown profile field: %s", key)
		}
	}
	return p, nil
}

// baseProfile returns the profile to edit: the current one, or defaults.
func baseProfile(current *models.UserProfile) models.UserProfile {
	if current != nil {
		return *current
	}
	return models.UserProfile{
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalMaintain,
	}
}

// parseDelta reads an optional signed integer, falling back to def.
func parseDelta(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", args[0])
	}
	return n, nil
}

// parseEat reads "<id> [qty] [time]". Quantity defaults to one serving.
func parseEat(args []string, loc *time.Location) (id string, qty float64, at time.Time, err error) {
	if len(args) == 0 {
		return "", 0, time.Time{}, fmt.Errorf("usage: eat <food-id> [servings] [YYYY-MM-DD HH:MM]")
	}
	id, qty = args[0], 1
	rest := args[1:]
	if len(rest) > 0 {
		if q, perr := strconv.ParseFloat(rest[0], 64); perr == nil {
			qty = q
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		at, err = parseTime(strings.Join(rest, " "), loc)
		if err != nil {
			return "", 0, time.Time{}, fmt.Errorf("invalid timestamp: %s", strings.Join(rest, " "))
		}
	}
	return id, qty, at, nil
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}
