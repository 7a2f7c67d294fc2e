// ABOUTME: FoodItem reference data and ConsumedEntry ledger records.
// ABOUTME: Also defines MacroTotals, the per-day aggregate of consumed food.
package models

import "time"

// FoodItem is one read-only catalog entry. Macros are per serving.
type FoodItem struct {
	ID                 string  `json:"id" yaml:"id"`
	Name               string  `json:"name" yaml:"name"`
	CaloriesPerServing float64 `json:"calories" yaml:"calories"`
	ProteinG           float64 `json:"protein_g" yaml:"protein_g"`
	CarbsG             float64 `json:"carbs_g" yaml:"carbs_g"`
	FatG               float64 `json:"fat_g" yaml:"fat_g"`
	ServingDescription string  `json:"serving" yaml:"serving"`
}

// ConsumedEntry records a quantity of servings eaten at a point in time.
type ConsumedEntry struct {
	Food       FoodItem  `json:"food"`
	Quantity   float64   `json:"quantity"`
	ConsumedAt time.Time `json:"consumed_at"`
}

// Calories returns the calories contributed by this entry.
func (e ConsumedEntry) Calories() float64 {
	return e.Food.CaloriesPerServing * e.Quantity
}

// MacroTotals is a sum of calories and macronutrients.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Add accumulates one entry into the totals.
func (t MacroTotals) Add(e ConsumedEntry) MacroTotals {
	return MacroTotals{
		Calories: t.Calories + e.Food.CaloriesPerServing*e.Quantity,
		ProteinG: t.ProteinG + e.Food.ProteinG*e.Quantity,
		CarbsG:   t.CarbsG + e.Food.CarbsG*e.Quantity,
		FatG:     t.FatG + e.Food.FatG*e.Quantity,
	}
}
