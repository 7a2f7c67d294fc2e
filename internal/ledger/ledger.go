// ABOUTME: Intake ledger of consumed food plus water and exercise counters.
// ABOUTME: Aggregates by local calendar day; not safe for concurrent use on its own.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/nutri/internal/models"
)

// ErrInvalidQuantity is returned when a food quantity is not positive.
var ErrInvalidQuantity = errors.New("ledger: quantity must be positive")

// Ledger owns every ConsumedEntry and the two activity counters. Callers
// serialize access; the session holds the lock.
type Ledger struct {
	loc      *time.Location
	entries  []models.ConsumedEntry
	water    int
	exercise int
}

// New creates an empty ledger that buckets days in loc. A nil loc means
// time.Local.
func New(loc *time.Location) *Ledger {
	if loc == nil {
		loc = time.Local
	}
	return &Ledger{loc: loc}
}

// Location returns the time zone used for calendar-day bucketing.
func (l *Ledger) Location() *time.Location {
	return l.loc
}

// RecordFood appends an entry. The ledger is unchanged on error.
func (l *Ledger) RecordFood(food models.FoodItem, quantity float64, at time.Time) (models.ConsumedEntry, error) {
	if !(quantity > 0) {
		return models.ConsumedEntry{}, fmt.Errorf("%w: %g", ErrInvalidQuantity, quantity)
	}
	e := models.ConsumedEntry{Food: food, Quantity: quantity, ConsumedAt: at}
	l.entries = append(l.entries, e)
	return e, nil
}

// AdjustWater adds delta servings, flooring the counter at 0.
func (l *Ledger) AdjustWater(delta int) int {
	l.water = max(l.water+delta, 0)
	return l.water
}

// AdjustExercise adds delta minutes, flooring the counter at 0.
func (l *Ledger) AdjustExercise(delta int) int {
	l.exercise = max(l.exercise+delta, 0)
	return l.exercise
}

// Water returns the current water servings.
func (l *Ledger) Water() int { return l.water }

// Exercise returns the current exercise minutes.
func (l *Ledger) Exercise() int { return l.exercise }

// TodayEntries returns entries on the same calendar day as now, in
// insertion order.
func (l *Ledger) TodayEntries(now time.Time) []models.ConsumedEntry {
	var out []models.ConsumedEntry
	for _, e := range l.entries {
		if SameDay(e.ConsumedAt, now, l.loc) {
			out = append(out, e)
		}
	}
	return out
}

// TodayTotals sums the macros of TodayEntries(now).
func (l *Ledger) TodayTotals(now time.Time) models.MacroTotals {
	var totals models.MacroTotals
	for _, e := range l.entries {
		if SameDay(e.ConsumedAt, now, l.loc) {
			totals = totals.Add(e)
		}
	}
	return totals
}

// Len returns the number of entries ever recorded.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// SameDay reports whether a and b share year, month, and day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DayKey formats t's calendar date in loc as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
