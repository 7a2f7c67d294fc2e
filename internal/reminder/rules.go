// ABOUTME: Time-of-day reminder rules and the re-firing policy.
// ABOUTME: Due is pure; Planner applies the configured de-duplication policy.
package reminder

import (
	"fmt"
	"time"

	"github.com/harperreed/nutri/internal/ledger"
	"github.com/harperreed/nutri/internal/models"
)

// Meal hours in local time.
const (
	BreakfastHour = 8
	LunchHour     = 12
	DinnerHour    = 19
)

// Policy controls whether a reminder fires on every tick of its hour.
type Policy string

const (
	// PolicyEveryTick emits a reminder on every tick while its condition
	// holds, so a meal reminder repeats for the whole matching hour.
	PolicyEveryTick Policy = "every_tick"
	// PolicyOncePerHour emits each topic at most once per calendar day and
	// hour slot.
	PolicyOncePerHour Policy = "once_per_hour"
)

// IsValid reports whether p is a known policy.
func (p Policy) IsValid() bool {
	return p == PolicyEveryTick || p == PolicyOncePerHour
}

// ParsePolicy converts s to a Policy. Empty means PolicyEveryTick.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return PolicyEveryTick, nil
	}
	p := Policy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown reminder policy: %q", s)
	}
	return p, nil
}

// Due returns the reminder topics whose condition holds at hour, in
// breakfast, lunch, dinner, water order.
func Due(hour, water, waterGoal int) []models.Topic {
	var topics []models.Topic
	switch hour {
	case BreakfastHour:
		topics = append(topics, models.TopicBreakfast)
	case LunchHour:
		topics = append(topics, models.TopicLunch)
	case DinnerHour:
		topics = append(topics, models.TopicDinner)
	}
	if hour%2 == 0 && water < waterGoal {
		topics = append(topics, models.TopicWater)
	}
	return topics
}

// Planner turns due topics into notifications under a policy.
type Planner struct {
	policy Policy
	loc    *time.Location
	day    string
	fired  map[string]struct{}
}

// NewPlanner creates a planner. A nil loc means time.Local; an invalid
// policy means PolicyEveryTick.
func NewPlanner(policy Policy, loc *time.Location) *Planner {
	if loc == nil {
		loc = time.Local
	}
	if !policy.IsValid() {
		policy = PolicyEveryTick
	}
	return &Planner{policy: policy, loc: loc, fired: make(map[string]struct{})}
}

// Policy returns the active policy.
func (p *Planner) Policy() Policy {
	return p.policy
}

// Plan returns the reminders to emit at now.
func (p *Planner) Plan(now time.Time, water, waterGoal int) []models.Notification {
	local := now.In(p.loc)
	topics := Due(local.Hour(), water, waterGoal)

	if p.policy == PolicyOncePerHour {
		day := ledger.DayKey(now, p.loc)
		if day != p.day {
			p.day = day
			clear(p.fired)
		}
	}

	var out []models.Notification
	for _, topic := range topics {
		if p.policy == PolicyOncePerHour {
			key := fmt.Sprintf("%s|%d", topic, local.Hour())
			if _, seen := p.fired[key]; seen {
				continue
			}
			p.fired[key] = struct{}{}
		}
		out = append(out, models.NewNotification(models.KindReminder, topic, now))
	}
	return out
}
