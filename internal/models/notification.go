// ABOUTME: Notification model with kind and topic enums.
// ABOUTME: Notifications are created once and only ever flipped to read.
package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies a notification for display.
type NotificationKind string

const (
	KindReminder    NotificationKind = "reminder"
	KindAchievement NotificationKind = "achievement"
	KindWarning     NotificationKind = "warning"
)

// Topic identifies which rule produced a notification.
type Topic string

const (
	TopicBreakfast Topic = "breakfast"
	TopicLunch     Topic = "lunch"
	TopicDinner    Topic = "dinner"
	TopicWater     Topic = "water"
	TopicCalories  Topic = "calorie_goal"
	TopicHydration Topic = "hydration_goal"
)

// TopicMessages maps each topic to its fixed message text.
var TopicMessages = map[Topic]string{
	TopicBreakfast: "Breakfast time! Don't forget to log your meal.",
	TopicLunch:     "Lunch time! Remember to make healthy choices.",
	TopicDinner:    "Dinner time! Log your last meal of the day.",
	TopicWater:     "Time to drink water! Stay hydrated.",
	TopicCalories:  "Congratulations! You are close to your daily calorie goal!",
	TopicHydration: "Hydration goal reached! Excellent work!",
}

// Notification is one entry in the notification feed.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	Topic     Topic            `json:"topic"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}

// NewNotification creates an unread notification for topic with a fresh UUID.
func NewNotification(kind NotificationKind, topic Topic, at time.Time) Notification {
	return Notification{
		ID:        uuid.New(),
		Message:   TopicMessages[topic],
		Kind:      kind,
		Topic:     topic,
		CreatedAt: at,
	}
}
