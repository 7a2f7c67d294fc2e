// ABOUTME: Tests for the notification feed.
// ABOUTME: Covers ordering, read flags, and unknown-ID handling.
package feed

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nutri/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(topic models.Topic) models.Notification {
	return models.NewNotification(models.KindReminder, topic, time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC))
}

func TestPrependMostRecentFirst(t *testing.T) {
	f := New()
	first := note(models.TopicBreakfast)
	f.Prepend(first)

	lunch, water := note(models.TopicLunch), note(models.TopicWater)
	f.Prepend(lunch, water)

	all := f.All()
	require.Len(t, all, 3)
	assert.Equal(t, lunch.ID, all[0].ID)
	assert.Equal(t, water.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)
}

func TestMarkRead(t *testing.T) {
	f := New()
	a, b := note(models.TopicLunch), note(models.TopicDinner)
	f.Prepend(a, b)

	assert.True(t, f.MarkRead(a.ID))
	assert.Equal(t, 1, f.UnreadCount())
	assert.True(t, f.All()[0].Read)
	assert.False(t, f.All()[1].Read)
}

func TestMarkReadUnknownIsNoop(t *testing.T) {
	f := New()
	f.Prepend(note(models.TopicWater))

	assert.NotPanics(t, func() {
		assert.False(t, f.MarkRead(uuid.New()))
	})
	assert.Equal(t, 1, f.UnreadCount())
}

func TestMarkAllReadIdempotent(t *testing.T) {
	f := New()
	f.Prepend(note(models.TopicLunch), note(models.TopicWater))

	f.MarkAllRead()
	assert.Equal(t, 0, f.UnreadCount())
	f.MarkAllRead()
	assert.Equal(t, 0, f.UnreadCount())
	assert.Equal(t, 2, f.Len())
}

func TestAllReturnsCopy(t *testing.T) {
	f := New()
	f.Prepend(note(models.TopicLunch))
	f.All()[0].Read = true
	assert.Equal(t, 1, f.UnreadCount())
}

func TestEmptyPrependIsNoop(t *testing.T) {
	f := New()
	f.Prepend()
	assert.Equal(t, 0, f.Len())
}
