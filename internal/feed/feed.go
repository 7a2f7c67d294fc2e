// ABOUTME: Notification feed ordered most recent first.
// ABOUTME: Entries are never removed; only the read flag changes.
package feed

import (
	"github.com/google/uuid"
	"github.com/harperreed/nutri/internal/models"
)

// Feed is an ordered collection of notifications. Callers serialize access.
type Feed struct {
	items []models.Notification
}

// New creates an empty feed.
func New() *Feed {
	return &Feed{}
}

// Prepend puts batch at the front of the feed, keeping batch order.
func (f *Feed) Prepend(batch ...models.Notification) {
	if len(batch) == 0 {
		return
	}
	items := make([]models.Notification, 0, len(batch)+len(f.items))
	items = append(items, batch...)
	f.items = append(items, f.items...)
}

// All returns a copy of every notification, most recent first.
func (f *Feed) All() []models.Notification {
	out := make([]models.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// MarkRead flags one notification as read. Unknown IDs are ignored.
func (f *Feed) MarkRead(id uuid.UUID) bool {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flags every current notification as read.
func (f *Feed) MarkAllRead() {
	for i := range f.items {
		f.items[i].Read = true
	}
}

// UnreadCount returns how many notifications are unread.
func (f *Feed) UnreadCount() int {
	n := 0
	for _, item := range f.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// Any reports whether some notification satisfies match.
func (f *Feed) Any(match func(models.Notification) bool) bool {
	for _, item := range f.items {
		if match(item) {
			return true
		}
	}
	return false
}

// Len returns the number of notifications.
func (f *Feed) Len() int {
	return len(f.items)
}
