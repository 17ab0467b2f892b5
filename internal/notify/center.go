// Package notify holds the in-app notification feed and the best-effort
// desktop notification sink.
package notify

import (
	"time"

	"github.com/google/uuid"
	"github.com/nishantrao/studyd/internal/model"
)

// MaxEntries caps the feed; the oldest entry is evicted first.
const MaxEntries = 50

// Center is the append-only, newest-first notification feed.
type Center struct {
	entries []model.AppNotification
}

func NewCenter() *Center {
	return &Center{}
}

// Add prepends a notification and evicts beyond the cap.
func (c *Center) Add(message string, typ model.NotificationType, now time.Time) model.AppNotification {
	n := model.AppNotification{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: now,
		Type:      typ,
	}
	c.entries = append([]model.AppNotification{n}, c.entries...)
	if len(c.entries) > MaxEntries {
		c.entries = c.entries[:MaxEntries]
	}
	return n
}

// All returns the feed, newest first.
func (c *Center) All() []model.AppNotification {
	out := make([]model.AppNotification, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Center) Len() int {
	return len(c.entries)
}

// Unread counts entries not yet marked read.
func (c *Center) Unread() int {
	n := 0
	for _, e := range c.entries {
		if !e.Read {
			n++
		}
	}
	return n
}

// MarkRead flags one entry by id. Unknown ids are ignored.
func (c *Center) MarkRead(id string) {
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries[i].Read = true
			return
		}
	}
}

// ClearAll empties the feed.
func (c *Center) ClearAll() {
	c.entries = nil
}
