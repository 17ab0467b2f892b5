package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidNotificationType = errors.New("model: invalid notification type")

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

func (n NotificationType) IsValid() bool {
	switch n {
	case NotificationInfo, NotificationSuccess, NotificationWarning:
		return true
	default:
		return false
	}
}

// AppNotification is one entry in the in-app notification feed.
type AppNotification struct {
	ID        string
	Message   string
	Timestamp time.Time
	Read      bool
	Type      NotificationType
}

func (n AppNotification) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return errors.New("model: notification id is required")
	}
	if strings.TrimSpace(n.Message) == "" {
		return errors.New("model: notification message is required")
	}
	if n.Timestamp.IsZero() {
		return errors.New("model: notification timestamp is required")
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidNotificationType, n.Type)
	}
	return nil
}

// ProfileStats is the derived, ephemeral statistics bundle shown on the
// profile screen. It is recomputed as a whole; fields are never updated
// independently of one another.
type ProfileStats struct {
	PendingTasks      int
	OverdueTasks      int
	CompletedLast7Day int
	Streak            int
}
