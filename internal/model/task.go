package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidProgress = errors.New("model: progress must be between 0 and 100")
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Subtask is one checklist entry inside a StudyTask. The ID is unique
// within the parent task only.
type Subtask struct {
	ID        int
	Text      string
	Completed bool
}

// StudyTask is one generated unit of work. IDs are zero-based and assigned
// in creation order within a plan. The Day label is informational only;
// scheduling derives dates from the plan deadline, never from Day.
type StudyTask struct {
	ID          int
	Status      TaskStatus
	Day         string
	TimeSlot    string
	Subject     string
	Topic       string
	Task        string
	Description string
	Progress    int
	Subtasks    []Subtask
	CompletedAt *time.Time
	ImageRef    string
}

func (t StudyTask) Validate() error {
	if t.ID < 0 {
		return errors.New("model: task id must not be negative")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if strings.TrimSpace(t.Subject) == "" {
		return errors.New("model: task subject is required")
	}
	if strings.TrimSpace(t.Topic) == "" {
		return errors.New("model: task topic is required")
	}
	if strings.TrimSpace(t.TimeSlot) == "" {
		return errors.New("model: task time slot is required")
	}
	if t.Progress < 0 || t.Progress > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidProgress, t.Progress)
	}
	if t.Status == TaskStatusCompleted && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task status is completed")
	}
	if t.Status == TaskStatusPending && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task status is pending")
	}
	return nil
}
