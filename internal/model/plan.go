package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var ErrInvalidDeadline = errors.New("model: invalid plan deadline")

// StudyPlan is a named, deadline-bounded collection of tasks. Task order is
// significant: the distributor consumes tasks in this order. The tasks slice
// is replaced wholesale on every mutation; callers must never append to it
// in place.
type StudyPlan struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Deadline  string
	Tasks     []StudyTask
}

func (p StudyPlan) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("model: plan id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("model: plan title is required")
	}
	if p.CreatedAt.IsZero() {
		return errors.New("model: plan created_at is required")
	}
	if _, err := p.DeadlineDate(); err != nil {
		return err
	}
	for _, task := range p.Tasks {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("task %d: %w", task.ID, err)
		}
	}
	return nil
}

// DeadlineDate parses the inclusive ISO deadline in local time.
func (p StudyPlan) DeadlineDate() (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", p.Deadline, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeadline, p.Deadline)
	}
	return d, nil
}

// CompletedCount reports how many tasks are completed.
func (p StudyPlan) CompletedCount() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Status == TaskStatusCompleted {
			n++
		}
	}
	return n
}

// Progress is the whole-plan completion percentage.
func (p StudyPlan) Progress() int {
	if len(p.Tasks) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.CompletedCount()) / float64(len(p.Tasks))))
}

// TaskByID returns the task with the given id, if present.
func (p StudyPlan) TaskByID(id int) (StudyTask, bool) {
	for _, t := range p.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return StudyTask{}, false
}
