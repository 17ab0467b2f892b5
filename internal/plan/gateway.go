// Package plan owns every transition of task status, progress, and
// completion timestamps. All mutations are copy-on-write: a fresh task
// slice per change, untouched tasks carried over unchanged, so consumers
// can rely on identity for change detection.
package plan

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nishantrao/studyd/internal/model"
)

// New assembles a plan around a generated task list. The title falls back
// to the first comma-separated subject.
func New(title, deadline string, tasks []model.StudyTask, now time.Time) model.StudyPlan {
	title = strings.TrimSpace(strings.Split(title, ",")[0])
	if title == "" {
		title = "New Study Plan"
	}
	owned := make([]model.StudyTask, len(tasks))
	copy(owned, tasks)
	return model.StudyPlan{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		Deadline:  deadline,
		Tasks:     owned,
	}
}

// ToggleStatus flips one task between pending and completed. Completing
// stamps completedAt and forces progress to 100; reverting clears
// completedAt but keeps progress, so a manual regression never erases
// recorded work. An unknown id is a no-op, not an error.
func ToggleStatus(p model.StudyPlan, taskID int, now time.Time) model.StudyPlan {
	return replaceTasks(p, func(t model.StudyTask) model.StudyTask {
		if t.ID != taskID {
			return t
		}
		if t.Status == model.TaskStatusPending {
			t.Status = model.TaskStatusCompleted
			t.Progress = 100
			done := now
			t.CompletedAt = &done
		} else {
			t.Status = model.TaskStatusPending
			t.CompletedAt = nil
		}
		return t
	})
}

// UpdateTask replaces one task wholesale, recomputing progress from its
// subtasks when it has any. With no subtasks the provided progress stands.
func UpdateTask(p model.StudyPlan, updated model.StudyTask) model.StudyPlan {
	if len(updated.Subtasks) > 0 {
		updated.Progress = SubtaskProgress(updated.Subtasks)
	}
	return replaceTasks(p, func(t model.StudyTask) model.StudyTask {
		if t.ID != updated.ID {
			return t
		}
		return updated
	})
}

// SubtaskProgress is the rounded completion percentage of a subtask list.
func SubtaskProgress(subtasks []model.Subtask) int {
	if len(subtasks) == 0 {
		return 0
	}
	done := 0
	for _, s := range subtasks {
		if s.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(subtasks))))
}

func replaceTasks(p model.StudyPlan, f func(model.StudyTask) model.StudyTask) model.StudyPlan {
	tasks := make([]model.StudyTask, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = f(t)
	}
	p.Tasks = tasks
	return p
}
