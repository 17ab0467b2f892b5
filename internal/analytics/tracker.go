package analytics

import (
	"fmt"

	"github.com/nishantrao/studyd/internal/model"
)

// OverdueMessage is the warning shown once per overdue task.
func OverdueMessage(t model.StudyTask) string {
	return fmt.Sprintf("Task %q is overdue. Catch up when you can!", t.Topic)
}

// OverdueTracker remembers which overdue task ids have already produced a
// warning, so a task is never re-announced while the plan is unchanged.
// It must be Reset whenever the active plan identity changes.
type OverdueTracker struct {
	seen map[int]bool
}

func NewOverdueTracker() *OverdueTracker {
	return &OverdueTracker{seen: make(map[int]bool)}
}

// Unseen filters tasks down to those not yet announced and marks them seen.
func (tr *OverdueTracker) Unseen(tasks []model.StudyTask) []model.StudyTask {
	var fresh []model.StudyTask
	for _, t := range tasks {
		if tr.seen[t.ID] {
			continue
		}
		tr.seen[t.ID] = true
		fresh = append(fresh, t)
	}
	return fresh
}

func (tr *OverdueTracker) Reset() {
	tr.seen = make(map[int]bool)
}
