package update

import (
	"github.com/nishantrao/studyd/internal/analytics"
	"github.com/nishantrao/studyd/internal/model"
	"github.com/nishantrao/studyd/internal/reminder"
	"github.com/nishantrao/studyd/internal/schedule"
)

// recompute rebuilds every derived structure from the active plan with a
// single now. Schedule, pending reminders, and stats always describe the
// same snapshot; no message handler leaves them half-updated.
func (m *Model) recompute() {
	now := m.clock()

	active, ok := m.Store.Active()
	if !ok {
		m.Schedule = schedule.Schedule{}
		m.Stats = model.ProfileStats{}
		m.Overdue = nil
		if m.Engine != nil {
			m.Engine.CancelAll()
		}
		m.activePlanID = ""
		m.tracker.Reset()
		return
	}

	if active.ID != m.activePlanID {
		m.tracker.Reset()
		m.activePlanID = active.ID
	}

	m.Schedule = schedule.Build(&active, now)
	if m.Engine != nil {
		reminder.Reschedule(m.Engine, m.Schedule, now)
	}

	report := analytics.Compute(active.Tasks, m.Schedule, now)
	m.Stats = report.Stats
	m.Overdue = report.Overdue
	for _, t := range m.tracker.Unseen(report.Overdue) {
		m.pushNotification(analytics.OverdueMessage(t), model.NotificationWarning)
	}
}

func (m Model) activePlan() (model.StudyPlan, bool) {
	if m.Store == nil {
		return model.StudyPlan{}, false
	}
	return m.Store.Active()
}

func (m Model) currentTask() (model.StudyTask, bool) {
	active, ok := m.activePlan()
	if !ok || len(active.Tasks) == 0 {
		return model.StudyTask{}, false
	}
	if m.Planner.Cursor < 0 || m.Planner.Cursor >= len(active.Tasks) {
		return model.StudyTask{}, false
	}
	return active.Tasks[m.Planner.Cursor], true
}
