package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handlePlansKey(msg tea.KeyMsg) Model {
	listed := m.Store.List()
	switch msg.String() {
	case "up", "k":
		if m.Plans.Cursor > 0 {
			m.Plans.Cursor--
		}
	case "down", "j":
		if m.Plans.Cursor < len(listed)-1 {
			m.Plans.Cursor++
		}
	case "enter":
		if m.Plans.Cursor >= 0 && m.Plans.Cursor < len(listed) {
			m.activatePlan(listed[m.Plans.Cursor].ID)
		}
	}
	return m
}

// activatePlan switches the whole app to another plan: schedule, pending
// reminders, and stats all follow in one recompute.
func (m *Model) activatePlan(id string) {
	if !m.Store.SetActive(id) {
		m.Status = StatusBar{Text: fmt.Sprintf("unknown plan: %s", id), IsError: true}
		return
	}
	m.Planner.Cursor = 0
	m.Planner.DetailOpen = false
	m.Calendar = CalendarState{}
	m.recompute()
	if active, ok := m.activePlan(); ok {
		m.Status = StatusBar{Text: fmt.Sprintf("active plan: %s", active.Title), IsError: false}
	}
}
