package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nishantrao/studyd/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	days := m.Schedule.Days()
	switch msg.String() {
	case "h", "left":
		if m.Calendar.DayCursor > 0 {
			m.Calendar.DayCursor--
			m.Calendar.TaskCursor = 0
			m.announceCalendarFocus()
		}
	case "l", "right":
		if m.Calendar.DayCursor < len(days)-1 {
			m.Calendar.DayCursor++
			m.Calendar.TaskCursor = 0
			m.announceCalendarFocus()
		}
	case "up", "k":
		if m.Calendar.TaskCursor > 0 {
			m.Calendar.TaskCursor--
		}
	case "down", "j":
		if tasks, ok := m.calendarDayTasks(); ok && m.Calendar.TaskCursor < len(tasks)-1 {
			m.Calendar.TaskCursor++
		}
	case " ":
		if tasks, ok := m.calendarDayTasks(); ok && m.Calendar.TaskCursor < len(tasks) {
			m.toggleTask(tasks[m.Calendar.TaskCursor].ID)
		}
	}
	return m
}

func (m *Model) announceCalendarFocus() {
	if date := m.selectedDate(); date != "" {
		m.Status = StatusBar{Text: fmt.Sprintf("calendar focus: %s", date), IsError: false}
	}
}

func (m Model) calendarDayTasks() ([]model.StudyTask, bool) {
	date := m.selectedDate()
	if date == "" {
		return nil, false
	}
	tasks := m.Schedule.TasksOn(date)
	if len(tasks) == 0 {
		return nil, false
	}
	return tasks, true
}

func (m *Model) ensureCalendarState() {
	days := m.Schedule.Days()
	if m.Calendar.DayCursor < 0 {
		m.Calendar.DayCursor = 0
	}
	if m.Calendar.DayCursor >= len(days) && len(days) > 0 {
		m.Calendar.DayCursor = len(days) - 1
	}
	if m.Calendar.TaskCursor < 0 {
		m.Calendar.TaskCursor = 0
	}
}
