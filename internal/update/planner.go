package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nishantrao/studyd/internal/gen"
	"github.com/nishantrao/studyd/internal/model"
	"github.com/nishantrao/studyd/internal/plan"
)

func (m Model) handlePlannerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Planner.Generating {
		return m, nil
	}

	if m.Planner.DetailOpen {
		return m.handleDetailKey(msg), nil
	}

	if m.Planner.FormActive {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.Planner.Cursor > 0 {
			m.Planner.Cursor--
		}
	case "down", "j":
		if active, ok := m.activePlan(); ok && m.Planner.Cursor < len(active.Tasks)-1 {
			m.Planner.Cursor++
		}
	case " ":
		if sel, ok := m.currentTask(); ok {
			m.toggleTask(sel.ID)
		}
	case "d", "enter":
		if _, ok := m.currentTask(); ok {
			m.Planner.DetailOpen = true
			m.Planner.SubtaskCursor = 0
		}
	case "i":
		m.Planner.FormActive = true
		m.subjectsInput.Focus()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if _, ok := m.activePlan(); ok {
			m.Planner.FormActive = false
			m.blurFormInputs()
			m.Status = StatusBar{Text: "task list mode", IsError: false}
		}
		return m, nil
	case "tab":
		m.focusNextFormField()
		return m, nil
	case "enter":
		if m.Planner.FormFocus == FieldNotes {
			// Notes are multiline; enter inserts a newline there.
			break
		}
		return m.submitGenerateForm()
	}

	var cmd tea.Cmd
	switch m.Planner.FormFocus {
	case FieldSubjects:
		m.subjectsInput, cmd = m.subjectsInput.Update(msg)
	case FieldDeadline:
		m.deadlineInput, cmd = m.deadlineInput.Update(msg)
	case FieldHours:
		m.hoursInput, cmd = m.hoursInput.Update(msg)
	case FieldNotes:
		m.notesArea, cmd = m.notesArea.Update(msg)
	}
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) Model {
	sel, ok := m.currentTask()
	if !ok {
		m.Planner.DetailOpen = false
		return m
	}
	switch msg.String() {
	case "esc", "d":
		m.Planner.DetailOpen = false
	case "up", "k":
		if m.Planner.SubtaskCursor > 0 {
			m.Planner.SubtaskCursor--
		}
	case "down", "j":
		if m.Planner.SubtaskCursor < len(sel.Subtasks)-1 {
			m.Planner.SubtaskCursor++
		}
	case " ":
		m.toggleSubtask(sel)
	}
	return m
}

func (m *Model) toggleSubtask(sel model.StudyTask) {
	if len(sel.Subtasks) == 0 {
		return
	}
	cursor := m.Planner.SubtaskCursor
	if cursor < 0 || cursor >= len(sel.Subtasks) {
		return
	}
	subtasks := make([]model.Subtask, len(sel.Subtasks))
	copy(subtasks, sel.Subtasks)
	subtasks[cursor].Completed = !subtasks[cursor].Completed
	sel.Subtasks = subtasks

	active, ok := m.activePlan()
	if !ok {
		return
	}
	m.Store.Replace(plan.UpdateTask(active, sel))
	m.recompute()
}

func (m *Model) toggleTask(taskID int) {
	active, ok := m.activePlan()
	if !ok {
		return
	}
	next := plan.ToggleStatus(active, taskID, m.clock())
	m.Store.Replace(next)
	if t, ok := next.TaskByID(taskID); ok && t.Status == model.TaskStatusCompleted {
		m.pushNotification(fmt.Sprintf("Great job! You've completed the task: %q.", t.Topic), model.NotificationSuccess)
	}
	m.recompute()
}

func (m Model) submitGenerateForm() (Model, tea.Cmd) {
	req := gen.Request{
		Subjects:    strings.TrimSpace(m.subjectsInput.Value()),
		Deadline:    strings.TrimSpace(m.deadlineInput.Value()),
		HoursPerDay: strings.TrimSpace(m.hoursInput.Value()),
		Notes:       strings.TrimSpace(m.notesArea.Value()),
	}
	if err := req.Validate(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Planner.Generating = true
	m.Status = StatusBar{Text: "generating study plan", IsError: false}
	return m, tea.Batch(m.genSpinner.Tick, m.generateCmd(req))
}

func (m Model) generateCmd(req gen.Request) tea.Cmd {
	client := m.genClient
	return func() tea.Msg {
		if client == nil {
			return GenerateFailedMsg{Err: gen.ErrUnavailable}
		}
		tasks, err := client.GeneratePlan(context.Background(), req)
		if err != nil {
			return GenerateFailedMsg{Err: err}
		}
		return PlanReadyMsg{Request: req, Tasks: tasks}
	}
}

func (m *Model) focusNextFormField() {
	m.blurFormInputs()
	m.Planner.FormFocus = (m.Planner.FormFocus + 1) % 4
	switch m.Planner.FormFocus {
	case FieldSubjects:
		m.subjectsInput.Focus()
	case FieldDeadline:
		m.deadlineInput.Focus()
	case FieldHours:
		m.hoursInput.Focus()
	case FieldNotes:
		m.notesArea.Focus()
	}
}

func (m *Model) blurFormInputs() {
	m.subjectsInput.Blur()
	m.deadlineInput.Blur()
	m.hoursInput.Blur()
	m.notesArea.Blur()
}
