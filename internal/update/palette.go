package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nishantrao/studyd/internal/commands"
	"github.com/nishantrao/studyd/internal/gen"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m, nil
	}

	var teaCmd tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Generate: func(a commands.GenerateArgs) (commands.Result, error) {
			req := gen.Request{
				Subjects:    a.Subjects,
				Deadline:    a.Deadline,
				HoursPerDay: a.Hours,
				Notes:       a.Notes,
			}
			if err := req.Validate(); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.CurrentView = ViewPlanner
			m.Planner.Generating = true
			teaCmd = tea.Batch(m.genSpinner.Tick, m.generateCmd(req))
			return commands.Result{Message: "generating study plan"}, nil
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			active, ok := m.activePlan()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active plan"}
			}
			if _, ok := active.TaskByID(a.TaskID); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown task id: %d", a.TaskID)}
			}
			m.toggleTask(a.TaskID)
			return commands.Result{Message: fmt.Sprintf("toggled task %d", a.TaskID)}, nil
		},
		Plan: func(a commands.PlanArgs) (commands.Result, error) {
			if _, ok := m.Store.Get(a.PlanID); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown plan: %s", a.PlanID)}
			}
			m.activatePlan(a.PlanID)
			m.CurrentView = ViewPlanner
			return commands.Result{Message: fmt.Sprintf("switched to plan %s", a.PlanID)}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			active, ok := m.activePlan()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active plan"}
			}
			for i, t := range active.Tasks {
				if strings.EqualFold(t.Subject, a.Subject) {
					m.CurrentView = ViewPlanner
					m.Planner.FormActive = false
					m.Planner.Cursor = i
					return commands.Result{Message: fmt.Sprintf("showing %s", t.Subject)}, nil
				}
			}
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no tasks for subject %q", a.Subject)}
		},
		Notifications: func(a commands.NotificationsArgs) (commands.Result, error) {
			switch a.Action {
			case "clear":
				m.Center.ClearAll()
				return commands.Result{Message: "notifications cleared"}, nil
			default:
				for _, n := range m.Center.All() {
					m.Center.MarkRead(n.ID)
				}
				return commands.Result{Message: "notifications marked read"}, nil
			}
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.closePalette()
	return m, teaCmd
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}
