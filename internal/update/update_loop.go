package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nishantrao/studyd/internal/model"
	"github.com/nishantrao/studyd/internal/plan"
	"github.com/nishantrao/studyd/internal/reminder"
	"github.com/nishantrao/studyd/internal/views"
)

func (m Model) Init() tea.Cmd {
	m.pushNotification("Welcome back! Let's get your study session organized.", model.NotificationInfo)
	if m.Engine != nil {
		return waitForReminderCmd(m.Engine.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

// update holds the real message handling. It returns a concrete Model so
// the widgets can be synced on the value that actually leaves Update.
func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureCalendarState()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		if m.PanelOpen {
			return m.handlePanelKey(typed), nil
		}

		keyStr := typed.String()
		if m.CurrentView == ViewPlanner && m.Planner.FormActive && typed.Type == tea.KeyRunes &&
			keyStr != m.Keys.Quit && keyStr != m.Keys.Help && keyStr != "/" {
			return m.handlePlannerKey(typed)
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Planner:
			m.CurrentView = ViewPlanner
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Plans:
			m.CurrentView = ViewPlans
			return m, nil
		case m.Keys.Profile:
			m.CurrentView = ViewProfile
			return m, nil
		case m.Keys.Focus:
			m.CurrentView = ViewFocus
			return m, nil
		case m.Keys.Notifications:
			m.PanelOpen = true
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewPlanner:
			return m.handlePlannerKey(typed)
		case ViewCalendar:
			return m.handleCalendarKey(typed), nil
		case ViewPlans:
			return m.handlePlansKey(typed), nil
		case ViewFocus:
			return m.handleFocusKey(typed)
		}
	case spinner.TickMsg:
		if m.Planner.Generating {
			var cmd tea.Cmd
			m.genSpinner, cmd = m.genSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case PlanReadyMsg:
		m.Planner.Generating = false
		next := plan.New(typed.Request.Subjects, typed.Request.Deadline, typed.Tasks, m.clock())
		m.Store.Save(next)
		m.Planner.FormActive = false
		m.Planner.Cursor = 0
		m.blurFormInputs()
		m.recompute()
		m.pushNotification(fmt.Sprintf("Successfully generated a new study plan for %q.", next.Title), model.NotificationSuccess)
		m.Status = StatusBar{Text: fmt.Sprintf("plan ready: %s", next.Title), IsError: false}
		return m, nil
	case GenerateFailedMsg:
		m.Planner.Generating = false
		m.LastError = typed.Err
		m.Status = StatusBar{Text: fmt.Sprintf("generation failed: %v, try again", typed.Err), IsError: true}
		return m, nil
	case ReminderDueMsg:
		ev := typed.Event
		m.Center.Add(fmt.Sprintf("%s %s", ev.Title(), ev.Body()), model.NotificationInfo, m.clock())
		m.pushDesktop(ev.Title(), ev.Body())
		m.Status = StatusBar{Text: fmt.Sprintf("reminder: %s", ev.Title()), IsError: false}
		if m.Engine != nil {
			return m, waitForReminderCmd(m.Engine.C())
		}
		return m, nil
	case FocusTickMsg:
		return m.onFocusTick()
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewPlanner:
		leftPane = m.renderPlannerView()
		rightPane = strings.TrimSpace(m.renderTaskDetail() + m.renderCommandPalette() + m.renderHelpIfVisible())
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderHelpIfVisible()
	case ViewPlans:
		leftPane = m.renderPlansView()
		rightPane = m.renderHelpIfVisible()
	case ViewProfile:
		leftPane = m.renderProfileView()
		rightPane = m.renderHelpIfVisible()
	case ViewFocus:
		leftPane = m.renderFocusView()
		rightPane = m.renderHelpIfVisible()
	}

	notificationView := ""
	if m.PanelOpen {
		notificationView = m.renderNotificationPanel()
	} else if unread := m.Center.Unread(); unread > 0 {
		notificationView = fmt.Sprintf("unread notifications: %d (press %s)", unread, m.Keys.Notifications)
	}

	title := "(no plan)"
	if active, ok := m.activePlan(); ok {
		title = active.Title
	}
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("studyd | view: %s | plan: %s", m.CurrentView, title),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: notificationView,
		Footer: fmt.Sprintf("keys: %s planner | %s cal | %s plans | %s profile | %s focus | %s notif | / cmd | %s help | %s quit",
			m.Keys.Planner, m.Keys.Calendar, m.Keys.Plans, m.Keys.Profile, m.Keys.Focus, m.Keys.Notifications, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) handlePanelKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc", m.Keys.Notifications:
		m.PanelOpen = false
	case "enter":
		for _, n := range m.Center.All() {
			m.Center.MarkRead(n.ID)
		}
	case "x":
		m.Center.ClearAll()
	}
	return m
}

func waitForReminderCmd(ch <-chan reminder.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewPlanner, ViewCalendar, ViewPlans, ViewProfile, ViewFocus:
		return true
	default:
		return false
	}
}
