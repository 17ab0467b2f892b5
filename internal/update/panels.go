package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/nishantrao/studyd/internal/model"
	"github.com/nishantrao/studyd/internal/views"
)

// pushNotification appends to the in-app feed and mirrors to the desktop
// sink when enabled. Desktop failures are swallowed; the feed is the
// source of truth.
func (m *Model) pushNotification(message string, typ model.NotificationType) {
	if strings.TrimSpace(message) == "" {
		return
	}
	m.Center.Add(message, typ, m.clock())
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send("studyd", message)
	}
}

func (m *Model) pushDesktop(title, body string) {
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(title, body)
	}
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationPanel() string {
	items := make([]views.NotificationItemData, 0, m.Center.Len())
	for _, n := range m.Center.All() {
		items = append(items, views.NotificationItemData{
			Message:   n.Message,
			Timestamp: n.Timestamp.Format("15:04"),
			Read:      n.Read,
			Type:      string(n.Type),
		})
	}
	return views.RenderNotificationPanel(views.NotificationPanelData{
		Active: m.PanelOpen,
		Unread: m.Center.Unread(),
		Items:  items,
	})
}

func (m Model) renderPlannerView() string {
	data := views.PlannerPanelData{
		FormView:    m.renderFormView(),
		SpinnerView: m.genSpinner.View(),
		Generating:  m.Planner.Generating,
		ListView:    m.taskList.View(),
	}
	if active, ok := m.activePlan(); ok {
		data.PlanTitle = active.Title
		data.PlanProgress = active.Progress()
		data.ProgressView = m.planProgress.ViewAs(float64(active.Progress()) / 100)
		tasks := make([]views.PlannerTaskData, 0, len(active.Tasks))
		for _, t := range active.Tasks {
			tasks = append(tasks, views.PlannerTaskData{
				ID:       t.ID,
				Status:   string(t.Status),
				TimeSlot: t.TimeSlot,
				Subject:  t.Subject,
				Topic:    t.Topic,
				Progress: t.Progress,
			})
		}
		data.Tasks = tasks
		if sel, ok := m.currentTask(); ok {
			data.SelectedID = sel.ID
		}
	}
	return views.RenderPlannerPanel(data)
}

func (m Model) renderFormView() string {
	return strings.Join([]string{
		m.subjectsInput.View(),
		m.deadlineInput.View(),
		m.hoursInput.View(),
		m.notesArea.View(),
	}, "\n")
}

func (m Model) renderCalendarView() string {
	days := make([]views.CalendarDayData, 0, m.Schedule.Len())
	for _, day := range m.Schedule.Days() {
		tasks := make([]views.CalendarDayTaskData, 0, len(day.Tasks))
		for _, t := range day.Tasks {
			tasks = append(tasks, views.CalendarDayTaskData{
				ID:       t.ID,
				TimeSlot: t.TimeSlot,
				Subject:  t.Subject,
				Topic:    t.Topic,
				Status:   string(t.Status),
			})
		}
		days = append(days, views.CalendarDayData{Date: day.Date, Tasks: tasks})
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		TableView:    m.calendarTable.View(),
		Days:         days,
		SelectedDate: m.selectedDate(),
	})
}

func (m Model) renderPlansView() string {
	plans := make([]views.PlanSummaryData, 0, m.Store.Len())
	activeID := ""
	if active, ok := m.activePlan(); ok {
		activeID = active.ID
	}
	for _, p := range m.Store.List() {
		plans = append(plans, views.PlanSummaryData{
			ID:       p.ID,
			Title:    p.Title,
			Deadline: p.Deadline,
			Progress: p.Progress(),
			Active:   p.ID == activeID,
		})
	}
	return views.RenderPlansPanel(views.PlansPanelData{
		ListView: m.planList.View(),
		Plans:    plans,
	})
}

func (m Model) renderProfileView() string {
	topics := make([]string, 0, len(m.Overdue))
	for _, t := range m.Overdue {
		topics = append(topics, t.Topic)
	}
	return views.RenderProfilePanel(views.ProfilePanelData{
		Pending:        m.Stats.PendingTasks,
		Overdue:        m.Stats.OverdueTasks,
		CompletedLast7: m.Stats.CompletedLast7Day,
		Streak:         m.Stats.Streak,
		OverdueTopics:  topics,
	})
}

func (m Model) renderFocusView() string {
	total := m.currentFocusTotal()
	pct := 0
	if total > 0 {
		pct = 100 * (total - m.Focus.RemainingSec) / total
	}
	return views.RenderFocusPanel(views.FocusPanelData{
		Phase:        string(m.Focus.Phase),
		Timer:        formatDuration(m.Focus.RemainingSec),
		ProgressView: m.focusProgress.ViewAs(float64(pct) / 100),
		ProgressPct:  pct,
		Sessions:     m.Focus.CompletedSessions,
		Running:      m.Focus.Running,
	})
}

func (m Model) renderTaskDetail() string {
	sel, ok := m.currentTask()
	if !ok || !m.Planner.DetailOpen {
		return ""
	}
	date := ""
	if d, ok := m.Schedule.DateOf(sel.ID); ok {
		date = d
	}
	subtasks := make([]views.SubtaskData, 0, len(sel.Subtasks))
	for _, st := range sel.Subtasks {
		subtasks = append(subtasks, views.SubtaskData{Text: st.Text, Completed: st.Completed})
	}
	return views.RenderTaskDetail(views.TaskDetailData{
		ID:              sel.ID,
		Subject:         sel.Subject,
		Topic:           sel.Topic,
		Task:            sel.Task,
		Day:             date,
		TimeSlot:        sel.TimeSlot,
		Progress:        sel.Progress,
		DescriptionView: m.descViewport.View(),
		Subtasks:        subtasks,
		SelectedSubtask: m.Planner.SubtaskCursor,
	})
}

func (m Model) selectedDate() string {
	days := m.Schedule.Days()
	if len(days) == 0 {
		return ""
	}
	cursor := m.Calendar.DayCursor
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(days) {
		cursor = len(days) - 1
	}
	return days[cursor].Date
}

func (m *Model) syncBubbleData() {
	taskItems := make([]list.Item, 0)
	if active, ok := m.activePlan(); ok {
		for _, t := range active.Tasks {
			desc := fmt.Sprintf("%s | %d%%", t.TimeSlot, t.Progress)
			taskItems = append(taskItems, listItem{title: fmt.Sprintf("%s - %s", t.Subject, t.Topic), description: desc})
		}
	}
	m.taskList.SetItems(taskItems)
	if len(taskItems) > 0 && m.Planner.Cursor < len(taskItems) {
		m.taskList.Select(m.Planner.Cursor)
	}

	planItems := make([]list.Item, 0, m.Store.Len())
	for _, p := range m.Store.List() {
		planItems = append(planItems, listItem{title: p.Title, description: fmt.Sprintf("due %s | %d%%", p.Deadline, p.Progress())})
	}
	m.planList.SetItems(planItems)
	if len(planItems) > 0 && m.Plans.Cursor < len(planItems) {
		m.planList.Select(m.Plans.Cursor)
	}

	rows := make([]table.Row, 0)
	for _, day := range m.Schedule.Days() {
		for _, t := range day.Tasks {
			rows = append(rows, table.Row{day.Date, t.TimeSlot, t.Subject, t.Topic})
		}
	}
	m.calendarTable.SetRows(rows)

	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if sel, ok := m.currentTask(); ok {
		md := sel.Description
		if strings.TrimSpace(md) == "" {
			md = "_No description_"
		}
		m.descViewport.SetContent(views.RenderMarkdown(md))
	}
}
