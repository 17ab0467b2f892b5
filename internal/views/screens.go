package views

import (
	"fmt"
	"strings"
)

type PlannerTaskData struct {
	ID       int
	Status   string
	TimeSlot string
	Subject  string
	Topic    string
	Progress int
}

type PlannerPanelData struct {
	FormView     string
	SpinnerView  string
	Generating   bool
	PlanTitle    string
	PlanProgress int
	ProgressView string
	ListView     string
	Tasks        []PlannerTaskData
	SelectedID   int
}

type CalendarDayTaskData struct {
	ID       int
	TimeSlot string
	Subject  string
	Topic    string
	Status   string
}

type CalendarDayData struct {
	Date  string
	Tasks []CalendarDayTaskData
}

type CalendarPanelData struct {
	TableView    string
	Days         []CalendarDayData
	SelectedDate string
}

type PlanSummaryData struct {
	ID       string
	Title    string
	Deadline string
	Progress int
	Active   bool
}

type PlansPanelData struct {
	ListView string
	Plans    []PlanSummaryData
}

type ProfilePanelData struct {
	Pending        int
	Overdue        int
	CompletedLast7 int
	Streak         int
	OverdueTopics  []string
}

type FocusPanelData struct {
	Phase        string
	Timer        string
	ProgressView string
	ProgressPct  int
	Sessions     int
	Running      bool
}

type SubtaskData struct {
	Text      string
	Completed bool
}

type TaskDetailData struct {
	ID              int
	Subject         string
	Topic           string
	Task            string
	Day             string
	TimeSlot        string
	Progress        int
	DescriptionView string
	Subtasks        []SubtaskData
	SelectedSubtask int
}

type NotificationItemData struct {
	Message   string
	Timestamp string
	Read      bool
	Type      string
}

type NotificationPanelData struct {
	Active bool
	Unread int
	Items  []NotificationItemData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderPlannerPanel(data PlannerPanelData) string {
	var b strings.Builder
	b.WriteString("planner:\n")
	b.WriteString("actions: [enter]generate [tab]field [j/k]move [space]toggle [d]detail\n")
	b.WriteString(data.FormView + "\n")
	if data.Generating {
		b.WriteString(fmt.Sprintf("%s generating plan...\n", data.SpinnerView))
		return strings.TrimSpace(b.String())
	}
	if data.PlanTitle == "" {
		b.WriteString("(no active plan, fill the form and press enter)")
		return strings.TrimSpace(b.String())
	}
	b.WriteString(fmt.Sprintf("plan: %s | progress: %s %d%%\n", data.PlanTitle, data.ProgressView, data.PlanProgress))
	b.WriteString(data.ListView + "\n")
	for _, task := range data.Tasks {
		cursor := " "
		if task.ID == data.SelectedID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s - %s (%d%%)\n",
			cursor, statusBadge(task.Status), task.TimeSlot, task.Subject, task.Topic, task.Progress))
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString("actions: [h/l]day [j/k]task [space]toggle\n")
	b.WriteString(data.TableView + "\n")
	if len(data.Days) == 0 {
		b.WriteString("(schedule empty)")
		return b.String()
	}
	for _, day := range data.Days {
		marker := " "
		if day.Date == data.SelectedDate {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("\n%s %s:\n", marker, day.Date))
		for _, task := range day.Tasks {
			b.WriteString(fmt.Sprintf("  %s %s %s - %s\n", statusBadge(task.Status), task.TimeSlot, task.Subject, task.Topic))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderPlansPanel(data PlansPanelData) string {
	var b strings.Builder
	b.WriteString("plans:\n")
	b.WriteString("actions: [j/k]move [enter]activate\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Plans) == 0 {
		b.WriteString("(no plans yet)")
		return strings.TrimSpace(b.String())
	}
	for _, plan := range data.Plans {
		cursor := " "
		if plan.Active {
			cursor = "*"
		}
		b.WriteString(fmt.Sprintf("%s %s due:%s %d%% (%s)\n", cursor, plan.Title, plan.Deadline, plan.Progress, plan.ID))
	}
	return strings.TrimSpace(b.String())
}

func RenderProfilePanel(data ProfilePanelData) string {
	var b strings.Builder
	b.WriteString("profile:\n")
	b.WriteString(fmt.Sprintf("pending: %d\n", data.Pending))
	b.WriteString(fmt.Sprintf("overdue: %d\n", data.Overdue))
	b.WriteString(fmt.Sprintf("completed last 7 days: %d\n", data.CompletedLast7))
	b.WriteString(fmt.Sprintf("streak: %d\n", data.Streak))
	if len(data.OverdueTopics) > 0 {
		b.WriteString("overdue tasks:\n")
		for _, topic := range data.OverdueTopics {
			b.WriteString("- " + topic + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderFocusPanel(data FocusPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	b.WriteString(fmt.Sprintf("phase: %s\n", strings.ToUpper(data.Phase)))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("sessions completed: %d\n", data.Sessions))
	if data.Running {
		b.WriteString("actions: [space]pause [r]reset\n")
	} else {
		b.WriteString("actions: [space]start [r]reset\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskDetail(data TaskDetailData) string {
	var b strings.Builder
	b.WriteString("task:\n")
	b.WriteString(fmt.Sprintf("%s - %s\n", data.Subject, data.Topic))
	b.WriteString(fmt.Sprintf("when: %s %s\n", data.Day, data.TimeSlot))
	b.WriteString(fmt.Sprintf("goal: %s\n", data.Task))
	b.WriteString(fmt.Sprintf("progress: %d%%\n", data.Progress))
	if len(data.Subtasks) > 0 {
		b.WriteString("subtasks: [j/k]move [space]toggle\n")
		for i, st := range data.Subtasks {
			cursor := " "
			if i == data.SelectedSubtask {
				cursor = ">"
			}
			box := "[ ]"
			if st.Completed {
				box = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, box, st.Text))
		}
	}
	if data.DescriptionView != "" {
		b.WriteString("\n" + data.DescriptionView)
	}
	return strings.TrimSpace(b.String())
}

func RenderNotificationPanel(data NotificationPanelData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("notifications (%d unread):\n", data.Unread))
	b.WriteString("actions: [enter]read-all [x]clear [esc]close\n")
	if len(data.Items) == 0 {
		b.WriteString("(empty)")
		return b.String()
	}
	for _, item := range data.Items {
		mark := "*"
		if item.Read {
			mark = " "
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s %s\n", mark, strings.ToUpper(item.Type), item.Timestamp, item.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func statusBadge(status string) string {
	if status == "completed" {
		return "[DONE]"
	}
	return "[    ]"
}
