package update

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nishantrao/studyd/internal/gen"
	"github.com/nishantrao/studyd/internal/model"
	"github.com/nishantrao/studyd/internal/reminder"
)

type fakeGenClient struct {
	tasks []model.StudyTask
	err   error
}

func (f fakeGenClient) GeneratePlan(context.Context, gen.Request) ([]model.StudyTask, error) {
	return f.tasks, f.err
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
}

func sampleTasks(n int) []model.StudyTask {
	tasks := make([]model.StudyTask, 0, n)
	topics := []string{"Kinematics", "Dynamics", "Integrals", "Series"}
	for i := 0; i < n; i++ {
		tasks = append(tasks, model.StudyTask{
			ID:       i,
			Status:   model.TaskStatusPending,
			Day:      "Day 1",
			TimeSlot: "9:00 AM - 11:00 AM",
			Subject:  "Physics",
			Topic:    topics[i%len(topics)],
			Task:     "Review chapter",
		})
	}
	return tasks
}

func seededModel(t *testing.T) Model {
	t.Helper()
	m := NewModel()
	m.clock = fixedClock
	p := model.StudyPlan{
		ID:        "plan-1",
		Title:     "Physics",
		CreatedAt: fixedClock(),
		Deadline:  "2026-03-15",
		Tasks:     sampleTasks(4),
	}
	m.Store.Save(p)
	m.Planner.FormActive = false
	m.recompute()
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.CurrentView != ViewPlanner {
		t.Fatalf("expected default view %q, got %q", ViewPlanner, m.CurrentView)
	}
	if !m.Planner.FormActive {
		t.Fatal("expected planner form active with no plan")
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := seededModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	next := updated.(Model)
	if next.CurrentView != ViewCalendar {
		t.Fatalf("expected calendar view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	next = updated.(Model)
	if next.CurrentView != ViewFocus {
		t.Fatalf("expected focus view, got %q", next.CurrentView)
	}
}

func TestUpdateSyncsWidgetData(t *testing.T) {
	m := seededModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	next := updated.(Model)
	if got := len(next.taskList.Items()); got != 4 {
		t.Fatalf("expected 4 task list items after update, got %d", got)
	}
	if len(next.calendarTable.Rows()) == 0 {
		t.Fatal("expected calendar rows after update")
	}
	if got := len(next.planList.Items()); got != 1 {
		t.Fatalf("expected 1 plan list item after update, got %d", got)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SwitchViewMsg{View: ViewProfile})
	next := updated.(Model)
	if next.CurrentView != ViewProfile {
		t.Fatalf("expected profile view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewProfile {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := NewModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := seededModel(t)
	m.Status = StatusBar{Text: "all good"}
	out := m.View()
	if !strings.Contains(out, "view: Planner") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "plan: Physics") {
		t.Fatalf("expected active plan title in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
}

func TestGenerateFormSubmitStartsSpinner(t *testing.T) {
	m := NewModel()
	m.clock = fixedClock
	m.genClient = fakeGenClient{tasks: sampleTasks(4)}
	m.subjectsInput.SetValue("Physics, Calculus")
	m.deadlineInput.SetValue("2026-03-15")
	m.hoursInput.SetValue("3")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := updated.(Model)
	if !next.Planner.Generating {
		t.Fatal("expected generating flag after form submit")
	}
	if cmd == nil {
		t.Fatal("expected generate command")
	}
}

func TestGenerateFormRejectsMissingFields(t *testing.T) {
	m := NewModel()
	m.subjectsInput.SetValue("Physics")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := updated.(Model)
	if next.Planner.Generating {
		t.Fatal("expected no generation with missing fields")
	}
	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestPlanReadyMsgActivatesPlan(t *testing.T) {
	m := NewModel()
	m.clock = fixedClock
	req := gen.Request{Subjects: "Physics, Calculus", Deadline: "2026-03-15", HoursPerDay: "3"}

	updated, _ := m.Update(PlanReadyMsg{Request: req, Tasks: sampleTasks(4)})
	next := updated.(Model)
	if next.Store.Len() != 1 {
		t.Fatalf("expected 1 stored plan, got %d", next.Store.Len())
	}
	active, ok := next.Store.Active()
	if !ok {
		t.Fatal("expected active plan")
	}
	if active.Title != "Physics" {
		t.Fatalf("expected title from first subject, got %q", active.Title)
	}
	if next.Planner.FormActive {
		t.Fatal("expected form closed after plan ready")
	}
	if next.Schedule.IsEmpty() {
		t.Fatal("expected schedule rebuilt for new plan")
	}
	found := false
	for _, n := range next.Center.All() {
		if strings.Contains(n.Message, "Successfully generated a new study plan") {
			found = true
			if n.Type != model.NotificationSuccess {
				t.Fatalf("expected success notification, got %q", n.Type)
			}
		}
	}
	if !found {
		t.Fatal("expected generation success notification")
	}
}

func TestGenerateFailedLeavesStateUntouched(t *testing.T) {
	m := NewModel()
	m.clock = fixedClock
	m.Planner.Generating = true

	updated, _ := m.Update(GenerateFailedMsg{Err: gen.ErrTimeout})
	next := updated.(Model)
	if next.Planner.Generating {
		t.Fatal("expected generating flag cleared")
	}
	if next.Store.Len() != 0 {
		t.Fatalf("expected no plan created on failure, got %d", next.Store.Len())
	}
	if !next.Status.IsError || !strings.Contains(next.Status.Text, "try again") {
		t.Fatalf("expected retry hint in error status, got %+v", next.Status)
	}
}

func TestToggleTaskRecomputesStats(t *testing.T) {
	m := seededModel(t)
	if m.Stats.PendingTasks != 4 {
		t.Fatalf("expected 4 pending before toggle, got %d", m.Stats.PendingTasks)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := updated.(Model)
	active, _ := next.Store.Active()
	task, _ := active.TaskByID(0)
	if task.Status != model.TaskStatusCompleted {
		t.Fatalf("expected task 0 completed, got %q", task.Status)
	}
	if task.Progress != 100 {
		t.Fatalf("expected progress 100, got %d", task.Progress)
	}
	if next.Stats.PendingTasks != 3 {
		t.Fatalf("expected 3 pending after toggle, got %d", next.Stats.PendingTasks)
	}
	found := false
	for _, n := range next.Center.All() {
		if strings.Contains(n.Message, "Great job!") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected completion notification")
	}
}

func TestPlanSwitchResetsOverdueTracker(t *testing.T) {
	m := seededModel(t)
	marked := m.tracker.Unseen(sampleTasks(1))
	if len(marked) != 1 {
		t.Fatalf("expected 1 unseen task, got %d", len(marked))
	}
	if again := m.tracker.Unseen(sampleTasks(1)); len(again) != 0 {
		t.Fatal("expected task marked as seen")
	}

	second := model.StudyPlan{
		ID:        "plan-2",
		Title:     "Calculus",
		CreatedAt: fixedClock(),
		Deadline:  "2026-03-20",
		Tasks:     sampleTasks(2),
	}
	m.Store.Save(second)
	m.activatePlan("plan-2")

	if m.activePlanID != "plan-2" {
		t.Fatalf("expected active plan-2, got %q", m.activePlanID)
	}
	if again := m.tracker.Unseen(sampleTasks(1)); len(again) != 1 {
		t.Fatal("expected tracker reset after plan switch")
	}
}

func TestActivateUnknownPlanIsError(t *testing.T) {
	m := seededModel(t)
	m.activatePlan("missing")
	if !m.Status.IsError {
		t.Fatalf("expected error status for unknown plan, got %+v", m.Status)
	}
	active, _ := m.Store.Active()
	if active.ID != "plan-1" {
		t.Fatalf("expected active plan unchanged, got %q", active.ID)
	}
}

func TestReminderDueMsgNotifiesAndRearms(t *testing.T) {
	engine := reminder.NewEngine(1)
	m := NewModelWithEngine(engine)
	m.clock = fixedClock
	ev := reminder.Event{
		ID:        "2026-03-02/0",
		TaskID:    0,
		Subject:   "Physics",
		Topic:     "Kinematics",
		TriggerAt: fixedClock(),
	}

	updated, cmd := m.Update(ReminderDueMsg{Event: ev})
	next := updated.(Model)
	if cmd == nil {
		t.Fatal("expected reminder listener rearm cmd")
	}
	found := false
	for _, n := range next.Center.All() {
		if strings.Contains(n.Message, "Time for Physics!") && strings.Contains(n.Message, "Let's start: Kinematics") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected reminder notification in feed")
	}
}

func TestFocusTickCompletionNotifies(t *testing.T) {
	m := NewModel()
	m.clock = fixedClock
	m.CurrentView = ViewFocus
	m.Focus.WorkDurationSec = 2
	m.Focus.BreakDurationSec = 1
	m.Focus.RemainingSec = 2

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := updated.(Model)
	if !next.Focus.Running {
		t.Fatal("expected focus running after start")
	}
	if cmd == nil {
		t.Fatal("expected tick cmd on focus start")
	}

	updated, _ = next.Update(FocusTickMsg{})
	next = updated.(Model)
	updated, _ = next.Update(FocusTickMsg{})
	next = updated.(Model)
	if next.Focus.Phase != FocusPhaseBreak {
		t.Fatalf("expected break phase, got %q", next.Focus.Phase)
	}
	if next.Focus.CompletedSessions != 1 {
		t.Fatalf("expected 1 completed session, got %d", next.Focus.CompletedSessions)
	}
	found := false
	for _, n := range next.Center.All() {
		if strings.Contains(n.Message, "Focus session complete!") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected focus completion notification")
	}
}

func TestNotificationPanelReadAndClear(t *testing.T) {
	m := seededModel(t)
	m.pushNotification("first", model.NotificationInfo)
	m.pushNotification("second", model.NotificationInfo)
	if m.Center.Unread() != 2 {
		t.Fatalf("expected 2 unread, got %d", m.Center.Unread())
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	next := updated.(Model)
	if !next.PanelOpen {
		t.Fatal("expected notification panel open")
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)
	if next.Center.Unread() != 0 {
		t.Fatalf("expected 0 unread after read-all, got %d", next.Center.Unread())
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	next = updated.(Model)
	if next.Center.Len() != 0 {
		t.Fatalf("expected empty feed after clear, got %d", next.Center.Len())
	}
}

func TestPaletteToggleCommand(t *testing.T) {
	m := seededModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("toggle 1")})
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("expected palette closed after execute")
	}
	active, _ := next.Store.Active()
	task, _ := active.TaskByID(1)
	if task.Status != model.TaskStatusCompleted {
		t.Fatalf("expected task 1 completed via palette, got %q", task.Status)
	}
}

func TestPaletteUnknownCommandSetsErrorStatus(t *testing.T) {
	m := seededModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bogus")})
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)
	if !next.Status.IsError {
		t.Fatalf("expected error status for unknown command, got %+v", next.Status)
	}
}

func TestCalendarToggleFromSelectedDay(t *testing.T) {
	m := seededModel(t)
	m.CurrentView = ViewCalendar
	if m.Schedule.IsEmpty() {
		t.Fatal("expected non-empty schedule")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := updated.(Model)
	date := next.selectedDate()
	tasks := next.Schedule.TasksOn(date)
	if len(tasks) == 0 {
		t.Fatalf("expected tasks on %s", date)
	}
	if tasks[0].Status != model.TaskStatusCompleted {
		t.Fatalf("expected first task of %s completed, got %q", date, tasks[0].Status)
	}
}
