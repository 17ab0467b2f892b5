package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/nishantrao/studyd/internal/analytics"
	"github.com/nishantrao/studyd/internal/gen"
	"github.com/nishantrao/studyd/internal/model"
	"github.com/nishantrao/studyd/internal/notify"
	"github.com/nishantrao/studyd/internal/plan"
	"github.com/nishantrao/studyd/internal/reminder"
	"github.com/nishantrao/studyd/internal/schedule"
)

type View string

const (
	ViewPlanner  View = "Planner"
	ViewCalendar View = "Calendar"
	ViewPlans    View = "Plans"
	ViewProfile  View = "Profile"
	ViewFocus    View = "Focus"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Planner       string
	Calendar      string
	Plans         string
	Profile       string
	Focus         string
	Notifications string
	Help          string
	Quit          string
}

type PlannerField int

const (
	FieldSubjects PlannerField = iota
	FieldDeadline
	FieldHours
	FieldNotes
)

type PlannerState struct {
	FormFocus     PlannerField
	FormActive    bool
	Generating    bool
	Cursor        int
	DetailOpen    bool
	SubtaskCursor int
}

type CalendarState struct {
	DayCursor  int
	TaskCursor int
}

type PlansState struct {
	Cursor int
}

type FocusPhase string

const (
	FocusPhaseWork  FocusPhase = "work"
	FocusPhaseBreak FocusPhase = "break"
)

type FocusState struct {
	WorkDurationSec   int
	BreakDurationSec  int
	RemainingSec      int
	Running           bool
	Phase             FocusPhase
	CompletedSessions int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView View
	Planner     PlannerState
	Calendar    CalendarState
	Plans       PlansState
	Focus       FocusState
	Palette     CommandPaletteState
	HelpVisible bool
	PanelOpen   bool

	Store    *plan.Store
	Schedule schedule.Schedule
	Stats    model.ProfileStats
	Overdue  []model.StudyTask

	Engine *reminder.Engine
	Center *notify.Center

	DesktopEnabled bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	tracker      *analytics.OverdueTracker
	activePlanID string
	notifier     notify.DesktopNotifier
	genClient    gen.Client
	clock        func() time.Time

	// Bubble components used for rich TUI controls
	subjectsInput textinput.Model
	deadlineInput textinput.Model
	hoursInput    textinput.Model
	notesArea     textarea.Model
	commandInput  textinput.Model
	taskList      list.Model
	planList      list.Model
	calendarTable table.Model
	descViewport  viewport.Model
	planProgress  progress.Model
	focusProgress progress.Model
	genSpinner    spinner.Model
	helpModel     help.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// PlanReadyMsg carries a freshly generated task list back into the loop.
type PlanReadyMsg struct {
	Request gen.Request
	Tasks   []model.StudyTask
}

type GenerateFailedMsg struct {
	Err error
}

type ReminderDueMsg struct {
	Event reminder.Event
}

type FocusTickMsg struct{}

func NewModel() Model {
	m := Model{
		CurrentView: ViewPlanner,
		Planner: PlannerState{
			FormActive: true,
		},
		Focus: FocusState{
			WorkDurationSec:  25 * 60,
			BreakDurationSec: 5 * 60,
			RemainingSec:     25 * 60,
			Phase:            FocusPhaseWork,
		},
		Store:          plan.NewStore(),
		Center:         notify.NewCenter(),
		tracker:        analytics.NewOverdueTracker(),
		notifier:       notify.Noop{},
		DesktopEnabled: false,
		clock:          time.Now,
		Keys: GlobalKeyMap{
			Planner:       "1",
			Calendar:      "2",
			Plans:         "3",
			Profile:       "4",
			Focus:         "5",
			Notifications: "n",
			Help:          "?",
			Quit:          "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithEngine(engine *reminder.Engine) Model {
	m := NewModel()
	m.Engine = engine
	return m
}

func NewModelWithConfig(engine *reminder.Engine, notifier notify.DesktopNotifier, client gen.Client, cfg RuntimeConfig) Model {
	m := NewModel()
	m.Engine = engine
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}
	m.genClient = client
	if cfg.FocusWorkMinutes > 0 {
		m.Focus.WorkDurationSec = cfg.FocusWorkMinutes * 60
	}
	if cfg.FocusBreakMinutes > 0 {
		m.Focus.BreakDurationSec = cfg.FocusBreakMinutes * 60
	}
	m.Focus.RemainingSec = m.Focus.WorkDurationSec
	return m
}

func (m *Model) initBubbleComponents() {
	m.subjectsInput = textinput.New()
	m.subjectsInput.Prompt = "subjects> "
	m.subjectsInput.Placeholder = "Physics, Calculus"
	m.subjectsInput.CharLimit = 256
	m.subjectsInput.Width = 42
	m.subjectsInput.Focus()

	m.deadlineInput = textinput.New()
	m.deadlineInput.Prompt = "deadline> "
	m.deadlineInput.Placeholder = "2026-03-15"
	m.deadlineInput.CharLimit = 10
	m.deadlineInput.Width = 42

	m.hoursInput = textinput.New()
	m.hoursInput.Prompt = "hours/day> "
	m.hoursInput.CharLimit = 4
	m.hoursInput.Width = 42

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(3)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Notes for the generator"

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.taskList.Title = "Study tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	m.planList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.planList.Title = "Plans"
	m.planList.SetShowHelp(false)
	m.planList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Slot", Width: 16},
		{Title: "Subject", Width: 14},
		{Title: "Topic", Width: 20},
	}
	m.calendarTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.descViewport = viewport.New(54, 12)
	m.planProgress = progress.New(progress.WithDefaultGradient())
	m.focusProgress = progress.New(progress.WithDefaultGradient())

	m.genSpinner = spinner.New()
	m.genSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}
