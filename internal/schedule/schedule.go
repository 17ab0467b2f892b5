// Package schedule distributes a plan's ordered task list across the days
// between tomorrow and the plan deadline.
package schedule

import (
	"time"

	"github.com/nishantrao/studyd/internal/model"
)

// DateKeyLayout is the calendar-date key format used everywhere a schedule
// date crosses a boundary. Keys are local time, zero-padded, no timezone
// suffix.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as a schedule date key in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// Day is one calendar date and the ordered tasks assigned to it.
type Day struct {
	Date  string
	Tasks []model.StudyTask
}

// Schedule is an explicit ordered association from date key to tasks.
// Day order and task order within a day both follow the original plan task
// order; concatenating all days reproduces the plan exactly. A plain map
// would lose that ordering guarantee.
type Schedule struct {
	days      []Day
	dateIndex map[string]int
	taskDate  map[int]string
}

// Days returns the schedule entries in date order.
func (s Schedule) Days() []Day {
	return s.days
}

// Len reports the number of non-empty schedule days.
func (s Schedule) Len() int {
	return len(s.days)
}

// IsEmpty reports whether no tasks are scheduled.
func (s Schedule) IsEmpty() bool {
	return len(s.days) == 0
}

// TasksOn returns the tasks assigned to a date key.
func (s Schedule) TasksOn(date string) []model.StudyTask {
	idx, ok := s.dateIndex[date]
	if !ok {
		return nil
	}
	return s.days[idx].Tasks
}

// DateOf locates the date key a task id was assigned to.
func (s Schedule) DateOf(taskID int) (string, bool) {
	date, ok := s.taskDate[taskID]
	return date, ok
}

// Build distributes the plan's tasks across [tomorrow, deadline] inclusive.
// Tasks are consumed in plan order, ceil(T/D) per day; trailing dates that
// would receive nothing are omitted. A deadline that is today or already
// past collapses to a single bucket so no task is ever dropped. A nil or
// empty plan yields an empty schedule.
//
// Building a schedule supersedes any reminders scheduled for the previous
// one; the caller must cancel and reschedule (see internal/reminder).
func Build(plan *model.StudyPlan, now time.Time) Schedule {
	s := Schedule{
		dateIndex: make(map[string]int),
		taskDate:  make(map[int]string),
	}
	if plan == nil || len(plan.Tasks) == 0 {
		return s
	}
	deadline, err := plan.DeadlineDate()
	if err != nil {
		return s
	}

	loc := now.Location()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	end := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 23, 59, 59, int(999*time.Millisecond), loc)

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, DateKey(d))
	}

	if len(dates) == 0 {
		// Degenerate window: deadline is today or already behind us.
		target := end
		if now.After(end) {
			target = start
		}
		s.append(DateKey(target), plan.Tasks)
		return s
	}

	perDay := (len(plan.Tasks) + len(dates) - 1) / len(dates)
	rest := plan.Tasks
	for _, date := range dates {
		if len(rest) == 0 {
			break
		}
		n := perDay
		if n > len(rest) {
			n = len(rest)
		}
		s.append(date, rest[:n])
		rest = rest[n:]
	}
	return s
}

func (s *Schedule) append(date string, tasks []model.StudyTask) {
	day := Day{Date: date, Tasks: make([]model.StudyTask, len(tasks))}
	copy(day.Tasks, tasks)
	s.dateIndex[date] = len(s.days)
	s.days = append(s.days, day)
	for _, t := range tasks {
		s.taskDate[t.ID] = date
	}
}
