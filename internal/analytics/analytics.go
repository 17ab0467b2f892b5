// Package analytics derives profile statistics from the active plan and its
// schedule. Compute is a pure function of (tasks, schedule, now); the host
// event loop calls it after every mutation so all four statistics move
// together.
package analytics

import (
	"time"

	"github.com/nishantrao/studyd/internal/model"
	"github.com/nishantrao/studyd/internal/schedule"
)

// Report bundles the stats with the overdue tasks that produced the overdue
// count, so the caller can emit warnings without re-deriving them.
type Report struct {
	Stats   model.ProfileStats
	Overdue []model.StudyTask
}

// Compute derives ProfileStats from the plan's tasks and the schedule.
// "now" is sampled exactly once per pass by the caller; this function never
// reads the wall clock itself. A task's date comes from the schedule lookup,
// not from its cosmetic Day label.
func Compute(tasks []model.StudyTask, s schedule.Schedule, now time.Time) Report {
	loc := now.Location()
	todayMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var report Report
	for _, t := range tasks {
		if t.Status == model.TaskStatusPending {
			report.Stats.PendingTasks++
			if date, ok := s.DateOf(t.ID); ok && dateBefore(date, todayMidnight, loc) {
				report.Stats.OverdueTasks++
				report.Overdue = append(report.Overdue, t)
			}
		}
	}

	sevenDayFloor := todayMidnight.AddDate(0, 0, -6)
	completionDates := make(map[string]bool)
	for _, t := range tasks {
		if t.Status != model.TaskStatusCompleted || t.CompletedAt == nil {
			continue
		}
		done := t.CompletedAt.In(loc)
		if !done.Before(sevenDayFloor) && !done.After(now) {
			report.Stats.CompletedLast7Day++
		}
		completionDates[schedule.DateKey(done)] = true
	}

	// An overdue backlog zeroes the streak regardless of history.
	if report.Stats.OverdueTasks == 0 {
		report.Stats.Streak = streak(completionDates, todayMidnight)
	}
	return report
}

// streak counts consecutive completion days backward from today. A day
// without a completion today means no streak at all, even with activity
// yesterday.
func streak(completionDates map[string]bool, todayMidnight time.Time) int {
	if !completionDates[schedule.DateKey(todayMidnight)] {
		return 0
	}
	n := 1
	for cursor := todayMidnight.AddDate(0, 0, -1); completionDates[schedule.DateKey(cursor)]; cursor = cursor.AddDate(0, 0, -1) {
		n++
	}
	return n
}

func dateBefore(dateKey string, cutoff time.Time, loc *time.Location) bool {
	d, err := time.ParseInLocation(schedule.DateKeyLayout, dateKey, loc)
	if err != nil {
		return false
	}
	return d.Before(cutoff)
}
