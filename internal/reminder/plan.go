package reminder

import (
	"fmt"
	"time"

	"github.com/nishantrao/studyd/internal/schedule"
	"github.com/nishantrao/studyd/internal/timeslot"
)

// ForSchedule computes the reminder events for a schedule: each task's date
// combined with the start half of its time slot, in the given location.
// Slots that are not strictly in the future are skipped silently; a reminder
// must never fire immediately just because its slot already passed. Tasks
// whose slot cannot be parsed are skipped and counted so the caller can
// surface the validation failure.
func ForSchedule(s schedule.Schedule, now time.Time) (events []Event, malformed int) {
	loc := now.Location()
	for _, day := range s.Days() {
		date, err := time.ParseInLocation(schedule.DateKeyLayout, day.Date, loc)
		if err != nil {
			malformed += len(day.Tasks)
			continue
		}
		for _, task := range day.Tasks {
			clock, err := timeslot.SlotStart(task.TimeSlot)
			if err != nil {
				malformed++
				continue
			}
			trigger := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour, clock.Minute, 0, 0, loc)
			if !trigger.After(now) {
				continue
			}
			events = append(events, Event{
				ID:        fmt.Sprintf("%s/%d", day.Date, task.ID),
				TaskID:    task.ID,
				Subject:   task.Subject,
				Topic:     task.Topic,
				TriggerAt: trigger,
			})
		}
	}
	return events, malformed
}

// Reschedule replaces the engine's pending reminders with the events for a
// schedule. Cancelling first keeps a stale reminder from firing against a
// superseded plan.
func Reschedule(e *Engine, s schedule.Schedule, now time.Time) (scheduled int, malformed int) {
	e.CancelAll()
	events, malformed := ForSchedule(s, now)
	for _, ev := range events {
		if err := e.Schedule(ev); err != nil {
			break
		}
		scheduled++
	}
	return scheduled, malformed
}
