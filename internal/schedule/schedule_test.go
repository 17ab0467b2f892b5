package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/nishantrao/studyd/internal/model"
)

func makeTasks(n int) []model.StudyTask {
	tasks := make([]model.StudyTask, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, model.StudyTask{
			ID:       i,
			Status:   model.TaskStatusPending,
			TimeSlot: "9:00 AM - 11:00 AM",
			Subject:  "Subject",
			Topic:    fmt.Sprintf("Topic %d", i),
		})
	}
	return tasks
}

func TestDateKeyZeroPadded(t *testing.T) {
	d := time.Date(2026, 3, 5, 14, 0, 0, 0, time.Local)
	if got := DateKey(d); got != "2026-03-05" {
		t.Fatalf("date key = %q, want 2026-03-05", got)
	}
}

func TestBuildPreservesOrderAndCoversEveryTask(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	plan := &model.StudyPlan{
		ID: "p1", Title: "Physics", CreatedAt: now, Deadline: "2026-03-05",
		Tasks: makeTasks(10),
	}

	s := Build(plan, now)

	// 4 days (Mar 2..5), ceil(10/4)=3 per day: 3,3,3,1.
	if s.Len() != 4 {
		t.Fatalf("expected 4 days, got %d", s.Len())
	}
	var flat []int
	for _, day := range s.Days() {
		if len(day.Tasks) == 0 {
			t.Fatalf("day %s has no tasks", day.Date)
		}
		for _, task := range day.Tasks {
			flat = append(flat, task.ID)
		}
	}
	if len(flat) != 10 {
		t.Fatalf("expected all 10 tasks scheduled, got %d", len(flat))
	}
	for i, id := range flat {
		if id != i {
			t.Fatalf("task order broken at %d: got id %d", i, id)
		}
	}
	if got := len(s.Days()[0].Tasks); got != 3 {
		t.Fatalf("first day should carry 3 tasks, got %d", got)
	}
	if got := len(s.Days()[3].Tasks); got != 1 {
		t.Fatalf("last day should carry the single remainder task, got %d", got)
	}
}

func TestBuildOmitsEmptyTrailingDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	plan := &model.StudyPlan{
		ID: "p1", Title: "Math", CreatedAt: now, Deadline: "2026-03-11",
		Tasks: makeTasks(3),
	}

	// 10 available days, ceil(3/10)=1 per day: only 3 days populated.
	s := Build(plan, now)
	if s.Len() != 3 {
		t.Fatalf("expected 3 populated days, got %d", s.Len())
	}
	for _, day := range s.Days() {
		if len(day.Tasks) != 1 {
			t.Fatalf("day %s carries %d tasks, want 1", day.Date, len(day.Tasks))
		}
	}
}

func TestBuildPastDeadlineCollapsesToSingleBucket(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	plan := &model.StudyPlan{
		ID: "p1", Title: "History", CreatedAt: now, Deadline: "2026-03-01",
		Tasks: makeTasks(5),
	}

	s := Build(plan, now)
	if s.Len() != 1 {
		t.Fatalf("expected a single bucket, got %d days", s.Len())
	}
	day := s.Days()[0]
	// Deadline is behind "now": everything lands on tomorrow.
	if day.Date != "2026-03-11" {
		t.Fatalf("bucket date = %s, want 2026-03-11", day.Date)
	}
	if len(day.Tasks) != 5 {
		t.Fatalf("bucket carries %d tasks, want 5", len(day.Tasks))
	}
}

func TestBuildDeadlineTodayCollapsesToDeadline(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	plan := &model.StudyPlan{
		ID: "p1", Title: "Chemistry", CreatedAt: now, Deadline: "2026-03-10",
		Tasks: makeTasks(2),
	}

	s := Build(plan, now)
	if s.Len() != 1 {
		t.Fatalf("expected a single bucket, got %d days", s.Len())
	}
	if got := s.Days()[0].Date; got != "2026-03-10" {
		t.Fatalf("bucket date = %s, want 2026-03-10", got)
	}
}

func TestBuildEmptyPlan(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	if s := Build(nil, now); !s.IsEmpty() {
		t.Fatal("nil plan should yield an empty schedule")
	}
	plan := &model.StudyPlan{ID: "p1", Title: "Empty", CreatedAt: now, Deadline: "2026-03-05"}
	if s := Build(plan, now); !s.IsEmpty() {
		t.Fatal("taskless plan should yield an empty schedule")
	}
}

func TestLookups(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	plan := &model.StudyPlan{
		ID: "p1", Title: "Biology", CreatedAt: now, Deadline: "2026-03-03",
		Tasks: makeTasks(4),
	}

	s := Build(plan, now)
	// 2 days, 2 per day.
	date, ok := s.DateOf(3)
	if !ok || date != "2026-03-03" {
		t.Fatalf("DateOf(3) = %q/%v, want 2026-03-03/true", date, ok)
	}
	if got := s.TasksOn("2026-03-02"); len(got) != 2 || got[0].ID != 0 {
		t.Fatalf("unexpected tasks on 2026-03-02: %+v", got)
	}
	if got := s.TasksOn("2026-04-01"); got != nil {
		t.Fatalf("expected nil for unknown date, got %+v", got)
	}
	if _, ok := s.DateOf(99); ok {
		t.Fatal("expected DateOf miss for unknown task")
	}
}
