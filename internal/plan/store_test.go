package plan

import (
	"testing"
	"time"
)

func TestStoreSaveActivatesAndOrders(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	store := NewStore()

	first := New("Physics", "2026-03-10", nil, now)
	second := New("Math", "2026-03-20", nil, now.Add(time.Hour))
	store.Save(first)
	store.Save(second)

	if store.Len() != 2 {
		t.Fatalf("len = %d, want 2", store.Len())
	}
	active, ok := store.Active()
	if !ok || active.ID != second.ID {
		t.Fatalf("active = %+v, want the latest plan", active)
	}

	history := store.List()
	if history[0].ID != first.ID || history[1].ID != second.ID {
		t.Fatal("history out of creation order")
	}
}

func TestStoreSetActiveAndReplace(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	store := NewStore()

	first := New("Physics", "2026-03-10", nil, now)
	second := New("Math", "2026-03-20", nil, now)
	store.Save(first)
	store.Save(second)

	if !store.SetActive(first.ID) {
		t.Fatal("expected SetActive to succeed")
	}
	if store.SetActive("missing") {
		t.Fatal("expected SetActive to fail for unknown id")
	}
	active, _ := store.Active()
	if active.ID != first.ID {
		t.Fatalf("active = %s, want %s", active.ID, first.ID)
	}

	mutated := first
	mutated.Title = "Physics II"
	store.Replace(mutated)
	got, _ := store.Get(first.ID)
	if got.Title != "Physics II" {
		t.Fatalf("title = %q after replace", got.Title)
	}
	if store.Len() != 2 {
		t.Fatalf("replace must not grow history, len = %d", store.Len())
	}

	ghost := New("Ghost", "2026-03-20", nil, now)
	store.Replace(ghost)
	if _, ok := store.Get(ghost.ID); ok {
		t.Fatal("replace must ignore unknown plans")
	}
}

func TestStoreEmpty(t *testing.T) {
	store := NewStore()
	if _, ok := store.Active(); ok {
		t.Fatal("empty store should have no active plan")
	}
	if got := store.List(); len(got) != 0 {
		t.Fatalf("expected empty history, got %d", len(got))
	}
}
