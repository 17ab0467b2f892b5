package plan

import (
	"sync"

	"github.com/nishantrao/studyd/internal/model"
)

// Store is the session-scoped plan history. Nothing here outlives the
// process.
type Store struct {
	mu       sync.RWMutex
	plans    map[string]model.StudyPlan
	order    []string
	activeID string
}

func NewStore() *Store {
	return &Store{plans: make(map[string]model.StudyPlan)}
}

// Save appends a plan to the history and makes it active.
func (s *Store) Save(p model.StudyPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.plans[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.plans[p.ID] = p
	s.activeID = p.ID
}

// Replace swaps in a mutated copy of an existing plan without changing its
// position in the history or the active selection. Unknown ids are ignored.
func (s *Store) Replace(p model.StudyPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.plans[p.ID]; exists {
		s.plans[p.ID] = p
	}
}

func (s *Store) Get(id string) (model.StudyPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[id]
	return p, ok
}

// List returns the history in creation order.
func (s *Store) List() []model.StudyPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StudyPlan, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.plans[id])
	}
	return out
}

// Active returns the currently selected plan, if any.
func (s *Store) Active() (model.StudyPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeID == "" {
		return model.StudyPlan{}, false
	}
	p, ok := s.plans[s.activeID]
	return p, ok
}

// SetActive switches the active plan. Unknown ids leave the selection
// unchanged and report false.
func (s *Store) SetActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plans[id]; !ok {
		return false
	}
	s.activeID = id
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
