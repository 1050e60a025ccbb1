// ABOUTME: In-memory mapping collection keyed by sourceModel
// ABOUTME: Ordered, goroutine-safe; upsert replaces to keep keys unique

package mapping

import (
	"fmt"
	"sync"
)

// Store holds the live mapping collection. Order is preserved (the
// persisted form is an ordered list) and sourceModel keys stay unique:
// Upsert replaces in place, Add rejects duplicates.
type Store struct {
	mu      sync.RWMutex
	entries []ModelMapping
}

// NewStore creates a store seeded with the given collection.
func NewStore(entries []ModelMapping) *Store {
	return &Store{entries: CloneAll(entries)}
}

// Get returns the mapping for a source model.
func (s *Store) Get(sourceModel string) (ModelMapping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.entries {
		if m.SourceModel == sourceModel {
			return m.Clone(), true
		}
	}
	return ModelMapping{}, false
}

// Active reports whether an enabled mapping exists for the source model.
// Absent entry and enabled=false are the same disabled state.
func (s *Store) Active(sourceModel string) bool {
	m, ok := s.Get(sourceModel)
	return ok && m.IsEnabled()
}

// Upsert inserts the mapping, replacing any existing entry with the same
// sourceModel key.
func (s *Store) Upsert(m ModelMapping) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.SourceModel == m.SourceModel {
			s.entries[i] = m.Clone()
			return
		}
	}
	s.entries = append(s.entries, m.Clone())
}

// Add inserts a new mapping, rejecting duplicates and invalid records
// before any state change.
func (s *Store) Add(m ModelMapping) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.SourceModel == m.SourceModel {
			return fmt.Errorf("%w: %s", ErrDuplicateSource, m.SourceModel)
		}
	}
	s.entries = append(s.entries, m.Clone())
	return nil
}

// Remove deletes the mapping for a source model. Returns false when no
// entry existed.
func (s *Store) Remove(sourceModel string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.SourceModel == sourceModel {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a deep copy of the collection in order.
func (s *Store) All() []ModelMapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneAll(s.entries)
}

// Replace swaps the whole collection (used on load and external reload).
func (s *Store) Replace(entries []ModelMapping) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = CloneAll(entries)
}

// Custom returns entries whose source model is not in the slot catalog.
func (s *Store) Custom(slots []RoleSlot) []ModelMapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ModelMapping
	for _, m := range s.entries {
		if !IsSlotSource(slots, m.SourceModel) {
			out = append(out, m.Clone())
		}
	}
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
