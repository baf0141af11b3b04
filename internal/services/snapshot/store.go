// Package snapshot holds the per-region source text captured while the
// document is in source editing mode.
package snapshot

import (
	"sync"

	"github.com/riordanpawley/sourcemode/internal/domain"
)

// Entry is a region name paired with its captured source text
type Entry struct {
	Region string
	Text   string
}

// Store keeps one live snapshot per region while source editing is
// active. Entries iterate in capture order so write-back on exit is
// deterministic.
type Store struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]string
}

// NewStore creates an empty snapshot store
func NewStore() *Store {
	return &Store{
		entries: make(map[string]string),
	}
}

// Capture creates or overwrites the snapshot for a region. An
// overwrite keeps the region's original position in capture order.
func (s *Store) Capture(region, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[region]; !ok {
		s.order = append(s.order, region)
	}
	s.entries[region] = text
}

// Update mutates an existing snapshot. Updates originate only from
// live source editor edits, which can only happen after Capture, so a
// missing entry is a lifecycle violation and fails loudly.
func (s *Store) Update(region, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[region]; !ok {
		return &domain.SnapshotError{Op: "update", Region: region, Err: domain.ErrNoSnapshot}
	}
	s.entries[region] = text
	return nil
}

// Get returns the current snapshot text for a region
func (s *Store) Get(region string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.entries[region]
	return text, ok
}

// Has reports whether a region has a live snapshot
func (s *Store) Has(region string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[region]
	return ok
}

// Len returns the number of live snapshots
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Release returns the current text for a region and removes its entry
func (s *Store) Release(region string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.entries[region]
	if !ok {
		return "", &domain.SnapshotError{Op: "release", Region: region, Err: domain.ErrNoSnapshot}
	}
	delete(s.entries, region)
	for i, name := range s.order {
		if name == region {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return text, nil
}

// ReleaseAll returns every entry in capture order and clears the
// store. After it returns no region has a stale snapshot.
func (s *Store) ReleaseAll() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	released := make([]Entry, 0, len(s.order))
	for _, region := range s.order {
		released = append(released, Entry{Region: region, Text: s.entries[region]})
	}
	s.order = nil
	s.entries = make(map[string]string)
	return released
}
