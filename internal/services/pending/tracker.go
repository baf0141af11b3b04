// Package pending tracks in-flight asynchronous actions in the host
// so that source editing cannot start while a model mutation is still
// running.
package pending

import "sync"

// Tracker counts in-flight asynchronous actions
type Tracker struct {
	mu     sync.RWMutex
	count  int
	labels map[string]int
}

// NewTracker creates a tracker with no pending actions
func NewTracker() *Tracker {
	return &Tracker{
		labels: make(map[string]int),
	}
}

// Begin registers a pending action and returns its done function.
// The done function is idempotent.
func (t *Tracker) Begin(label string) func() {
	t.mu.Lock()
	t.count++
	t.labels[label]++
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.count--
			t.labels[label]--
			if t.labels[label] <= 0 {
				delete(t.labels, label)
			}
		})
	}
}

// HasPending reports whether any action is still in flight
func (t *Tracker) HasPending() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count > 0
}

// Count returns the number of in-flight actions
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Labels returns the labels of in-flight actions with their counts
func (t *Tracker) Labels() map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	labels := make(map[string]int, len(t.labels))
	for label, n := range t.labels {
		labels[label] = n
	}
	return labels
}
