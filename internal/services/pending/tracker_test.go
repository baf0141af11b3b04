package pending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_BeginAndDone(t *testing.T) {
	tracker := NewTracker()
	assert.False(t, tracker.HasPending())

	done := tracker.Begin("save")
	assert.True(t, tracker.HasPending())
	assert.Equal(t, 1, tracker.Count())

	done()
	assert.False(t, tracker.HasPending())
	assert.Equal(t, 0, tracker.Count())
}

func TestTracker_DoneIsIdempotent(t *testing.T) {
	tracker := NewTracker()

	done := tracker.Begin("save")
	done()
	done()

	assert.Equal(t, 0, tracker.Count())
}

func TestTracker_OverlappingActions(t *testing.T) {
	tracker := NewTracker()

	doneSave := tracker.Begin("save")
	doneSync := tracker.Begin("sync")

	doneSave()
	assert.True(t, tracker.HasPending())

	doneSync()
	assert.False(t, tracker.HasPending())
}

func TestTracker_Labels(t *testing.T) {
	tracker := NewTracker()

	done1 := tracker.Begin("save")
	done2 := tracker.Begin("save")
	tracker.Begin("sync")

	labels := tracker.Labels()
	assert.Equal(t, 2, labels["save"])
	assert.Equal(t, 1, labels["sync"])

	done1()
	done2()
	labels = tracker.Labels()
	assert.NotContains(t, labels, "save")
	assert.Contains(t, labels, "sync")
}
