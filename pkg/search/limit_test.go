package search_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestUnboundedLimitOnlyStopsOnRequest(t *testing.T) {
	l := search.Unbounded()
	assert.False(t, l.IsStopped())
	for i := 0; i < 1<<13; i++ {
		assert.False(t, l.Tick())
	}
	l.Stop()
	assert.True(t, l.IsStopped())
	assert.True(t, l.Tick())
}

func TestLimitStopsAtNodeBudget(t *testing.T) {
	l := search.NewLimit(time.Time{}, 10)
	for i := 0; i < 9; i++ {
		assert.False(t, l.Tick(), "tick %v", i)
	}
	assert.True(t, l.Tick())
	assert.True(t, l.IsStopped())
	assert.Equal(t, uint64(10), l.Nodes())
}

func TestLimitStopsAtDeadline(t *testing.T) {
	l := search.NewLimit(time.Now().Add(-time.Second), 0)
	for i := uint64(0); i < 1<<12; i++ {
		l.Tick()
	}
	assert.True(t, l.IsStopped())
}

func TestLimitStopIsIdempotent(t *testing.T) {
	l := search.Unbounded()
	l.Stop()
	l.Stop()
	assert.True(t, l.IsStopped())
}
