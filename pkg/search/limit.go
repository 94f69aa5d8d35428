package search

import (
	"time"

	"go.uber.org/atomic"
)

// tickInterval is how many nodes a SearchWorker visits between wall-clock checks.
// Checking the clock on every node would dominate runtime at typical search
// speeds; checking this rarely keeps the overhead negligible while still
// stopping within a few hundred microseconds of a hard deadline.
const tickInterval = 1 << 12

// Limit bounds a search by deadline, node budget, or external stop request. It is
// shared by every helper goroutine searching the same root, so stopping it halts
// the whole lazy-SMP fan-out at once.
type Limit struct {
	deadline time.Time
	hasDeadline bool

	nodeBudget uint64
	hasNodeBudget bool

	stopped atomic.Bool
	nodes   atomic.Uint64
}

// NewLimit constructs a Limit. A zero time.Time or zero budget means unbounded on
// that dimension.
func NewLimit(deadline time.Time, nodeBudget uint64) *Limit {
	return &Limit{
		deadline:      deadline,
		hasDeadline:   !deadline.IsZero(),
		nodeBudget:    nodeBudget,
		hasNodeBudget: nodeBudget > 0,
	}
}

// Unbounded returns a Limit with no deadline or node budget: only Stop halts it.
func Unbounded() *Limit {
	return &Limit{}
}

// Stop requests that the search halt as soon as a worker next checks. Idempotent,
// safe to call from any goroutine, including concurrently with Tick.
func (l *Limit) Stop() {
	l.stopped.Store(true)
}

// IsStopped returns true once Stop was called or a bound was exceeded on a
// previous Tick.
func (l *Limit) IsStopped() bool {
	return l.stopped.Load()
}

// Tick is called by a SearchWorker once per node. It increments the shared node
// counter and, every tickInterval nodes, checks the deadline -- amortizing the
// wall-clock syscall cost across many nodes. Returns true iff the search should
// stop now.
func (l *Limit) Tick() bool {
	n := l.nodes.Add(1)
	if l.stopped.Load() {
		return true
	}
	if l.hasNodeBudget && n >= l.nodeBudget {
		l.stopped.Store(true)
		return true
	}
	if n%tickInterval == 0 && l.hasDeadline && !time.Now().Before(l.deadline) {
		l.stopped.Store(true)
		return true
	}
	return false
}

// Nodes returns the total nodes visited so far across every worker sharing this Limit.
func (l *Limit) Nodes() uint64 {
	return l.nodes.Load()
}
