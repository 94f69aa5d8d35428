// Package searchctl drives iterative-deepening, lazy-SMP searches on top of
// package search's single-worker alpha-beta core: it owns time control, worker
// fan-out, and the handle the engine front end uses to stop a search in flight.
package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold the dynamic search options a caller may set for a particular
// search. Zero value means unbounded depth/time and a single worker.
type Options struct {
	// DepthLimit, if set, limits the search to the given ply depth.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, limits the search to the given time parameters.
	TimeControl lang.Optional[TimeControl]
	// Workers is how many goroutines search the root concurrently, sharing one
	// transposition table (lazy SMP). Zero means one.
	Workers lang.Optional[uint]
	// Noise, if set, perturbs the evaluator by up to this many centipawns --
	// useful for generating varied self-play games, not for competitive play.
	Noise lang.Optional[int]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.DepthLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		ret = append(ret, fmt.Sprintf("time=%v", v))
	}
	if v, ok := o.Workers.V(); ok {
		ret = append(ret, fmt.Sprintf("workers=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Launcher manages searches.
type Launcher interface {
	// Launch starts a new iteratively-deepening search from the board's current
	// position. It expects an exclusive (forked) Board and returns a handle plus
	// a channel of increasingly deep PVs, closed once the search halts.
	Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, e eval.Evaluator, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the engine front end manage a running search: spin one off with a
// forked board, then Halt it when a move must be played or a new search started.
type Handle interface {
	// Halt stops the search, if running, and returns the last completed PV.
	// Idempotent and safe to call before the search has produced any PV.
	Halt() search.PV
}
