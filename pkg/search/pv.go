package search

import (
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// PV is the result of a completed search at a given depth: principal variation,
// its score, and the resources spent to find it.
type PV struct {
	Depth    int
	SelDepth int // deepest ply actually visited, including quiescence extensions.
	Nodes    uint64
	Score    eval.Eval
	Moves    []board.Move
	Time     time.Duration
	Hash     float64 // transposition table occupancy, [0;1], at completion.
}

func (pv PV) String() string {
	return fmt.Sprintf("depth=%v seldepth=%v score=%v nodes=%v time=%v pv=%v", pv.Depth, pv.SelDepth, pv.Score, pv.Nodes, pv.Time, pv.Moves)
}
