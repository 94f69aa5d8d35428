package search

import (
	"container/heap"
	"fmt"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Priority represents the move ordering priority: higher explores first.
type Priority int32

// MoveList is a move priority queue for move ordering, backed by a binary heap
// rather than a sort: at most a handful of moves are ever popped before a cutoff,
// so paying O(log n) per pop beats paying O(n log n) to sort the whole list
// upfront. Callers build an ordered list at every node, whatever the remaining
// depth.
type MoveList struct {
	h moveHeap
}

// NewMoveList builds a move list with the given priority function.
func NewMoveList(moves []board.Move, fn func(board.Move) Priority) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next pops the highest-priority remaining move.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.h.Len() == 0 {
		return 0, false
	}
	e := heap.Pop(&ml.h).(elm)
	return e.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.h.Len() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.h.Len())
}

type elm struct {
	m   board.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { panic("fixed size heap") }

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[:n-1]
	return ret
}

// MVVLVA returns the move-ordering priority for a pseudo-legal move: TT-suggested
// move first, then captures ranked by CaptureCandidacy, then quiet moves at zero.
// pos is the position the move is played from.
func MVVLVA(pos *board.Position, ttMove board.Move) func(board.Move) Priority {
	// captureBase lifts every capture, king captures included, above promotions
	// and quiet moves.
	const captureBase = 10000
	return func(m board.Move) Priority {
		if m == ttMove {
			return 1 << 20
		}
		if m.IsEnPassant() {
			return captureBase + Priority(eval.CaptureCandidacy(board.Pawn, board.Pawn))
		}
		if _, victim, ok := pos.At(m.To()); ok {
			_, attacker, _ := pos.At(m.From())
			return captureBase + Priority(eval.CaptureCandidacy(attacker, victim))
		}
		if m.IsPromotion() {
			return Priority(eval.NominalValue(m.Promote()))
		}
		return 0
	}
}
