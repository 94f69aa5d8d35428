package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Minimax is a full-width, unpruned negamax search with no transposition table
// and no quiescence extension: at depth 0 it returns the evaluator's verdict on
// whatever position the horizon landed on, tactics included or not. It visits
// every node worker's alpha-beta would have pruned, so it is far too slow for
// play -- its only job is to be an oracle that alpha-beta results can be checked
// against on small test positions, since an unpruned full-width search cannot
// disagree with a correct pruned one on the best score.
type Minimax struct {
	Eval eval.Evaluator
}

func (mm Minimax) Search(b *board.Board, depth int, limit *Limit) (uint64, eval.Eval, []board.Move, error) {
	run := &runMinimax{eval: mm.Eval, limit: limit}
	score, pv := run.search(b, depth)
	if limit.IsStopped() {
		return run.nodes, score, pv, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runMinimax struct {
	eval  eval.Evaluator
	limit *Limit
	nodes uint64
}

// search returns the side-to-move-relative score of b's current position.
func (mm *runMinimax) search(b *board.Board, depth int) (eval.Eval, []board.Move) {
	if mm.limit.Tick() {
		return 0, nil
	}
	mm.nodes++

	if b.Result().Outcome == board.Draw {
		return 0, nil
	}
	if depth == 0 {
		return mm.eval.Evaluate(b.Position()), nil
	}

	legal := 0
	best := eval.NegInf
	var pv []board.Move

	for _, m := range b.Position().PseudoLegalMoves() {
		if !b.PushMove(m) {
			continue
		}
		legal++

		score, rem := mm.search(b, depth-1)
		score = score.Negate().StepBack()
		b.PopMove()

		if score > best {
			best = score
			pv = append([]board.Move{m}, rem...)
		}
	}

	if legal == 0 {
		result := b.AdjudicateNoLegalMoves()
		if result.Reason == board.Checkmate {
			return eval.MatedIn(0), nil
		}
		return 0, nil
	}

	return best, pv
}
