package search

import (
	"errors"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// ErrHalted is returned by Search when the Limit stopped the search before it
// completed the requested depth. Any score or principal variation returned
// alongside it is incomplete and carries no result.
var ErrHalted = errors.New("search: halted before completion")

// Search runs a depth-limited alpha-beta search of b's current position using e
// to evaluate leaves, storing into and probing tt. Multiple goroutines may call
// Search concurrently against the same tt and limit, each with its own forked
// Board (lazy SMP): they do not coordinate directly, but each benefits from TT
// entries the others have already written.
func Search(b *board.Board, e eval.Evaluator, tt TranspositionTable, limit *Limit, depth int) (uint64, eval.Eval, []board.Move, int, error) {
	w := &worker{eval: e, tt: tt, limit: limit}
	return w.Search(b, depth)
}

// worker runs a single depth-limited negamax alpha-beta search, probing and
// storing into a shared TranspositionTable. Many workers may search the same
// root concurrently, sharing one Limit and one TranspositionTable (lazy SMP):
// each explores the same tree with the same move ordering, diverging only
// through the entries the others have already stored.
type worker struct {
	eval     eval.Evaluator
	tt       TranspositionTable
	limit    *Limit
	nodes    uint64
	ply      int // plies below the search root, tracked through quiescence too
	selDepth int // deepest ply reached this search, i.e. the selective search depth
}

// track records the worker's current ply as the new selective depth if it is a
// new maximum. Called on every node, including quiescence nodes, since
// quiescence extends past the nominal iterative-deepening depth.
func (w *worker) track() {
	if w.ply > w.selDepth {
		w.selDepth = w.ply
	}
}

// Search runs alpha-beta to the given depth (plies) from the board's current
// position and returns the node count, the side-to-move-relative score, the
// principal variation, and the selective search depth (the deepest ply
// actually visited, including quiescence extensions). If the Limit stops the
// search mid-tree, it returns ErrHalted with the root's original alpha bound
// and an empty principal variation -- the caller (the iterative-deepening
// driver) discards a halted depth's result.
func (w *worker) Search(b *board.Board, depth int) (uint64, eval.Eval, []board.Move, int, error) {
	w.nodes = 0
	w.ply = 0
	w.selDepth = 0
	score, pv := w.negamax(b, depth, eval.NegInf, eval.Inf)
	if w.limit.IsStopped() {
		return w.nodes, score, pv, w.selDepth, ErrHalted
	}
	return w.nodes, score, pv, w.selDepth, nil
}

// negamax returns the side-to-move-relative score of b's current position, and
// the principal variation leading to it, found by an alpha-beta search of the
// given remaining depth.
func (w *worker) negamax(b *board.Board, depth int, alpha, beta eval.Eval) (eval.Eval, []board.Move) {
	if b.Result().Outcome == board.Draw {
		return 0, nil
	}
	if w.limit.Tick() {
		return alpha, nil
	}
	w.track()

	hash := b.Position().Hash()
	var ttMove board.Move
	if bound, d, score, move, ok := w.tt.Read(hash); ok {
		ttMove = move
		if d >= depth {
			switch {
			case bound == ExactBound:
				return score, nil
			case bound == LowerBound && score >= beta:
				return score, nil
			case bound == UpperBound && score <= alpha:
				return score, nil
			}
		}
	}

	if depth <= 0 {
		score := w.quiescence(b, alpha, beta)
		w.tt.Write(hash, ExactBound, 0, score, board.Move(0))
		return score, nil
	}

	w.nodes++

	orig := alpha
	best := eval.NegInf
	var pv []board.Move
	var bestMove board.Move
	cutoff := false

	moves := b.Position().PseudoLegalMoves()
	ml := NewMoveList(moves, MVVLVA(b.Position(), ttMove))

	legal := 0
	for {
		m, ok := ml.Next()
		if !ok {
			break
		}
		if !b.PushMove(m) {
			continue
		}
		legal++

		w.ply++
		score, rem := w.negamax(b, depth-1, beta.Negate(), alpha.Negate())
		w.ply--
		score = score.Negate().StepBack()
		b.PopMove()

		if w.limit.IsStopped() {
			return orig, nil
		}

		if score > best {
			best = score
			bestMove = m
			pv = append([]board.Move{m}, rem...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			cutoff = true
			break
		}
	}

	if legal == 0 {
		result := b.AdjudicateNoLegalMoves()
		if result.Reason == board.Checkmate {
			return eval.MatedIn(0), nil
		}
		return 0, nil
	}

	bound := ExactBound
	switch {
	case cutoff:
		bound = LowerBound
	case best <= orig:
		bound = UpperBound
	}
	w.tt.Write(hash, bound, depth, best, bestMove)
	return best, pv
}
