package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// quiescence resolves tactical noise at the horizon before trusting a static
// evaluation. It stands pat unless the side to move is in check -- there is no
// "do nothing" reply to a check, so stand-pat there would accept a potentially
// losing position as quiet -- then expands quiescenceMoves and keeps recursing
// until no further noisy move improves on the best score found.
func (w *worker) quiescence(b *board.Board, alpha, beta eval.Eval) eval.Eval {
	if b.Result().Outcome == board.Draw {
		return 0
	}
	if w.limit.Tick() {
		return alpha
	}
	w.nodes++
	w.track()

	pos := b.Position()
	inCheck := pos.IsCheck()

	best := eval.NegInf
	if !inCheck {
		best = w.eval.Evaluate(pos)
		if best >= beta {
			return best
		}
		if best > alpha {
			alpha = best
		}
	}

	moves := quiescenceMoves(pos)
	ml := NewMoveList(moves, MVVLVA(pos, 0))

	legal := 0
	for {
		m, ok := ml.Next()
		if !ok {
			break
		}
		if !inCheck && !m.IsPromotion() {
			if _, _, captured := pos.At(m.To()); captured && eval.StaticExchangeEvaluation(b, pos.SideToMove(), m.To()) < 0 {
				continue // losing capture: no amount of recapturing recovers the material
			}
		}

		if !b.PushMove(m) {
			continue
		}
		legal++

		w.ply++
		score := w.quiescence(b, beta.Negate(), alpha.Negate()).Negate().StepBack()
		w.ply--
		b.PopMove()

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	if inCheck && legal == 0 {
		return eval.MatedIn(0)
	}
	return best
}
