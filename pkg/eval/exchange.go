package eval

import "github.com/corvidchess/corvid/pkg/board"

// StaticExchangeEvaluation estimates the net material result of a capture sequence
// on sq, assuming both sides always recapture with their least valuable attacker
// and stop once a recapture would lose material. It is an approximation: unlike a
// full search, it never considers a side declining to recapture for positional
// reasons.
//
// b is mutated and restored: each trial recapture is pushed and popped via
// Board.PushMove/PopMove, which also makes pinned attackers fall out of
// FindCapture's next-ply result for free, since a pinned piece cannot legally
// make the capture.
func StaticExchangeEvaluation(b *board.Board, side board.Color, sq board.Square) Eval {
	_, victim, ok := b.Position().At(sq)
	if !ok {
		return 0
	}
	return exchange(b, side, sq, NominalValue(victim))
}

// exchange returns the net material side gains by capturing on sq with its least
// valuable attacker, given the piece sitting on sq is worth victimValue. The
// result may be negative: it is up to the caller (or the next ply up) to decide
// whether a negative result means standing pat instead.
func exchange(b *board.Board, side board.Color, sq board.Square, victimValue Eval) Eval {
	attackers := SortByNominalValue(FindCapture(b.Position(), side, sq))

	for _, a := range attackers {
		promote := board.NoPiece
		if a.Piece == board.Pawn && (sq.Rank() == board.Rank1 || sq.Rank() == board.Rank8) {
			promote = board.Queen
		}

		m := board.NewMove(a.Square, sq, promote, false, false)
		if !b.PushMove(m) {
			continue // pinned: cannot actually recapture here
		}

		// The opponent only continues the exchange if doing so gains them
		// material; otherwise they stand pat and side simply keeps the capture.
		continuation := exchange(b, side.Opponent(), sq, NominalValue(a.Piece))
		b.PopMove()

		if continuation < 0 {
			continuation = 0
		}
		return victimValue - continuation
	}
	return 0
}
