package search

import "github.com/corvidchess/corvid/pkg/board"

// quiescenceMoves returns the moves quiescence search expands at the horizon:
// captures and promotions when the side to move is not in check, or the full
// pseudo-legal move list when it is.
//
// A position in check has no quiet "do nothing" option -- stand-pat on the static
// eval there would accept a potentially illegal (mated) position as quiet. Falling
// back to full legal move generation whenever in check, rather than only when no
// captures exist, avoids ever returning a stale evaluation of a checked position.
func quiescenceMoves(pos *board.Position) []board.Move {
	all := pos.PseudoLegalMoves()
	if pos.IsCheck() {
		return all
	}

	noisy := make([]board.Move, 0, len(all))
	for _, m := range all {
		if m.IsEnPassant() || m.IsPromotion() {
			noisy = append(noisy, m)
			continue
		}
		if _, _, ok := pos.At(m.To()); ok {
			noisy = append(noisy, m)
		}
	}
	return noisy
}
