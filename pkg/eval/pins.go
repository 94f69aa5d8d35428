package eval

import "github.com/corvidchess/corvid/pkg/board"

// Pin represents a pinned piece: Pinned cannot move off the Attacker-Target line
// without exposing Target to Attacker.
type Pin struct {
	Attacker, Pinned, Target board.Square
}

// FindPins returns all pins targeting the given piece of the given side.
func FindPins(pos *board.Position, side board.Color, piece board.Piece) []Pin {
	var ret []Pin

	opp := side.Opponent()
	bb := pos.Occupancy(side, piece)
	for bb != 0 {
		target := bb.LastPopSquare()
		bb ^= board.BitMask(target)

		// Rook/Queen pins.

		rooks := board.RookAttackboard(pos.Rotated(), target)
		pins := rooks & pos.Occupancy(side, board.NoPiece)
		for pins != 0 {
			pinned := pins.LastPopSquare()
			pins ^= board.BitMask(pinned)

			attackers := pos.Occupancy(opp, board.Queen) | pos.Occupancy(opp, board.Rook)
			candidate := (board.RookAttackboard(pos.Rotated().Xor(pinned), target) &^ rooks) & attackers
			if candidate != 0 {
				ret = append(ret, Pin{Attacker: candidate.LastPopSquare(), Pinned: pinned, Target: target})
			}
		}

		// Bishop/Queen pins.

		bishops := board.BishopAttackboard(pos.Rotated(), target)
		pins = bishops & pos.Occupancy(side, board.NoPiece)
		for pins != 0 {
			pinned := pins.LastPopSquare()
			pins ^= board.BitMask(pinned)

			attackers := pos.Occupancy(opp, board.Queen) | pos.Occupancy(opp, board.Bishop)
			candidate := (board.BishopAttackboard(pos.Rotated().Xor(pinned), target) &^ bishops) & attackers
			if candidate != 0 {
				ret = append(ret, Pin{Attacker: candidate.LastPopSquare(), Pinned: pinned, Target: target})
			}
		}
	}

	return ret
}

// pinPenaltyPerPin is the flat centipawn adjustment per pin against a king or
// queen. It is a hand-set tactical nudge layered on top of the tuned feature
// weights, not itself a tuned feature: a pinned piece's mobility loss is highly
// position-dependent and not well captured by Features' linear terms.
const pinPenaltyPerPin = 15

// PinPenalty returns a side-to-move-relative adjustment for pins against either
// side's king or queen: negative when the side to move has pinned pieces,
// positive when the opponent does.
func PinPenalty(pos *board.Position) Eval {
	turn := pos.SideToMove()
	opp := turn.Opponent()

	own := len(FindPins(pos, turn, board.King)) + len(FindPins(pos, turn, board.Queen))
	theirs := len(FindPins(pos, opp, board.King)) + len(FindPins(pos, opp, board.Queen))

	return Eval(theirs-own) * pinPenaltyPerPin
}
