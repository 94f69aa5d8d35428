package eval

import (
	"sort"

	"github.com/corvidchess/corvid/pkg/board"
)

// FindCapture returns the pieces of the given color that directly attack sq --
// used to build the MVV/LVA-style candidacy order for capture moves.
func FindCapture(pos *board.Position, side board.Color, sq board.Square) []board.Placement {
	var ret []board.Placement

	for piece := board.ZeroPiece; piece < board.NumPieces; piece++ {
		if piece == board.Pawn {
			continue
		}
		bb := board.Attackboard(pos.Rotated(), sq, piece) & pos.Occupancy(side, piece)
		for bb != 0 {
			from := bb.LastPopSquare()
			bb ^= board.BitMask(from)
			ret = append(ret, board.Placement{Piece: piece, Color: side, Square: from})
		}
	}

	bb := board.PawnCaptureboard(side.Opponent() /* reverse direction */, board.BitMask(sq)) & pos.Occupancy(side, board.Pawn)
	for bb != 0 {
		from := bb.LastPopSquare()
		bb ^= board.BitMask(from)
		ret = append(ret, board.Placement{Piece: board.Pawn, Color: side, Square: from})
	}

	return ret
}

// SortByNominalValue orders the placement list by nominal material value, low to high --
// the "least valuable attacker" half of MVV/LVA.
func SortByNominalValue(pieces []board.Placement) []board.Placement {
	sort.SliceStable(pieces, func(i, j int) bool {
		return NominalValue(pieces[i].Piece) < NominalValue(pieces[j].Piece)
	})
	return pieces
}

// CaptureCandidacy scores a capture move for move-ordering purposes: victim value
// minus a fraction of attacker value, so "queen takes pawn" sorts behind "pawn takes
// queen" even before a full static-exchange evaluation is run.
func CaptureCandidacy(attacker, victim board.Piece) int {
	return int(NominalValue(victim))*16 - int(NominalValue(attacker))
}
