package eval

import "github.com/corvidchess/corvid/pkg/board"

// NumFeatures is the dimension of the weight vector shared by the static evaluator
// and the offline tuner. The layout is a contract: both load weights by index, so
// changing a boundary here requires re-running the tuner.
const NumFeatures = 1118

// Feature layout, by half-open range over the NumFeatures-dimensional vector. Each
// range holds (midgame, endgame) pairs, phase-blended at evaluation time.
const (
	materialStart = 0
	materialEnd   = 10 // 5 piece kinds (no king) x 2 phases

	pstStart = materialEnd
	pstEnd   = pstStart + 6*64*2 // 6 pieces x 64 squares x 2 phases = 768, ends at 778

	mobilityStart = pstEnd
	// MaxMobility buckets per piece kind, clamped: queens can reach up to 27 squares,
	// but bucketing saturates above this so the table stays small and well-sampled.
	MaxMobility  = 28
	mobilityEnd  = mobilityStart + 6*MaxMobility*2 // ends at 778+336=1114

	doubledPawnsStart = mobilityEnd
	doubledPawnsEnd   = doubledPawnsStart + 2 // 1114..1116

	openRookStart = doubledPawnsEnd
	openRookEnd   = openRookStart + 2 // 1116..1118
)

// materialIndex maps a non-king piece to its material feature slot; pawn..queen in ascending value.
var materialIndex = map[board.Piece]int{
	board.Pawn:   0,
	board.Knight: 1,
	board.Bishop: 2,
	board.Rook:   3,
	board.Queen:  4,
}

// pstSlot maps piece x square to a PST slot, 0..383 (6 pieces x 64 squares).
func pstSlot(p board.Piece, sq board.Square) int {
	return pieceSlot(p)*64 + int(sq)
}

// pieceSlot orders all 6 piece kinds (including king) for PST/mobility indexing.
func pieceSlot(p board.Piece) int {
	switch p {
	case board.Pawn:
		return 0
	case board.Knight:
		return 1
	case board.Bishop:
		return 2
	case board.Rook:
		return 3
	case board.Queen:
		return 4
	case board.King:
		return 5
	default:
		panic("invalid piece for feature indexing")
	}
}

// FeatureIndex is a (midgame index, endgame index, count) triple: a feature that
// appeared `count` times favoring the side to move, contributing count*w[mg] in the
// midgame and count*w[eg] in the endgame before phase blending. Negative count
// favors the opponent -- the sign is folded in by the extractor so weights stay
// unsigned from the tuner's point of view.
type FeatureIndex struct {
	Mid, End int
	Count    int
}

// Features extracts the sparse feature vector for a position, relative to the side
// to move. It is the single source of truth shared by the evaluator (dot product at
// search time) and the tuner (gradient computation) -- whatever changes the feature
// layout changes both.
func Features(pos *board.Position) []FeatureIndex {
	turn := pos.SideToMove()
	opp := turn.Opponent()

	var f []FeatureIndex

	for piece, idx := range materialIndex {
		count := pos.Occupancy(turn, piece).PopCount() - pos.Occupancy(opp, piece).PopCount()
		if count != 0 {
			f = append(f, FeatureIndex{Mid: materialStart + idx*2, End: materialStart + idx*2 + 1, Count: count})
		}
	}

	f = appendPST(f, pos, turn, 1)
	f = appendPST(f, pos, opp, -1)

	f = appendMobility(f, pos, turn, 1)
	f = appendMobility(f, pos, opp, -1)

	if d := doubledPawnCount(pos, turn) - doubledPawnCount(pos, opp); d != 0 {
		f = append(f, FeatureIndex{Mid: doubledPawnsStart, End: doubledPawnsStart + 1, Count: d})
	}
	if d := openRookCount(pos, turn) - openRookCount(pos, opp); d != 0 {
		f = append(f, FeatureIndex{Mid: openRookStart, End: openRookStart + 1, Count: d})
	}

	// Net out entries sharing an index, so features of both sides cancel.
	at := map[int]int{}
	var merged []FeatureIndex
	for _, fi := range f {
		if i, ok := at[fi.Mid]; ok {
			merged[i].Count += fi.Count
		} else {
			at[fi.Mid] = len(merged)
			merged = append(merged, fi)
		}
	}
	f = f[:0]
	for _, fi := range merged {
		if fi.Count != 0 {
			f = append(f, fi)
		}
	}
	return f
}

func appendPST(f []FeatureIndex, pos *board.Position, c board.Color, sign int) []FeatureIndex {
	for piece := board.ZeroPiece; piece < board.NumPieces; piece++ {
		bb := pos.Occupancy(c, piece)
		for bb != 0 {
			sq := bb.LastPopSquare()
			bb ^= board.BitMask(sq)

			slot := pstSlot(piece, orientedSquare(c, sq))
			idx := pstStart + slot*2
			f = append(f, FeatureIndex{Mid: idx, End: idx + 1, Count: sign})
		}
	}
	return f
}

// orientedSquare flips the square vertically for Black so a single PST, written
// from White's perspective, scores both sides symmetrically.
func orientedSquare(c board.Color, sq board.Square) board.Square {
	if c == board.White {
		return sq
	}
	return board.NewSquare(sq.File(), 7-sq.Rank())
}

func appendMobility(f []FeatureIndex, pos *board.Position, c board.Color, sign int) []FeatureIndex {
	occOwn := pos.Occupancy(c, board.NoPiece)
	for piece := board.ZeroPiece; piece < board.NumPieces; piece++ {
		bb := pos.Occupancy(c, piece)
		for bb != 0 {
			sq := bb.LastPopSquare()
			bb ^= board.BitMask(sq)

			var attacks board.Bitboard
			if piece == board.Pawn {
				// Attackboard only handles officers; pawn mobility is the pawn's
				// diagonal capture squares, the same board movegen.go consults.
				attacks = board.PawnCaptureboard(c, board.BitMask(sq))
			} else {
				attacks = board.Attackboard(pos.Rotated(), sq, piece)
			}

			n := (attacks &^ occOwn).PopCount()
			if n >= MaxMobility {
				n = MaxMobility - 1
			}

			slot := pieceSlot(piece)*MaxMobility + n
			idx := mobilityStart + slot*2
			f = append(f, FeatureIndex{Mid: idx, End: idx + 1, Count: sign})
		}
	}
	return f
}

func doubledPawnCount(pos *board.Position, c board.Color) int {
	pawns := pos.Occupancy(c, board.Pawn)
	count := 0
	for file := board.ZeroFile; file < board.NumFiles; file++ {
		n := (pawns & board.BitFile(file)).PopCount()
		if n > 1 {
			count += n - 1
		}
	}
	return count
}

func openRookCount(pos *board.Position, c board.Color) int {
	rooks := pos.Occupancy(c, board.Rook)
	pawns := pos.Occupancy(board.White, board.Pawn) | pos.Occupancy(board.Black, board.Pawn)

	count := 0
	for bb := rooks; bb != 0; {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)
		if board.BitFile(sq.File())&pawns == 0 {
			count++
		}
	}
	return count
}

// Phase returns the game-phase interpolation factor in [0,1]: 1 at the opening
// (full non-pawn material), 0 at a bare-kings endgame. Blend as p*mg + (1-p)*eg.
func Phase(pos *board.Position) float64 {
	maxPhaseMaterial := int(2*NominalValue(board.Knight) + 2*NominalValue(board.Bishop) +
		2*NominalValue(board.Rook) + NominalValue(board.Queen))

	total := 0
	for _, c := range [2]board.Color{board.White, board.Black} {
		for _, p := range [4]board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
			total += pos.Occupancy(c, p).PopCount() * int(NominalValue(p))
		}
	}
	if total > 2*maxPhaseMaterial {
		total = 2 * maxPhaseMaterial
	}
	return float64(total) / float64(2*maxPhaseMaterial)
}
