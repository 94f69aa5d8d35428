package board

// PseudoLegalMoves returns all pseudo-legal moves for the side to move: moves that
// follow each piece's movement rules but may leave the mover's own king in check.
// Callers filter illegality via Position.Make's second return value. Pseudo-legal
// generation (rather than fully legal generation) keeps the generator simple and
// lets Make absorb the one check that actually requires simulating the move.
func (p *Position) PseudoLegalMoves() []Move {
	ret := make([]Move, 0, 48)

	own := p.turn
	occAll := p.rotated.Mask()
	occOwn := p.pieces[own][NoPiece]

	ret = p.genPawnMoves(ret, own, occAll)
	ret = p.genOfficerMoves(ret, own, occAll, occOwn, Knight)
	ret = p.genOfficerMoves(ret, own, occAll, occOwn, Bishop)
	ret = p.genOfficerMoves(ret, own, occAll, occOwn, Rook)
	ret = p.genOfficerMoves(ret, own, occAll, occOwn, Queen)
	ret = p.genOfficerMoves(ret, own, occAll, occOwn, King)
	ret = p.genCastles(ret, own)

	return ret
}

func (p *Position) genOfficerMoves(ret []Move, own Color, occAll, occOwn Bitboard, piece Piece) []Move {
	bb := p.pieces[own][piece]
	for bb != 0 {
		from := bb.LastPopSquare()
		bb ^= BitMask(from)

		targets := Attackboard(p.rotated, from, piece) &^ occOwn
		for targets != 0 {
			to := targets.LastPopSquare()
			targets ^= BitMask(to)
			ret = append(ret, NewMove(from, to, NoPiece, false, false))
		}
	}
	return ret
}

func (p *Position) genPawnMoves(ret []Move, own Color, occAll Bitboard) []Move {
	pawns := p.pieces[own][Pawn]
	promo := PawnPromotionRank(own)
	jump := PawnJumpRank(own)

	for bb := pawns; bb != 0; {
		from := bb.LastPopSquare()
		bb ^= BitMask(from)

		single := PawnMoveboard(occAll, own, BitMask(from))
		ret = appendPawnTargets(ret, from, single, promo)

		if single != 0 {
			double := PawnMoveboard(occAll, own, single) & jump
			ret = appendPawnTargets(ret, from, double, promo)
		}

		caps := PawnCaptureboard(own, BitMask(from)) & p.pieces[own.Opponent()][NoPiece]
		ret = appendPawnTargets(ret, from, caps, promo)

		if ep, ok := p.EnPassant(); ok {
			if PawnCaptureboard(own, BitMask(from))&BitMask(ep) != 0 {
				ret = append(ret, NewMove(from, ep, NoPiece, false, true))
			}
		}
	}
	return ret
}

func appendPawnTargets(ret []Move, from Square, targets, promo Bitboard) []Move {
	for targets != 0 {
		to := targets.LastPopSquare()
		targets ^= BitMask(to)

		if BitMask(to)&promo != 0 {
			for _, piece := range promotable {
				ret = append(ret, NewMove(from, to, piece, false, false))
			}
		} else {
			ret = append(ret, NewMove(from, to, NoPiece, false, false))
		}
	}
	return ret
}

// castling transit/destination squares, per side.
var (
	kingSideTransit  = map[Color][2]Square{White: {F1, G1}, Black: {F8, G8}}
	queenSideTransit = map[Color][3]Square{White: {D1, C1, B1}, Black: {D8, C8, B8}}
)

func (p *Position) genCastles(ret []Move, own Color) []Move {
	if p.IsAttacked(own, p.pieces[own][King].LastPopSquare()) {
		return ret // cannot castle out of check
	}

	kingFrom := E1
	kingSideRight, queenSideRight := WhiteKingSideCastle, WhiteQueenSideCastle
	if own == Black {
		kingFrom = E8
		kingSideRight, queenSideRight = BlackKingSideCastle, BlackQueenSideCastle
	}

	if p.castling.IsAllowed(kingSideRight) {
		sq := kingSideTransit[own]
		if p.IsEmpty(sq[0]) && p.IsEmpty(sq[1]) && !p.IsAttacked(own, sq[0]) && !p.IsAttacked(own, sq[1]) {
			ret = append(ret, NewMove(kingFrom, sq[1], NoPiece, true, false))
		}
	}
	if p.castling.IsAllowed(queenSideRight) {
		sq := queenSideTransit[own]
		if p.IsEmpty(sq[0]) && p.IsEmpty(sq[1]) && p.IsEmpty(sq[2]) && !p.IsAttacked(own, sq[0]) && !p.IsAttacked(own, sq[1]) {
			ret = append(ret, NewMove(kingFrom, sq[1], NoPiece, true, false))
		}
	}
	return ret
}
