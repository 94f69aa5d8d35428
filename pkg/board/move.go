package board

import (
	"fmt"
	"strings"
)

// MoveFlag classifies the special move kinds that cannot be inferred from the
// from/to squares alone. 2 bits.
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	PromotionFlag
	CastleFlag
	EnPassantFlag
)

func (f MoveFlag) String() string {
	switch f {
	case Normal:
		return "normal"
	case PromotionFlag:
		return "promotion"
	case CastleFlag:
		return "castle"
	case EnPassantFlag:
		return "enpassant"
	default:
		return "?"
	}
}

const (
	moveToShift      = 0
	moveFromShift    = 6
	movePromoteShift = 12
	moveFlagsShift   = 14

	moveSquareMask = 0x3f
	movePromoMask  = 0x3
	moveFlagsMask  = 0x3
)

// Move is a 16-bit packed move: to[0:6) from[6:12) promote[12:14) flags[14:16).
// The packing is a deliberate memory/bandwidth tradeoff: transposition entries
// and principal variations hold many moves, and halving their footprint
// roughly halves the cache traffic associated with them.
type Move uint16

// NewMove constructs a move. Promote is NoPiece unless the move is a
// promotion (in which case it must be one of Knight/Bishop/Rook/Queen).
// Castle and en passant are mutually exclusive; requesting both is a
// programmer error and panics.
func NewMove(from, to Square, promote Piece, castle, enPassant bool) Move {
	if castle && enPassant {
		panic("move cannot be both castle and en passant")
	}

	var flags MoveFlag
	var promo uint16

	switch {
	case castle:
		flags = CastleFlag
	case enPassant:
		flags = EnPassantFlag
	case promote != NoPiece:
		if !promote.IsPromotable() {
			panic(fmt.Sprintf("invalid promotion piece: %v", promote))
		}
		flags = PromotionFlag
		promo = promotionCode(promote)
	default:
		flags = Normal
	}

	return Move(uint16(to)<<moveToShift | uint16(from)<<moveFromShift | promo<<movePromoteShift | uint16(flags)<<moveFlagsShift)
}

// InvalidMoveSyntax indicates a move string could not be parsed.
type InvalidMoveSyntax struct {
	Text   string
	Reason string
}

func (e *InvalidMoveSyntax) Error() string {
	return fmt.Sprintf("invalid move '%v': %v", e.Text, e.Reason)
}

// ParseUCIMove parses a move in pure algebraic coordinate notation, such as
// "e2e4" or "b7b8q", inferring castle and en passant tags from the position
// the move is played from. Text is 4 chars for a plain move, or 5 chars when
// the 5th selects a promotion piece.
func ParseUCIMove(text string, pos *Position) (Move, error) {
	runes := []rune(text)
	if len(runes) != 4 && len(runes) != 5 {
		return 0, &InvalidMoveSyntax{text, "must be 4 or 5 characters"}
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return 0, &InvalidMoveSyntax{text, fmt.Sprintf("bad from-square: %v", err)}
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return 0, &InvalidMoveSyntax{text, fmt.Sprintf("bad to-square: %v", err)}
	}

	var promote Piece
	if len(runes) == 5 {
		p, ok := ParsePiece(runes[4])
		if !ok || !p.IsPromotable() {
			return 0, &InvalidMoveSyntax{text, "invalid promotion letter"}
		}
		promote = p
	}

	_, piece, ok := pos.At(from)
	castle := ok && piece == King && chebyshev(from, to) > 1

	enPassant := false
	if ok && piece == Pawn {
		if ep, has := pos.EnPassant(); has && ep == to {
			enPassant = true
		}
	}

	return NewMove(from, to, promote, castle, enPassant), nil
}

func chebyshev(a, b Square) int {
	df := int(a.File()) - int(b.File())
	if df < 0 {
		df = -df
	}
	dr := int(a.Rank()) - int(b.Rank())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

func (m Move) To() Square {
	return Square((uint16(m) >> moveToShift) & moveSquareMask)
}

func (m Move) From() Square {
	return Square((uint16(m) >> moveFromShift) & moveSquareMask)
}

// Promote returns the promotion piece, or NoPiece if this is not a promotion.
func (m Move) Promote() Piece {
	if !m.IsPromotion() {
		return NoPiece
	}
	return promotable[(uint16(m)>>movePromoteShift)&movePromoMask]
}

func (m Move) Flag() MoveFlag {
	return MoveFlag((uint16(m) >> moveFlagsShift) & moveFlagsMask)
}

func (m Move) IsCastle() bool {
	return m.Flag() == CastleFlag
}

func (m Move) IsEnPassant() bool {
	return m.Flag() == EnPassantFlag
}

func (m Move) IsPromotion() bool {
	return m.Flag() == PromotionFlag
}

// Raw returns the packed 16-bit representation.
func (m Move) Raw() uint16 {
	return uint16(m)
}

// MoveFromRaw reconstructs a Move from its packed representation. MoveFromRaw(m.Raw()) == m.
func MoveFromRaw(raw uint16) Move {
	return Move(raw)
}

func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString(strings.ToLower(m.Promote().String()))
	}
	return sb.String()
}

// ToUCI formats the move in pure algebraic coordinate notation. Castle and en
// passant are not tagged in the text form -- a UCI reader infers them from
// the position, as ParseUCIMove does.
func (m Move) ToUCI() string {
	return m.String()
}
