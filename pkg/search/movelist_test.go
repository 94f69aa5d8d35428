package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveListOrdersTTMoveFirst(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves()
	tt := board.NewMove(board.G1, board.F3, board.NoPiece, false, false)

	ml := search.NewMoveList(moves, search.MVVLVA(pos, tt))

	first, ok := ml.Next()
	require.True(t, ok)
	assert.Equal(t, tt, first)
}

func TestMoveListOrdersCapturesBeforeQuietMoves(t *testing.T) {
	// White queen on d1 can take a rook on d8, or make any number of quiet moves.
	pos, err := fen.Decode("3rk3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves()
	ml := search.NewMoveList(moves, search.MVVLVA(pos, board.Move(0)))

	first, ok := ml.Next()
	require.True(t, ok)
	assert.Equal(t, board.D1, first.From())
	assert.Equal(t, board.D8, first.To())
}

func TestMoveListDrainsAllMoves(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves()
	ml := search.NewMoveList(moves, search.MVVLVA(pos, board.Move(0)))

	count := 0
	for {
		if _, ok := ml.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, len(moves), count)

	_, ok := ml.Next()
	assert.False(t, ok)
}
