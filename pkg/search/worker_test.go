package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	pos, err := fen.Decode(f)
	require.NoError(t, err)
	return board.NewBoard(pos)
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Back-rank mate: Rd8# is mate in one for White.
	b := mustBoard(t, "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")

	_, score, moves, _, err := search.Search(b, eval.Material{}, search.NoTranspositionTable{}, search.Unbounded(), 3)
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	d, ok := score.MateDistance()
	assert.True(t, ok, "expected a mate score, got %v", score)
	assert.Equal(t, 1, d)
	assert.Equal(t, board.NewMove(board.D1, board.D8, board.NoPiece, false, false), moves[0])
}

func TestAlphaBetaAgreesWithMinimax(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/3K4/8/3R4 w - - 0 1",
	}

	for _, f := range positions {
		pos, err := fen.Decode(f)
		require.NoError(t, err)

		const depth = 2
		e := eval.Material{}

		b1 := board.NewBoard(pos)
		_, abScore, _, _, err := search.Search(b1, e, search.NoTranspositionTable{}, search.Unbounded(), depth)
		require.NoError(t, err)

		b2 := board.NewBoard(pos)
		mm := search.Minimax{Eval: e}
		_, mmScore, _, err := mm.Search(b2, depth, search.Unbounded())
		require.NoError(t, err)

		assert.Equal(t, mmScore, abScore, "alpha-beta and minimax disagree on %v", f)
	}
}

func TestQuiescenceExploresQuietCheckEvasions(t *testing.T) {
	// Black is in check from the rook on h8 along the back rank, with no capture
	// available, but can escape to a7 or b7. A quiescence search that only
	// considers captures while in check would see zero candidate moves and
	// wrongly report this as checkmate.
	b := mustBoard(t, "k6R/8/8/8/8/8/8/7K b - - 0 1")

	_, score, _, _, err := search.Search(b, eval.Material{}, search.NoTranspositionTable{}, search.Unbounded(), 0)
	require.NoError(t, err)

	_, isMate := score.MateDistance()
	assert.False(t, isMate, "king has a quiet escape; position is not checkmate, got %v", score)
}
