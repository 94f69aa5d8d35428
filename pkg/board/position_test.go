package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerft1(t *testing.T) {
	tests := []struct {
		fen      string
		depth    int
		expected int
	}{
		// http://www.talkchess.com/forum3/viewtopic.php?t=48616
		{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/1PB1P1b1/P1NP1N2/2P1QPPP/R4RK1 b - b3 0 10", 1, 45},
		{fen.Initial, 1, 20},
		{fen.Initial, 2, 400},

		// "Kiwipete": chessprogramming.org/Perft_Results, exercises castling
		// (both sides, both directions), en passant and pinned-piece legality.
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},

		// chessprogramming.org/Perft_Results position 5: promotions for both colors.
		{"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", 1, 24},
	}

	for _, tt := range tests {
		pos, err := fen.Decode(tt.fen)
		require.NoError(t, err)

		assert.Equal(t, tt.expected, perft(pos, tt.depth), "perft(%v, %v)", tt.fen, tt.depth)
	}
}

// perft counts legal move sequences of the given depth from pos, as a check on
// move generation and Make's legality filter together.
func perft(pos *board.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	count := 0
	for _, m := range pos.PseudoLegalMoves() {
		next, ok := pos.Make(m)
		if !ok {
			continue
		}
		count += perft(&next, depth-1)
	}
	return count
}

func TestMakeUpdatesHashIncrementally(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	m := board.NewMove(board.E2, board.E4, board.NoPiece, false, false)
	next, ok := pos.Make(m)
	require.True(t, ok)

	want, err := fen.Decode("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)

	assert.Equal(t, want.Hash(), next.Hash())
}

func TestMakeRejectsMoveIntoCheck(t *testing.T) {
	// White king on e1, checked by a rook on e8 along the e-file.
	pos, err := fen.Decode("4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	_, ok := pos.Make(board.NewMove(board.E1, board.E2, board.NoPiece, false, false))
	assert.False(t, ok, "Ke2 stays on the e-file, still checked by the rook")

	_, ok = pos.Make(board.NewMove(board.E1, board.D1, board.NoPiece, false, false))
	assert.True(t, ok, "Kd1 steps off the e-file, escaping the check")
}

func TestIsCheck(t *testing.T) {
	pos, err := fen.Decode("4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.IsCheck())

	pos, err = fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.False(t, pos.IsCheck())
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		fen      string
		expected bool
	}{
		{"8/8/4k3/8/8/4K3/8/8 w - - 0 1", true},   // K vs K
		{"8/8/4k3/8/8/4KN2/8/8 w - - 0 1", true},  // KN vs K
		{"8/8/4k3/8/8/4KB2/8/8 w - - 0 1", true},  // KB vs K
		{"8/8/4k3/8/8/4KP2/8/8 w - - 0 1", false}, // KP vs K: can still promote
		{"8/8/4k3/8/8/4KR2/8/8 w - - 0 1", false}, // KR vs K: can still mate
	}

	for _, tt := range tests {
		pos, err := fen.Decode(tt.fen)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, pos.HasInsufficientMaterial(), tt.fen)
	}
}
