package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticExchangeEvaluationWinningCapture(t *testing.T) {
	// White rook takes a black rook on d8 that nothing defends.
	pos, err := fen.Decode("3r4/8/6k1/8/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)

	b := board.NewBoard(pos)
	assert.Equal(t, eval.NominalValue(board.Rook), eval.StaticExchangeEvaluation(b, board.White, board.D8))
}

func TestStaticExchangeEvaluationLosingCapture(t *testing.T) {
	// White rook takes a pawn on d7 that is defended by a king, recapturing for free.
	pos, err := fen.Decode("4k3/3p4/8/8/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)

	b := board.NewBoard(pos)
	assert.Negative(t, eval.StaticExchangeEvaluation(b, board.White, board.D7))
}

func TestStaticExchangeEvaluationEmptySquareIsZero(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	b := board.NewBoard(pos)
	assert.Zero(t, eval.StaticExchangeEvaluation(b, board.White, board.E4))
}

func TestPinPenaltyPenalizesSideToMove(t *testing.T) {
	// Black bishop on g7 pins the white knight on e5 to the white king on c3,
	// along the c3-h8 diagonal. It is white to move, so the pin counts against it.
	pos, err := fen.Decode("6k1/6b1/8/4N3/8/2K5/8/8 w - - 0 1")
	require.NoError(t, err)

	assert.Negative(t, eval.PinPenalty(pos))
}
