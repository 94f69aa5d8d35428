package searchctl_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterativeLaunchStopsAtDepthLimit(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	b := board.NewBoard(pos)

	it := &searchctl.Iterative{}
	tt := search.NoTranspositionTable{}

	opt := searchctl.Options{DepthLimit: lang.Some(uint(2))}
	_, out := it.Launch(context.Background(), b, tt, eval.Material{}, opt)

	var last search.PV
	for pv := range out {
		last = pv
		assert.LessOrEqual(t, pv.Depth, 2)
	}
	assert.Equal(t, 2, last.Depth)
}

func TestIterativeHaltReturnsLastCompletedPV(t *testing.T) {
	// Back-rank mate in one: the search should complete depth 1 and report it
	// before Halt is even called, since a proven mate ends the search early.
	pos, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	it := &searchctl.Iterative{}
	tt := search.NoTranspositionTable{}

	h, out := it.Launch(context.Background(), b, tt, eval.Material{}, searchctl.Options{})
	for range out {
		// drain until the search halts itself (mate found).
	}

	pv := h.Halt()
	require.NotEmpty(t, pv.Moves)

	_, isMate := pv.Score.MateDistance()
	assert.True(t, isMate)
}
