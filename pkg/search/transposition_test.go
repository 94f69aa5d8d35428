package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable(t *testing.T) {
	ctx := context.Background()

	// Size is rounded down to the largest power-of-two entry count.

	tt := search.NewTranspositionTable(ctx, 0x1000)
	assert.Equal(t, uint64(0x1000), tt.Size())
	tt2 := search.NewTranspositionTable(ctx, 0x1f00)
	assert.Equal(t, uint64(0x1000), tt2.Size())

	// Read/write round-trip.

	a := board.ZobristHash(rand.Uint64())

	_, _, _, _, ok := tt.Read(a)
	assert.False(t, ok)

	m := board.NewMove(board.G4, board.G8, board.Queen, false, false)
	s := eval.Eval(2)
	assert.True(t, tt.Write(a, search.ExactBound, 5, s, m))

	bound, depth, score, move, ok := tt.Read(a)
	assert.True(t, ok)
	assert.Equal(t, search.ExactBound, bound)
	assert.Equal(t, 5, depth)
	assert.Equal(t, s, score)
	assert.Equal(t, m, move)

	_, _, _, _, ok = tt.Read(a ^ 0xff0000)
	assert.False(t, ok)

	// Replacement: same generation keeps the deeper entry; aging always replaces.

	assert.False(t, tt.Write(a, search.ExactBound, 2, eval.Eval(5), m))
	assert.True(t, tt.Write(a, search.ExactBound, 6, eval.Eval(5), m))

	tt.AgeUp()
	assert.True(t, tt.Write(a, search.ExactBound, 1, eval.Eval(5), m))
}
