package engine_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtInitialPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester")

	assert.Equal(t, fen.Initial, e.Position())
}

func TestMoveAndTakeBack(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester")

	require.NoError(t, e.Move(ctx, "e2e4"))
	assert.NotEqual(t, fen.Initial, e.Position())

	require.NoError(t, e.TakeBack(ctx))
	assert.Equal(t, fen.Initial, e.Position())
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester")

	assert.Error(t, e.Move(ctx, "e2e5"))
}

func TestResetToCustomPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester")

	const pos = "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"
	require.NoError(t, e.Reset(ctx, pos))
	assert.Equal(t, pos, e.Position())
}

func TestAnalyzeRejectsConcurrentSearch(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester")

	_, err := e.Analyze(ctx, searchctl.Options{DepthLimit: lang.Some(uint(1))})
	require.NoError(t, err)

	_, err = e.Analyze(ctx, searchctl.Options{DepthLimit: lang.Some(uint(1))})
	assert.Error(t, err)

	_, _ = e.Halt(ctx)
}

func TestAnalyzeProducesAMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester")

	out, err := e.Analyze(ctx, searchctl.Options{DepthLimit: lang.Some(uint(2))})
	require.NoError(t, err)

	var last string
	for pv := range out {
		if len(pv.Moves) > 0 {
			last = pv.Moves[0].String()
		}
	}
	assert.NotEmpty(t, last)
}
