package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturesZeroAtStartingPosition(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	// Material, PST and mobility are symmetric at move 1, so every extracted
	// feature must cancel between the two sides: no FeatureIndex survives.
	assert.Empty(t, eval.Features(pos))
}

func TestFeaturesCaptureMaterialImbalance(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	f := eval.Features(pos)
	require.NotEmpty(t, f)

	total := 0
	for _, fi := range f {
		total += fi.Count
	}
	assert.Positive(t, total, "white is up a queen, net feature count should favor the side to move")
}

func TestPhaseRange(t *testing.T) {
	start, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, eval.Phase(start), 1e-9)

	bare, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, eval.Phase(bare), 1e-9)
}

func TestWeightedEvaluateFavorsMaterial(t *testing.T) {
	w := eval.DefaultWeights()
	e := eval.NewWeighted(w)

	ahead, err := fen.Decode("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	behind, err := fen.Decode("3qk3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(e.Evaluate(ahead)), int(e.Evaluate(behind)))
}
