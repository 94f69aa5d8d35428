package tuner_test

import (
	"strings"
	"testing"

	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/tuner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEPD(t *testing.T) {
	data := strings.Join([]string{
		`4k3/8/8/8/8/8/8/3QK3 w - - 0 1 "1-0";`,
		`4k3/8/8/8/8/8/8/3QK3 b - - 0 1 "0-1";`,
		``, // blank lines are skipped
		fen.Initial + ` "1/2-1/2";`,
	}, "\n")

	samples, err := tuner.LoadEPD(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	// White to move, White won: target is 1 from the side to move's perspective.
	assert.Equal(t, 1.0, samples[0].Target)
	// Black to move, Black won: also 1 from the side to move's perspective.
	assert.Equal(t, 1.0, samples[1].Target)
	assert.Equal(t, 0.5, samples[2].Target)
}

func TestLoadEPDRejectsBadResult(t *testing.T) {
	_, err := tuner.LoadEPD(strings.NewReader(fen.Initial + ` "?";`))
	assert.Error(t, err)
}

func TestStepReducesSquaredErrorTowardLopsidedMaterial(t *testing.T) {
	data := strings.Join([]string{
		`4k3/8/8/8/8/8/8/3QK3 w - - 0 1 "1-0";`,
		`3qk3/8/8/8/8/8/8/4K3 w - - 0 1 "0-1";`,
	}, "\n")

	samples, err := tuner.LoadEPD(strings.NewReader(data))
	require.NoError(t, err)

	var weights eval.Weights // zero-valued: every sample evaluates to 0, sigmoid 0.5.
	_, mse0 := tuner.Step(samples, weights, 0, 1) // learnRate=0: measure only, don't move.

	updated, _ := tuner.Step(samples, weights, 50, 2)
	assert.NotEqual(t, weights, updated)

	_, mse1 := tuner.Step(samples, updated, 0, 1)
	assert.Less(t, mse1, mse0, "a gradient step from uninformative weights should reduce squared error")
}
