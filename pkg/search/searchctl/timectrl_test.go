package searchctl_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
)

func TestTimeControlLimitsHardIsThreeTimesSoft(t *testing.T) {
	tc := searchctl.TimeControl{White: 60 * time.Second, Black: 60 * time.Second}

	soft, hard := tc.Limits(board.White)
	assert.Equal(t, 3*soft, hard)
	assert.Positive(t, soft)
}

func TestTimeControlLimitsUseRemainingSideClock(t *testing.T) {
	tc := searchctl.TimeControl{White: 60 * time.Second, Black: 6 * time.Second}

	wSoft, _ := tc.Limits(board.White)
	bSoft, _ := tc.Limits(board.Black)
	assert.Greater(t, wSoft, bSoft)
}

func TestTimeControlLimitsRespectMovesToGo(t *testing.T) {
	tc := searchctl.TimeControl{White: 60 * time.Second, Black: 60 * time.Second, Moves: 1}

	soft, _ := tc.Limits(board.White)
	noMoves := searchctl.TimeControl{White: 60 * time.Second, Black: 60 * time.Second}
	softNoMoves, _ := noMoves.Limits(board.White)

	assert.Greater(t, soft, softNoMoves, "one move left should allocate far more time per move than an assumed 40")
}
