package eval

import (
	"math/rand"

	"github.com/corvidchess/corvid/pkg/board"
)

// Noisy wraps an Evaluator with a small amount of randomness, in the range
// [-limit/2; limit/2] centipawns. A zero limit disables the wrapper. Useful for
// generating varied self-play games for tuner training data without changing
// engine strength materially.
type Noisy struct {
	inner Evaluator
	rand  *rand.Rand
	limit int
}

func NewNoisy(inner Evaluator, limit int, seed int64) Noisy {
	return Noisy{inner: inner, rand: rand.New(rand.NewSource(seed)), limit: limit}
}

func (n Noisy) Evaluate(pos *board.Position) Eval {
	base := n.inner.Evaluate(pos)
	if n.limit <= 0 || base.IsMate() {
		return base
	}
	return base + Eval(n.rand.Intn(n.limit)-n.limit/2)
}
