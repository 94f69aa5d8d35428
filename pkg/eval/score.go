package eval

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/board"
)

// Eval is a side-relative position score: positive favors the side to move. It is
// either a fixed-point centipawn value or a mate distance, the two sharing one
// value space by reserving a band above any plausible material score for mate
// encoding -- mate_in(k) always outranks a finite centipawn score.
type Eval int32

const (
	// MaxEval/MinEval bound any non-mate score. A human-interpretable evaluation is
	// in centipawns, so +/-1,000,000 leaves ample headroom below the mate band.
	MaxEval Eval = 1000000
	MinEval Eval = -MaxEval

	// mateBase is the Eval of a mate delivered this ply (distance 0). Eval values
	// above mateBase-maxPly encode "mate in k plies from here"; the gap below
	// MaxEval guarantees no feature-weight dot product can collide with it.
	mateBase Eval = 2000000
	maxPly   Eval = 1024

	// Inf/NegInf seed alpha-beta search windows; they must strictly dominate any
	// mate score so that an unbounded window never mistakes "no score yet" for
	// a proven mate.
	Inf    Eval = mateBase + maxPly + 1
	NegInf Eval = -Inf
)

// MateIn returns the Eval for "mate delivered in k plies", k >= 0.
func MateIn(k int) Eval {
	return mateBase - Eval(k)
}

// MatedIn returns the Eval for "mated in k plies", k >= 0 -- the losing side's
// perspective of MateIn(k).
func MatedIn(k int) Eval {
	return -MateIn(k)
}

// IsMate returns true iff the score encodes a forced mate, for either side.
func (e Eval) IsMate() bool {
	return e > mateBase-maxPly || e < -(mateBase-maxPly)
}

// MateDistance returns the number of plies to mate, and true iff IsMate(). The
// distance is always positive; the sign of e indicates who delivers it.
func (e Eval) MateDistance() (int, bool) {
	if !e.IsMate() {
		return 0, false
	}
	if e > 0 {
		return int(mateBase - e), true
	}
	return int(mateBase + e), true
}

// StepBack widens a mate distance by one ply. Called once per returning search
// ply so that a mate score found k plies below the root reads as "mate in k+1"
// once it reaches the root. Non-mate scores are unaffected.
func (e Eval) StepBack() Eval {
	switch {
	case e > mateBase-maxPly:
		return e - 1
	case e < -(mateBase - maxPly):
		return e + 1
	default:
		return e
	}
}

// Negate flips the score to the opponent's perspective, preserving mate-distance
// semantics (negamax sign convention).
func (e Eval) Negate() Eval {
	return -e
}

// InPerspective converts a root-side-relative Eval into the given side's
// perspective: positive means that side is better.
func (e Eval) InPerspective(root, side board.Color) Eval {
	if root == side {
		return e
	}
	return e.Negate()
}

// Crop clamps a non-mate score into [MinEval, MaxEval]. Used after summing feature
// contributions, which could otherwise drift outside the representable band.
func Crop(e Eval) Eval {
	switch {
	case e > MaxEval:
		return MaxEval
	case e < MinEval:
		return MinEval
	default:
		return e
	}
}

// Max returns the larger of two scores.
func Max(a, b Eval) Eval {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Eval) Eval {
	if a < b {
		return a
	}
	return b
}

func (e Eval) String() string {
	if d, ok := e.MateDistance(); ok {
		if e > 0 {
			return fmt.Sprintf("mate %d", (d+1)/2)
		}
		return fmt.Sprintf("mate -%d", (d+1)/2)
	}
	return fmt.Sprintf("cp %d", e)
}
