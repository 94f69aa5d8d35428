// Package eval contains position evaluation: the feature-weight evaluator shared
// between the search core and the offline tuner.
package eval

import (
	"bufio"
	"fmt"
	"io"

	"github.com/corvidchess/corvid/pkg/board"
)

// Evaluator is a static position evaluator, returning a side-to-move-relative score.
type Evaluator interface {
	Evaluate(pos *board.Position) Eval
}

// Weights is the tuned feature-weight vector: NumFeatures (midgame, endgame)
// centipawn pairs, stored as a flat fixed-point array so the tuner and the runtime
// evaluator read/write the identical layout.
type Weights [NumFeatures]int16

// Weighted is the default Evaluator: a sparse dot product of Features(pos) against
// a Weights vector, phase-blended between midgame and endgame.
type Weighted struct {
	W Weights
}

// NewWeighted constructs a Weighted evaluator from tuned weights.
func NewWeighted(w Weights) Weighted {
	return Weighted{W: w}
}

func (e Weighted) Evaluate(pos *board.Position) Eval {
	if pos.IsCheck() {
		legal := false
		for _, m := range pos.PseudoLegalMoves() {
			if _, ok := pos.Make(m); ok {
				legal = true
				break
			}
		}
		if !legal {
			// Caller (search) should normally detect checkmate itself before reaching a
			// static evaluation, but a bare Evaluate call on a mated position must still
			// return something consistent with mate_in(0) rather than a finite score.
			return MatedIn(0)
		}
	}

	mg, eg := 0.0, 0.0
	for _, fi := range Features(pos) {
		mg += float64(fi.Count) * float64(e.W[fi.Mid])
		eg += float64(fi.Count) * float64(e.W[fi.End])
	}

	p := Phase(pos)
	return Crop(Eval(p*mg+(1-p)*eg) + PinPenalty(pos))
}

// NominalValue is the absolute nominal value in pawns (x100 for centipawns) of a
// piece kind. The King has an arbitrary high value so it never factors into a
// material trade decision; NominalValue is used for phase computation and simple
// move-ordering candidacy, not as a feature weight.
func NominalValue(p board.Piece) Eval {
	switch p {
	case board.Pawn:
		return 100
	case board.Bishop, board.Knight:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 10000
	default:
		return 0
	}
}

// DefaultWeights seeds an untuned Weights vector from nominal material values only
// (every positional feature starts at zero). It is the engine's evaluator before a
// tuned weights file is loaded via Load, and the tuner's starting point absent a
// warm-start file.
func DefaultWeights() Weights {
	var w Weights
	for piece, idx := range materialIndex {
		v := int16(NominalValue(piece))
		w[materialStart+idx*2] = v
		w[materialStart+idx*2+1] = v
	}
	return w
}

// Material is a minimal Evaluator ignoring positional features, useful as a cheap
// baseline for tests and as the oracle-search evaluator where phase/mobility
// features would only add noise to a correctness comparison.
type Material struct{}

func (Material) Evaluate(pos *board.Position) Eval {
	turn := pos.SideToMove()
	opp := turn.Opponent()

	var total Eval
	for p := board.ZeroPiece; p < board.NumPieces && p != board.King; p++ {
		total += Eval(pos.Occupancy(turn, p).PopCount()-pos.Occupancy(opp, p).PopCount()) * NominalValue(p)
	}
	return total
}

// Dump writes the weight vector as newline-separated integers, one per line, in
// feature-index order -- the same format the tuner's print_weights produces, so a
// tuned vector can be copied directly into the engine's default weights.
func Dump(w io.Writer, weights Weights) error {
	bw := bufio.NewWriter(w)
	for _, v := range weights {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads a weight vector in the format Dump produces.
func Load(r io.Reader) (Weights, error) {
	var weights Weights
	sc := bufio.NewScanner(r)

	i := 0
	for sc.Scan() {
		if i >= NumFeatures {
			return weights, fmt.Errorf("too many weights, want %d", NumFeatures)
		}
		var v int16
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			return weights, fmt.Errorf("invalid weight at line %d: %w", i+1, err)
		}
		weights[i] = v
		i++
	}
	if err := sc.Err(); err != nil {
		return weights, err
	}
	if i != NumFeatures {
		return weights, fmt.Errorf("got %d weights, want %d", i, NumFeatures)
	}
	return weights, nil
}
