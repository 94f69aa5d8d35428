package tuner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Sample is one labeled training position: the sparse feature vector extracted
// from the position, its game phase, and the expected score in [0,1] relative to
// the side to move (1 means that side went on to win the game).
type Sample struct {
	Features []eval.FeatureIndex
	Phase    float64
	Target   float64
}

// LoadEPD reads extended position description lines of the form
//
//	<fen> "<result>";
//
// where <result> is one of "1-0", "0-1" or "1/2-1/2", and extracts one Sample per
// line.
func LoadEPD(r io.Reader) ([]Sample, error) {
	var samples []Sample

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		parts := strings.SplitN(text, `"`, 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: missing quoted result: %q", line, text)
		}

		pos, err := fen.Decode(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		absolute, err := parseResult(parts[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		target := absolute
		if pos.SideToMove() != board.White {
			target = 1 - absolute
		}

		samples = append(samples, Sample{
			Features: eval.Features(pos),
			Phase:    eval.Phase(pos),
			Target:   target,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

func parseResult(s string) (float64, error) {
	switch strings.TrimSpace(s) {
	case "1-0":
		return 1, nil
	case "0-1":
		return 0, nil
	case "1/2-1/2":
		return 0.5, nil
	default:
		return 0, fmt.Errorf("unknown result %q", s)
	}
}
