// Package tuner fits the evaluator's feature weights to labeled game outcomes by
// logistic (Texel-style) gradient descent: each sample's phase-blended evaluation
// is squashed through a sigmoid and compared against the side to move's eventual
// result, and every feature weight is nudged against its share of the error.
package tuner

import (
	"math"
	"sync"

	"github.com/corvidchess/corvid/pkg/eval"
)

// sigmoidScale controls how sharply the logistic curve saturates relative to a
// centipawn evaluation; 400 centipawns maps to roughly a 0.73 expected score,
// the scaling conventionally used by Texel-style tuners operating on centipawn
// weights rather than normalized [-1,1] ones.
const sigmoidScale = 400.0

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x/sigmoidScale))
}

// gradient is the per-worker accumulator: a weight-shaped gradient vector plus the
// summed squared error over the samples it processed.
type gradient struct {
	grad []float64
	se   float64
}

// Step runs one epoch of gradient descent over samples, returning the updated
// weights (the argument is left unchanged) and the epoch's mean squared error.
// workers partitions samples into that many chunks, each gradient-accumulated by
// its own goroutine and reduced by plain summation, matching the corpus's
// goroutine+sync.WaitGroup fan-out for CPU-bound batch work.
//
// The workers' raw partial gradients are summed first and the total is divided
// once by the full dataset size, so the result matches a single pass over all
// samples regardless of how they were partitioned.
func Step(samples []Sample, weights eval.Weights, learnRate float64, workers int) (eval.Weights, float64) {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(samples) {
		workers = len(samples)
	}
	if workers == 0 {
		return weights, 0
	}

	w := make([]float64, eval.NumFeatures)
	for i, v := range weights {
		w[i] = float64(v)
	}

	chunk := len(samples) / workers
	results := make([]gradient, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if i == workers-1 {
			end = len(samples)
		}

		wg.Add(1)
		go func(i, start, end int) {
			defer wg.Done()
			results[i] = gradientOf(samples[start:end], w)
		}(i, start, end)
	}
	wg.Wait()

	total := make([]float64, eval.NumFeatures)
	sumSE := 0.0
	for _, r := range results {
		sumSE += r.se
		for i, v := range r.grad {
			total[i] += v
		}
	}

	n := float64(len(samples))
	var out eval.Weights
	for i := range w {
		w[i] -= learnRate * total[i] / n
		out[i] = int16(math.Round(w[i]))
	}

	return out, sumSE / n
}

// gradientOf computes the gradient contribution and summed squared error of a
// sample slice against the current weights. Safe to run concurrently across
// disjoint slices of the same read-only weights vector.
func gradientOf(samples []Sample, w []float64) gradient {
	grad := make([]float64, len(w))
	se := 0.0

	for _, s := range samples {
		mg, eg := 0.0, 0.0
		for _, fi := range s.Features {
			mg += float64(fi.Count) * w[fi.Mid]
			eg += float64(fi.Count) * w[fi.End]
		}

		x := s.Phase*mg + (1-s.Phase)*eg
		sigm := sigmoid(x)
		err := s.Target - sigm
		coeff := -sigm * (1 - sigm) * err / sigmoidScale

		for _, fi := range s.Features {
			grad[fi.Mid] += float64(fi.Count) * s.Phase * coeff
			grad[fi.End] += float64(fi.Count) * (1 - s.Phase) * coeff
		}
		se += err * err
	}

	return gradient{grad: grad, se: se}
}
