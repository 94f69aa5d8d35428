// Command tune fits evaluator feature weights against labeled EPD game data,
// printing the resulting weight vector in the format pkg/eval.Load expects.
package main

import (
	"context"
	"flag"
	"os"
	"runtime"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/tuner"
	"github.com/seekerror/logw"
)

var (
	epd       = flag.String("epd", "", "path to the labeled EPD training set")
	warmStart = flag.String("weights", "", "path to a weights file to warm-start from (default is nominal material only)")
	epochs    = flag.Int("epochs", 1000, "number of gradient descent epochs")
	learnRate = flag.Float64("rate", 5, "gradient descent learning rate")
	workers   = flag.Int("workers", runtime.NumCPU(), "number of goroutines to split each epoch's gradient computation across")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	if *epd == "" {
		logw.Exitf(ctx, "missing required -epd flag")
	}

	f, err := os.Open(*epd)
	if err != nil {
		logw.Exitf(ctx, "opening %v: %v", *epd, err)
	}
	defer f.Close()

	samples, err := tuner.LoadEPD(f)
	if err != nil {
		logw.Exitf(ctx, "loading %v: %v", *epd, err)
	}
	logw.Infof(ctx, "loaded %v training samples from %v", len(samples), *epd)

	weights := eval.DefaultWeights()
	if *warmStart != "" {
		wf, err := os.Open(*warmStart)
		if err != nil {
			logw.Exitf(ctx, "opening %v: %v", *warmStart, err)
		}
		weights, err = eval.Load(wf)
		wf.Close()
		if err != nil {
			logw.Exitf(ctx, "loading %v: %v", *warmStart, err)
		}
	}

	for i := 0; i < *epochs; i++ {
		var mse float64
		weights, mse = tuner.Step(samples, weights, *learnRate, *workers)
		logw.Infof(ctx, "epoch %v: mse=%v", i, mse)
	}

	if err := eval.Dump(os.Stdout, weights); err != nil {
		logw.Exitf(ctx, "writing weights: %v", err)
	}
}
