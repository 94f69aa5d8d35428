package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/engine/console"
	"github.com/corvidchess/corvid/pkg/engine/uci"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
)

var (
	hash    = flag.Uint("hash", 64, "transposition table size in MB (zero disables it)")
	depth   = flag.Uint("depth", 0, "search depth limit (zero is unlimited)")
	noise   = flag.Uint("noise", 0, "evaluation noise in centipawns (zero if deterministic)")
	workers = flag.Uint("workers", 1, "number of lazy-SMP search workers")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

corvid is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "corvid", "corvidchess", engine.WithTable(search.NewTranspositionTable), engine.WithOptions(engine.Options{
		Depth:   *depth,
		Hash:    *hash,
		Noise:   *noise,
		Workers: *workers,
	}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "protocol not supported")
	}
}
