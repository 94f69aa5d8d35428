package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Iterative runs iterative-deepening, lazy-SMP alpha-beta searches: at each
// depth it fans out opt.Workers goroutines against forked boards sharing one
// TranspositionTable and one search.Limit, and keeps the best-scoring result.
// Deeper iterations reuse principal-variation and capture-ordering information
// the TT accumulated at shallower depths, so each depth is cheap relative to a
// cold search at that depth would be.
type Iterative struct{}

func (it *Iterative) Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, e eval.Evaluator, opt Options) (Handle, <-chan search.PV) {
	limit := search.Unbounded()
	var soft time.Duration
	useSoft := false
	if tc, ok := opt.TimeControl.V(); ok {
		var hard time.Duration
		soft, hard = tc.Limits(b.Turn())
		useSoft = true
		limit = search.NewLimit(time.Now().Add(hard), 0)
	}

	out := make(chan search.PV, 1)
	h := &handle{
		init:  iox.NewAsyncCloser(),
		quit:  iox.NewAsyncCloser(),
		limit: limit,
	}
	go h.process(ctx, b, tt, e, opt, soft, useSoft, out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser
	limit      *search.Limit

	pv search.PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, b *board.Board, tt search.TranspositionTable, e eval.Evaluator, opt Options, soft time.Duration, useSoft bool, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	if n, ok := opt.Noise.V(); ok && n > 0 {
		e = eval.NewNoisy(e, n, time.Now().UnixNano())
	}

	workers := 1
	if n, ok := opt.Workers.V(); ok && n > 0 {
		workers = int(n)
	}

	tt.AgeUp()

	launched := time.Now()
	depth := 1
	for !h.quit.IsClosed() {
		start := time.Now()

		nodes, score, moves, selDepth, err := (&Iterative{}).searchDepth(b, tt, e, h.limit, depth, workers)
		if err == search.ErrHalted {
			return
		}

		pv := search.PV{
			Depth:    depth,
			SelDepth: selDepth,
			Nodes:    nodes,
			Score:    score,
			Moves:    moves,
			Time:     time.Since(start),
			Hash:     tt.Used(),
		}

		logw.Debugf(ctx, "searched %v: %v", b.Position(), pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()
		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) == limit {
			return // halt: reached max depth
		}
		if md, ok := score.MateDistance(); ok && md <= depth {
			return // halt: forced mate found. Exact result, no point searching deeper.
		}
		if useSoft && soft < time.Since(launched) {
			return // halt: exceeded soft time limit. Do not start a new depth.
		}
		if h.limit.IsStopped() {
			return
		}
		depth++
	}
}

// searchDepth fans workers goroutines out against depth, each with its own
// forked board, and returns the highest-scoring completed result among them. All
// workers share tt and limit, so stopping limit halts every one of them.
func (it *Iterative) searchDepth(b *board.Board, tt search.TranspositionTable, e eval.Evaluator, limit *search.Limit, depth, workers int) (uint64, eval.Eval, []board.Move, int, error) {
	type result struct {
		nodes    uint64
		score    eval.Eval
		moves    []board.Move
		selDepth int
		err      error
	}

	results := make([]result, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			nodes, score, moves, selDepth, err := search.Search(b.Fork(), e, tt, limit, depth)
			results[i] = result{nodes, score, moves, selDepth, err}
		}(i)
	}
	wg.Wait()

	var totalNodes uint64
	best := eval.NegInf
	var bestMoves []board.Move
	maxSelDepth := 0
	anyOK := false
	for _, r := range results {
		totalNodes += r.nodes
		if r.selDepth > maxSelDepth {
			maxSelDepth = r.selDepth
		}
		if r.err != nil {
			continue
		}
		anyOK = true
		if r.score > best {
			best = r.score
			bestMoves = r.moves
		}
	}

	if !anyOK {
		return totalNodes, 0, nil, maxSelDepth, search.ErrHalted
	}
	return totalNodes, best, bestMoves, maxSelDepth, nil
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.limit.Stop()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}
