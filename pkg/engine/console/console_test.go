package console_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/engine/console"
	"github.com/stretchr/testify/assert"
)

func newDriver(t *testing.T) (chan string, <-chan string) {
	t.Helper()

	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "tester")

	in := make(chan string, 100)
	_, out := console.NewDriver(ctx, e, in)
	return in, out
}

func drainUntil(t *testing.T, out <-chan string, prefix string) string {
	t.Helper()

	for {
		select {
		case line, ok := <-out:
			if !ok {
				t.Fatalf("output stream closed before seeing %q", prefix)
			}
			if strings.HasPrefix(line, prefix) {
				return line
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q", prefix)
		}
	}
}

func TestDriverPrintsBoardOnStart(t *testing.T) {
	_, out := newDriver(t)

	assert.True(t, strings.HasPrefix(<-out, "engine "))
	line := drainUntil(t, out, "fen:")
	assert.Contains(t, line, "rnbqkbnr")
}

func TestDriverPrintCommandReprintsBoard(t *testing.T) {
	in, out := newDriver(t)
	drainUntil(t, out, "fen:")

	in <- "print"
	line := drainUntil(t, out, "fen:")
	assert.Contains(t, line, "rnbqkbnr")
}

func TestDriverPlaysAndUndoesMoves(t *testing.T) {
	in, out := newDriver(t)
	drainUntil(t, out, "fen:")

	in <- "e2e4"
	line := drainUntil(t, out, "fen:")
	assert.NotContains(t, line, "rnbqkbnr/pppppppp")

	in <- "undo"
	line = drainUntil(t, out, "fen:")
	assert.Contains(t, line, "rnbqkbnr/pppppppp")
}

func TestDriverReportsInvalidMove(t *testing.T) {
	in, out := newDriver(t)
	drainUntil(t, out, "fen:")

	in <- "e2e5"
	assert.Equal(t, "invalid move: 'e2e5'", drainUntil(t, out, "invalid move"))
}

func TestDriverAnalyzeReportsBestMove(t *testing.T) {
	in, out := newDriver(t)
	drainUntil(t, out, "fen:")

	in <- "analyze 2"
	line := drainUntil(t, out, "bestmove")
	assert.True(t, strings.HasPrefix(line, "bestmove "))
}
