package search

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielproano/bulletchess/internal/order"
	"github.com/danielproano/bulletchess/internal/rules"
	"github.com/danielproano/bulletchess/internal/stage"
	"github.com/danielproano/bulletchess/internal/tt"
	"github.com/danielproano/bulletchess/internal/zobrist"
)

// MaxDepth is the internal ceiling on iterative deepening: if a session
// somehow never exhausts its time budget, depth stops growing here.
const MaxDepth = 64

// rootResult pairs a root move with its negamax score from one completed
// iteration.
type rootResult struct {
	move  rules.Move
	score int
}

// Drive runs iterative deepening from depth 1 up to MaxDepth, stopping
// when budget elapses, and returns the deepest fully-completed iteration's
// best move. If no iteration of depth ≥ 1 completes before the budget
// expires, it returns the first legal move; if pos has no legal moves it
// returns rules.NoMove.
func Drive(pos rules.Position, side rules.Color, st stage.Stage, budgetMs int, table *tt.Table, hasher *zobrist.Table) rules.Move {
	legal := pos.LegalMoves()
	if len(legal) == 0 {
		return rules.NoMove
	}

	var published rules.Move
	var publishedMu sync.Mutex
	published = legal[0]

	deadline := time.Now().Add(time.Duration(budgetMs) * time.Millisecond)
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	for depth := 1; depth <= MaxDepth; depth++ {
		if ctx.Err() != nil {
			break
		}

		result, completed := driveIteration(ctx, pos, side, st, depth, table, hasher)
		if !completed {
			break
		}

		publishedMu.Lock()
		published = result.move
		publishedMu.Unlock()

		fp := hasher.Hash(pos)
		table.Store(fp, tt.Entry{Score: result.score, Depth: depth, Flag: tt.Exact, Move: result.move})
	}

	publishedMu.Lock()
	defer publishedMu.Unlock()
	return published
}

// driveIteration evaluates every root move at depth in parallel, across a
// worker pool sized to hardware parallelism. It returns completed=false
// if the deadline passed before every root move finished — the caller
// must discard whatever partial scores were gathered rather than
// publishing them.
func driveIteration(ctx context.Context, pos rules.Position, side rules.Color, st stage.Stage, depth int, table *tt.Table, hasher *zobrist.Table) (rootResult, bool) {
	moves := order.Order(pos, rules.NoMove)

	results := make([]int, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			child := pos.Apply(m)
			results[i] = -Search(gctx, child, depth-1, -Infinity, Infinity, side.Other(), table, hasher, st)
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return rootResult{}, false
	}

	best := rootResult{move: moves[0], score: results[0]}
	for i := 1; i < len(moves); i++ {
		if results[i] > best.score {
			best = rootResult{move: moves[i], score: results[i]}
		}
	}
	return best, true
}
