// Package engine is the embedding API a host language calls into: update a
// position, then ask for the best move under a clock. It owns the shared
// transposition table and Zobrist key table for the lifetime of one
// handle, and gates concurrent searches on that handle with a mutex — a
// single Engine serves one search at a time, matching the teacher's own
// stopFlag-gated Engine in the package this one replaces.
package engine

import (
	"fmt"
	"sync"

	"github.com/danielproano/bulletchess/internal/eval"
	"github.com/danielproano/bulletchess/internal/rules"
	"github.com/danielproano/bulletchess/internal/search"
	"github.com/danielproano/bulletchess/internal/stage"
	"github.com/danielproano/bulletchess/internal/tt"
	"github.com/danielproano/bulletchess/internal/zobrist"
)

// EndSentinel is returned by FindBestMove when the game is over or the
// clock is exhausted.
const EndSentinel = "END"

// Engine holds the shared search state: the transposition table and the
// Zobrist key table are both safe to share across searches, but only one
// search runs on a given Engine at a time.
type Engine struct {
	mu     sync.Mutex
	table  *tt.Table
	hasher *zobrist.Table
}

// NewEngine constructs an Engine with a transposition table sized for
// ttCapacity total entries. ttCapacity <= 0 selects tt.DefaultCapacity.
func NewEngine(ttCapacity int) *Engine {
	return &Engine{
		table:  tt.New(ttCapacity),
		hasher: zobrist.NewTable(),
	}
}

// UpdatePosition parses fen, validates and applies moveUCI via the rules
// oracle, and returns the resulting FEN. Errors are rules.ErrBadFEN,
// rules.ErrMalformedMove, or rules.ErrIllegalMove.
func (e *Engine) UpdatePosition(fen, moveUCI string) (string, error) {
	pos, err := rules.FromFEN(fen)
	if err != nil {
		return "", err
	}
	m, err := rules.DecodeUCI(pos, moveUCI)
	if err != nil {
		return "", err
	}
	return pos.Apply(m).FEN(), nil
}

// FindBestMove drives an iterative-deepening search from fen under a time
// budget derived from clockMs, gameOn, and the detected game stage, and
// returns the chosen move in long algebraic notation. It returns
// EndSentinel when gameOn is false or the clock is exhausted, and
// ErrInvalidSide when side is neither "white" nor "black".
func (e *Engine) FindBestMove(fen string, clockMs int, gameOn bool, side string) (string, error) {
	color, err := parseSide(side)
	if err != nil {
		return "", err
	}

	pos, err := rules.FromFEN(fen)
	if err != nil {
		return "", err
	}

	st := stage.Detect(pos)
	white, black := eval.Evaluate(pos, st)
	budgetMs := search.Budget(clockMs, st, gameOn, white, black, color)
	if budgetMs == 0 {
		return EndSentinel, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	best := search.Drive(pos, color, st, budgetMs, e.table, e.hasher)
	if best == rules.NoMove {
		return EndSentinel, nil
	}
	return best.String(), nil
}

func parseSide(side string) (rules.Color, error) {
	switch side {
	case "white":
		return rules.White, nil
	case "black":
		return rules.Black, nil
	default:
		return rules.White, fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}
}
