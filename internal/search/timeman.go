package search

import (
	"github.com/danielproano/bulletchess/internal/rules"
	"github.com/danielproano/bulletchess/internal/stage"
)

// Time budget constants, transcribed from the original engine's
// determine_time: panic mode when the clock is nearly out, a longer
// budget when behind on material or deep into an Endgame, a default
// otherwise.
const (
	panicClockThresholdMs = 10_000
	panicBudgetMs         = 200
	behindOrEndgameMs     = 750
	defaultBudgetMs       = 500
)

// Budget computes the soft deadline, in milliseconds, for one
// iterative-deepening session. gameOn=false or clockMs<=0 yields zero:
// the driver must not start a new iteration in that case.
func Budget(clockMs int, st stage.Stage, gameOn bool, white, black int, side rules.Color) int {
	if !gameOn || clockMs <= 0 {
		return 0
	}
	if clockMs < panicClockThresholdMs {
		return panicBudgetMs
	}
	if behind(side, white, black) {
		return behindOrEndgameMs
	}
	if st == stage.Endgame {
		return behindOrEndgameMs
	}
	return defaultBudgetMs
}

func behind(side rules.Color, white, black int) bool {
	if side == rules.White {
		return white < black
	}
	return black < white
}
