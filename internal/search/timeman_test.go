package search

import (
	"testing"

	"github.com/danielproano/bulletchess/internal/rules"
	"github.com/danielproano/bulletchess/internal/stage"
)

func TestBudgetZeroWhenGameOver(t *testing.T) {
	if got := Budget(60_000, stage.Middlegame, false, 10, 10, rules.White); got != 0 {
		t.Errorf("expected 0 when game_on is false, got %d", got)
	}
}

func TestBudgetZeroWhenClockExhausted(t *testing.T) {
	if got := Budget(0, stage.Middlegame, true, 10, 10, rules.White); got != 0 {
		t.Errorf("expected 0 with a zero clock, got %d", got)
	}
}

func TestBudgetPanicModeBelowTenSeconds(t *testing.T) {
	if got := Budget(5_000, stage.Middlegame, true, 10, 10, rules.White); got != panicBudgetMs {
		t.Errorf("expected panic budget %d, got %d", panicBudgetMs, got)
	}
}

func TestBudgetLongerWhenBehindOnMaterial(t *testing.T) {
	got := Budget(60_000, stage.Middlegame, true, 5, 10, rules.White)
	if got != behindOrEndgameMs {
		t.Errorf("expected the behind-on-material budget %d, got %d", behindOrEndgameMs, got)
	}
}

func TestBudgetLongerInEndgame(t *testing.T) {
	got := Budget(60_000, stage.Endgame, true, 10, 10, rules.White)
	if got != behindOrEndgameMs {
		t.Errorf("expected the endgame budget %d, got %d", behindOrEndgameMs, got)
	}
}

func TestBudgetDefault(t *testing.T) {
	got := Budget(60_000, stage.Middlegame, true, 10, 10, rules.White)
	if got != defaultBudgetMs {
		t.Errorf("expected the default budget %d, got %d", defaultBudgetMs, got)
	}
}
