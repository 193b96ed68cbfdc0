package stage

import (
	"testing"

	"github.com/danielproano/bulletchess/internal/rules"
)

func TestDetectOpeningAtGameStart(t *testing.T) {
	pos, err := rules.FromFEN(rules.StartFEN)
	if err != nil {
		t.Fatalf("unexpected FEN error: %v", err)
	}
	if got := Detect(pos); got != Opening {
		t.Errorf("expected Opening at the start position, got %v", got)
	}
}

func TestDetectEndgameByMaterial(t *testing.T) {
	pos, err := rules.FromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 40")
	if err != nil {
		t.Fatalf("unexpected FEN error: %v", err)
	}
	if got := Detect(pos); got != Endgame {
		t.Errorf("expected Endgame with only a rook left, got %v", got)
	}
}

func TestDetectMiddlegameByMoveCount(t *testing.T) {
	pos, err := rules.FromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 15")
	if err != nil {
		t.Fatalf("unexpected FEN error: %v", err)
	}
	if got := Detect(pos); got != Middlegame {
		t.Errorf("expected Middlegame deep into the game with material still on, got %v", got)
	}
}
