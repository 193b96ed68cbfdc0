package zobrist

import (
	"testing"

	"github.com/danielproano/bulletchess/internal/rules"
)

func TestHashIsDeterministic(t *testing.T) {
	table := NewTable()
	pos, err := rules.FromFEN(rules.StartFEN)
	if err != nil {
		t.Fatalf("unexpected FEN error: %v", err)
	}
	h1 := table.Hash(pos)
	h2 := table.Hash(pos)
	if h1 != h2 {
		t.Errorf("hash of the same position differed: %x vs %x", h1, h2)
	}
}

func TestHashDiffersAfterAMove(t *testing.T) {
	table := NewTable()
	pos, _ := rules.FromFEN(rules.StartFEN)
	white := table.Hash(pos)

	m, err := rules.DecodeUCI(pos, "e2e4")
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	black := table.Hash(pos.Apply(m))
	if white == black {
		t.Error("expected the fingerprint to change after a move")
	}
}

// TestIncrementalMatchesFullRehash asserts that incrementally updating a
// running hash along a move sequence equals a full rehash of the
// resulting position at every step.
func TestIncrementalMatchesFullRehash(t *testing.T) {
	table := NewTable()
	pos, _ := rules.FromFEN(rules.StartFEN)

	uciMoves := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	incremental := table.Hash(pos)

	for _, uci := range uciMoves {
		m, err := rules.DecodeUCI(pos, uci)
		if err != nil {
			t.Fatalf("unexpected decode error for %s: %v", uci, err)
		}

		mover, _ := pos.PieceAt(m.From)
		captured, hadCapture := pos.PieceAt(m.To)
		capturedKind := rules.NoPiece
		capturedColor := rules.White
		if hadCapture {
			capturedKind = captured.Kind
			capturedColor = captured.Color
		}

		incremental = table.Update(incremental, mover.Color, mover.Kind, m.From, m.To, capturedKind, capturedColor)

		next := pos.Apply(m)
		full := table.Hash(next)
		if incremental != full {
			t.Fatalf("after %s: incremental hash %x != full rehash %x", uci, incremental, full)
		}
		pos = next
	}
}
