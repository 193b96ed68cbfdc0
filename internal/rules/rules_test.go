package rules

import "testing"

func TestFromFENRejectsGarbage(t *testing.T) {
	if _, err := FromFEN("not a fen at all"); err == nil {
		t.Fatal("expected bad_fen error for garbage input")
	}
}

func TestFromFENStartingPosition(t *testing.T) {
	pos, err := FromFEN(StartFEN)
	if err != nil {
		t.Fatalf("unexpected error parsing start FEN: %v", err)
	}
	if pos.SideToMove() != White {
		t.Errorf("expected White to move, got %v", pos.SideToMove())
	}
	moves := pos.LegalMoves()
	if len(moves) != 20 {
		t.Errorf("expected 20 legal moves in the starting position, got %d", len(moves))
	}
}

func TestDecodeUCIMalformed(t *testing.T) {
	pos, _ := FromFEN(StartFEN)
	cases := []string{"", "e2", "e2e4q5", "z9z8", "e2e9"}
	for _, c := range cases {
		if _, err := DecodeUCI(pos, c); err == nil {
			t.Errorf("expected malformed_move error for %q", c)
		}
	}
}

func TestDecodeUCIIllegal(t *testing.T) {
	pos, _ := FromFEN(StartFEN)
	if _, err := DecodeUCI(pos, "e2e5"); err == nil {
		t.Error("expected illegal_move error for a three-square pawn push to rank 5")
	}
}

func TestDecodeUCIAndApply(t *testing.T) {
	pos, _ := FromFEN(StartFEN)
	m, err := DecodeUCI(pos, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error decoding e2e4: %v", err)
	}
	if m.String() != "e2e4" {
		t.Errorf("expected canonical encoding e2e4, got %s", m.String())
	}

	next := pos.Apply(m)
	if next.SideToMove() != Black {
		t.Errorf("expected Black to move after 1. e4, got %v", next.SideToMove())
	}
	if next.FEN() == pos.FEN() {
		t.Error("Apply must not mutate the receiver in place")
	}
}

func TestSameAsIgnoresIndependentNativeHandles(t *testing.T) {
	pos, _ := FromFEN(StartFEN)
	a, err := DecodeUCI(pos, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error decoding e2e4: %v", err)
	}

	// A second Position instance (as Apply always produces) generates its
	// own independent native move handles, so the same move decoded
	// against it must still compare equal via SameAs even though the two
	// Move values are not == to each other.
	other, _ := FromFEN(StartFEN)
	b, err := DecodeUCI(other, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error decoding e2e4 against the second position: %v", err)
	}

	if !a.SameAs(b) {
		t.Error("expected the same move decoded against two distinct positions to be SameAs")
	}
}

func TestPieceAt(t *testing.T) {
	pos, _ := FromFEN(StartFEN)
	pc, ok := pos.PieceAt(parseSquareOrFatal(t, "e1"))
	if !ok || pc.Kind != King || pc.Color != White {
		t.Errorf("expected White King on e1, got %+v ok=%v", pc, ok)
	}
	if _, ok := pos.PieceAt(parseSquareOrFatal(t, "e4")); ok {
		t.Error("expected e4 to be empty in the starting position")
	}
}

func parseSquareOrFatal(t *testing.T, s string) Square {
	t.Helper()
	sq, ok := parseSquare(s)
	if !ok {
		t.Fatalf("failed to parse square %q", s)
	}
	return sq
}
