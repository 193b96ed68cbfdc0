package rules

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Move is a from-square/to-square/optional-promotion triple with a canonical
// long algebraic encoding ("e2e4", "e7e8q"). native carries the rules
// library's own move handle so Apply never has to re-resolve legality.
type Move struct {
	From, To  Square
	Promotion PieceKind

	native *chess.Move
}

// NoMove is the zero Move, returned wherever callers need a "no legal
// moves available" sentinel.
var NoMove = Move{}

// SameAs reports whether m and other denote the same move, comparing only
// the exported From/To/Promotion fields. Two Move values decoded or
// generated from different Position instances carry independently
// allocated native handles, so plain `==` (which also compares that
// unexported pointer) almost never matches even for the identical move —
// SameAs is the comparison callers should use instead.
func (m Move) SameAs(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

func (m Move) String() string {
	if m == NoMove {
		return ""
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += strings.ToLower(promotionLetter[m.Promotion])
	}
	return s
}

// GivesCheck reports whether playing this move attacks the opponent's king.
// Backed by the rules library's own Check tag — the oracle already knows
// this from generating the move, so the kernel never re-derives it from
// board state.
func (m Move) GivesCheck() bool {
	return m.native != nil && m.native.HasTag(chess.Check)
}

// IsCapture reports whether the destination square held an opponent piece
// before the move was played.
func (m Move) IsCapture() bool {
	return m.native != nil && m.native.HasTag(chess.Capture)
}

var promotionLetter = map[PieceKind]string{
	Queen:  "q",
	Rook:   "r",
	Bishop: "b",
	Knight: "n",
}

var promotionKind = map[byte]chess.PieceType{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// parseSquare reads algebraic square notation ("e4") into the rules
// library's own Square numbering (A1=0, B1=1, ..., H1=7, A2=8, ..., H8=63).
func parseSquare(s string) (chess.Square, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return chess.Square(int(rank-'1')*8 + int(file-'a')), true
}

func fromNative(m *chess.Move) Move {
	return Move{
		From:      m.S1(),
		To:        m.S2(),
		Promotion: pieceKindFromNative(m.Promo()),
		native:    m,
	}
}

// DecodeUCI parses a long-algebraic move string against pos and resolves it
// to the matching legal move. A string that doesn't parse as two squares
// plus an optional promotion letter is rules.ErrMalformedMove; a
// well-formed move that isn't among pos's legal moves is
// rules.ErrIllegalMove.
func DecodeUCI(pos Position, s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrMalformedMove, s)
	}

	from, ok := parseSquare(s[0:2])
	if !ok {
		return NoMove, fmt.Errorf("%w: bad from-square %q", ErrMalformedMove, s[0:2])
	}
	to, ok := parseSquare(s[2:4])
	if !ok {
		return NoMove, fmt.Errorf("%w: bad to-square %q", ErrMalformedMove, s[2:4])
	}

	promo := chess.NoPieceType
	if len(s) == 5 {
		pt, ok := promotionKind[s[4]]
		if !ok {
			return NoMove, fmt.Errorf("%w: bad promotion piece %q", ErrMalformedMove, s[4:5])
		}
		promo = pt
	}

	for _, m := range pos.LegalMoves() {
		if m.native.S1() == from && m.native.S2() == to && m.native.Promo() == promo {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}
