package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// StartFEN is the FEN for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a read-only position snapshot. The engine never mutates a
// snapshot in place; Apply clones and descends, producing a new Position
// rather than editing the receiver. The sole implementation wraps
// github.com/notnil/chess, which supplies move generation and legality as
// an external rules oracle the search kernel never reimplements.
type Position interface {
	SideToMove() Color
	PieceAt(sq Square) (Piece, bool)
	LegalMoves() []Move
	Apply(m Move) Position
	FEN() string
	FullMoveNumber() int
}

type chessPosition struct {
	pos *chess.Position
}

// FromFEN parses a FEN string via the rules oracle. A syntactically or
// semantically invalid FEN is rules.ErrBadFEN.
func FromFEN(fen string) (Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFEN, err)
	}
	game := chess.NewGame(opt)
	return &chessPosition{pos: game.Position()}, nil
}

func (p *chessPosition) SideToMove() Color {
	return colorFromNative(p.pos.Turn())
}

func (p *chessPosition) PieceAt(sq Square) (Piece, bool) {
	pc := p.pos.Board().Piece(sq)
	if pc == chess.NoPiece {
		return Piece{}, false
	}
	return Piece{Kind: pieceKindFromNative(pc.Type()), Color: colorFromNative(pc.Color())}, true
}

func (p *chessPosition) LegalMoves() []Move {
	native := p.pos.ValidMoves()
	moves := make([]Move, len(native))
	for i, nm := range native {
		moves[i] = fromNative(nm)
	}
	return moves
}

// Apply plays m against a clone of the underlying oracle position. m must
// have come from this position's LegalMoves (or DecodeUCI against it); a
// zero Move is a no-op that returns the receiver unchanged, matching the
// "no legal moves" sentinel case callers check for before ever calling
// Apply.
func (p *chessPosition) Apply(m Move) Position {
	if m.native == nil {
		return p
	}
	return &chessPosition{pos: p.pos.Update(m.native)}
}

func (p *chessPosition) FEN() string {
	return p.pos.String()
}

// FullMoveNumber reads the move-count field of the FEN. Game stage is
// parameterized mainly off remaining material, but an opening/middlegame
// split also wants to know how far into the game a position is.
func (p *chessPosition) FullMoveNumber() int {
	fields := strings.Fields(p.pos.String())
	if len(fields) < 6 {
		return 1
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
