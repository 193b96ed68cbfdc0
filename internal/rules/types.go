// Package rules wraps the external chess rules oracle (github.com/notnil/chess)
// behind the narrow interface the search kernel actually needs: side to move,
// piece lookup, legal move generation, legality checking, and move
// application. Nothing in this package, or above it, generates moves itself —
// that job belongs entirely to the rules library.
package rules

import "github.com/notnil/chess"

// Color is the side to move.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func colorFromNative(c chess.Color) Color {
	if c == chess.Black {
		return Black
	}
	return White
}

// Square is a board square, A1..H8, reusing the rules library's own
// numbering so conversions at the boundary stay free.
type Square = chess.Square

// PieceKind is a piece type independent of color.
type PieceKind int8

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceKindFromNativeTable = map[chess.PieceType]PieceKind{
	chess.NoPieceType: NoPiece,
	chess.Pawn:        Pawn,
	chess.Knight:      Knight,
	chess.Bishop:      Bishop,
	chess.Rook:        Rook,
	chess.Queen:       Queen,
	chess.King:        King,
}

func pieceKindFromNative(pt chess.PieceType) PieceKind {
	return pieceKindFromNativeTable[pt]
}

// Piece is a piece kind plus its color.
type Piece struct {
	Kind  PieceKind
	Color Color
}
