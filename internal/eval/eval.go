// Package eval implements the static positional evaluator: material plus
// piece-square bonuses, parameterized by game stage. Pure and total — no
// I/O, no failure, no access to search state.
package eval

import (
	"github.com/danielproano/bulletchess/internal/rules"
	"github.com/danielproano/bulletchess/internal/stage"
)

// Material values by piece kind.
const (
	PawnValue   = 1
	KnightValue = 3
	BishopValue = 3
	RookValue   = 5
	QueenValue  = 9
	KingValue   = 0
)

var materialValue = map[rules.PieceKind]int{
	rules.Pawn:   PawnValue,
	rules.Knight: KnightValue,
	rules.Bishop: BishopValue,
	rules.Rook:   RookValue,
	rules.Queen:  QueenValue,
	rules.King:   KingValue,
}

// Evaluate returns the static (white, black) score pair for pos at the
// given stage, in the engine's internal centipawn-equivalent units — the
// scale only matters relative to itself, never in absolute terms.
func Evaluate(pos rules.Position, st stage.Stage) (white, black int) {
	for sq := rules.Square(0); sq < 64; sq++ {
		pc, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		score := pieceScore(pc.Kind, pc.Color, sq, st)
		if pc.Color == rules.White {
			white += score
		} else {
			black += score
		}
	}
	return white, black
}

// pieceScore is material plus the piece's positional bonus, multiplied by
// its own material value for Knight/Bishop/Queen. Rook scores pure
// material. King and Pawn use an additive table instead, since their
// tables already encode an absolute adjustment rather than a per-piece
// multiplier in the source this was distilled from.
//
// Tables are written from White's point of view, so Black's lookup goes
// through squareView to read the vertically mirrored square — this is what
// makes the evaluator satisfy its own color/reflection symmetry invariant.
func pieceScore(kind rules.PieceKind, color rules.Color, sq rules.Square, st stage.Stage) int {
	value := materialValue[kind]
	idx := squareView(sq, color)

	switch kind {
	case rules.Knight:
		return value + knightTable[idx]*value
	case rules.Bishop:
		return value + bishopTable[idx]*value
	case rules.Queen:
		return value + queenTable[idx]*value
	case rules.King:
		if st == stage.Endgame {
			return value + kingCentralizingTable[idx]
		}
		return value + kingSafetyTable[idx]
	case rules.Pawn:
		if st == stage.Endgame {
			return value
		}
		return value + openingPawnTable[idx]
	default: // Rook, and anything else: material only
		return value
	}
}

// squareView returns the table index to read for a piece of the given
// color sitting on sq: the square itself for White, its vertical mirror
// (rank 1 <-> rank 8, file unchanged) for Black.
func squareView(sq rules.Square, color rules.Color) int {
	if color == rules.White {
		return int(sq)
	}
	rank, file := int(sq)/8, int(sq)%8
	return (7-rank)*8 + file
}
