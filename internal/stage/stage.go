// Package stage detects game stage from a position when the caller doesn't
// supply one directly. The embedding API's FindBestMove takes no stage
// parameter, so stage is derived automatically from remaining material and
// the full-move number.
package stage

import "github.com/danielproano/bulletchess/internal/rules"

// Stage is the enumerated game phase (Opening=1, Middlegame=2, Endgame=3),
// selecting among the evaluator's King and Pawn piece-square tables.
type Stage int

const (
	Opening    Stage = 1
	Middlegame Stage = 2
	Endgame    Stage = 3
)

func (s Stage) String() string {
	switch s {
	case Opening:
		return "opening"
	case Middlegame:
		return "middlegame"
	case Endgame:
		return "endgame"
	default:
		return "unknown"
	}
}

// nonPawnValue mirrors the evaluator's material scale: Knight=3, Bishop=3,
// Rook=5, Queen=9.
var nonPawnValue = map[rules.PieceKind]int{
	rules.Knight: 3,
	rules.Bishop: 3,
	rules.Rook:   5,
	rules.Queen:  9,
}

// endgameMaterialThreshold: once total non-pawn material on the board
// falls to this or below, the position is the Endgame regardless of move
// count.
const endgameMaterialThreshold = 13

// openingMoveCutoff: positions at or before this full-move number, with
// material still above the endgame threshold, are the Opening rather than
// the Middlegame. A conventional cutoff, not derived from material at all.
const openingMoveCutoff = 10

// Detect computes the Stage of pos by summing remaining non-pawn material
// across both colors; above the endgame threshold, the full-move number
// decides between Opening and Middlegame.
func Detect(pos rules.Position) Stage {
	total := 0
	for sq := rules.Square(0); sq < 64; sq++ {
		pc, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		total += nonPawnValue[pc.Kind]
	}

	if total <= endgameMaterialThreshold {
		return Endgame
	}
	if pos.FullMoveNumber() <= openingMoveCutoff {
		return Opening
	}
	return Middlegame
}
