// Package order produces the move ordering the search walks at every node:
// hash move first, then checks, then captures, then quiets — each class
// internally stable. Grounded in the teacher's MoveOrderer
// (internal/engine/ordering.go), trimmed to the four classes named here;
// no killers, history heuristic, or MVV-LVA, since nothing downstream asks
// for them.
package order

import "github.com/danielproano/bulletchess/internal/rules"

// classOf buckets a move into its ordering tier. Lower sorts first.
func classOf(m, hashMove rules.Move) int {
	switch {
	case hashMove != rules.NoMove && m.SameAs(hashMove):
		return 0
	case m.GivesCheck():
		return 1
	case m.IsCapture():
		return 2
	default:
		return 3
	}
}

// Order returns pos's legal moves grouped hash-move, checks, captures,
// quiets. hashMove may be rules.NoMove when there is no transposition-table
// hint; a hashMove not present among pos's legal moves is simply never
// matched and has no effect. Within a class, relative order from
// pos.LegalMoves is preserved — a stable partition, not a sort.
func Order(pos rules.Position, hashMove rules.Move) []rules.Move {
	moves := pos.LegalMoves()
	buckets := make([][]rules.Move, 4)
	for _, m := range moves {
		c := classOf(m, hashMove)
		buckets[c] = append(buckets[c], m)
	}

	ordered := make([]rules.Move, 0, len(moves))
	for _, b := range buckets {
		ordered = append(ordered, b...)
	}
	return ordered
}
