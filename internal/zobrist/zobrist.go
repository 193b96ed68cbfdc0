// Package zobrist computes the 64-bit position fingerprint the
// transposition table is keyed by. Key generation is seeded with a fixed
// constant, not entropy, so fingerprints are reproducible across runs and
// test golden values stay stable — following the teacher's own
// fixed-seed PRNG in internal/board/zobrist.go.
package zobrist

import "github.com/danielproano/bulletchess/internal/rules"

const numPieceKinds = 7 // NoPiece..King, NoPiece's slot is simply never XORed in

// Table holds the random key material. It is immutable after construction
// and safe to share read-only across every concurrent search.
type Table struct {
	piece      [2][numPieceKinds][64]uint64
	sideToMove uint64
}

// xorshift64* is a small, fast, reproducible PRNG — good enough for key
// generation, not for anything security sensitive.
type xorshift64 struct{ state uint64 }

func (p *xorshift64) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// defaultSeed is a fixed, arbitrary constant. The only requirement is that
// the seed stays constant across a process's lifetime; entropy seeding
// would also work but would make golden-hash tests non-reproducible.
const defaultSeed = 0x9E3779B97F4A7C15

// NewTable builds the key table once; callers share the result.
func NewTable() *Table {
	return newTableFromSeed(defaultSeed)
}

func newTableFromSeed(seed uint64) *Table {
	rng := &xorshift64{state: seed}
	t := &Table{}
	for c := 0; c < 2; c++ {
		for pk := 1; pk < numPieceKinds; pk++ { // skip NoPiece
			for sq := 0; sq < 64; sq++ {
				t.piece[c][pk][sq] = rng.next()
			}
		}
	}
	t.sideToMove = rng.next()
	return t
}

func colorIndex(c rules.Color) int {
	if c == rules.Black {
		return 1
	}
	return 0
}

// Hash computes the full fingerprint of pos from scratch:
// XOR the keys for every (piece, square) present on the board, then XOR
// the side-to-move key if it's Black's turn.
func (t *Table) Hash(pos rules.Position) uint64 {
	var h uint64
	for sq := rules.Square(0); sq < 64; sq++ {
		pc, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		h ^= t.piece[colorIndex(pc.Color)][pc.Kind][sq]
	}
	if pos.SideToMove() == rules.Black {
		h ^= t.sideToMove
	}
	return h
}

// Update applies the incremental delta for moving piece from `from` to `to`,
// optionally capturing capturedKind at `to`, and flips the side-to-move key.
// It is an optimization: Hash(pos.Apply(m)) must always equal
// Update(Hash(pos), ...) for the same move. Castling and en passant are
// expressed by the caller as the corresponding
// rook or captured-pawn deltas — see UpdateRookShift and
// UpdateEnPassantCapture.
func (t *Table) Update(hash uint64, color rules.Color, moving rules.PieceKind, from, to rules.Square, captured rules.PieceKind, capturedColor rules.Color) uint64 {
	ci := colorIndex(color)
	hash ^= t.piece[ci][moving][from]
	hash ^= t.piece[ci][moving][to]
	if captured != rules.NoPiece {
		hash ^= t.piece[colorIndex(capturedColor)][captured][to]
	}
	hash ^= t.sideToMove
	return hash
}

// UpdatePromotion additionally swaps the moving pawn's to-square key for the
// promoted piece's, since Update alone would leave the pawn's key XORed in
// at the destination instead of the promoted piece's.
func (t *Table) UpdatePromotion(hash uint64, color rules.Color, promoted rules.PieceKind, to rules.Square) uint64 {
	ci := colorIndex(color)
	hash ^= t.piece[ci][rules.Pawn][to]
	hash ^= t.piece[ci][promoted][to]
	return hash
}

// UpdateRookShift folds in a castling rook's own from/to delta, on top of
// the king's Update call.
func (t *Table) UpdateRookShift(hash uint64, color rules.Color, from, to rules.Square) uint64 {
	ci := colorIndex(color)
	hash ^= t.piece[ci][rules.Rook][from]
	hash ^= t.piece[ci][rules.Rook][to]
	return hash
}

// UpdateEnPassantCapture folds in the removal of a pawn captured en passant,
// which sits on a square other than the capturing pawn's destination.
func (t *Table) UpdateEnPassantCapture(hash uint64, capturedColor rules.Color, capturedSquare rules.Square) uint64 {
	return hash ^ t.piece[colorIndex(capturedColor)][rules.Pawn][capturedSquare]
}
