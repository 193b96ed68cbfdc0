// Package search implements the alpha-beta search kernel and the
// iterative-deepening driver built on top of it. Grounded in the teacher's
// Searcher.negamax (internal/engine/search.go), trimmed to the ordering,
// TT, and cutoff rules named here — no null-move pruning, late-move
// reductions, quiescence, or static-exchange evaluation, since the driver
// never asks for them.
package search

import (
	"context"

	"github.com/danielproano/bulletchess/internal/eval"
	"github.com/danielproano/bulletchess/internal/order"
	"github.com/danielproano/bulletchess/internal/rules"
	"github.com/danielproano/bulletchess/internal/stage"
	"github.com/danielproano/bulletchess/internal/tt"
	"github.com/danielproano/bulletchess/internal/zobrist"
)

// Infinity bounds the alpha-beta window; large enough that no evaluator or
// material score ever approaches it.
const Infinity = 1 << 30

// Search evaluates pos to depth plies for side, using table for transposition
// lookups and hasher to fingerprint positions. It returns the side-relative
// negamax score: positive favors side, negative favors the opponent.
//
// ctx carries the iteration deadline. A node that observes ctx.Err() after
// exploring at least one child returns its best score so far rather than
// continuing to explore; the caller (the iterative deepening driver) is
// responsible for discarding a root iteration that did not finish before
// the deadline rather than trusting a partial score.
func Search(ctx context.Context, pos rules.Position, depth, alpha, beta int, side rules.Color, table *tt.Table, hasher *zobrist.Table, st stage.Stage) int {
	originalAlpha := alpha
	fp := hasher.Hash(pos)

	probed, hasEntry := table.Probe(fp)
	if hasEntry && probed.Depth >= depth {
		switch probed.Flag {
		case tt.Exact:
			return probed.Score
		case tt.Lower:
			if probed.Score > alpha {
				alpha = probed.Score
			}
		case tt.Upper:
			if probed.Score < beta {
				beta = probed.Score
			}
		}
		if alpha >= beta {
			return probed.Score
		}
	}

	moves := pos.LegalMoves()
	if depth == 0 || len(moves) == 0 {
		return projectedScore(pos, st, side)
	}

	var hashMove rules.Move
	if hasEntry {
		hashMove = probed.Move
	}

	bestScore := -Infinity
	var bestMove rules.Move
	for _, m := range order.Order(pos, hashMove) {
		child := pos.Apply(m)
		score := -Search(ctx, child, depth-1, -beta, -alpha, side.Other(), table, hasher, st)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	flag := tt.Exact
	switch {
	case bestScore <= originalAlpha:
		flag = tt.Upper
	case bestScore >= beta:
		flag = tt.Lower
	}
	table.Store(fp, tt.Entry{Score: bestScore, Depth: depth, Flag: flag, Move: bestMove})

	return bestScore
}

// projectedScore evaluates pos at leaf nodes and projects the (white,
// black) pair onto side: side's own score minus the opponent's, the
// negamax convention this kernel uses throughout.
func projectedScore(pos rules.Position, st stage.Stage, side rules.Color) int {
	white, black := eval.Evaluate(pos, st)
	if side == rules.White {
		return white - black
	}
	return black - white
}
