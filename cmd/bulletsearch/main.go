// Command bulletsearch drives the embedding API from the command line: one
// FEN, one clock budget, one side to move in, one best move out. This is
// not a UCI frontend — the search kernel's only contract is the
// update_position/find_best_move pair, and this binary is the thinnest
// possible caller of it.
package main

import (
	"flag"
	"log"

	"github.com/danielproano/bulletchess/internal/engine"
)

var (
	fen      = flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN of the position to search")
	clockMs  = flag.Int("clock", 60_000, "remaining clock time in milliseconds")
	side     = flag.String("side", "white", "side to move: white or black")
	gameOn   = flag.Bool("game-on", true, "whether the game is still in progress")
	ttMB     = flag.Int("tt-capacity", 1<<20, "transposition table capacity, in entries")
	applyUCI = flag.String("apply", "", "optional move (UCI, e.g. e2e4) to apply before searching")
)

func main() {
	flag.Parse()

	eng := engine.NewEngine(*ttMB)

	position := *fen
	if *applyUCI != "" {
		updated, err := eng.UpdatePosition(position, *applyUCI)
		if err != nil {
			log.Fatalf("update_position failed: %v", err)
		}
		position = updated
		log.Printf("applied %s -> %s", *applyUCI, position)
	}

	move, err := eng.FindBestMove(position, *clockMs, *gameOn, *side)
	if err != nil {
		log.Fatalf("find_best_move failed: %v", err)
	}
	log.Printf("best move: %s", move)
}
