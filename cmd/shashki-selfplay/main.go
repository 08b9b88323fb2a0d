// shashki-selfplay plays the engine against itself from the initial
// position and optionally records the result in the local database.
package main

import (
	"flag"
	"log"

	"github.com/jl-duee/shashki-engine/internal/board"
	"github.com/jl-duee/shashki-engine/internal/engine"
	"github.com/jl-duee/shashki-engine/internal/storage"
)

func main() {
	depth := flag.Int("depth", 4, "search depth in plies")
	maxTurns := flag.Int("max-turns", 150, "stop the game after this many turns")
	record := flag.Bool("record", false, "record the result in the local database")
	flag.Parse()

	game := board.NewGame()
	result := play(game, *depth, *maxTurns)

	if result.Draw {
		log.Printf("no winner after %d turns", *maxTurns)
	} else {
		log.Printf("%s wins after %d moves", result.Winner, len(game.ExecutedMoves()))
	}

	if *record {
		store, err := storage.OpenDefault()
		if err != nil {
			log.Fatalf("open storage: %v", err)
		}
		defer store.Close()

		if err := store.RecordResult(result); err != nil {
			log.Fatalf("record result: %v", err)
		}
	}
}

func play(game *board.Game, depth, maxTurns int) storage.Result {
	for turn := 0; turn < maxTurns; turn++ {
		if len(board.MovesForGame(game)) == 0 {
			// The side to move has no moves and loses.
			return storage.Result{Winner: game.Turn().Opposite()}
		}

		move := engine.BestMove(game, depth)
		log.Printf("%s: %s", game.Turn(), chainNotation(move))
		engine.PlayMove(game, move)
	}
	return storage.Result{Draw: true}
}

// chainNotation joins the notations of every step of a narrowed chain.
func chainNotation(m board.Move) string {
	s := m.String()
	for follow := m.FollowMoves(); len(follow) > 0; follow = follow[0].FollowMoves() {
		s += " " + follow[0].String()
	}
	return s
}
