package engine

import (
	"math/rand/v2"

	"github.com/jl-duee/shashki-engine/internal/board"
)

// RandomMove picks a legal root move uniformly at random and narrows its
// continuations to a single uniformly sampled path. The position must
// have at least one legal move.
func RandomMove(g *board.Game) board.Move {
	moves := board.MovesForGame(g)
	move := moves[rand.IntN(len(moves))]
	move.ShrinkRandomly()
	return move
}
