// Package engine implements the draughts AI: material evaluation and
// alpha-beta minimax search.
package engine

import "github.com/jl-duee/shashki-engine/internal/board"

// Material weights.
const (
	ManWeight  = 1
	KingWeight = 5
)

// Evaluate returns the static material balance of a position.
// Positive values favor White.
func Evaluate(b board.Board) int {
	return (b.WhiteMen.PopCount()-b.BlackMen.PopCount())*ManWeight +
		(b.WhiteKings.PopCount()-b.BlackKings.PopCount())*KingWeight
}
