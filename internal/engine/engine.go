package engine

import "github.com/jl-duee/shashki-engine/internal/board"

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyDepth maps difficulty to search depth in plies.
var DifficultyDepth = map[Difficulty]int{
	Easy:   4,
	Medium: 6,
	Hard:   8,
}

// Engine is the draughts AI engine.
type Engine struct {
	difficulty Difficulty
}

// NewEngine creates a new engine at medium difficulty.
func NewEngine() *Engine {
	return &Engine{difficulty: Medium}
}

// SetDifficulty sets the engine difficulty.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Difficulty returns the current difficulty.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// Search finds the best move for the game at the configured difficulty.
func (e *Engine) Search(g *board.Game) board.Move {
	return BestMove(g, DifficultyDepth[e.difficulty])
}

// Evaluate returns the static evaluation of a position.
func (e *Engine) Evaluate(b board.Board) int {
	return Evaluate(b)
}

// PlayMove commits a move chain to the game, one step per history entry.
// The chain must be narrowed to a single path (ShrinkTo or ShrinkRandomly)
// before it is played; with several paths outstanding the first is taken.
func PlayMove(g *board.Game, m board.Move) {
	for {
		follow := m.FollowMoves()
		g.ExecuteMove(m)
		if len(follow) == 0 {
			return
		}
		m = follow[0]
	}
}

// Perft counts the positions reachable in exactly depth turns, expanding
// every completion of every capture chain. A position without moves
// counts as a single leaf. Used to validate move generation.
func Perft(b board.Board, side board.Side, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := board.MovesForSide(b, side)
	if len(moves) == 0 {
		return 1
	}

	var nodes uint64
	for i := range moves {
		var leaves []board.Board
		leaves = appendChainLeaves(leaves, &moves[i])
		for _, leaf := range leaves {
			nodes += Perft(leaf, side.Opposite(), depth-1)
		}
	}
	return nodes
}
