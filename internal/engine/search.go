package engine

import "github.com/jl-duee/shashki-engine/internal/board"

// scoreWindow bounds the alpha-beta window. It exceeds any reachable
// material score.
const scoreWindow = 100

// searchResult carries a subtree's evaluation together with the board of
// the root child it was reached through, which identifies the principal
// variation's first committed chain.
type searchResult struct {
	score    int
	leaf     board.Board
	haveLeaf bool
}

// BestMove searches the game tree to the given depth and returns the root
// move leading toward the best reachable position, its continuations
// narrowed to the chosen chain. The position must have at least one legal
// move. When pruning leaves no reconstructable root move, a random legal
// move is returned instead.
func BestMove(g *board.Game, depth int) board.Move {
	result := alphaBeta(g.Board(), g.Turn(), depth, -scoreWindow, scoreWindow, board.Board{}, false)

	moves := board.MovesForGame(g)
	if result.haveLeaf {
		for i := range moves {
			if moves[i].LeadsTo(result.leaf) {
				moves[i].ShrinkTo(result.leaf)
				return moves[i]
			}
		}
	}
	return RandomMove(g)
}

// alphaBeta expands and evaluates the game tree in one pass, so subtrees
// cut off by the pruning window are never built. Children are the leaf
// boards of each move's capture chain: a chain with k completions yields
// k children. White maximizes, Black minimizes; updates use strict
// inequality, so among equal siblings the first expanded wins.
func alphaBeta(b board.Board, side board.Side, depth, alpha, beta int, leaf board.Board, haveLeaf bool) searchResult {
	if depth == 0 {
		return searchResult{score: Evaluate(b), leaf: leaf, haveLeaf: haveLeaf}
	}

	moves := board.MovesForSide(b, side)
	if len(moves) == 0 {
		return searchResult{score: Evaluate(b), leaf: leaf, haveLeaf: haveLeaf}
	}

	var children []board.Board
	for i := range moves {
		children = appendChainLeaves(children, &moves[i])
	}

	if side == board.White {
		best := searchResult{score: -scoreWindow}
		for _, child := range children {
			childLeaf, childHave := leaf, haveLeaf
			if !childHave {
				childLeaf, childHave = child, true
			}
			result := alphaBeta(child, board.Black, depth-1, alpha, beta, childLeaf, childHave)
			if result.score > best.score {
				best = result
			}
			if result.score > alpha {
				alpha = result.score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := searchResult{score: scoreWindow}
	for _, child := range children {
		childLeaf, childHave := leaf, haveLeaf
		if !childHave {
			childLeaf, childHave = child, true
		}
		result := alphaBeta(child, board.White, depth-1, alpha, beta, childLeaf, childHave)
		if result.score < best.score {
			best = result
		}
		if result.score < beta {
			beta = result.score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// appendChainLeaves collects the board of every complete chain of a move:
// its own target board for a plain move or a leaf capture, otherwise one
// board per terminal continuation.
func appendChainLeaves(boards []board.Board, m *board.Move) []board.Board {
	follow := m.FollowMoves()
	if len(follow) == 0 {
		return append(boards, m.TargetBoard())
	}
	for i := range follow {
		boards = appendChainLeaves(boards, &follow[i])
	}
	return boards
}
