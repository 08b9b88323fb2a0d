package board

// Game tracks a running game: the current position, the side to move, and
// the committed single-step history. A capture chain occupies one history
// entry per step, and the turn stays with the capturing side until the
// chain is finished.
type Game struct {
	board    Board
	turn     Side
	executed []Move
}

// NewGame returns a fresh game in the initial position, white to move.
func NewGame() *Game {
	return &Game{board: NewBoard(), turn: White}
}

// NewGameFrom returns a game over an arbitrary position with no history.
func NewGameFrom(b Board, turn Side) *Game {
	return &Game{board: b, turn: turn}
}

// Board returns the current position.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() Side {
	return g.turn
}

// ExecutedMoves returns the committed history. The slice is owned by the
// game; callers must not modify it.
func (g *Game) ExecutedMoves() []Move {
	return g.executed
}

// Equal reports whether two games have the same position, turn and history.
func (g *Game) Equal(other *Game) bool {
	if g.board != other.board || g.turn != other.turn || len(g.executed) != len(other.executed) {
		return false
	}
	for i := range g.executed {
		if !g.executed[i].Equal(&other.executed[i]) {
			return false
		}
	}
	return true
}

// ExecuteMove commits one step. The stored copy has its continuations
// cleared; the position advances to the step's target board. The turn
// passes to the opponent only when the step carried no continuations,
// otherwise the mover must keep capturing.
func (g *Game) ExecuteMove(m Move) {
	step := m
	step.follow = nil
	g.executed = append(g.executed, step)
	g.board = step.result

	if len(m.follow) == 0 {
		g.turn = g.turn.Opposite()
	}
}

// UndoLastMove takes back the opponent's whole last turn and the player's
// own preceding turn, chains included. With fewer than three committed
// steps there is no prior turn to restore and the call is a no-op. The
// side to move is unchanged.
func (g *Game) UndoLastMove() {
	if len(g.executed) < 3 {
		return
	}

	for len(g.executed) > 0 && g.executed[len(g.executed)-1].piece.Side != g.turn {
		g.executed = g.executed[:len(g.executed)-1]
	}
	for len(g.executed) > 0 && g.executed[len(g.executed)-1].piece.Side == g.turn {
		g.executed = g.executed[:len(g.executed)-1]
	}

	if len(g.executed) == 0 {
		g.board = NewBoard()
		return
	}
	g.board = g.executed[len(g.executed)-1].result
}

// InMoveCombo reports whether the side to move is mid-chain: the last
// committed step was its own capture with continuations outstanding.
func (g *Game) InMoveCombo() bool {
	return len(g.executed) > 0 && g.executed[len(g.executed)-1].piece.Side == g.turn
}

// MoveComboPiece returns the piece that must continue the running chain,
// upgraded to a king if the last step promoted. Only meaningful while
// InMoveCombo is true.
func (g *Game) MoveComboPiece() Piece {
	last := &g.executed[len(g.executed)-1]
	pieceType := last.piece.Type
	if last.promotion {
		pieceType = King
	}
	return Piece{Side: last.piece.Side, Type: pieceType, Position: last.target}
}

// CaptureBitboard returns the squares of the opponents captured so far in
// the running chain. Only meaningful while InMoveCombo is true; every
// trailing same-side step carries a capture, as combos exist only along
// capture chains.
func (g *Game) CaptureBitboard() Bitboard {
	var captured Bitboard
	for i := len(g.executed) - 1; i >= 0 && g.executed[i].piece.Side == g.turn; i-- {
		captured = captured.Set(g.executed[i].attacked.Position)
	}
	return captured
}
