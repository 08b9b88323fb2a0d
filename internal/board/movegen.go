package board

// moveDirection fixes the geometry of one of the four diagonal directions:
// the signed bit offset of a single step, the edge squares from which a
// step or a jump would leave the board, and the side whose men promote
// when moving this way.
type moveDirection struct {
	shift     int      // square delta of one diagonal step
	slideWall Bitboard // pieces here would step off the board
	jumpWall  Bitboard // pieces here lack the two squares a jump needs
	promote   Side     // side whose men reach their last rank this way
}

// The four diagonal directions. Positive shifts run toward black's back
// rank; +9 and -7 lean toward file A, +7 and -9 toward file H.
var directions = [4]moveDirection{
	{shift: 9, slideWall: FileA | Rank8, jumpWall: FileA | FileB | Rank7 | Rank8, promote: White},
	{shift: 7, slideWall: FileH | Rank8, jumpWall: FileH | FileG | Rank7 | Rank8, promote: White},
	{shift: -7, slideWall: FileA | Rank1, jumpWall: FileA | FileB | Rank1 | Rank2, promote: Black},
	{shift: -9, slideWall: FileH | Rank1, jumpWall: FileH | FileG | Rank1 | Rank2, promote: Black},
}

// step shifts a whole mask of pieces one diagonal square.
func (d moveDirection) step(b Bitboard) Bitboard {
	if d.shift > 0 {
		return b << uint(d.shift)
	}
	return b >> uint(-d.shift)
}

// promotes reports whether a man of the given side landing on target
// reaches its promotion rank in this direction. Kings never re-promote.
func (d moveDirection) promotes(side Side, pieceType PieceType, target Square) bool {
	if pieceType != Man || side != d.promote {
		return false
	}
	if d.shift > 0 {
		return target > 55
	}
	return target < 8
}

// MovesForGame returns the legal root moves in the game's current state.
// Mid-chain it returns only the continuation captures of the combo piece,
// honoring the squares already captured this turn.
func MovesForGame(g *Game) []Move {
	if g.InMoveCombo() {
		return MovesForPiece(g.Board(), g.MoveComboPiece(), g.CaptureBitboard())
	}
	return MovesForSide(g.Board(), g.Turn())
}

// MovesForSide returns all legal root moves for one side. Capturing is
// mandatory: if any jump exists, only jumps are returned. Otherwise men
// slide forward only and kings slide any distance in all four directions.
func MovesForSide(b Board, side Side) []Move {
	var moves []Move

	for _, pieceType := range [2]PieceType{Man, King} {
		for _, d := range directions {
			moves = jumpsBeforeEnemy(moves, b, side, pieceType, d, 0, b.PiecesOf(side, pieceType), 1)
		}
	}
	if len(moves) > 0 {
		return moves
	}

	for _, d := range directions {
		if (side == White) == (d.shift > 0) {
			moves = slides(moves, b, side, Man, d, b.PiecesOf(side, Man), 1)
		}
	}
	for _, d := range directions {
		moves = slides(moves, b, side, King, d, b.PiecesOf(side, King), 1)
	}
	return moves
}

// MovesForPiece returns the capture continuations of a single piece, with
// the already-captured squares excluded from the path.
func MovesForPiece(b Board, piece Piece, captured Bitboard) []Move {
	var moves []Move
	for _, d := range directions {
		moves = jumpsBeforeEnemy(moves, b, piece.Side, piece.Type, d, captured, SquareBit(piece.Position), 1)
	}
	return moves
}

// slides emits non-capture moves by shifting the whole candidate mask one
// step, dropping pieces that fall off the board or land on occupancy, and
// reading a move off every surviving bit. Kings recurse with the shifted
// mask to cover longer diagonals; steps counts how far the mask has moved
// so each emitted move can recover its source square.
func slides(moves []Move, b Board, side Side, pieceType PieceType, d moveDirection, moving Bitboard, steps int) []Move {
	moving &^= d.slideWall
	moving = d.step(moving)
	moving &^= b.Blocking()
	if moving == 0 {
		return moves
	}

	for bits := moving; bits != 0; {
		target := bits.PopLSB()
		source := Square(int(target) - steps*d.shift)
		moves = append(moves, newMove(
			Piece{Side: side, Type: pieceType, Position: source},
			target,
			nil,
			d.promotes(side, pieceType, target),
			b,
		))
	}

	if pieceType == King {
		moves = slides(moves, b, side, pieceType, d, moving, steps+1)
	}
	return moves
}

// jumpsBeforeEnemy advances the candidate mask up to the square of an
// opponent. The bits that land on an opponent feed jumpsAfterEnemy; the
// bits that land on empty squares keep sliding toward one, kings only.
// A square already captured this turn blocks the path.
func jumpsBeforeEnemy(moves []Move, b Board, side Side, pieceType PieceType, d moveDirection, captured, moving Bitboard, steps int) []Move {
	moving &^= d.jumpWall
	moving = d.step(moving)
	moving &^= captured
	if moving == 0 {
		return moves
	}

	attack := moving & b.BlockingOf(side.Opposite())
	moving &^= b.Blocking()

	if pieceType == King {
		moves = jumpsBeforeEnemy(moves, b, side, pieceType, d, captured, moving, steps+1)
	}
	return jumpsAfterEnemy(moves, b, side, pieceType, d, captured, attack, steps+1, 1)
}

// jumpsAfterEnemy advances the mask past the just-jumped opponent onto an
// empty landing square and emits a capture per surviving bit, each with
// its continuation tree attached. Kings recurse to land further along the
// diagonal; jumpSteps tracks the distance back to the jumped square.
func jumpsAfterEnemy(moves []Move, b Board, side Side, pieceType PieceType, d moveDirection, captured, moving Bitboard, steps, jumpSteps int) []Move {
	moving &^= d.slideWall
	moving = d.step(moving)
	moving &^= b.Blocking()
	moving &^= captured
	if moving == 0 {
		return moves
	}

	for bits := moving; bits != 0; {
		target := bits.PopLSB()
		source := Square(int(target) - steps*d.shift)
		attackedSquare := Square(int(target) - jumpSteps*d.shift)
		attacked := Piece{
			Side:     side.Opposite(),
			Type:     b.TypeAt(attackedSquare),
			Position: attackedSquare,
		}

		move := newMove(
			Piece{Side: side, Type: pieceType, Position: source},
			target,
			&attacked,
			d.promotes(side, pieceType, target),
			b,
		)
		generateFollowMoves(&move, captured.Set(attackedSquare))
		moves = append(moves, move)
	}

	if pieceType == King {
		moves = jumpsAfterEnemy(moves, b, side, pieceType, d, captured, moving, steps+1, jumpSteps+1)
	}
	return moves
}

// generateFollowMoves attaches the tree of forced continuations to a
// capture. The continuation runs on the capture's result board with the
// mover's effective type: a step that promoted continues as a king.
func generateFollowMoves(m *Move, captured Bitboard) {
	pieceType := m.piece.Type
	if m.promotion {
		pieceType = King
	}
	m.follow = MovesForPiece(m.result, Piece{Side: m.piece.Side, Type: pieceType, Position: m.target}, captured)
}
