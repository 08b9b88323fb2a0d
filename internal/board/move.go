package board

import (
	"math/rand/v2"
	"strings"
)

// Move describes one single-step move: a slide or a single jump. A jump
// carries the tree of legal continuations in follow; committing to a
// chain means walking that tree one step per ExecuteMove call.
type Move struct {
	piece     Piece
	target    Square
	attacked  *Piece
	promotion bool
	source    Board
	result    Board
	follow    []Move
}

// newMove builds a move and derives its result board from the source:
// the moving piece leaves its square, the attacked piece (if any) is
// removed, and the mover lands on the target, as a king when it promotes
// or already was one.
func newMove(piece Piece, target Square, attacked *Piece, promotion bool, source Board) Move {
	result := source
	result.clear(piece.Position)
	if attacked != nil {
		result.clear(attacked.Position)
	}
	landingType := piece.Type
	if promotion {
		landingType = King
	}
	result.place(piece.Side, landingType, target)

	return Move{
		piece:     piece,
		target:    target,
		attacked:  attacked,
		promotion: promotion,
		source:    source,
		result:    result,
	}
}

// MovingPiece returns the pre-move identity of the mover.
func (m *Move) MovingPiece() Piece {
	return m.piece
}

// Target returns the landing square of this step.
func (m *Move) Target() Square {
	return m.target
}

// AttackedPiece returns the jumped piece and true when this step is a capture.
func (m *Move) AttackedPiece() (Piece, bool) {
	if m.attacked == nil {
		return Piece{}, false
	}
	return *m.attacked, true
}

// IsCapture returns true when this step jumps an opponent.
func (m *Move) IsCapture() bool {
	return m.attacked != nil
}

// IsPromotion returns true when the mover crosses its promotion rank on
// this step.
func (m *Move) IsPromotion() bool {
	return m.promotion
}

// SourceBoard returns the position before the step.
func (m *Move) SourceBoard() Board {
	return m.source
}

// TargetBoard returns the position after the step.
func (m *Move) TargetBoard() Board {
	return m.result
}

// FollowMoves returns the legal continuations of this capture step.
// The slice is owned by the move; callers must not modify it.
func (m *Move) FollowMoves() []Move {
	return m.follow
}

// Equal reports move equality, defined as equality of source and target
// boards together.
func (m *Move) Equal(other *Move) bool {
	return m.source == other.source && m.result == other.result
}

// LeadsTo reports whether some complete continuation path of this move
// ends on the given board.
func (m *Move) LeadsTo(b Board) bool {
	if len(m.follow) == 0 {
		return m.result == b
	}
	for i := range m.follow {
		if m.follow[i].LeadsTo(b) {
			return true
		}
	}
	return false
}

// ShrinkTo narrows the continuation tree to the paths that end on the
// given board.
func (m *Move) ShrinkTo(b Board) {
	if len(m.follow) == 0 {
		return
	}
	kept := m.follow[:0]
	for i := range m.follow {
		if m.follow[i].LeadsTo(b) {
			kept = append(kept, m.follow[i])
		}
	}
	m.follow = kept
	for i := range m.follow {
		m.follow[i].ShrinkTo(b)
	}
}

// ShrinkRandomly narrows the continuation tree to a single uniformly
// sampled path.
func (m *Move) ShrinkRandomly() {
	if len(m.follow) == 0 {
		return
	}
	pick := m.follow[rand.IntN(len(m.follow))]
	m.follow = []Move{pick}
	m.follow[0].ShrinkRandomly()
}

// String returns the step in shashki notation: source square, then the
// jumped square if any, then the target, separated by dashes.
func (m *Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.piece.Position.String())
	sb.WriteByte('-')
	if m.attacked != nil {
		sb.WriteString(m.attacked.Position.String())
		sb.WriteByte('-')
	}
	sb.WriteString(m.target.String())
	return sb.String()
}
