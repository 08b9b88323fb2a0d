package engine

import (
	"testing"

	"github.com/jl-duee/shashki-engine/internal/board"
)

func TestBestMoveDepthOnePrefersCapture(t *testing.T) {
	g := board.NewGameFrom(board.BoardFrom(board.SquareBit(18), 0, board.SquareBit(25), 0), board.White)

	m := BestMove(g, 1)
	if !m.IsCapture() {
		t.Fatalf("best move %s is not the capture", m.String())
	}
	if m.SourceBoard() != g.Board() {
		t.Error("best move must start from the game's position")
	}
	if got, want := Evaluate(m.TargetBoard()), Evaluate(g.Board())+ManWeight; got != want {
		t.Errorf("leaf evaluation = %d, want %d", got, want)
	}
}

func TestBestMoveNarrowsChain(t *testing.T) {
	g := board.NewGameFrom(board.BoardFrom(board.SquareBit(8), 0, board.SquareBit(17)|board.SquareBit(35), 0), board.White)

	m := BestMove(g, 1)
	if got := m.String(); got != "H2-G3-F4" {
		t.Fatalf("best move = %q, want H2-G3-F4", got)
	}

	follow := m.FollowMoves()
	if len(follow) != 1 {
		t.Fatalf("chain keeps %d continuations, want 1", len(follow))
	}
	wantLeaf := board.BoardFrom(board.SquareBit(44), 0, 0, 0)
	if follow[0].TargetBoard() != wantLeaf {
		t.Errorf("chain leaf = %+v, want %+v", follow[0].TargetBoard(), wantLeaf)
	}
}

func TestBestMoveOnInitialPositionIsLegal(t *testing.T) {
	g := board.NewGame()

	m := BestMove(g, 3)
	if m.SourceBoard() != g.Board() {
		t.Fatal("best move must start from the game's position")
	}

	legal := false
	for _, candidate := range board.MovesForGame(g) {
		if candidate.Equal(&m) {
			legal = true
		}
	}
	if !legal {
		t.Errorf("best move %s is not among the legal moves", m.String())
	}
}

func TestBestMovePicksWinningCapture(t *testing.T) {
	// White can jump either a man or a king; taking the king is worth
	// more, and the maximizer must see it at depth 1.
	// The man on 26 (F4) may jump 33 (G5) or the king on 35 (E5).
	g := board.NewGameFrom(
		board.BoardFrom(board.SquareBit(26), 0, board.SquareBit(33), board.SquareBit(35)),
		board.White,
	)

	m := BestMove(g, 1)
	attacked, ok := m.AttackedPiece()
	if !ok {
		t.Fatalf("best move %s is not a capture", m.String())
	}
	if attacked.Type != board.King {
		t.Errorf("best move takes the %v on %s, want the king", attacked.Type, attacked.Position.String())
	}
}

func TestRandomMoveIsLegal(t *testing.T) {
	g := board.NewGame()

	for i := 0; i < 20; i++ {
		m := RandomMove(g)
		legal := false
		for _, candidate := range board.MovesForGame(g) {
			if candidate.Equal(&m) {
				legal = true
			}
		}
		if !legal {
			t.Fatalf("random move %s is not legal", m.String())
		}
	}
}

func TestRandomMoveNarrowsChain(t *testing.T) {
	g := board.NewGameFrom(
		board.BoardFrom(board.SquareBit(8), 0, board.SquareBit(17)|board.SquareBit(33)|board.SquareBit(35), 0),
		board.White,
	)

	for i := 0; i < 10; i++ {
		m := RandomMove(g)
		for step := &m; ; step = &step.FollowMoves()[0] {
			if n := len(step.FollowMoves()); n > 1 {
				t.Fatalf("step %s keeps %d continuations", step.String(), n)
			} else if n == 0 {
				break
			}
		}
	}
}
