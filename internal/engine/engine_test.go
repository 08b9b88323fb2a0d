package engine

import (
	"testing"

	"github.com/jl-duee/shashki-engine/internal/board"
)

func TestPerftInitialPosition(t *testing.T) {
	start := board.NewBoard()

	cases := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 7},
		{2, 49},
	}
	for _, c := range cases {
		if got := Perft(start, board.White, c.depth); got != c.want {
			t.Errorf("Perft(initial, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftForcedCapture(t *testing.T) {
	b := board.BoardFrom(board.SquareBit(18), 0, board.SquareBit(25), 0)
	if got := Perft(b, board.White, 1); got != 1 {
		t.Errorf("Perft = %d, want the single forced capture", got)
	}
}

func TestPerftCountsChainLeavesOnce(t *testing.T) {
	// One root move with a two-way continuation: two positions, not three.
	b := board.BoardFrom(board.SquareBit(8), 0, board.SquareBit(17)|board.SquareBit(33)|board.SquareBit(35), 0)
	if got := Perft(b, board.White, 1); got != 2 {
		t.Errorf("Perft = %d, want 2 chain completions", got)
	}
}

func TestPlayMoveCommitsWholeChain(t *testing.T) {
	g := board.NewGameFrom(board.BoardFrom(board.SquareBit(8), 0, board.SquareBit(17)|board.SquareBit(35), 0), board.White)

	m := BestMove(g, 1)
	PlayMove(g, m)

	if g.InMoveCombo() {
		t.Error("chain must be fully committed")
	}
	if g.Turn() != board.Black {
		t.Error("turn passes to black after the chain")
	}
	if len(g.ExecutedMoves()) != 2 {
		t.Errorf("history length = %d, want one entry per chain step", len(g.ExecutedMoves()))
	}
	want := board.BoardFrom(board.SquareBit(44), 0, 0, 0)
	if g.Board() != want {
		t.Errorf("board = %+v, want %+v", g.Board(), want)
	}
}

func TestEngineDifficulty(t *testing.T) {
	e := NewEngine()
	if e.Difficulty() != Medium {
		t.Error("new engine defaults to medium")
	}

	e.SetDifficulty(Easy)
	if e.Difficulty() != Easy {
		t.Error("SetDifficulty did not stick")
	}

	g := board.NewGame()
	m := e.Search(g)
	if m.SourceBoard() != g.Board() {
		t.Error("engine move must start from the game's position")
	}

	if got := e.Evaluate(g.Board()); got != Evaluate(g.Board()) {
		t.Errorf("engine evaluation = %d, want the static evaluation", got)
	}
}
