// Package board implements the Russian draughts (shashki) board model and
// legal move generation using bitboards.
package board

import "fmt"

// Square represents a square on the board (0-63).
// Square 0 is on white's back rank; square 63 on black's back rank.
// Only dark squares are ever occupied, but all 64 indices exist.
type Square uint8

// NoSquare marks an invalid square.
const NoSquare Square = 64

// File returns the file index of the square (0-7).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank index of the square (0-7, where 0 is white's back rank).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the shashki label for the square. The file letter runs
// A-H from the highest file index down, so square 0 is "H1" and square 63
// is "A8".
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'A'+7-sq.File(), sq.Rank()+1)
}

// NewSquare creates a square from file and rank indices (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}
