package board

// Board holds the position as four piece masks, one per side and type.
// At most one mask has any given bit set. The struct is comparable;
// == is positional equality.
type Board struct {
	WhiteMen   Bitboard
	WhiteKings Bitboard
	BlackMen   Bitboard
	BlackKings Bitboard
}

// Initial placement: men on the dark squares of the first three ranks
// of each side.
const (
	initialWhiteMen Bitboard = 0x0000000000AA55AA
	initialBlackMen Bitboard = 0x55AA550000000000
)

// NewBoard returns the initial position.
func NewBoard() Board {
	return Board{
		WhiteMen: initialWhiteMen,
		BlackMen: initialBlackMen,
	}
}

// BoardFrom returns a position built from explicit masks.
func BoardFrom(whiteMen, whiteKings, blackMen, blackKings Bitboard) Board {
	return Board{
		WhiteMen:   whiteMen,
		WhiteKings: whiteKings,
		BlackMen:   blackMen,
		BlackKings: blackKings,
	}
}

// PiecesOf returns the mask for the given side and piece type.
func (b Board) PiecesOf(side Side, pieceType PieceType) Bitboard {
	if side == White {
		if pieceType == Man {
			return b.WhiteMen
		}
		return b.WhiteKings
	}
	if pieceType == Man {
		return b.BlackMen
	}
	return b.BlackKings
}

// Blocking returns the occupancy of the whole board.
func (b Board) Blocking() Bitboard {
	return b.WhiteMen | b.WhiteKings | b.BlackMen | b.BlackKings
}

// BlockingOf returns the occupancy of one side.
func (b Board) BlockingOf(side Side) Bitboard {
	if side == White {
		return b.WhiteMen | b.WhiteKings
	}
	return b.BlackMen | b.BlackKings
}

// TypeAt returns the piece type on the given square. The caller must know
// that some side occupies the square; an empty square reads as King.
func (b Board) TypeAt(sq Square) PieceType {
	if (b.WhiteMen | b.BlackMen).IsSet(sq) {
		return Man
	}
	return King
}

// clear removes any piece from the square on every mask.
func (b *Board) clear(sq Square) {
	b.WhiteMen = b.WhiteMen.Clear(sq)
	b.WhiteKings = b.WhiteKings.Clear(sq)
	b.BlackMen = b.BlackMen.Clear(sq)
	b.BlackKings = b.BlackKings.Clear(sq)
}

// place puts a piece of the given side and type on the square.
func (b *Board) place(side Side, pieceType PieceType, sq Square) {
	switch {
	case side == White && pieceType == Man:
		b.WhiteMen = b.WhiteMen.Set(sq)
	case side == White:
		b.WhiteKings = b.WhiteKings.Set(sq)
	case pieceType == Man:
		b.BlackMen = b.BlackMen.Set(sq)
	default:
		b.BlackKings = b.BlackKings.Set(sq)
	}
}
