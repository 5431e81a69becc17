package chess

// backRank lists the home-row pieces from the a-file to the h-file.
var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard creates an 8x8 board in the initial position. The rooks
// on the h-file are the king-side castling partners.
func NewStandardBoard() *Board {
	b := NewBoard(StandardSize, StandardSize)
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition places both armies on an empty board: pawns on the
// second rank from each side, pieces on the home rows.
func (b *Board) SetupInitialPosition() {
	for _, colour := range []Colour{White, Black} {
		home, pawnRow := 1, 2
		if colour == Black {
			home, pawnRow = b.height, b.height-1
		}
		for col := 1; col <= b.width; col++ {
			b.TryAddPiece(NewPiece(Pawn, colour, Sq(pawnRow, col)))
		}
		for i, kind := range backRank {
			col := i + 1
			if col > b.width {
				break
			}
			var p *Piece
			if kind == Rook {
				p = NewRook(colour, Sq(home, col), col > b.width/2)
			} else {
				p = NewPiece(kind, colour, Sq(home, col))
			}
			b.TryAddPiece(p)
		}
	}
}
