package chess

import "fmt"

// Piece is a single chess piece. Its colour and kind never change; its
// square and move counter change only through Board and Edit.
type Piece struct {
	kind     Kind
	colour   Colour
	square   Square
	moves    int
	kingSide bool // rooks only: the king-side castling partner
}

// NewPiece creates a piece of the given kind at sq with no moves made.
// Rooks created this way are queen-side; use NewRook to choose.
func NewPiece(kind Kind, colour Colour, sq Square) *Piece {
	return &Piece{kind: kind, colour: colour, square: sq}
}

// NewRook creates a rook, recording which castling side it belongs to.
func NewRook(colour Colour, sq Square, kingSide bool) *Piece {
	return &Piece{kind: Rook, colour: colour, square: sq, kingSide: kingSide}
}

// WithMoveCount sets the move counter of a piece that is not yet on a board.
// It exists for building positions in the middle of a game.
func (p *Piece) WithMoveCount(n int) *Piece {
	p.moves = n
	return p
}

// Kind returns the piece variant.
func (p *Piece) Kind() Kind { return p.kind }

// Colour returns the piece colour.
func (p *Piece) Colour() Colour { return p.colour }

// Square returns the piece's current square.
func (p *Piece) Square() Square { return p.square }

// MoveCount returns how many times the piece has moved; 0 means never.
func (p *Piece) MoveCount() int { return p.moves }

// KingSide reports whether a rook is the king-side castling partner.
func (p *Piece) KingSide() bool { return p.kingSide }

// Is reports whether the piece has the given colour and kind.
func (p *Piece) Is(colour Colour, kind Kind) bool {
	return p != nil && p.colour == colour && p.kind == kind
}

// Letter returns the piece letter, upper-case for White and lower-case for Black.
func (p *Piece) Letter() byte {
	l := p.kind.Letter()
	if p.colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Knight g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v %v", p.colour, p.kind, p.square)
}

// Protected reports whether another piece of the same colour defends p,
// i.e. could recapture on p's square. The board is left exactly as found.
func (p *Piece) Protected(b *Board) bool {
	return b.Simulate(func(e *Edit) bool {
		e.Remove(p)
		return p.square.CoverableBy(p.colour, b)
	})
}
