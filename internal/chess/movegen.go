package chess

// direction is a (row, column) step.
type direction [2]int

var (
	rookDirections   = []direction{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	bishopDirections = []direction{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
	queenDirections  = append(append([]direction{}, rookDirections...), bishopDirections...)

	knightOffsets = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = queenDirections
)

// CandidateMoves returns every square p could move to or capture on,
// ignoring whether the move would expose its own king. Castling and en
// passant are not included.
func (p *Piece) CandidateMoves(b *Board) SquareSet {
	switch p.kind {
	case Pawn:
		return p.pawnMoves(b)
	case Knight:
		return p.leaperMoves(b, knightOffsets)
	case Bishop:
		return p.slide(b, bishopDirections)
	case Rook:
		return p.slide(b, rookDirections)
	case Queen:
		return p.slide(b, queenDirections)
	case King:
		return p.kingMoves(b)
	}
	return SquareSet{}
}

// CoveredSquares returns the squares p threatens for king-safety purposes.
// Pawns cover both forward diagonals whether or not anything stands there;
// kings cover their neighbours. Everything else covers its candidate moves.
func (p *Piece) CoveredSquares(b *Board) SquareSet {
	switch p.kind {
	case Pawn:
		covered := SquareSet{}
		for _, dc := range []int{-1, 1} {
			sq := p.square.Offset(p.colour.Forward(), dc)
			if b.IsSquareOnBoard(sq) {
				covered.Add(sq)
			}
		}
		return covered
	case King:
		covered := SquareSet{}
		for _, d := range kingOffsets {
			sq := p.square.Offset(d[0], d[1])
			if b.IsSquareOnBoard(sq) {
				covered.Add(sq)
			}
		}
		return covered
	}
	return p.CandidateMoves(b)
}

// slide casts a ray in each direction until the board edge. Empty squares
// are added and passed; an enemy is added and stops the ray; a friend stops
// it without being added.
func (p *Piece) slide(b *Board, dirs []direction) SquareSet {
	moves := SquareSet{}
	for _, d := range dirs {
		for sq := p.square.Offset(d[0], d[1]); b.IsSquareOnBoard(sq); sq = sq.Offset(d[0], d[1]) {
			occupant := b.PieceAt(sq)
			if occupant == nil {
				moves.Add(sq)
				continue
			}
			if occupant.colour != p.colour {
				moves.Add(sq)
			}
			break
		}
	}
	return moves
}

// leaperMoves returns the on-board offsets not occupied by a friend.
func (p *Piece) leaperMoves(b *Board, offsets []direction) SquareSet {
	moves := SquareSet{}
	for _, d := range offsets {
		sq := p.square.Offset(d[0], d[1])
		if !b.IsSquareOnBoard(sq) {
			continue
		}
		if occupant := b.PieceAt(sq); occupant == nil || occupant.colour != p.colour {
			moves.Add(sq)
		}
	}
	return moves
}

func (p *Piece) pawnMoves(b *Board) SquareSet {
	moves := SquareSet{}
	dir := p.colour.Forward()

	one := p.square.Offset(dir, 0)
	if b.IsSquareOnBoard(one) && b.PieceAt(one) == nil {
		moves.Add(one)

		// The starting rank is implied by the untouched counter.
		two := p.square.Offset(2*dir, 0)
		if p.moves == 0 && b.IsSquareOnBoard(two) && b.PieceAt(two) == nil {
			moves.Add(two)
		}
	}

	for _, dc := range []int{-1, 1} {
		sq := p.square.Offset(dir, dc)
		if !b.IsSquareOnBoard(sq) {
			continue
		}
		if occupant := b.PieceAt(sq); occupant != nil && occupant.colour != p.colour {
			moves.Add(sq)
		}
	}
	return moves
}

// kingMoves evaluates each neighbour with the king lifted off the board, so
// that a square further along a checking ray still counts as covered.
func (p *Piece) kingMoves(b *Board) SquareSet {
	moves := SquareSet{}
	enemy := p.colour.Opposite()
	b.Simulate(func(e *Edit) bool {
		e.Remove(p)
		for _, d := range kingOffsets {
			sq := p.square.Offset(d[0], d[1])
			if !b.IsSquareOnBoard(sq) {
				continue
			}
			occupant := b.PieceAt(sq)
			switch {
			case occupant == nil:
				if !sq.CoverableBy(enemy, b) {
					moves.Add(sq)
				}
			case occupant.colour == enemy:
				if !occupant.Protected(b) {
					moves.Add(sq)
				}
			}
		}
		return true
	})
	return moves
}
