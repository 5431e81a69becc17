package chess

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is the single source of truth for occupancy. It holds the live
// pieces keyed by square and the log of committed moves. It knows nothing
// about turns or legality beyond bounds and occupancy.
type Board struct {
	width  int
	height int

	// Live pieces keyed by the square they occupy.
	squares map[Square]*Piece

	// Committed moves in order. Only the last entry is consulted by the
	// rules (en passant eligibility).
	moveLog []Move
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	return &Board{
		width:   width,
		height:  height,
		squares: make(map[Square]*Piece),
	}
}

// NewBoardWithPieces creates a board holding exactly the given pieces.
// It fails if any piece is off the board or two pieces share a square.
func NewBoardWithPieces(width, height int, pieces ...*Piece) (*Board, error) {
	b := NewBoard(width, height)
	for _, p := range pieces {
		if !b.IsSquareOnBoard(p.square) {
			return nil, fmt.Errorf("cannot set piece at %s for board of size %d x %d: %w",
				p.square, height, width, errors.ErrInvalidBoard)
		}
		if !b.TryAddPiece(p) {
			return nil, fmt.Errorf("square %s already occupied: %w", p.square, errors.ErrInvalidBoard)
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// IsSquareOnBoard reports whether sq lies within the board dimensions.
func (b *Board) IsSquareOnBoard(sq Square) bool {
	return sq.Row >= 1 && sq.Row <= b.height && sq.Col >= 1 && sq.Col <= b.width
}

// PieceAt returns the piece on sq, or nil if the square is empty.
func (b *Board) PieceAt(sq Square) *Piece {
	return b.squares[sq]
}

// TeamPieces returns all live pieces of one colour ordered by square.
func (b *Board) TeamPieces(c Colour) []*Piece {
	var pieces []*Piece
	for _, p := range b.squares {
		if p.colour == c {
			pieces = append(pieces, p)
		}
	}
	sort.Slice(pieces, func(i, j int) bool {
		return pieces[i].square.Less(pieces[j].square)
	})
	return pieces
}

// Pieces returns every live piece ordered by square.
func (b *Board) Pieces() []*Piece {
	return append(b.TeamPieces(White), b.TeamPieces(Black)...)
}

// King returns the king of colour c. It panics unless exactly one exists,
// since every rules query depends on that invariant.
func (b *Board) King(c Colour) *Piece {
	var king *Piece
	for _, p := range b.squares {
		if p.Is(c, King) {
			if king != nil {
				panic(fmt.Errorf("more than one %v King found: %w", c, errors.ErrCorruptBoard))
			}
			king = p
		}
	}
	if king == nil {
		panic(fmt.Errorf("no %v King found: %w", c, errors.ErrCorruptBoard))
	}
	return king
}

// TryAddPiece places p on its square. It returns false without changing
// the board if the square is off the board or already occupied.
func (b *Board) TryAddPiece(p *Piece) bool {
	if !b.IsSquareOnBoard(p.square) {
		return false
	}
	if _, occupied := b.squares[p.square]; occupied {
		return false
	}
	b.squares[p.square] = p
	return true
}

// TryRemovePiece removes p. It returns false if that exact piece is not
// on the board.
func (b *Board) TryRemovePiece(p *Piece) bool {
	if b.squares[p.square] != p {
		return false
	}
	delete(b.squares, p.square)
	return true
}

// tryRelocate moves a piece already on the board to an empty square.
func (b *Board) tryRelocate(p *Piece, to Square) bool {
	if b.squares[p.square] != p || !b.IsSquareOnBoard(to) {
		return false
	}
	if _, occupied := b.squares[to]; occupied {
		return false
	}
	delete(b.squares, p.square)
	p.square = to
	b.squares[to] = p
	return true
}

// AppendMove records a committed move.
func (b *Board) AppendMove(m Move) {
	b.moveLog = append(b.moveLog, m)
}

// LastMove returns the most recently committed move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.moveLog) == 0 {
		return Move{}, false
	}
	return b.moveLog[len(b.moveLog)-1], true
}

// Moves returns a copy of the move log.
func (b *Board) Moves() []Move {
	return append([]Move(nil), b.moveLog...)
}

// PieceState is a value snapshot of one piece, used to compare positions.
type PieceState struct {
	Kind      Kind
	Colour    Colour
	Square    Square
	MoveCount int
	KingSide  bool
}

// Snapshot captures every live piece and the move log by value.
// Two snapshots are equal exactly when the positions are indistinguishable.
type Snapshot struct {
	Pieces []PieceState
	Moves  []Move
}

// Snapshot returns a value copy of the board state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{Moves: b.Moves()}
	for _, p := range b.Pieces() {
		s.Pieces = append(s.Pieces, PieceState{
			Kind:      p.kind,
			Colour:    p.colour,
			Square:    p.square,
			MoveCount: p.moves,
			KingSide:  p.kingSide,
		})
	}
	return s
}

// Clone returns an independent copy of b. Pieces are copied too, so moves
// played on the clone leave b untouched.
func (b *Board) Clone() *Board {
	c := NewBoard(b.width, b.height)
	for sq, p := range b.squares {
		cp := *p
		c.squares[sq] = &cp
	}
	c.moveLog = b.Moves()
	return c
}
