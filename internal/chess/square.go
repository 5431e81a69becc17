package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a row/column coordinate. Rows and columns start at 1; a Square
// carries no bounds of its own, those are relative to a Board.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// ParseSquare parses a two character square such as "e2". The file letter
// is case-insensitive and maps A=1; the rank is a single decimal digit.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q requires exactly 2 characters: %w", s, errors.ErrInvalidNotation)
	}
	file := s[0]
	if file >= 'a' && file <= 'z' {
		file -= 'a' - 'A'
	}
	if file < 'A' || file > 'Z' {
		return Square{}, fmt.Errorf("character %q is not a valid file: %w", s[0], errors.ErrInvalidNotation)
	}
	if s[1] < '0' || s[1] > '9' {
		return Square{}, fmt.Errorf("character %q is not a valid rank: %w", s[1], errors.ErrInvalidNotation)
	}
	return Square{Row: int(s[1] - '0'), Col: int(file-'A') + 1}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed squares in setup code and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// String returns the square in file/rank notation, e.g. "e2".
func (s Square) String() string {
	if s.Col >= 1 && s.Col <= 26 {
		return string(rune('a'+s.Col-1)) + strconv.Itoa(s.Row)
	}
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// Less orders squares by row, then column.
func (s Square) Less(o Square) bool {
	if s.Row != o.Row {
		return s.Row < o.Row
	}
	return s.Col < o.Col
}

// CoverableBy reports whether any piece of colour c could move to s if s
// were empty. s must be unoccupied on b: callers lift the piece under test
// off the board first. Calling it on an occupied square panics.
func (s Square) CoverableBy(c Colour, b *Board) bool {
	if b.PieceAt(s) != nil {
		panic(fmt.Errorf("coverage query on occupied square %s: %w", s, errors.ErrCorruptBoard))
	}
	for _, p := range b.TeamPieces(c) {
		if p.CoveredSquares(b).Contains(s) {
			return true
		}
	}
	return false
}
