package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is an immutable source/destination pair. The zero Move is not valid;
// construct moves with NewMove or ParseMove.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move, failing when source and destination are equal.
func NewMove(from, to Square) (Move, error) {
	if from == to {
		return Move{}, fmt.Errorf("move source and destination must not be equal (%s): %w", from, errors.ErrInvalidNotation)
	}
	return Move{From: from, To: to}, nil
}

// ParseMove parses 4 character move notation such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("move %q must have exactly 4 characters: %w", s, errors.ErrInvalidNotation)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, err
	}
	return NewMove(from, to)
}

// MustParseMove is like ParseMove but panics on malformed input.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the move in 4 character notation.
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// RowDelta returns the signed row distance travelled.
func (m Move) RowDelta() int {
	return m.To.Row - m.From.Row
}

// ColDelta returns the signed column distance travelled.
func (m Move) ColDelta() int {
	return m.To.Col - m.From.Col
}
