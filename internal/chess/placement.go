package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var kindByLetter = map[byte]Kind{
	'P': Pawn, 'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King,
}

// ParsePlacement parses a compact piece description: a piece letter
// (upper-case White, lower-case Black), a square, and optionally "@n" for
// a piece that has already moved n times. "Ke1", "pd7", "Pe5@1".
// Rooks right of the board's centre line (8 columns) are king-side.
func ParsePlacement(s string) (*Piece, error) {
	body, count, hasCount := strings.Cut(s, "@")
	if len(body) != 3 {
		return nil, fmt.Errorf("placement %q: %w", s, errors.ErrInvalidNotation)
	}
	letter := body[0]
	colour := White
	if letter >= 'a' && letter <= 'z' {
		colour = Black
		letter -= 'a' - 'A'
	}
	kind, ok := kindByLetter[letter]
	if !ok {
		return nil, fmt.Errorf("placement %q: unknown piece %q: %w", s, body[0], errors.ErrInvalidNotation)
	}
	sq, err := ParseSquare(body[1:])
	if err != nil {
		return nil, fmt.Errorf("placement %q: %w", s, err)
	}

	var p *Piece
	if kind == Rook {
		p = NewRook(colour, sq, sq.Col > StandardSize/2)
	} else {
		p = NewPiece(kind, colour, sq)
	}
	if hasCount {
		n, err := strconv.Atoi(count)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("placement %q: bad move count: %w", s, errors.ErrInvalidNotation)
		}
		p.WithMoveCount(n)
	}
	return p, nil
}

// NewBoardFromPlacements builds an 8x8 board from placement strings.
func NewBoardFromPlacements(placements ...string) (*Board, error) {
	pieces := make([]*Piece, 0, len(placements))
	for _, s := range placements {
		p, err := ParsePlacement(s)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	}
	return NewBoardWithPieces(StandardSize, StandardSize, pieces...)
}
