// Package chess provides the board, piece and move model of the rules engine.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the pawn direction in rows).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind is one of the six chess piece variants.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParsePromotion maps a promotion token (R, N, B or Q, any case) to a kind.
func ParsePromotion(token string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "R":
		return Rook, nil
	case "N":
		return Knight, nil
	case "B":
		return Bishop, nil
	case "Q":
		return Queen, nil
	}
	return 0, fmt.Errorf("%q: %w", token, errors.ErrPromotionChoice)
}

// CanPromoteTo reports whether a pawn may be replaced by a piece of kind k.
func CanPromoteTo(k Kind) bool {
	switch k {
	case Rook, Knight, Bishop, Queen:
		return true
	default:
		return false
	}
}

// StandardSize is the width and height of an orthodox chess board.
const StandardSize = 8
