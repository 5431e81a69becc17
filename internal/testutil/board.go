package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MustBoard builds an 8x8 board from placement strings such as "Ke1",
// "pd7" or "Pe5@1". It calls t.Fatal if any placement is malformed.
func MustBoard(t *testing.T, placements ...string) *chess.Board {
	t.Helper()
	b, err := chess.NewBoardFromPlacements(placements...)
	if err != nil {
		t.Fatalf("failed to build test board %v: %v", placements, err)
	}
	return b
}

// MustMove parses 4 character move notation, calling t.Fatal on failure.
func MustMove(t *testing.T, s string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(s)
	if err != nil {
		t.Fatalf("failed to parse test move %q: %v", s, err)
	}
	return m
}

// MustSquare parses a square name, calling t.Fatal on failure.
func MustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("failed to parse test square %q: %v", s, err)
	}
	return sq
}

// AssertPiece fails unless the piece on sq has the given colour and kind.
func AssertPiece(t *testing.T, b *chess.Board, sq string, colour chess.Colour, kind chess.Kind) {
	t.Helper()
	if p := b.PieceAt(MustSquare(t, sq)); !p.Is(colour, kind) {
		t.Errorf("PieceAt(%s) = %v, want %v %v", sq, p, colour, kind)
	}
}

// AssertEmpty fails if any of the named squares is occupied.
func AssertEmpty(t *testing.T, b *chess.Board, squares ...string) {
	t.Helper()
	for _, sq := range squares {
		if p := b.PieceAt(MustSquare(t, sq)); p != nil {
			t.Errorf("PieceAt(%s) = %v, want empty", sq, p)
		}
	}
}
