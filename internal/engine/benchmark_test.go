package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var benchPositions = map[string][]string{
	"Midgame":   {"Kg1", "Rf1", "Qd2", "Bc4", "Nf3", "Pe4@1", "Pd3@1", "Pf2", "Pg2", "Ph2", "kg8", "rf8", "qd8", "bc5", "nf6", "pe5@1", "pd6@1", "pf7", "pg7", "ph7"},
	"Endgame":   {"Kf2", "Re1", "kf7"},
	"Castling":  {"Ke1", "Ra1", "Rh1", "Pa2", "Pb2", "Pc2", "Pd2", "Pe2", "Pf2", "Pg2", "Ph2", "ke8", "ra8", "rh8"},
	"Checkmate": {"Ke1", "Ra8", "Rh7", "ke8"},
}

func benchBoards(b *testing.B) map[string]*chess.Board {
	boards := map[string]*chess.Board{"Initial": chess.NewStandardBoard()}
	for name, placements := range benchPositions {
		board, err := chess.NewBoardFromPlacements(placements...)
		if err != nil {
			b.Fatalf("%s: %v", name, err)
		}
		boards[name] = board
	}
	return boards
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, board := range benchBoards(b) {
		p := NewPlayer(chess.White, board, nil)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.LegalMoves()
			}
		})
	}
}

func BenchmarkIsCheckmate(b *testing.B) {
	for name, board := range benchBoards(b) {
		p := NewPlayer(chess.Black, board, nil)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.IsCheckmate()
			}
		})
	}
}

func BenchmarkTryMove(b *testing.B) {
	m := chess.MustParseMove("e2e4")
	for i := 0; i < b.N; i++ {
		board := chess.NewStandardBoard()
		if err := NewPlayer(chess.White, board, nil).TryMove(m); err != nil {
			b.Fatal(err)
		}
	}
}
