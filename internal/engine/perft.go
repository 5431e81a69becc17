package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// promotionKinds are the pieces a pawn may become, in the order perft
// expands them.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// IsPromotion reports whether m, played by the piece on m.From, is a pawn
// reaching the far row.
func IsPromotion(board *chess.Board, m chess.Move) bool {
	piece := board.PieceAt(m.From)
	if piece == nil || piece.Kind() != chess.Pawn {
		return false
	}
	p := Player{colour: piece.Colour(), board: board}
	return m.To.Row == p.promotionRow()
}

// PlayOn returns a copy of board with m played by toMove, promoting to
// kind when the move is a promotion.
func PlayOn(board *chess.Board, toMove chess.Colour, m chess.Move, kind chess.Kind) (*chess.Board, error) {
	child := board.Clone()
	promoter := PromoterFunc(func(chess.Colour) (chess.Kind, error) { return kind, nil })
	if err := NewPlayer(toMove, child, promoter).Execute(m); err != nil {
		return nil, fmt.Errorf("perft move %v: %w", m, err)
	}
	return child, nil
}

// Perft counts the positions reachable in exactly depth plies with toMove
// to play. A promotion counts once for each piece the pawn may become.
// board is not modified.
func Perft(board *chess.Board, toMove chess.Colour, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	moves := NewPlayer(toMove, board, nil).LegalMoves()
	var nodes uint64
	for _, m := range moves {
		kinds := PromotionKinds(board, m)
		if depth == 1 {
			nodes += uint64(len(kinds))
			continue
		}
		for _, kind := range kinds {
			child, err := PlayOn(board, toMove, m, kind)
			if err != nil {
				return 0, err
			}
			n, err := Perft(child, toMove.Opposite(), depth-1)
			if err != nil {
				return 0, err
			}
			nodes += n
		}
	}
	return nodes, nil
}

// PromotionKinds returns the kinds perft expands m into: all four promotion
// pieces for a promotion, otherwise a single placeholder queen.
func PromotionKinds(board *chess.Board, m chess.Move) []chess.Kind {
	if IsPromotion(board, m) {
		return promotionKinds
	}
	return []chess.Kind{chess.Queen}
}
