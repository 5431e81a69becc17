// Package engine applies the rules of chess to a board on behalf of one side.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Promoter chooses the piece a pawn is replaced with when it reaches the
// far row. Implementations re-prompt on bad input themselves; the returned
// kind must satisfy chess.CanPromoteTo.
type Promoter interface {
	PromotionChoice(colour chess.Colour) (chess.Kind, error)
}

// PromoterFunc adapts an ordinary function to Promoter.
type PromoterFunc func(colour chess.Colour) (chess.Kind, error)

// PromotionChoice calls f.
func (f PromoterFunc) PromotionChoice(colour chess.Colour) (chess.Kind, error) {
	return f(colour)
}

// AlwaysQueen promotes every pawn to a queen.
var AlwaysQueen = PromoterFunc(func(chess.Colour) (chess.Kind, error) {
	return chess.Queen, nil
})

// Player moves the pieces of one colour. Two players normally share a
// board and alternate; the player itself does not track turns.
type Player struct {
	colour   chess.Colour
	board    *chess.Board
	promoter Promoter
}

// NewPlayer creates a player for colour on board. A nil promoter promotes
// to a queen.
func NewPlayer(colour chess.Colour, board *chess.Board, promoter Promoter) *Player {
	if promoter == nil {
		promoter = AlwaysQueen
	}
	return &Player{colour: colour, board: board, promoter: promoter}
}

// Colour returns the side this player moves.
func (p *Player) Colour() chess.Colour { return p.colour }

// Board returns the shared board.
func (p *Player) Board() *chess.Board { return p.board }

// selectPiece performs the checks shared by every kind of move: both
// squares on the board and an own piece on the source square.
func (p *Player) selectPiece(m chess.Move) (*chess.Piece, error) {
	if !p.board.IsSquareOnBoard(m.From) || !p.board.IsSquareOnBoard(m.To) {
		return nil, errors.NewRuleError(errors.ReasonOffBoard, m.String())
	}
	piece := p.board.PieceAt(m.From)
	if piece == nil {
		return nil, errors.NewRuleError(errors.ReasonNoPiece, m.String())
	}
	if piece.Colour() != p.colour {
		return nil, errors.NewRuleError(errors.ReasonEnemyPiece, m.String())
	}
	return piece, nil
}

// leavesKingSafe reports whether moving piece to the empty-or-captured
// square to, with captured removed first, keeps the own king out of check.
// The board is restored before returning.
func (p *Player) leavesKingSafe(piece *chess.Piece, to chess.Square, captured *chess.Piece) bool {
	return p.board.Simulate(func(e *chess.Edit) bool {
		if captured != nil {
			e.Remove(captured)
		}
		e.Relocate(piece, to)
		return !IsInCheck(p.board, p.colour)
	})
}

// promotionRow is the far row for this player's pawns.
func (p *Player) promotionRow() int {
	if p.colour == chess.White {
		return p.board.Height()
	}
	return 1
}

// choosePromotion asks the promoter for a replacement kind.
func (p *Player) choosePromotion() (chess.Kind, error) {
	kind, err := p.promoter.PromotionChoice(p.colour)
	if err != nil {
		return 0, errors.Wrap(err, "choosing promotion")
	}
	if !chess.CanPromoteTo(kind) {
		return 0, fmt.Errorf("cannot promote to %v: %w", kind, errors.ErrPromotionChoice)
	}
	return kind, nil
}
