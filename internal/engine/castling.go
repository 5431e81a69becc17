package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Side selects the rook a king castles with.
type Side int

const (
	QueenSide Side = iota
	KingSide
)

// String returns "queen-side" or "king-side".
func (s Side) String() string {
	if s == KingSide {
		return "king-side"
	}
	return "queen-side"
}

// kingHomeCol is the king's starting column.
const kingHomeCol = 5

// castlingLayout holds the king and rook squares for one side.
type castlingLayout struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
}

// castlingSquares resolves the layout for side on this player's home row.
func (p *Player) castlingSquares(side Side) castlingLayout {
	row := 1
	if p.colour == chess.Black {
		row = p.board.Height()
	}
	kingFrom := chess.Sq(row, kingHomeCol)
	if side == KingSide {
		return castlingLayout{
			kingFrom: kingFrom,
			kingTo:   kingFrom.Offset(0, 2),
			rookFrom: chess.Sq(row, p.board.Width()),
			rookTo:   kingFrom.Offset(0, 1),
		}
	}
	return castlingLayout{
		kingFrom: kingFrom,
		kingTo:   kingFrom.Offset(0, -2),
		rookFrom: chess.Sq(row, 1),
		rookTo:   kingFrom.Offset(0, -1),
	}
}

// fits reports whether the layout works on b: every square on the board
// and the rook beyond the king's destination.
func (l castlingLayout) fits(b *chess.Board) bool {
	for _, sq := range []chess.Square{l.kingFrom, l.kingTo, l.rookFrom, l.rookTo} {
		if !b.IsSquareOnBoard(sq) {
			return false
		}
	}
	return abs(l.rookFrom.Col-l.kingFrom.Col) > abs(l.kingTo.Col-l.kingFrom.Col)
}

// CastleMove returns the king move that stands for castling on side.
func (p *Player) CastleMove(side Side) chess.Move {
	sq := p.castlingSquares(side)
	return chess.Move{From: sq.kingFrom, To: sq.kingTo}
}

// castlingSide reports which side, if any, m names: the own king on its
// home square moving to a castling destination.
func (p *Player) castlingSide(m chess.Move) (Side, bool) {
	if !p.board.PieceAt(m.From).Is(p.colour, chess.King) {
		return 0, false
	}
	for _, side := range []Side{KingSide, QueenSide} {
		if m == p.CastleMove(side) {
			return side, true
		}
	}
	return 0, false
}

// checkCastle validates castling on side without changing the board.
func (p *Player) checkCastle(side Side) (king, rook *chess.Piece, err error) {
	sq := p.castlingSquares(side)
	move := chess.Move{From: sq.kingFrom, To: sq.kingTo}.String()
	if !sq.fits(p.board) {
		return nil, nil, errors.NewRuleError(errors.ReasonCastlingPosition, move)
	}

	king = p.board.PieceAt(sq.kingFrom)
	rook = p.board.PieceAt(sq.rookFrom)
	if !king.Is(p.colour, chess.King) || !rook.Is(p.colour, chess.Rook) || rook.KingSide() != (side == KingSide) {
		return nil, nil, errors.NewRuleError(errors.ReasonCastlingPosition, move)
	}
	if king.MoveCount() != 0 || rook.MoveCount() != 0 {
		return nil, nil, errors.NewRuleError(errors.ReasonCastlingMoved, move)
	}

	step := 1
	if sq.rookFrom.Col < sq.kingFrom.Col {
		step = -1
	}
	for col := sq.kingFrom.Col + step; col != sq.rookFrom.Col; col += step {
		if p.board.PieceAt(chess.Sq(sq.kingFrom.Row, col)) != nil {
			return nil, nil, errors.NewRuleError(errors.ReasonCastlingBlocked, move)
		}
	}

	// The king's own square counts too, so castling out of check fails.
	enemy := p.colour.Opposite()
	attacked := p.board.Simulate(func(e *chess.Edit) bool {
		e.Remove(king)
		for col := sq.kingFrom.Col; ; col += step {
			if chess.Sq(sq.kingFrom.Row, col).CoverableBy(enemy, p.board) {
				return true
			}
			if col == sq.kingTo.Col {
				return false
			}
		}
	})
	if attacked {
		return nil, nil, errors.NewRuleError(errors.ReasonCastlingThroughCheck, move)
	}
	return king, rook, nil
}

// TryCastle moves the king two squares towards the rook on side and the
// rook to the square the king crossed. The king's move is logged.
func (p *Player) TryCastle(side Side) error {
	king, rook, err := p.checkCastle(side)
	if err != nil {
		return err
	}
	sq := p.castlingSquares(side)

	e := p.board.Begin()
	defer e.Rollback()
	e.Relocate(king, sq.kingTo)
	e.Relocate(rook, sq.rookTo)
	e.Advance(king)
	e.Advance(rook)
	e.Log(chess.Move{From: sq.kingFrom, To: sq.kingTo})
	e.Commit()
	return nil
}
