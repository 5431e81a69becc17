package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TryMove applies an ordinary move or capture. On any rejection the board
// is left exactly as it was and a *errors.RuleError is returned. A pawn
// reaching the far row is replaced by the promoter's choice; if the
// promoter fails the move is not made.
func (p *Player) TryMove(m chess.Move) error {
	piece, err := p.selectPiece(m)
	if err != nil {
		return err
	}
	if !piece.CandidateMoves(p.board).Contains(m.To) {
		return errors.NewRuleError(errors.ReasonUnreachable, m.String())
	}

	captured := p.board.PieceAt(m.To)
	if !p.leavesKingSafe(piece, m.To, captured) {
		return errors.NewRuleError(errors.ReasonSelfCheck, m.String())
	}

	promote := piece.Kind() == chess.Pawn && m.To.Row == p.promotionRow()
	var promoted chess.Kind
	if promote {
		if promoted, err = p.choosePromotion(); err != nil {
			return err
		}
	}

	e := p.board.Begin()
	defer e.Rollback()
	if captured != nil {
		e.Remove(captured)
	}
	e.Relocate(piece, m.To)
	e.Advance(piece)
	if promote {
		e.Remove(piece)
		e.Add(chess.NewPiece(promoted, p.colour, m.To).WithMoveCount(piece.MoveCount()))
	}
	e.Log(m)
	e.Commit()
	return nil
}

// Execute applies m whatever its kind. A king stepping two columns from its
// home square is treated as castling. A pawn stepping diagonally onto an
// empty square is retried as en passant.
func (p *Player) Execute(m chess.Move) error {
	if side, ok := p.castlingSide(m); ok {
		return p.TryCastle(side)
	}
	err := p.TryMove(m)
	if reason, ok := errors.ReasonOf(err); ok && reason == errors.ReasonUnreachable && p.looksLikeEnPassant(m) {
		return p.TryEnPassant(m)
	}
	return err
}

// looksLikeEnPassant reports whether m is an own pawn stepping one square
// diagonally forward onto an empty square.
func (p *Player) looksLikeEnPassant(m chess.Move) bool {
	piece := p.board.PieceAt(m.From)
	return piece.Is(p.colour, chess.Pawn) &&
		m.RowDelta() == p.colour.Forward() &&
		abs(m.ColDelta()) == 1 &&
		p.board.PieceAt(m.To) == nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
