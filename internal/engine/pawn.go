package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// enPassantRow is the row a pawn of this colour must stand on to capture
// en passant: three rows short of the far edge for White, row 4 for Black.
func (p *Player) enPassantRow() int {
	if p.colour == chess.White {
		return p.board.Height() - 3
	}
	return 4
}

// checkEnPassant validates m as an en passant capture without changing
// the board. It returns the capturing and captured pawns.
func (p *Player) checkEnPassant(m chess.Move) (pawn, victim *chess.Piece, err error) {
	pawn, err = p.selectPiece(m)
	if err != nil {
		return nil, nil, err
	}
	if pawn.Kind() != chess.Pawn {
		return nil, nil, errors.NewRuleError(errors.ReasonEnPassantNotPawn, m.String())
	}
	if m.From.Row != p.enPassantRow() {
		return nil, nil, errors.NewRuleError(errors.ReasonEnPassantRank, m.String())
	}
	if m.RowDelta() != p.colour.Forward() || abs(m.ColDelta()) != 1 || p.board.PieceAt(m.To) != nil {
		return nil, nil, errors.NewRuleError(errors.ReasonEnPassantDestination, m.String())
	}

	// The victim sits beside the pawn, on the destination's column.
	victimSq := chess.Sq(m.From.Row, m.To.Col)
	victim = p.board.PieceAt(victimSq)
	enemy := p.colour.Opposite()
	if !victim.Is(enemy, chess.Pawn) {
		return nil, nil, errors.NewRuleError(errors.ReasonEnPassantNoPawn, m.String())
	}

	last, ok := p.board.LastMove()
	doubleStep := chess.Move{From: victimSq.Offset(-2*enemy.Forward(), 0), To: victimSq}
	if !ok || last != doubleStep {
		return nil, nil, errors.NewRuleError(errors.ReasonEnPassantStatus, m.String())
	}

	if !p.leavesKingSafe(pawn, m.To, victim) {
		return nil, nil, errors.NewRuleError(errors.ReasonSelfCheck, m.String())
	}
	return pawn, victim, nil
}

// TryEnPassant captures an enemy pawn that has just advanced two rows past
// the capturing pawn, moving diagonally onto the square it skipped.
func (p *Player) TryEnPassant(m chess.Move) error {
	pawn, victim, err := p.checkEnPassant(m)
	if err != nil {
		return err
	}

	e := p.board.Begin()
	defer e.Rollback()
	e.Remove(victim)
	e.Relocate(pawn, m.To)
	e.Advance(pawn)
	e.Log(m)
	e.Commit()
	return nil
}

// enPassantCandidates lists both diagonal-forward moves of every own pawn.
func (p *Player) enPassantCandidates() []chess.Move {
	var moves []chess.Move
	for _, piece := range p.board.TeamPieces(p.colour) {
		if piece.Kind() != chess.Pawn {
			continue
		}
		for _, dc := range []int{-1, 1} {
			moves = append(moves, chess.Move{
				From: piece.Square(),
				To:   piece.Square().Offset(p.colour.Forward(), dc),
			})
		}
	}
	return moves
}
