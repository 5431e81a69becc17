package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked by any
// enemy piece. It panics if colour does not have exactly one king.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	for _, p := range board.TeamPieces(colour.Opposite()) {
		if p.CoveredSquares(board).Contains(king.Square()) {
			return true
		}
	}
	return false
}

// IsUnderCheck reports whether the player's own king is attacked.
func (p *Player) IsUnderCheck() bool {
	return IsInCheck(p.board, p.colour)
}

// IsCheckmate reports whether the player is in check, its king cannot
// step anywhere and no other move resolves the check.
func (p *Player) IsCheckmate() bool {
	if !p.IsUnderCheck() {
		return false
	}
	king := p.board.King(p.colour)
	return len(king.CandidateMoves(p.board)) == 0 && !p.HasAnyLegalMove()
}

// IsStalemate reports whether the player is not in check but has no legal move.
func (p *Player) IsStalemate() bool {
	return !p.IsUnderCheck() && !p.HasAnyLegalMove()
}
