package engine

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasAnyLegalMove returns true if some own piece has a candidate move that
// does not leave the king in check, or some pawn can capture en passant.
func (p *Player) HasAnyLegalMove() bool {
	for _, piece := range p.board.TeamPieces(p.colour) {
		for to := range piece.CandidateMoves(p.board) {
			if p.leavesKingSafe(piece, to, p.board.PieceAt(to)) {
				return true
			}
		}
	}
	for _, m := range p.enPassantCandidates() {
		if _, _, err := p.checkEnPassant(m); err == nil {
			return true
		}
	}
	return false
}

// LegalMoves lists every move the player could make now, including
// castling and en passant, ordered by source then destination square.
// A promotion appears once; the piece is chosen when the move is made.
func (p *Player) LegalMoves() []chess.Move {
	var moves []chess.Move
	for _, piece := range p.board.TeamPieces(p.colour) {
		for _, to := range piece.CandidateMoves(p.board).Slice() {
			if p.leavesKingSafe(piece, to, p.board.PieceAt(to)) {
				moves = append(moves, chess.Move{From: piece.Square(), To: to})
			}
		}
	}
	for _, m := range p.enPassantCandidates() {
		if _, _, err := p.checkEnPassant(m); err == nil {
			moves = append(moves, m)
		}
	}
	for _, side := range []Side{QueenSide, KingSide} {
		if _, _, err := p.checkCastle(side); err == nil {
			moves = append(moves, p.CastleMove(side))
		}
	}

	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return moves[i].From.Less(moves[j].From)
		}
		return moves[i].To.Less(moves[j].To)
	})
	return moves
}
