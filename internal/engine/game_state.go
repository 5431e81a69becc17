package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Outcome is the state of a game from the point of view of the side to move.
type Outcome int

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Stalemate
)

// String returns the announcement for a finished game, or "" while it goes on.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins!"
	case BlackWins:
		return "Black wins!"
	case Stalemate:
		return "Stalemate!"
	}
	return ""
}

// Over reports whether the game has finished.
func (o Outcome) Over() bool {
	return o != Ongoing
}

// Status returns a short machine-readable name: "active", "checkmate" or "stalemate".
func (o Outcome) Status() string {
	switch o {
	case WhiteWins, BlackWins:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "active"
}

// Winner returns the outcome in which colour has checkmated its opponent.
func Winner(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// OutcomeFor classifies the position with toMove to play.
func OutcomeFor(board *chess.Board, toMove chess.Colour) Outcome {
	p := NewPlayer(toMove, board, nil)
	switch {
	case p.IsCheckmate():
		return Winner(toMove.Opposite())
	case p.IsStalemate():
		return Stalemate
	}
	return Ongoing
}
