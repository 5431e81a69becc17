package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONGame represents the state of a game in JSON format.
type JSONGame struct {
	ID         string      `json:"id,omitempty"`
	Turn       string      `json:"turn"` // "white" or "black"
	Status     string      `json:"status"`
	Result     string      `json:"result,omitempty"`
	Check      bool        `json:"check"`
	Board      string      `json:"board"`
	Pieces     []JSONPiece `json:"pieces"`
	Moves      []string    `json:"moves"`
	LastMove   string      `json:"lastMove,omitempty"`
	LegalMoves []string    `json:"legalMoves,omitempty"`
}

// JSONPiece represents one piece on the board.
type JSONPiece struct {
	Square string `json:"square"`
	Colour string `json:"colour"`
	Kind   string `json:"kind"`
	Letter string `json:"letter"`
	Moved  bool   `json:"moved,omitempty"`
}

var plainView = &BoardView{coordinates: true}

// GameToJSON converts a board with turn to move into a JSONGame.
// Legal moves are only listed while the game is still going.
func GameToJSON(id string, board *chess.Board, turn chess.Colour) *JSONGame {
	outcome := engine.OutcomeFor(board, turn)
	g := &JSONGame{
		ID:     id,
		Turn:   colourName(turn),
		Status: outcome.Status(),
		Result: outcome.String(),
		Check:  engine.IsInCheck(board, turn),
		Board:  plainView.Render(board),
		Pieces: make([]JSONPiece, 0, 32),
		Moves:  moveStrings(board.Moves()),
	}

	for _, p := range board.Pieces() {
		g.Pieces = append(g.Pieces, JSONPiece{
			Square: p.Square().String(),
			Colour: colourName(p.Colour()),
			Kind:   strings.ToLower(p.Kind().String()),
			Letter: string(p.Letter()),
			Moved:  p.MoveCount() > 0,
		})
	}

	if last, ok := board.LastMove(); ok {
		g.LastMove = last.String()
	}
	if !outcome.Over() {
		g.LegalMoves = moveStrings(engine.NewPlayer(turn, board, nil).LegalMoves())
	}
	return g
}

// OutputGameJSON writes a single game state as indented JSON.
func OutputGameJSON(w io.Writer, g *JSONGame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
