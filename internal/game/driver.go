// Package game runs a game between two actors sharing one board.
package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Actor is one side of a game. It makes exactly one legal move per call
// and can tell whether it has been checkmated or stalemated.
type Actor interface {
	Colour() chess.Colour
	MakeOneMove(ctx context.Context) error
	IsCheckmate() bool
	IsStalemate() bool
}

// Driver alternates two actors, white first, until one of them can no
// longer move.
type Driver struct {
	ID     string
	cfg    *config.Config
	actors [2]Actor
}

// NewDriver creates a driver with a fresh game id.
func NewDriver(cfg *config.Config, white, black Actor) *Driver {
	return &Driver{
		ID:     uuid.New().String(),
		cfg:    cfg,
		actors: [2]Actor{white, black},
	}
}

// Play runs the game to its end and announces the outcome on the output
// stream. Cancelling ctx stops the game between turns.
func (d *Driver) Play(ctx context.Context) (engine.Outcome, error) {
	d.cfg.Logf(config.Events, "game %s started", d.ID)

	var outcome engine.Outcome
	for ply := 0; ; ply++ {
		current := d.actors[ply%2]
		if current.IsCheckmate() {
			outcome = engine.Winner(current.Colour().Opposite())
			break
		}
		if current.IsStalemate() {
			outcome = engine.Stalemate
			break
		}
		if err := ctx.Err(); err != nil {
			d.cfg.Logf(config.Events, "game %s abandoned after %d plies", d.ID, ply)
			return engine.Ongoing, err
		}
		if err := current.MakeOneMove(ctx); err != nil {
			return engine.Ongoing, &errors.GameError{Err: err, GameID: d.ID, PlyNum: ply + 1}
		}
	}

	if _, err := fmt.Fprintf(d.cfg.OutputFile, "%s\n", outcome); err != nil {
		return outcome, errors.Wrap(err, "announcing outcome")
	}
	d.cfg.Logf(config.Events, "game %s finished: %s", d.ID, outcome)
	return outcome, nil
}
