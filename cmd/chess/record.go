package main

import (
	"context"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// recorder writes the position after every move of a game.
type recorder struct {
	id string
	w  output.StateWriter
	c  io.Closer
}

func newRecorder(w output.StateWriter, c io.Closer) *recorder {
	return &recorder{w: w, c: c}
}

// wrap returns an actor that records the board after each of a's moves.
func (r *recorder) wrap(a game.Actor, board *chess.Board) game.Actor {
	return &recordingActor{Actor: a, rec: r, board: board}
}

// Close flushes the writer and closes the underlying file.
func (r *recorder) Close() error {
	err := r.w.Close()
	if r.c != nil {
		if cerr := r.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

type recordingActor struct {
	game.Actor
	rec   *recorder
	board *chess.Board
}

func (a *recordingActor) MakeOneMove(ctx context.Context) error {
	if err := a.Actor.MakeOneMove(ctx); err != nil {
		return err
	}
	return a.rec.w.WriteState(a.rec.id, a.board, a.Colour().Opposite())
}
