package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Edit is a scoped mutation of a Board. Every change made through it is
// recorded so that Rollback restores the board exactly. Edits nest: an inner
// edit must be finished before the outer one continues.
//
// A primitive that fails inside an edit means the board no longer matches
// what the caller just observed; that is an internal fault and panics.
type Edit struct {
	board *Board
	undo  []func()
}

// Begin opens an edit on b.
func (b *Board) Begin() *Edit {
	return &Edit{board: b}
}

// Simulate runs fn inside an edit and always rolls it back, including when
// fn panics. It returns fn's result.
func (b *Board) Simulate(fn func(e *Edit) bool) bool {
	e := b.Begin()
	defer e.Rollback()
	return fn(e)
}

// Remove takes p off the board.
func (e *Edit) Remove(p *Piece) {
	if !e.board.TryRemovePiece(p) {
		panic(fmt.Errorf("failed to remove %v from board: %w", p, errors.ErrCorruptBoard))
	}
	e.undo = append(e.undo, func() {
		if !e.board.TryAddPiece(p) {
			panic(fmt.Errorf("failed to restore %v to board: %w", p, errors.ErrCorruptBoard))
		}
	})
}

// Add puts p on the board at its square.
func (e *Edit) Add(p *Piece) {
	if !e.board.TryAddPiece(p) {
		panic(fmt.Errorf("failed to add %v to board: %w", p, errors.ErrCorruptBoard))
	}
	e.undo = append(e.undo, func() {
		if !e.board.TryRemovePiece(p) {
			panic(fmt.Errorf("failed to take back %v: %w", p, errors.ErrCorruptBoard))
		}
	})
}

// Relocate moves p to the empty square to.
func (e *Edit) Relocate(p *Piece, to Square) {
	from := p.square
	if !e.board.tryRelocate(p, to) {
		panic(fmt.Errorf("failed to move %v to %s: %w", p, to, errors.ErrCorruptBoard))
	}
	e.undo = append(e.undo, func() {
		if !e.board.tryRelocate(p, from) {
			panic(fmt.Errorf("failed to return %v to %s: %w", p, from, errors.ErrCorruptBoard))
		}
	})
}

// Advance increments p's move counter.
func (e *Edit) Advance(p *Piece) {
	p.moves++
	e.undo = append(e.undo, func() { p.moves-- })
}

// Log appends m to the board's move log.
func (e *Edit) Log(m Move) {
	n := len(e.board.moveLog)
	e.board.AppendMove(m)
	e.undo = append(e.undo, func() { e.board.moveLog = e.board.moveLog[:n] })
}

// Commit keeps every change made so far. A later Rollback is a no-op.
func (e *Edit) Commit() {
	e.undo = nil
}

// Rollback undoes every uncommitted change in reverse order.
func (e *Edit) Rollback() {
	for i := len(e.undo) - 1; i >= 0; i-- {
		e.undo[i]()
	}
	e.undo = nil
}
