package worker

import (
	"context"
	"runtime"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PerftItem counts the positions depth plies below the position after the
// item's move. It is the ProcessFunc used by Divide.
func PerftItem(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Move: item.Move, Promotion: item.Promotion}
	child, err := engine.PlayOn(item.Board, item.Turn, item.Move, item.Promotion)
	if err != nil {
		result.Error = err
		return result
	}
	result.Nodes, result.Error = engine.Perft(child, item.Turn.Opposite(), item.Depth)
	return result
}

// Divide runs perft to depth split by root move, one work item per legal
// move (and per promotion piece). Results come back in move order with
// their total. workers <= 0 means one per CPU. A cancelled ctx returns
// ctx.Err().
func Divide(ctx context.Context, board *chess.Board, turn chess.Colour, depth, workers int) ([]ProcessResult, uint64, error) {
	if depth < 1 {
		return nil, 0, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var items []WorkItem
	for _, m := range engine.NewPlayer(turn, board, nil).LegalMoves() {
		for _, kind := range engine.PromotionKinds(board, m) {
			items = append(items, WorkItem{
				Board:     board.Clone(),
				Turn:      turn,
				Move:      m,
				Promotion: kind,
				Depth:     depth - 1,
				Index:     len(items),
			})
		}
	}

	pool := NewPool(PerftItem, WithWorkers(workers), WithBufferSize(len(items)+1))
	pool.Start(ctx)
	for _, item := range items {
		pool.Submit(item)
	}
	go pool.Close()

	results := make([]ProcessResult, 0, len(items))
	var total uint64
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
			pool.Stop()
		}
		total += r.Nodes
		results = append(results, r)
	}
	if firstErr != nil {
		return nil, 0, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, total, nil
}
