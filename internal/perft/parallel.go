package perft

import (
	"context"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Options configures a parallel run.
type Options struct {
	Workers int
	// Table, when set, is shared by all workers to memoise subtrees.
	Table *hashing.ThreadSafePerftTable
}

// ParallelDivide splits the tree at the root: each root move becomes a job
// on a worker pool, searched on its own clone of g. g itself is not touched.
// Cancelling ctx stops queuing and running jobs and returns ctx.Err().
func ParallelDivide(ctx context.Context, g *engine.Game, depth int, opts Options) (*Report, error) {
	if depth < 1 {
		return &Report{Depth: depth, Nodes: 1, Moves: map[string]uint64{}}, nil
	}

	moves := g.Moves()
	pool := worker.NewPool(subtreeJob(opts.Table),
		worker.WithWorkers(opts.Workers),
		worker.WithBufferSize(len(moves)+1),
	)
	pool.Start()
	for i, m := range moves {
		if ctx.Err() != nil {
			break
		}
		pool.Submit(worker.Job{Game: g.Clone(), Move: m, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	report := &Report{Depth: depth, Moves: make(map[string]uint64, len(moves))}
	var firstErr error
	for {
		select {
		case <-ctx.Done():
			pool.Stop()
			for range pool.Results() {
			}
			return nil, ctx.Err()
		case res, ok := <-pool.Results():
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return report, firstErr
			}
			if res.Error != nil {
				if firstErr == nil {
					firstErr = res.Error
				}
				continue
			}
			report.Moves[res.Move.String()] = res.Nodes
			report.Nodes += res.Nodes
		}
	}
}

// subtreeJob plays the job's root move on its private game and counts below it.
func subtreeJob(table *hashing.ThreadSafePerftTable) worker.JobFunc {
	return func(job worker.Job) worker.Result {
		res := worker.Result{Move: job.Move, Index: job.Index}
		if err := job.Game.Push(job.Move); err != nil {
			res.Error = fmt.Errorf("root move %s: %w", job.Move, err)
			return res
		}
		res.Nodes = count(job.Game, job.Depth, table)
		return res
	}
}
