package equity

import (
	"context"
	"time"

	"github.com/lox/pokerodds/internal/combinatorics"
	"github.com/lox/pokerodds/internal/statistics"
	"github.com/lox/pokerodds/poker"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many boards or trials a worker processes
// between context checks and progress reports.
const cancelCheckInterval = 1024

// Odds enumerates every completion of board and returns, for each hole in
// input order, how often it wins or ties the showdown. A complete board is
// evaluated once.
func (c *Calculator) Odds(ctx context.Context, holes []Hole, board []poker.Card) ([]Result, error) {
	remaining, err := validate(holes, board)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	need := BoardSize - len(board)
	total := combinatorics.Count(len(remaining), need)
	progress := newProgressReporter(c.progress, total)

	parts := make([][]statistics.Tally, completionTasks(len(remaining), need))
	err = c.forEachCompletion(ctx, board, remaining, progress, func(task int) func([]poker.Card) {
		sd := newShowdown(holes)
		parts[task] = sd.tallies
		return sd.play
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("exhaustive odds",
		"holes", len(holes),
		"board", poker.FormatCards(board),
		"boards", total,
		"elapsed", time.Since(start))

	tallies, err := mergeTallies(len(holes), total, parts)
	if err != nil {
		return nil, err
	}
	return buildResults(holes, tallies, false), nil
}

// completionTasks returns how many independent tasks forEachCompletion
// splits the enumeration into.
func completionTasks(remaining, need int) int {
	if need == 0 {
		return 1
	}
	return remaining - need + 1
}

// forEachCompletion enumerates every way of drawing the missing board cards
// from remaining. The work is split into tasks by the first card drawn and
// run on up to c.workers goroutines. newVisitor is called once per task,
// before that task starts, and returns the function receiving each complete
// board; the slice passed to it is reused.
func (c *Calculator) forEachCompletion(
	ctx context.Context,
	board, remaining []poker.Card,
	progress *progressReporter,
	newVisitor func(task int) func(complete []poker.Card),
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	need := BoardSize - len(board)
	if need == 0 {
		newVisitor(0)(board)
		progress.add(1)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for first := 0; first < completionTasks(len(remaining), need); first++ {
		visit := newVisitor(first)
		g.Go(func() error {
			complete := make([]poker.Card, BoardSize)
			copy(complete, board)
			complete[len(board)] = remaining[first]
			rest := remaining[first+1:]
			tail := complete[len(board)+1:]

			var err error
			visited, reported := 0, 0
			combinatorics.ForEach(len(rest), need-1, func(idx []int) bool {
				if visited%cancelCheckInterval == 0 {
					if err = gctx.Err(); err != nil {
						return false
					}
					progress.add(visited - reported)
					reported = visited
				}
				for i, j := range idx {
					tail[i] = rest[j]
				}
				visit(complete)
				visited++
				return true
			})
			if err != nil {
				return err
			}
			progress.add(visited - reported)
			return nil
		})
	}

	return g.Wait()
}
