package equity

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"time"

	"github.com/lox/pokerodds/internal/statistics"
	"github.com/lox/pokerodds/poker"
	"golang.org/x/sync/errgroup"
)

// MonteCarloOdds estimates odds by completing the board with uniformly
// random cards SampleSize times. Results carry 95% margins of error.
func (c *Calculator) MonteCarloOdds(ctx context.Context, holes []Hole, board []poker.Card) ([]Result, error) {
	if c.sampleSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, c.sampleSize)
	}
	remaining, err := validate(holes, board)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	need := BoardSize - len(board)
	workers := min(c.workers, c.sampleSize)
	rngs := c.splitRand(workers)
	progress := newProgressReporter(c.progress, c.sampleSize)

	// Divide samples among workers
	perWorker := c.sampleSize / workers
	remainder := c.sampleSize % workers

	parts := make([][]statistics.Tally, workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		g.Go(func() error {
			tallies, err := sampleBoards(gctx, holes, board, remaining, need, trials, rngs[w], progress)
			if err != nil {
				return err
			}
			parts[w] = tallies
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug("monte carlo odds",
		"holes", len(holes),
		"board", poker.FormatCards(board),
		"samples", c.sampleSize,
		"workers", workers,
		"elapsed", time.Since(start))

	tallies, err := mergeTallies(len(holes), c.sampleSize, parts)
	if err != nil {
		return nil, err
	}
	return buildResults(holes, tallies, true), nil
}

// sampleBoards plays trials showdowns on randomly completed boards.
func sampleBoards(
	ctx context.Context,
	holes []Hole,
	board, remaining []poker.Card,
	need, trials int,
	rng *rand.Rand,
	progress *progressReporter,
) ([]statistics.Tally, error) {
	deck := slices.Clone(remaining)
	complete := make([]poker.Card, BoardSize)
	copy(complete, board)
	sd := newShowdown(holes)

	reported := 0
	for i := 0; i < trials; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			progress.add(i - reported)
			reported = i
		}
		draw(deck, need, rng)
		copy(complete[len(board):], deck[:need])
		sd.play(complete)
	}
	progress.add(trials - reported)
	return sd.tallies, nil
}

// draw moves a uniformly random selection of n cards to the front of deck
// with a partial Fisher-Yates shuffle.
func draw(deck []poker.Card, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(deck)-i)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
