package equity

import (
	"context"

	"github.com/lox/pokerodds/poker"
)

// Method reports which engine HybridOdds would use: exhaustive when the
// number of board completions is at most the threshold, Monte Carlo
// otherwise.
func (c *Calculator) Method(holes []Hole, board []poker.Card) (Method, error) {
	n, err := BoardCombinations(holes, board)
	if err != nil {
		return "", err
	}
	if n <= c.threshold {
		return MethodExhaustive, nil
	}
	return MethodMonteCarlo, nil
}

// HybridOdds enumerates exhaustively when few completions remain and
// samples otherwise.
func (c *Calculator) HybridOdds(ctx context.Context, holes []Hole, board []poker.Card) ([]Result, error) {
	method, err := c.Method(holes, board)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("hybrid odds", "method", method, "threshold", c.threshold)

	if method == MethodExhaustive {
		return c.Odds(ctx, holes, board)
	}
	return c.MonteCarloOdds(ctx, holes, board)
}
