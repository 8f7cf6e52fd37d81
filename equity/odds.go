package equity

import (
	"context"

	"github.com/lox/pokerodds/poker"
)

// Odds enumerates every board completion with a default Calculator.
func Odds(holes []Hole, board ...poker.Card) ([]Result, error) {
	return New().Odds(context.Background(), holes, board)
}

// MonteCarloOdds samples sampleSize random board completions with a
// default Calculator.
func MonteCarloOdds(holes []Hole, board []poker.Card, sampleSize int) ([]Result, error) {
	return New(WithSampleSize(sampleSize)).MonteCarloOdds(context.Background(), holes, board)
}

// HybridOdds picks exhaustive enumeration when the number of completions
// is at most threshold and Monte Carlo sampling otherwise.
func HybridOdds(holes []Hole, board []poker.Card, sampleSize, threshold int) ([]Result, error) {
	c := New(WithSampleSize(sampleSize), WithThreshold(threshold))
	return c.HybridOdds(context.Background(), holes, board)
}

// Percentages returns the distribution of final hand categories for hole
// over every completion of board.
func Percentages(hole Hole, board ...poker.Card) (Distribution, error) {
	return New().Percentages(context.Background(), hole, board)
}
