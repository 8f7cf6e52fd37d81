package equity

import (
	"context"
	"time"

	"github.com/lox/pokerodds/internal/combinatorics"
	"github.com/lox/pokerodds/poker"
)

// Share is how often one category was the final hand
type Share struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Distribution maps every hand category to its share of board completions.
// Categories encode as camelCase keys ("fullHouse") in JSON.
type Distribution map[poker.Category]Share

// Total returns the number of completions counted
func (d Distribution) Total() int {
	total := 0
	for _, share := range d {
		total += share.Count
	}
	return total
}

// Percentages enumerates every completion of board and counts which
// category the hole's best hand falls into. Every category is present in
// the result, most with a zero count.
func (c *Calculator) Percentages(ctx context.Context, hole Hole, board []poker.Card) (Distribution, error) {
	remaining, err := validate([]Hole{hole}, board)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	need := BoardSize - len(board)
	total := combinatorics.Count(len(remaining), need)
	progress := newProgressReporter(c.progress, total)

	parts := make([][poker.RoyalFlush + 1]int, completionTasks(len(remaining), need))
	err = c.forEachCompletion(ctx, board, remaining, progress, func(task int) func([]poker.Card) {
		cards := make([]poker.Card, 0, BoardSize+len(hole))
		counts := &parts[task]
		return func(complete []poker.Card) {
			cards = append(append(cards[:0], complete...), hole...)
			hand, _ := poker.BestHand(cards)
			counts[hand.Category]++
		}
	})
	if err != nil {
		return nil, err
	}

	dist := make(Distribution, len(poker.Categories))
	for _, category := range poker.Categories {
		count := 0
		for i := range parts {
			count += parts[i][category]
		}
		dist[category] = Share{
			Count:      count,
			Percentage: float64(count) / float64(total),
		}
	}

	c.logger.Debug("percentages",
		"hole", poker.FormatCards(hole),
		"board", poker.FormatCards(board),
		"boards", total,
		"elapsed", time.Since(start))

	return dist, nil
}
