package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/pokerodds/equity"
	"github.com/lox/pokerodds/internal/tui"
	"github.com/lox/pokerodds/poker"
)

func parseHoles(args []string) ([]equity.Hole, error) {
	holes := make([]equity.Hole, 0, len(args))
	for i, arg := range args {
		hole, err := poker.ParseCardString(arg)
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", i+1, err)
		}
		if len(hole) != 2 {
			return nil, fmt.Errorf("hole %d: must contain exactly 2 cards, got %d", i+1, len(hole))
		}
		holes = append(holes, hole)
	}
	return holes, nil
}

func parseBoard(s string) ([]poker.Card, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	board, err := poker.ParseCardString(s)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if len(board) > equity.BoardSize {
		return nil, fmt.Errorf("board cannot have more than %d cards, got %d", equity.BoardSize, len(board))
	}
	return board, nil
}

// formatCards renders cards with suit symbols, red suits highlighted
func formatCards(cards []poker.Card, color bool) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		if !color {
			parts[i] = card.String()
			continue
		}
		style := tui.BlackCardStyle
		if card.Suit.IsRed() {
			style = tui.RedCardStyle
		}
		parts[i] = style.Render(card.Pretty())
	}
	return strings.Join(parts, " ")
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

func elapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.Truncate(time.Microsecond).String()
	}
	return d.Truncate(time.Millisecond).String()
}
