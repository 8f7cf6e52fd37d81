package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokerodds/internal/tui"
	"github.com/lox/pokerodds/poker"
)

// BestCmd shows the best hand in a set of cards
type BestCmd struct {
	Cards []string `arg:"" help:"Cards to evaluate, e.g. 'AsKs QsJs Ts'"`
}

func (c *BestCmd) Run(g *Globals) error {
	cards, err := parseHand(c.Cards)
	if err != nil {
		return err
	}
	hand, ok := poker.BestHand(cards)
	if !ok {
		return fmt.Errorf("no cards given")
	}

	fmt.Fprintln(g.Stdout, tui.CategoryStyle.Render(hand.Describe()))
	fmt.Fprintf(g.Stdout, "cards    %s\n", formatCards(hand.Cards, g.Color))
	if len(hand.Kickers) > 0 {
		fmt.Fprintf(g.Stdout, "kickers  %s\n", formatCards(hand.Kickers, g.Color))
	}
	return nil
}

// CompareCmd compares the best hands of two holdings on a shared board
type CompareCmd struct {
	First  string `arg:"" help:"First holding, e.g. 'AsAd'"`
	Second string `arg:"" help:"Second holding, e.g. 'KsKd'"`
	Board  string `short:"b" help:"Community board cards shared by both"`
}

func (c *CompareCmd) Run(g *Globals) error {
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	first, err := parseHand([]string{c.First})
	if err != nil {
		return fmt.Errorf("first: %w", err)
	}
	second, err := parseHand([]string{c.Second})
	if err != nil {
		return fmt.Errorf("second: %w", err)
	}
	all := append(append(append([]poker.Card{}, board...), first...), second...)
	if err := poker.AssertUnique(all); err != nil {
		return err
	}

	a, okA := poker.BestHand(append(first, board...))
	b, okB := poker.BestHand(append(second, board...))
	if !okA || !okB {
		return fmt.Errorf("both holdings need at least one card")
	}

	result, explanation := poker.Explain(a, b)
	fmt.Fprintf(g.Stdout, "%s  %s\n", tui.HoleStyle.Render(c.First), a.Describe())
	fmt.Fprintf(g.Stdout, "%s  %s\n\n", tui.HoleStyle.Render(c.Second), b.Describe())
	switch {
	case result > 0:
		fmt.Fprintf(g.Stdout, "%s wins: %s\n", tui.WinStyle.Render(c.First), explanation)
	case result < 0:
		fmt.Fprintf(g.Stdout, "%s wins: %s\n", tui.WinStyle.Render(c.Second), explanation)
	default:
		fmt.Fprintln(g.Stdout, tui.TieStyle.Render(explanation))
	}
	return nil
}

func parseHand(args []string) ([]poker.Card, error) {
	cards, err := poker.ParseCardString(strings.Join(args, ""))
	if err != nil {
		return nil, err
	}
	if err := poker.AssertUnique(cards); err != nil {
		return nil, err
	}
	return cards, nil
}
