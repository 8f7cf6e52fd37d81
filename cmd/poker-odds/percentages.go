package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/lox/pokerodds/equity"
	"github.com/lox/pokerodds/internal/tui"
	"github.com/lox/pokerodds/poker"
)

// PercentagesCmd shows the final category distribution for one hole
type PercentagesCmd struct {
	Hole     string `arg:"" help:"Hole cards, e.g. 'AsKs'"`
	Board    string `short:"b" help:"Community board cards, e.g. 'Td7s8h'"`
	Workers  int    `short:"w" help:"Worker goroutines (default from config)"`
	Progress bool   `help:"Draw a progress bar while enumerating"`
}

func (c *PercentagesCmd) Run(ctx context.Context, g *Globals) error {
	hole, err := poker.ParseCardString(c.Hole)
	if err != nil {
		return fmt.Errorf("hole: %w", err)
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}

	opts := g.Config.EquityOptions(g.Logger)
	if c.Workers > 0 {
		opts = append(opts, equity.WithWorkers(c.Workers))
	}

	var dist equity.Distribution
	compute := func(ctx context.Context, progress equity.ProgressFunc) error {
		var err error
		dist, err = equity.New(append(opts, equity.WithProgress(progress))...).Percentages(ctx, hole, board)
		return err
	}
	if c.Progress {
		err = tui.Run(ctx, g.Stderr, "Enumerating boards", g.Color, compute)
	} else {
		err = compute(ctx, nil)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(g.Stdout, "%s %s", tui.HeaderStyle.Render("hole"), formatCards(hole, g.Color))
	if len(board) > 0 {
		fmt.Fprintf(g.Stdout, "  %s %s", tui.HeaderStyle.Render("board"), formatCards(board, g.Color))
	}
	fmt.Fprint(g.Stdout, "\n\n")

	w := tabwriter.NewWriter(g.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, category := range poker.Categories {
		share := dist[category]
		fmt.Fprintf(w, "%s\t%d\t%s\t\n",
			tui.CategoryStyle.Render(category.String()),
			share.Count,
			tui.TieStyle.Render(percent(share.Percentage)))
	}
	_ = w.Flush()

	fmt.Fprintf(g.Stdout, "\n%d boards\n", dist.Total())
	return nil
}
