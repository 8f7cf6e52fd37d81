package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerodds/equity"
	"github.com/lox/pokerodds/internal/fileutil"
	"github.com/lox/pokerodds/internal/tui"
	"github.com/lox/pokerodds/poker"
)

// OddsCmd calculates win and tie odds for a set of holes
type OddsCmd struct {
	Holes         []string `arg:"" help:"Hole cards for each player, e.g. 'AcKd QhJs'"`
	Board         string   `short:"b" help:"Community board cards, e.g. 'Td7s8h'"`
	Method        string   `short:"m" default:"hybrid" help:"Odds engine: exhaustive (exact), monte-carlo (mc) or hybrid"`
	Samples       int      `short:"n" help:"Monte Carlo sample size (default from config)"`
	Threshold     int      `short:"t" help:"Largest board count the hybrid engine enumerates (default from config)"`
	Seed          *int64   `help:"Random seed for reproducible results"`
	Workers       int      `short:"w" help:"Worker goroutines (default from config)"`
	Possibilities bool     `short:"p" help:"Show how often each hole ends in each hand category"`
	Progress      bool     `help:"Draw a progress bar while calculating"`
	Output        string   `short:"o" type:"path" help:"Also write the results to this JSON file"`
}

// oddsReport is the JSON written by --output
type oddsReport struct {
	Method        equity.Method         `json:"method"`
	Board         []poker.Card          `json:"board"`
	Results       []equity.Result       `json:"results"`
	Possibilities []equity.Distribution `json:"possibilities,omitempty"`
	ElapsedMs     int64                 `json:"elapsedMs"`
}

func (c *OddsCmd) options(g *Globals) []equity.Option {
	opts := g.Config.EquityOptions(g.Logger)
	if c.Samples > 0 {
		opts = append(opts, equity.WithSampleSize(c.Samples))
	}
	if c.Threshold > 0 {
		opts = append(opts, equity.WithThreshold(c.Threshold))
	}
	if c.Workers > 0 {
		opts = append(opts, equity.WithWorkers(c.Workers))
	}
	if c.Seed != nil {
		opts = append(opts, equity.WithSeed(*c.Seed))
	}
	return opts
}

func (c *OddsCmd) Run(ctx context.Context, g *Globals) error {
	holes, err := parseHoles(c.Holes)
	if err != nil {
		return err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	method, err := equity.ParseMethod(c.Method)
	if err != nil {
		return err
	}

	opts := c.options(g)
	calc := equity.New(opts...)
	if method == equity.MethodHybrid {
		if method, err = calc.Method(holes, board); err != nil {
			return err
		}
	}
	g.Logger.Debug("Calculating odds", "method", method, "holes", len(holes), "board", poker.FormatCards(board))

	var results []equity.Result
	compute := func(ctx context.Context, progress equity.ProgressFunc) error {
		calc := equity.New(append(opts, equity.WithProgress(progress))...)
		var err error
		results, err = calc.Run(ctx, method, holes, board)
		return err
	}

	start := time.Now()
	if c.Progress {
		err = tui.Run(ctx, g.Stderr, "Calculating "+string(method), g.Color, compute)
	} else {
		err = compute(ctx, nil)
	}
	if err != nil {
		return err
	}
	duration := time.Since(start)

	var dists []equity.Distribution
	if c.Possibilities {
		for _, hole := range holes {
			dist, err := calc.Percentages(ctx, hole, board)
			if err != nil {
				return err
			}
			dists = append(dists, dist)
		}
	}

	c.display(g, board, results, dists)

	if c.Output != "" {
		if board == nil {
			board = []poker.Card{}
		}
		err := fileutil.WriteJSON(c.Output, oddsReport{
			Method:        method,
			Board:         board,
			Results:       results,
			Possibilities: dists,
			ElapsedMs:     duration.Milliseconds(),
		})
		if err != nil {
			return err
		}
		g.Logger.Debug("Wrote results", "file", c.Output)
	}

	switch method {
	case equity.MethodMonteCarlo:
		fmt.Fprintf(g.Stdout, "\n%d samples in %s\n", calc.SampleSize(), elapsed(duration))
	default:
		boards, err := equity.BoardCombinations(holes, board)
		if err != nil {
			return err
		}
		fmt.Fprintf(g.Stdout, "\n%d boards enumerated in %s\n", boards, elapsed(duration))
	}
	return nil
}

func (c *OddsCmd) display(g *Globals, board []poker.Card, results []equity.Result, dists []equity.Distribution) {
	if len(board) > 0 {
		fmt.Fprintf(g.Stdout, "%s\n", tui.HeaderStyle.Render("board"))
		fmt.Fprintf(g.Stdout, "%s\n\n", formatCards(board, g.Color))
	}

	sampled := len(results) > 0 && results[0].Sampled

	w := tabwriter.NewWriter(g.Stdout, 0, 0, 2, ' ', 0)
	header := []string{"hand", "class", "win", "tie"}
	if sampled {
		header = append(header, "±")
	}
	for i, h := range header {
		header[i] = tui.HeaderStyle.Render(h)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, r := range results {
		row := []string{
			tui.HoleStyle.Render(formatCards(r.Hole, g.Color)),
			tui.CategoryStyle.Render(string(poker.ClassifyHole(r.Hole))),
			tui.WinStyle.Render(percent(r.WinChance)),
			tui.TieStyle.Render(percent(r.TieChance)),
		}
		if sampled {
			row = append(row, tui.InfoStyle.Render(percent(r.WinChanceError)))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()

	if len(dists) > 0 {
		fmt.Fprintln(g.Stdout)
		displayPossibilities(g, results, dists)
	}
}

func displayPossibilities(g *Globals, results []equity.Result, dists []equity.Distribution) {
	w := tabwriter.NewWriter(g.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, tui.CategoryStyle.Render("hand"))
	for _, r := range results {
		fmt.Fprintf(w, "\t%s", tui.HoleStyle.Render(formatCards(r.Hole, g.Color)))
	}
	fmt.Fprintln(w)

	for _, category := range poker.Categories {
		seen := false
		for _, dist := range dists {
			if dist[category].Count > 0 {
				seen = true
			}
		}
		if !seen {
			continue
		}

		fmt.Fprint(w, tui.CategoryStyle.Render(category.String()))
		for _, dist := range dists {
			share := dist[category]
			if share.Count == 0 {
				fmt.Fprintf(w, "\t%s", tui.InfoStyle.Render("."))
				continue
			}
			fmt.Fprintf(w, "\t%s", tui.TieStyle.Render(percent(share.Percentage)))
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}
