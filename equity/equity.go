// Package equity computes how often each of a set of hole card holdings
// wins or ties a Texas Hold'em showdown, given the board cards already
// revealed. Three engines are provided: exhaustive enumeration of every
// board completion, Monte Carlo sampling, and a hybrid that picks between
// them by counting completions.
package equity

import (
	"errors"
	"fmt"

	"github.com/lox/pokerodds/internal/statistics"
	"github.com/lox/pokerodds/poker"
)

// BoardSize is the number of community cards at showdown
const BoardSize = 5

var (
	// ErrNoHoles is returned when odds are requested without any holes
	ErrNoHoles = errors.New("cannot calculate odds without any holes")
	// ErrBoardTooLarge is returned when more than five board cards are given
	ErrBoardTooLarge = errors.New("board has more than five cards")
	// ErrDeckExhausted is returned when too few cards remain to complete the board
	ErrDeckExhausted = errors.New("not enough cards left to complete the board")
	// ErrInvalidSampleSize is returned for a non-positive Monte Carlo sample size
	ErrInvalidSampleSize = errors.New("sample size must be positive")
)

// Hole is the private cards held by one player
type Hole = []poker.Card

// Result is the outcome of an odds calculation for one hole. Wins counts
// completions the hole won outright; Ties counts completions where it
// shared the best hand with at least one other hole.
type Result struct {
	Hole      Hole    `json:"hole"`
	Wins      int     `json:"wins"`
	Ties      int     `json:"ties"`
	WinChance float64 `json:"winChance"`
	TieChance float64 `json:"tieChance"`
	// WinChanceError and TieChanceError are 95% margins of error, set
	// only when Sampled is true.
	WinChanceError float64 `json:"winChanceError,omitempty"`
	TieChanceError float64 `json:"tieChanceError,omitempty"`
	// Sampled is true when the result comes from Monte Carlo sampling
	Sampled bool `json:"sampled"`
}

// validate checks holes and board describe a possible deal and returns the
// cards left in the deck, in deck order.
func validate(holes []Hole, board []poker.Card) ([]poker.Card, error) {
	if len(holes) == 0 {
		return nil, ErrNoHoles
	}
	if len(board) > BoardSize {
		return nil, fmt.Errorf("%w: got %d", ErrBoardTooLarge, len(board))
	}

	known := make([]poker.Card, 0, len(board)+2*len(holes))
	known = append(known, board...)
	for _, hole := range holes {
		known = append(known, hole...)
	}
	if err := poker.AssertUnique(known); err != nil {
		return nil, err
	}

	remaining := poker.RemainingDeck(known)
	if need := BoardSize - len(board); len(remaining) < need {
		return nil, fmt.Errorf("%w: need %d, %d left", ErrDeckExhausted, need, len(remaining))
	}
	return remaining, nil
}

// showdown evaluates every hole against complete boards, reusing its
// buffers between boards.
type showdown struct {
	holes   []Hole
	cards   []poker.Card
	hands   []poker.Hand
	tallies []statistics.Tally
}

func newShowdown(holes []Hole) *showdown {
	longest := 0
	for _, hole := range holes {
		longest = max(longest, len(hole))
	}
	return &showdown{
		holes:   holes,
		cards:   make([]poker.Card, 0, BoardSize+longest),
		hands:   make([]poker.Hand, len(holes)),
		tallies: make([]statistics.Tally, len(holes)),
	}
}

// play evaluates one complete board and records one outcome per hole. A
// single best hand wins; when several holes share the best value each of
// them records a tie.
func (s *showdown) play(board []poker.Card) {
	best := 0
	for i, hole := range s.holes {
		s.cards = append(append(s.cards[:0], board...), hole...)
		s.hands[i], _ = poker.BestHand(s.cards)
		if i > 0 && poker.IsBetterThan(s.hands[i], s.hands[best]) {
			best = i
		}
	}

	winners := 0
	for i := range s.hands {
		if poker.HasEqualValue(s.hands[best], s.hands[i]) {
			winners++
		}
	}

	for i := range s.hands {
		switch {
		case !poker.HasEqualValue(s.hands[best], s.hands[i]):
			s.tallies[i].Record(statistics.Loss)
		case winners == 1:
			s.tallies[i].Record(statistics.Win)
		default:
			s.tallies[i].Record(statistics.Tie)
		}
	}
}

// mergeTallies sums per-worker tallies hole by hole. Every hole must have
// seen exactly trials showdowns.
func mergeTallies(holes, trials int, parts [][]statistics.Tally) ([]statistics.Tally, error) {
	total := make([]statistics.Tally, holes)
	for _, part := range parts {
		for i := range part {
			total[i].Merge(part[i])
		}
	}
	for i, t := range total {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("hole %d: %w", i, err)
		}
		if t.Trials != trials {
			return nil, fmt.Errorf("hole %d played %d showdowns, expected %d", i, t.Trials, trials)
		}
	}
	return total, nil
}

func buildResults(holes []Hole, tallies []statistics.Tally, sampled bool) []Result {
	results := make([]Result, len(holes))
	for i, hole := range holes {
		t := tallies[i]
		results[i] = Result{
			Hole:      hole,
			Wins:      t.Wins,
			Ties:      t.Ties,
			WinChance: t.WinRate(),
			TieChance: t.TieRate(),
			Sampled:   sampled,
		}
		if sampled {
			results[i].WinChanceError = statistics.Margin95(results[i].WinChance, t.Trials)
			results[i].TieChanceError = statistics.Margin95(results[i].TieChance, t.Trials)
		}
	}
	return results
}
