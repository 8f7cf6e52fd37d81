// Package statistics accumulates win and tie counts over repeated showdowns
// and derives proportions with normal-approximation error margins.
package statistics

import (
	"fmt"
	"math"
)

// z95 is the two-sided 95% quantile of the standard normal distribution.
const z95 = 1.96

// Outcome is the result of one showdown for one hole
type Outcome uint8

const (
	Loss Outcome = iota
	Win
	Tie
)

// Tally tracks the outcomes for one hole across trials
type Tally struct {
	Trials int
	Wins   int
	Ties   int
}

// Record adds a single showdown outcome
func (t *Tally) Record(o Outcome) {
	t.Trials++
	switch o {
	case Win:
		t.Wins++
	case Tie:
		t.Ties++
	}
}

// Merge adds the counts of other into t
func (t *Tally) Merge(other Tally) {
	t.Trials += other.Trials
	t.Wins += other.Wins
	t.Ties += other.Ties
}

// WinRate returns the fraction of trials won outright
func (t Tally) WinRate() float64 {
	return Proportion(t.Wins, t.Trials)
}

// TieRate returns the fraction of trials tied
func (t Tally) TieRate() float64 {
	return Proportion(t.Ties, t.Trials)
}

// Validate checks the tally is internally consistent
func (t Tally) Validate() error {
	if t.Trials < 0 || t.Wins < 0 || t.Ties < 0 {
		return fmt.Errorf("negative count in tally: trials=%d wins=%d ties=%d", t.Trials, t.Wins, t.Ties)
	}
	if t.Wins+t.Ties > t.Trials {
		return fmt.Errorf("wins (%d) plus ties (%d) exceed trials (%d)", t.Wins, t.Ties, t.Trials)
	}
	return nil
}

// Proportion returns successes/trials, or 0 when there were no trials
func Proportion(successes, trials int) float64 {
	if trials == 0 {
		return 0
	}
	return float64(successes) / float64(trials)
}

// StdError returns the standard error of a proportion p estimated from n trials
func StdError(p float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Sqrt(p * (1 - p) / float64(n))
}

// Margin95 returns the half-width of the 95% confidence interval for p
func Margin95(p float64, n int) float64 {
	return z95 * StdError(p, n)
}
