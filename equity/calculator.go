package equity

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lox/pokerodds/internal/combinatorics"
	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/poker"
)

const (
	// DefaultSampleSize is the number of Monte Carlo trials when none is configured
	DefaultSampleSize = 10000
	// DefaultThreshold is the largest completion count the hybrid engine
	// will enumerate exhaustively
	DefaultThreshold = 10000
	// maxDefaultWorkers caps the worker count derived from the CPU count
	maxDefaultWorkers = 8
)

// Method names an odds engine
type Method string

const (
	MethodExhaustive Method = "exhaustive"
	MethodMonteCarlo Method = "monte-carlo"
	MethodHybrid     Method = "hybrid"
)

// ParseMethod parses an engine name, accepting "montecarlo" and "mc" for Monte Carlo
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive", "exact":
		return MethodExhaustive, nil
	case "monte-carlo", "montecarlo", "mc":
		return MethodMonteCarlo, nil
	case "hybrid", "":
		return MethodHybrid, nil
	default:
		return "", fmt.Errorf("unknown odds method %q", s)
	}
}

// ProgressFunc is called as an engine makes progress, with the number of
// completions or trials done so far and the total expected. Calls are
// serialized but may come from any goroutine.
type ProgressFunc func(done, total int)

// Option configures a Calculator
type Option func(*Calculator)

// WithSampleSize sets the number of Monte Carlo trials
func WithSampleSize(n int) Option {
	return func(c *Calculator) {
		c.sampleSize = n
	}
}

// WithThreshold sets the largest completion count the hybrid engine enumerates
func WithThreshold(n int) Option {
	return func(c *Calculator) {
		c.threshold = n
	}
}

// WithWorkers sets the number of goroutines used per calculation.
// Values below one select the CPU count, capped at eight.
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		c.workers = n
	}
}

// WithSeed makes Monte Carlo sampling reproducible. Equal seeds and worker
// counts produce equal results.
func WithSeed(seed int64) Option {
	return func(c *Calculator) {
		c.rng = randutil.New(seed)
	}
}

// WithRand sets the random source worker generators are derived from
func WithRand(rng *rand.Rand) Option {
	return func(c *Calculator) {
		c.rng = rng
	}
}

// WithLogger sets the logger; calculations log at debug level
func WithLogger(logger *log.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithProgress registers a progress callback
func WithProgress(fn ProgressFunc) Option {
	return func(c *Calculator) {
		c.progress = fn
	}
}

// Calculator runs odds calculations. It is safe for concurrent use; each
// call derives its own worker generators from the shared random source.
type Calculator struct {
	sampleSize int
	threshold  int
	workers    int
	logger     *log.Logger
	progress   ProgressFunc

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Calculator with the given options
func New(opts ...Option) *Calculator {
	c := &Calculator{
		sampleSize: DefaultSampleSize,
		threshold:  DefaultThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = min(runtime.NumCPU(), maxDefaultWorkers)
	}
	if c.rng == nil {
		c.rng = randutil.New(randutil.NewSeed())
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.logger = c.logger.WithPrefix("equity")
	return c
}

// SampleSize returns the configured number of Monte Carlo trials
func (c *Calculator) SampleSize() int { return c.sampleSize }

// Threshold returns the configured hybrid threshold
func (c *Calculator) Threshold() int { return c.threshold }

// Workers returns the number of goroutines used per calculation
func (c *Calculator) Workers() int { return c.workers }

// Run dispatches to the engine named by method
func (c *Calculator) Run(ctx context.Context, method Method, holes []Hole, board []poker.Card) ([]Result, error) {
	switch method {
	case MethodExhaustive:
		return c.Odds(ctx, holes, board)
	case MethodMonteCarlo:
		return c.MonteCarloOdds(ctx, holes, board)
	case MethodHybrid:
		return c.HybridOdds(ctx, holes, board)
	default:
		return nil, fmt.Errorf("unknown odds method %q", method)
	}
}

// splitRand derives n worker generators from the calculator's source.
func (c *Calculator) splitRand(n int) []*rand.Rand {
	c.mu.Lock()
	defer c.mu.Unlock()
	return randutil.Split(c.rng, n)
}

// BoardCombinations returns how many distinct board completions exist for
// the given holes and board.
func BoardCombinations(holes []Hole, board []poker.Card) (int, error) {
	remaining, err := validate(holes, board)
	if err != nil {
		return 0, err
	}
	return combinatorics.Count(len(remaining), BoardSize-len(board)), nil
}

// progressReporter serializes progress callbacks from concurrent workers.
type progressReporter struct {
	mu    sync.Mutex
	fn    ProgressFunc
	done  int
	total int
}

func newProgressReporter(fn ProgressFunc, total int) *progressReporter {
	return &progressReporter{fn: fn, total: total}
}

func (p *progressReporter) add(n int) {
	if p == nil || p.fn == nil || n == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done += n
	p.fn(p.done, p.total)
}
