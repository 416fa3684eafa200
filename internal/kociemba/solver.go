package kociemba

import (
	"fmt"
	"io"
	"time"
)

// deadlineClock is polled at every node expansion rather than backed by a
// goroutine or context.Context cancellation channel: the search is
// single-threaded and cooperative, so a plain monotonic check is enough
// and avoids the overhead of select-on-channel in the hottest loop in the
// package.
type deadlineClock struct {
	deadline time.Time
	has      bool
}

func newDeadlineClock(d time.Duration) deadlineClock {
	if d <= 0 {
		return deadlineClock{}
	}
	return deadlineClock{deadline: time.Now().Add(d), has: true}
}

func (c deadlineClock) expired() bool {
	return c.has && time.Now().After(c.deadline)
}

const (
	defaultTimeout  = 9 * time.Second
	defaultMaxTotal = 40
)

type config struct {
	timeout  time.Duration
	maxTotal int
	progress io.Writer
}

// Option configures a Solver. There are no environment variables in this
// package; everything a caller can tune is passed explicitly through
// NewSolver.
type Option func(*config)

// WithTimeout bounds total wall-clock time spent searching. A zero or
// negative duration disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithMaxTotal overrides MAX_TOTAL, the largest combined quarter-turn
// bound the outer iterative-deepening loop will try before giving up.
func WithMaxTotal(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxTotal = n
		}
	}
}

// WithProgress directs a verbose diagnostic to w: one line with the move
// count and elapsed time after a successful Solve. Nothing is written per
// search bound, on timeout, or when no solution is found. Nil (the
// default) means silent.
func WithProgress(w io.Writer) Option {
	return func(c *config) { c.progress = w }
}

// Solver holds the pruning tables and search configuration. Building the
// tables is the expensive part (a handful of BFS passes over a few
// million states), so a Solver is meant to be constructed once and reused
// across many Solve calls.
type Solver struct {
	tables *Tables
	cfg    config
}

// NewSolver builds the pruning tables and returns a ready Solver.
func NewSolver(opts ...Option) *Solver {
	cfg := config{timeout: defaultTimeout, maxTotal: defaultMaxTotal}
	for _, o := range opts {
		o(&cfg)
	}
	tables := BuildTables()
	if err := tables.selfCheck(); err != nil {
		// A sentinel left in a pruning table means the move
		// implementation and a coordinate encoder have drifted apart;
		// no search built on top of these tables can be trusted.
		panic(err)
	}
	return &Solver{tables: tables, cfg: cfg}
}

// ErrTimeout is returned by Solve when the configured deadline elapses
// before a solution is found. Per the error-handling contract this is not
// a fatal error: callers should treat it the same as "no solution found
// in time" and emit an empty solution.
var ErrTimeout = fmt.Errorf("kociemba: search timed out")

// ErrNoSolution is returned when no solution exists within MAX_TOTAL,
// which for a correctly scrambled, reachable cube should not happen at
// the default bound.
var ErrNoSolution = fmt.Errorf("kociemba: no solution found within MAX_TOTAL")

// Solve runs the two-phase search on c and returns the quarter-turn move
// sequence that brings it to the solved state. An already-solved cube
// returns a nil slice and no error.
func (s *Solver) Solve(c Cube) ([]Move, error) {
	start := time.Now()
	clock := newDeadlineClock(s.cfg.timeout)

	if IsSolved(c) {
		return nil, nil
	}

	moves, ok := solvePhase1(s.tables, c, s.cfg.maxTotal, clock)
	if !ok {
		if clock.expired() {
			return nil, ErrTimeout
		}
		return nil, ErrNoSolution
	}
	s.logProgress("solved in %d moves, %s elapsed\n", len(moves), time.Since(start))
	return moves, nil
}

func (s *Solver) logProgress(format string, args ...any) {
	if s.cfg.progress == nil {
		return
	}
	fmt.Fprintf(s.cfg.progress, format, args...)
}
