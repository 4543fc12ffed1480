// SPDX-License-Identifier: MIT

// Package det: functional configuration for the determinant kernels.
//
// Design goals:
//   - Deterministic behavior: no global state, no randomness.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: constructors panic only on nonsensical values.
package det

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrategy is the exact recursive Laplace expansion.
	DefaultStrategy = StrategyCofactor

	// DefaultParallel is the goroutine limit for top-level minors; 0 means serial.
	DefaultParallel = 0

	// DefaultMaxOrder is the largest accepted order; 0 means unlimited.
	DefaultMaxOrder = 0
)

// ---------- Internal panic messages ----------

const (
	panicParallelInvalid = "det: WithParallel: limit must be > 0"
	panicMaxOrderInvalid = "det: WithMaxOrder: n must be >= 1"
	panicStrategyInvalid = "det: WithStrategy: unknown strategy"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	strategy Strategy // DefaultStrategy
	parallel int      // DefaultParallel
	maxOrder int      // DefaultMaxOrder
}

// WithStrategy selects the determinant kernel.
// Panics on a value outside the declared Strategy constants.
func WithStrategy(s Strategy) Option {
	if s != StrategyCofactor && s != StrategyLU {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithParallel expands the sibling minors of row 0 concurrently using at most
// limit goroutines. Terms are still summed in column order; integer results
// are identical to the serial path.
//
// Applies to StrategyCofactor only; StrategyLU ignores it.
func WithParallel(limit int) Option {
	if limit <= 0 {
		panic(panicParallelInvalid)
	}

	return func(o *Options) { o.parallel = limit }
}

// WithMaxOrder rejects matrices of order above n with ErrTooLarge before any
// work is done. Useful as a guard since cofactor expansion is O(n!).
func WithMaxOrder(n int) Option {
	if n < 1 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = n }
}

// gatherOptions resolves defaults and applies opts in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{
		strategy: DefaultStrategy,
		parallel: DefaultParallel,
		maxOrder: DefaultMaxOrder,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
