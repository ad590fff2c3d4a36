package search

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

// Heuristic estimates the remaining cost from s to goal.
type Heuristic func(s, goal State) float64

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of expanded nodes.
	// Exceeding it yields a truncated NoSolution.
	MaxExpansions int

	// Heuristic is the estimate used by AStar. Ignored by other strategies.
	Heuristic Heuristic

	// OnExpand is called for each node right before its successors are
	// generated. Returning an error aborts the search.
	OnExpand func(n Node) error

	// Logger receives one debug record per finished search.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - Manhattan heuristic
//   - no-op OnExpand
//   - slog.Default() logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Heuristic:     Manhattan,
		OnExpand:      func(Node) error { return nil },
		Logger:        slog.Default(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search after n expansions.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithHeuristic replaces the default Manhattan heuristic used by AStar.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(n Node) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger used for the per-search debug record.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
