package searcher

import (
	"context"
	"time"

	"othello/experiments/metrics"
	"othello/game"
)

// Searcher picks a move for player in board.
type Searcher interface {
	Search(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric)
}

type Option func(c *config)

type config struct {
	goroutines int
	duration   time.Duration
	depth      int
	episodes   int
	cutoff     int
	rules      game.Rules
	evaluate   game.Evaluate
	order      game.Order
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

// WithDepth caps the plies iterative deepening may reach.
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(c *config) {
		if episodes > 0 {
			c.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.cutoff = depth
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(c *config) {
		if rules != nil {
			c.rules = rules
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithOrderFn(order game.Order) Option {
	return func(c *config) {
		if order != nil {
			c.order = order
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(goroutines int, options []Option) config {
	if goroutines < 1 {
		goroutines = 1
	}
	c := config{ // Default values
		goroutines: goroutines,
		rules:      game.NewStandardRules(),
		evaluate:   game.EvaluateMaterialMobility,
		order:      game.OrderByCaptures,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
