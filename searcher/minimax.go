package searcher

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
)

// terminalWeight lifts a proven result above any heuristic evaluation.
const terminalWeight = 100.0

// Minimax is an iterative-deepening alpha-beta search. PlayerOne maximizes.
type Minimax struct {
	config
}

func NewMinimax(goroutines int, options ...Option) *Minimax {
	c := newConfig(goroutines, options)
	if c.duration <= 0 {
		c.duration = meta.TIME_BUDGET
	}
	if c.depth <= 0 {
		c.depth = meta.MAX_DEPTH
	}
	return &Minimax{config: c}
}

// Search deepens one ply at a time until the time budget, the depth cap or
// the end of the game is reached. The result of an interrupted iteration is
// thrown away.
func (m *Minimax) Search(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric) {
	m.metrics.Start("minimax", m.goroutines, 0)

	moves := m.order(m.rules.LegalMoves(board, player), player, board)
	if len(moves) == 1 {
		return moves[0], m.metrics.Complete()
	}

	ctx, cancel := context.WithTimeout(ctx, m.duration)
	defer cancel()

	best := moves[0]
	completed := 0
	for depth := 1; depth <= m.depth; depth++ {
		move, exhaustive, err := m.searchRoot(ctx, board, player, moves, depth)
		if err != nil {
			break
		}
		best = move
		completed = depth
		m.metrics.SetDepth(depth)
		moves = promote(moves, move)
		if exhaustive {
			break
		}
	}
	if completed == 0 {
		log.Warn().Msgf("minimax completed no iteration within %s, playing first ordered move %d", m.duration, best)
	} else {
		log.Debug().Int("depth", completed).Int("move", int(best)).Msg("minimax search done")
	}
	return best, m.metrics.Complete()
}

// searchRoot scores every root move to depth plies in parallel and returns the
// best one. exhaustive is true when no line was cut short by the depth limit.
func (m *Minimax) searchRoot(ctx context.Context, board game.Board, player game.Player, moves []game.Move, depth int) (game.Move, bool, error) {
	values := make([]float64, len(moves))
	var cut atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.goroutines)
	for i, move := range moves {
		g.Go(func() error {
			child := m.rules.Apply(board, move, player)
			v, err := m.alphaBeta(gctx, child, player.Opponent(), depth-1, math.Inf(-1), math.Inf(1), &cut)
			values[i] = v
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return game.Pass, false, err
	}

	bestIndex := 0
	for i := 1; i < len(values); i++ {
		if better(player, values[i], values[bestIndex]) {
			bestIndex = i
		}
	}
	return moves[bestIndex], !cut.Load(), nil
}

func (m *Minimax) alphaBeta(ctx context.Context, board game.Board, player game.Player, depth int, alpha, beta float64, cut *atomic.Bool) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}
	m.metrics.AddNode()

	moves := m.rules.LegalMoves(board, player)
	if moves[0] == game.Pass && m.rules.IsTerminal(board) {
		return terminalWeight * float64(m.rules.Score(board)), nil
	}
	if depth == 0 {
		cut.Store(true)
		return m.evaluate(board), nil
	}
	if len(moves) > 1 {
		moves = m.order(moves, player, board)
	}

	if player == game.PlayerOne {
		value := math.Inf(-1)
		for _, move := range moves {
			v, err := m.alphaBeta(ctx, m.rules.Apply(board, move, player), player.Opponent(), depth-1, alpha, beta, cut)
			if err != nil {
				return 0, err
			}
			value = math.Max(value, v)
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value, nil
	}

	value := math.Inf(1)
	for _, move := range moves {
		v, err := m.alphaBeta(ctx, m.rules.Apply(board, move, player), player.Opponent(), depth-1, alpha, beta, cut)
		if err != nil {
			return 0, err
		}
		value = math.Min(value, v)
		beta = math.Min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value, nil
}

// better reports whether a beats b for player.
func better(player game.Player, a, b float64) bool {
	if player == game.PlayerOne {
		return a > b
	}
	return a < b
}

// promote moves best to the front, keeping the others in order.
func promote(moves []game.Move, best game.Move) []game.Move {
	promoted := make([]game.Move, 0, len(moves))
	promoted = append(promoted, best)
	for _, m := range moves {
		if m != best {
			promoted = append(promoted, m)
		}
	}
	return promoted
}
