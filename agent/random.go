package agent

import (
	"context"

	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
)

type randomAgent struct {
	rules game.Rules
	rng   *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// The same seed replays the same game against a deterministic opponent.
func NewRandomAgent(rules game.Rules, seed uint64) Agent {
	return &randomAgent{rules: rules, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	moves := a.rules.LegalMoves(board, player)
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Searcher: "random"}, nil
}
