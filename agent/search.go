package agent

import (
	"context"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays whatever s finds.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	move, metric := a.searcher.Search(ctx, board, player)
	return move, metric, nil
}
