package agent

import (
	"context"

	"othello/experiments/metrics"
	"othello/game"
)

// Agent chooses the move for player in board. The move must be one of
// game.LegalMoves(board, player).
type Agent interface {
	FindMove(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error)
}
