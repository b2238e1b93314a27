package engine

import (
	"context"

	"othello/experiments/metrics"
	"othello/game"
)

type Engine interface {
	// Run plays a game till neither player can move or MAX_TURNS plies are played
	Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error)
}

// Update is one ply of the game as seen by the driver.
type Update struct {
	Move   game.Move
	Player game.Player
	Hash   game.StateHash // Position after the move, with the opponent to move
}
