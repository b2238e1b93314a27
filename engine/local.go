package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
)

type LocalGame struct {
	Rules   game.Rules
	Board   game.Board
	Player  game.Player // To move
	Agents  []agent.Agent
	History []Update
}

// LocalEngine sets up a game from the initial position. agents[0] plays
// PlayerOne and agents[1] plays PlayerTwo.
func LocalEngine(rules game.Rules, agents []agent.Agent) *LocalGame {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	board, first := rules.Initialize()
	return &LocalGame{
		Rules:  rules,
		Board:  board,
		Player: first,
		Agents: agents,
	}
}

func (e *LocalGame) agentFor(player game.Player) agent.Agent {
	if player == game.PlayerOne {
		return e.Agents[0]
	}
	return e.Agents[1]
}

// Run executes the game loop until the position is terminal.
func (e *LocalGame) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: e.Player,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", gameMetric.ID).Msgf("player %s is starting", e.Player)

	for step := 1; !e.Rules.IsTerminal(e.Board) && step <= meta.MAX_TURNS; step++ {
		move, searchMetric, err := e.agentFor(e.Player).FindMove(ctx, e.Board, e.Player)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("player %s failed to move at step %d: %w", e.Player, step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       e.Player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		if move == game.Pass {
			gameMetric.Passes++
		}

		e.Board = e.Rules.Apply(e.Board, move, e.Player)
		e.History = append(e.History, Update{
			Move:   move,
			Player: e.Player,
			Hash:   e.Board.Hash(e.Player.Opponent()),
		})

		log.Debug().
			Int("step", step).
			Str("player", e.Player.String()).
			Int("move", int(move)).
			Int("score", e.Rules.Score(e.Board)).
			Dur("took", searchMetric.Duration).
			Msg("move played")

		e.Player = e.Player.Opponent()
	}

	if !e.Rules.IsTerminal(e.Board) {
		log.Warn().Msgf("stopped after %d turns without reaching the end", meta.MAX_TURNS)
	}

	gameMetric.Score = e.Rules.Score(e.Board)
	gameMetric.Winner = game.Winner(e.Board)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Str("game", gameMetric.ID).Int("score", gameMetric.Score).Msgf("game over, winner: %s", gameMetric.Winner)

	return gameMetric, moveMetrics, nil
}

var _ Engine = (*LocalGame)(nil)
