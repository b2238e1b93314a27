package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type failingAgent struct{ err error }

func (a failingAgent) FindMove(context.Context, game.Board, game.Player) (game.Move, metrics.SearchMetric, error) {
	return game.Pass, metrics.SearchMetric{}, a.err
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without two agents", func(t *testing.T) {
		rules := game.NewStandardRules()
		require.Panics(t, func() {
			LocalEngine(rules, []agent.Agent{agent.NewRandomAgent(rules, 1)})
		})
	})

	t.Run("starts from the initial position", func(t *testing.T) {
		rules := game.NewStandardRules()
		e := LocalEngine(rules, []agent.Agent{agent.NewRandomAgent(rules, 1), agent.NewRandomAgent(rules, 2)})

		require.Equal(t, game.NewBoard(), e.Board)
		require.Equal(t, game.PlayerOne, e.Player)
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random game plays to the end", func(t *testing.T) {
		rules := game.NewStandardRules()
		e := LocalEngine(rules, []agent.Agent{agent.NewRandomAgent(rules, 7), agent.NewRandomAgent(rules, 8)})

		gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.True(t, rules.IsTerminal(e.Board), "Game should stop at a terminal position")
		require.NotEmpty(t, gameMetric.ID)
		require.Equal(t, game.PlayerOne, gameMetric.StartingPlayer)
		require.Equal(t, rules.Score(e.Board), gameMetric.Score)
		require.Equal(t, game.Winner(e.Board), gameMetric.Winner)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Len(t, e.History, gameMetric.TotalMoves)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

		passes := 0
		board := game.NewBoard()
		for i, update := range e.History {
			require.Equal(t, i+1, moveMetrics[i].Step)
			require.Equal(t, update.Player, moveMetrics[i].Player)
			require.Equal(t, update.Move, moveMetrics[i].Move)
			require.Contains(t, game.LegalMoves(board, update.Player), update.Move, "Every recorded move should be legal")
			board = game.Apply(board, update.Move, update.Player)
			require.Equal(t, board.Hash(update.Player.Opponent()), update.Hash)
			if update.Move == game.Pass {
				passes++
			}
		}
		require.Equal(t, e.Board, board, "History should replay to the final position")
		require.Equal(t, passes, gameMetric.Passes)
	})

	t.Run("players alternate", func(t *testing.T) {
		rules := game.NewStandardRules()
		e := LocalEngine(rules, []agent.Agent{agent.NewRandomAgent(rules, 3), agent.NewRandomAgent(rules, 4)})

		_, _, err := e.Run(context.Background())

		require.NoError(t, err)
		for i, update := range e.History {
			if i%2 == 0 {
				require.Equal(t, game.PlayerOne, update.Player)
			} else {
				require.Equal(t, game.PlayerTwo, update.Player)
			}
		}
	})

	t.Run("every game gets a new id", func(t *testing.T) {
		rules := game.NewStandardRules()
		first, _, err := LocalEngine(rules, []agent.Agent{agent.NewRandomAgent(rules, 1), agent.NewRandomAgent(rules, 1)}).Run(context.Background())
		require.NoError(t, err)
		second, _, err := LocalEngine(rules, []agent.Agent{agent.NewRandomAgent(rules, 1), agent.NewRandomAgent(rules, 1)}).Run(context.Background())
		require.NoError(t, err)

		require.NotEqual(t, first.ID, second.ID)
		require.Equal(t, first.Score, second.Score, "Same seeds should replay the same game")
	})

	t.Run("search agents play a full game", func(t *testing.T) {
		rules := game.NewStandardRules()
		black := agent.NewSearchAgent(searcher.NewMinimax(2, searcher.WithDepth(2), searcher.WithDuration(time.Second), searcher.WithMetrics()))
		white := agent.NewSearchAgent(searcher.NewMCTS(2, searcher.WithEpisodes(20), searcher.WithMetrics()))
		e := LocalEngine(rules, []agent.Agent{black, white})

		gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.True(t, rules.IsTerminal(e.Board))
		require.Equal(t, "minimax", moveMetrics[0].Searcher)
		require.Equal(t, "mcts", moveMetrics[1].Searcher)
		require.Equal(t, rules.Score(e.Board), gameMetric.Score)
	})

	t.Run("agent error stops the game", func(t *testing.T) {
		rules := game.NewStandardRules()
		boom := errors.New("boom")
		e := LocalEngine(rules, []agent.Agent{agent.NewRandomAgent(rules, 1), failingAgent{err: boom}})

		_, moveMetrics, err := e.Run(context.Background())

		require.ErrorIs(t, err, boom)
		require.Len(t, moveMetrics, 1, "Only the first player should have moved")
		require.Equal(t, game.PlayerTwo, e.Player)
	})
}
