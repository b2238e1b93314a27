package searcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func TestNewMCTS(t *testing.T) {
	t.Run("panics without a budget", func(t *testing.T) {
		require.Panics(t, func() {
			NewMCTS(1)
		}, "Should panic when neither episodes nor duration is set")
	})
}

func TestMCTSSearch(t *testing.T) {
	t.Run("episodes budget visits the root once per episode", func(t *testing.T) {
		m := NewMCTS(4, WithEpisodes(400), WithMetrics())
		board := game.NewBoard()

		move, metric := m.Search(context.Background(), board, game.PlayerOne)

		require.Contains(t, game.LegalMoves(board, game.PlayerOne), move)
		require.Equal(t, 400, metric.Episodes)
		require.Equal(t, 400.0, m.root.visits)
		require.Len(t, m.root.children, 4, "Every root move should be explored")
		total := 0.0
		for _, child := range m.root.children {
			total += child.visits
		}
		require.Equal(t, 400.0, total, "Virtual losses should all be reversed")
		require.False(t, metric.IsTreeReused)
		require.Equal(t, 400, metric.FullPlayouts, "Rollouts without cutoff should reach the end")
	})

	t.Run("duration budget stops", func(t *testing.T) {
		m := NewMCTS(2, WithDuration(50*time.Millisecond), WithMetrics())

		move, metric := m.Search(context.Background(), game.NewBoard(), game.PlayerOne)

		require.Contains(t, game.LegalMoves(game.NewBoard(), game.PlayerOne), move)
		require.Positive(t, metric.Episodes)
	})

	t.Run("reuses the subtree of an explored reply", func(t *testing.T) {
		m := NewMCTS(2, WithEpisodes(400), WithMetrics())
		m.Search(context.Background(), game.NewBoard(), game.PlayerOne)
		grandChild := m.root.children[0].children[0]

		_, metric := m.Search(context.Background(), grandChild.board, grandChild.player)

		require.True(t, metric.IsTreeReused)
		require.Same(t, grandChild, m.root)
		require.Nil(t, m.root.parent, "Reused root should be detached")
	})

	t.Run("unknown position starts a new tree", func(t *testing.T) {
		m := NewMCTS(1, WithEpisodes(50), WithMetrics())
		m.Search(context.Background(), game.NewBoard(), game.PlayerOne)

		_, metric := m.Search(context.Background(), game.NewBoard(), game.PlayerTwo)

		require.False(t, metric.IsTreeReused)
	})

	t.Run("pass needs no search", func(t *testing.T) {
		var board game.Board
		board[0], board[1] = game.Two, game.One
		m := NewMCTS(1, WithEpisodes(100), WithMetrics())

		move, metric := m.Search(context.Background(), board, game.PlayerOne)

		require.Equal(t, game.Pass, move)
		require.Zero(t, metric.Episodes)
	})

	t.Run("cutoff rollouts are scored by the evaluation", func(t *testing.T) {
		m := NewMCTS(1, WithEpisodes(100), WithCutoff(2), WithMetrics())

		_, metric := m.Search(context.Background(), game.NewBoard(), game.PlayerOne)

		require.Zero(t, metric.FullPlayouts)
		require.Equal(t, 2, metric.Cutoff)
	})
}

func TestRollout(t *testing.T) {
	m := NewMCTS(1, WithEpisodes(1))

	t.Run("finished game returns its outcome", func(t *testing.T) {
		var board game.Board
		board[0], board[9] = game.One, game.One

		require.Equal(t, Win, m.rollout(board, game.PlayerOne))
		require.Equal(t, Win, m.rollout(board, game.PlayerTwo))
	})

	t.Run("finished game inside the cutoff returns its outcome", func(t *testing.T) {
		c := NewMCTS(1, WithEpisodes(1), WithCutoff(1), WithMetrics())
		c.metrics.Start("mcts", 1, 1)
		var board game.Board
		board[0], board[9] = game.One, game.One

		require.Equal(t, Win, c.rollout(board, game.PlayerOne))
		require.Equal(t, Win, c.rollout(board, game.PlayerTwo))
		require.Equal(t, 2, c.metrics.Complete().FullPlayouts)
	})

	t.Run("game ending on the last ply before the cutoff returns its outcome", func(t *testing.T) {
		c := NewMCTS(1, WithEpisodes(1), WithCutoff(1), WithMetrics())
		c.metrics.Start("mcts", 1, 1)
		var board game.Board
		board[0], board[1] = game.One, game.Two // 2 is the only move and takes the last disk

		require.Equal(t, []game.Move{2}, game.LegalMoves(board, game.PlayerOne))
		require.Equal(t, Win, c.rollout(board, game.PlayerOne))
		require.Equal(t, 1, c.metrics.Complete().FullPlayouts)
	})

	t.Run("unfinished game at the cutoff is scored by the evaluation", func(t *testing.T) {
		c := NewMCTS(1, WithEpisodes(1), WithCutoff(1))

		v := c.rollout(game.NewBoard(), game.PlayerOne)

		require.Greater(t, v, Loss)
		require.Less(t, v, Win)
	})

	t.Run("random playout ends in a result", func(t *testing.T) {
		v := m.rollout(game.NewBoard(), game.PlayerOne)

		require.Contains(t, []float64{Win, Draw, Loss}, v)
	})
}

func TestOutcome(t *testing.T) {
	require.Equal(t, Win, outcome(10))
	require.Equal(t, Loss, outcome(-2))
	require.Equal(t, Draw, outcome(0))
}
