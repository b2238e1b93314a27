package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("unvisited parent counts as one visit", func(t *testing.T) {
		policy := newUCT(CSquared, 0)

		require.Equal(t, 0.0, policy.numerator, "ln(1) should leave no exploration term")
		require.Equal(t, 0.5, policy.evaluate(1, 2))
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(2.0, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration grows with parent visits and shrinks with child visits", func(t *testing.T) {
		require.Greater(t, newUCT(2.0, 1000).evaluate(5, 10), newUCT(2.0, 100).evaluate(5, 10))
		require.Greater(t, newUCT(2.0, 100).evaluate(5, 10), newUCT(2.0, 100).evaluate(5, 20))
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Greater(t, policy.evaluate(10, 10), policy.evaluate(5, 10))
	})
}
