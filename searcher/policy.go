package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for a won playout
const Draw = 0.5  // Reward for a drawn playout
const Loss = 0.0  // Reward for a lost playout, also the virtual loss

// uct scores the children of one parent visited n times.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, n float64) uct {
	if n < 1 { // The root is fully expanded before its first backup completes
		n = 1
	}
	return uct{numerator: cSquared * math.Log(n)}
}

// evaluate is q/n + sqrt(c^2*ln(N)/n) for a child with q rewards over n visits.
func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	return q/n + math.Sqrt(u.numerator/n)
}
