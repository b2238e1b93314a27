// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of goroutines a searcher uses by default.
const GO_ROUTINES = 8

// TIME_BUDGET defines how long a searcher thinks per move.
const TIME_BUDGET = 10 * time.Second

// MAX_DEPTH caps iterative deepening; a game never has more plies left.
const MAX_DEPTH = 64

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 2000

// WITH_CUTOFF defines the rollout cutoff for MCTS (0 plays out to the end).
const WITH_CUTOFF = 0

// MAX_TURNS bounds a game loop: 60 placements plus passes.
const MAX_TURNS = 130
