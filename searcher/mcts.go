package searcher

import (
	"context"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
)

// evaluationScale maps an evaluation at the rollout cutoff to a win chance:
// a lead of this many disks is worth about 73%.
const evaluationScale = 4.0

// MCTS is a tree-parallel UCT search with virtual loss. The tree is kept
// between searches and reused when the new position was already explored.
type MCTS struct {
	config
	root *decision
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{config: newConfig(goroutines, options)}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) Search(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric) {
	m.metrics.Start("mcts", m.goroutines, m.cutoff)
	m.findRoot(board, player)

	switch len(m.root.moves) {
	case 0:
		return game.Pass, m.metrics.Complete()
	case 1:
		return m.root.moves[0], m.metrics.Complete()
	}

	// Run simulations to collect statistics
	if m.episodes > 0 {
		m.iterate(ctx)
	} else {
		m.countdown(ctx)
	}

	return m.root.bestMove(), m.metrics.Complete()
}

func (m *MCTS) findRoot(board game.Board, player game.Player) {
	var root *decision
	if m.root != nil {
		root = m.root.find(board, player)
	}
	if root == nil {
		if m.root != nil {
			log.Debug().Msg("mcts position not in previous tree, starting a new one")
		}
		m.root = newDecision(nil, board, player, &m.config)
		m.metrics.SetTreeReused(false)
		return
	}
	root.parent = nil
	m.root = root
	m.metrics.SetTreeReused(true)
}

func (m *MCTS) iterate(ctx context.Context) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				if ctx.Err() != nil {
					return
				}
				m.simulate()
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, m.duration)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
					m.simulate()
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	// Wait for in-flight episodes so the tree is quiet when the best move is read
	wg.Wait()
}

func (m *MCTS) simulate() {
	leaf := selectThenExpand(m.root, &m.config)
	m.metrics.AddNode()
	value := m.rollout(leaf.board, leaf.player)
	backup(leaf, value)
}

func selectThenExpand(root *decision, c *config) *decision {
	node := root
	for {
		child, expanded := node.SelectOrExpand(c)
		if expanded || child == node {
			return child
		}
		node = child
	}
}

// rollout plays random moves until the game ends or the cutoff is reached and
// returns PlayerOne's chance of winning from there.
func (m *MCTS) rollout(board game.Board, player game.Player) float64 {
	for depth := 0; m.cutoff == 0 || depth < m.cutoff; depth++ {
		moves := m.rules.LegalMoves(board, player)
		if moves[0] == game.Pass && m.rules.IsTerminal(board) {
			m.metrics.AddFullPlayout()
			return outcome(m.rules.Score(board))
		}
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		board = m.rules.Apply(board, move, player)
		player = player.Opponent()
	}

	// The last plies before the cutoff may have ended the game
	if m.rules.IsTerminal(board) {
		m.metrics.AddFullPlayout()
		return outcome(m.rules.Score(board))
	}

	// At cutoff, squash the evaluation into a win chance
	return 1 / (1 + math.Exp(-m.evaluate(board)/evaluationScale))
}

// outcome converts a final score into PlayerOne's reward.
func outcome(score int) float64 {
	switch {
	case score > 0:
		return Win
	case score < 0:
		return Loss
	}
	return Draw
}

func backup(leaf *decision, value float64) {
	reward := func(mover game.Player) float64 {
		if mover == game.PlayerOne {
			return value
		}
		return 1 - value
	}
	node := leaf
	for node != nil {
		node = node.Backup(reward)
	}
}

var (
	_ Searcher = (*MCTS)(nil)
	_ Searcher = (*Minimax)(nil)
)
