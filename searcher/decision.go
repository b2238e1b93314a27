package searcher

import (
	"math"
	"sync"

	"othello/game"
)

// decision is a node of the MCTS tree. rewards are counted for mover, the
// player whose move led here, so a parent picks its child with the highest score.
type decision struct {
	sync.RWMutex
	parent   *decision
	board    game.Board
	player   game.Player // To move at this node
	mover    game.Player
	moves    []game.Move // nil at a terminal position
	children []*decision
	rewards  float64
	visits   float64
}

func newDecision(parent *decision, board game.Board, player game.Player, c *config) *decision {
	var moves []game.Move
	if !c.rules.IsTerminal(board) {
		moves = c.order(c.rules.LegalMoves(board, player), player, board)
	}
	return &decision{
		parent: parent,
		board:  board,
		player: player,
		mover:  player.Opponent(),
		moves:  moves,
	}
}

// SelectOrExpand descends one level. It adds the next unexplored child when
// there is one (expanded is true), otherwise it selects the child with the
// best UCT score. A terminal node returns itself.
func (d *decision) SelectOrExpand(c *config) (child *decision, expanded bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, false
	}

	if len(d.moves) > len(d.children) { // Expandable node
		move := d.moves[len(d.children)]
		next := newDecision(d, c.rules.Apply(d.board, move, d.player), d.player.Opponent(), c)
		d.children = append(d.children, next)
		next.ApplyLoss()
		return next, true
	}

	// Fully expanded node
	child = d.children[d.pickChild()]
	child.ApplyLoss()
	return child, false
}

func (d *decision) pickChild() int {
	policy := newUCT(CSquared, d.visits)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		if score := child.Score(policy); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// ApplyLoss records a virtual loss so concurrent selections spread out.
func (d *decision) ApplyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) Score(policy uct) float64 {
	d.RLock()
	defer d.RUnlock()

	return policy.evaluate(d.rewards, d.visits)
}

// Backup replaces the virtual loss with the playout reward for mover and
// returns the parent.
func (d *decision) Backup(reward func(game.Player) float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += reward(d.mover)
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// bestMove is the most visited move; ties go to the earlier move.
func (d *decision) bestMove() game.Move {
	d.RLock()
	defer d.RUnlock()

	if len(d.children) == 0 {
		return d.moves[0]
	}

	bestIndex := 0
	maxVisits := d.children[0].Visits()
	for i, child := range d.children[1:] {
		if v := child.Visits(); v > maxVisits {
			maxVisits = v
			bestIndex = i + 1
		}
	}
	return d.moves[bestIndex]
}

// find returns the node at most two plies below d holding board with player
// to move, or nil.
func (d *decision) find(board game.Board, player game.Player) *decision {
	for _, child := range d.children {
		if child.board == board && child.player == player {
			return child
		}
		for _, grandChild := range child.children {
			if grandChild.board == board && grandChild.player == player {
				return grandChild
			}
		}
	}
	return nil
}
