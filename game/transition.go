package game

import "golang.org/x/exp/slices"

// Apply returns the position after player plays move. Pass returns b itself.
// The move must come from LegalMoves; it is not validated again.
func Apply(b Board, move Move, player Player) Board {
	if move == Pass {
		return b
	}
	flips := b.flips(int(move), player)
	next := b
	next[move] = Cell(player)
	for _, i := range flips {
		next[i] = Cell(player)
	}
	return next
}

// Flips lists the cells that would turn to player if move were played, in
// ascending order. Pass flips nothing.
func Flips(b Board, move Move, player Player) []int {
	if move == Pass {
		return nil
	}
	flips := b.flips(int(move), player)
	slices.Sort(flips)
	return flips
}

// flips scans all 8 rays of the unmodified board before anything is written,
// so the result does not depend on the order rays are visited.
func (b *Board) flips(origin int, player Player) []int {
	run := make([]int, 0, 18)
	for _, d := range directions {
		run = b.capture(run, origin, player, d)
	}
	return run
}
