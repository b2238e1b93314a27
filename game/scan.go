package game

type direction struct {
	dr, dc int
}

// The 4 orthogonal and 4 diagonal rays.
var directions = [8]direction{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// outflanks reports whether the ray from origin starts with one or more
// opponent disks and then reaches a disk of player.
func (b *Board) outflanks(origin int, player Player, d direction) bool {
	row, col := origin/Size+d.dr, origin%Size+d.dc
	opponent := Cell(player.Opponent())
	found := false
	for inBounds(row, col) {
		switch b[Index(row, col)] {
		case opponent:
			found = true
		case Cell(player):
			return found
		default:
			return false
		}
		row += d.dr
		col += d.dc
	}
	return false
}

// capture appends to run the opponent disks flanked along the ray from
// origin. Nothing is appended unless the run ends on a disk of player.
func (b *Board) capture(run []int, origin int, player Player, d direction) []int {
	row, col := origin/Size+d.dr, origin%Size+d.dc
	opponent := Cell(player.Opponent())
	start := len(run)
	for inBounds(row, col) && b[Index(row, col)] == opponent {
		run = append(run, Index(row, col))
		row += d.dr
		col += d.dc
	}
	if inBounds(row, col) && b[Index(row, col)] == Cell(player) {
		return run
	}
	return run[:start]
}
