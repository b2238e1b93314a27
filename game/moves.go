package game

// LegalMoves returns the empty cells where player outflanks at least one
// opponent disk, in ascending order, or exactly [Pass] when there are none.
func LegalMoves(b Board, player Player) []Move {
	var moves []Move
	for i := 0; i < Cells; i++ {
		if b.isLegal(i, player) {
			moves = append(moves, Move(i))
		}
	}
	if len(moves) == 0 {
		return []Move{Pass}
	}
	return moves
}

// Mobility counts the placements available to player.
func Mobility(b Board, player Player) int {
	n := 0
	for i := 0; i < Cells; i++ {
		if b.isLegal(i, player) {
			n++
		}
	}
	return n
}

func (b *Board) isLegal(i int, player Player) bool {
	if b[i] != Empty {
		return false
	}
	for _, d := range directions {
		if b.outflanks(i, player, d) {
			return true
		}
	}
	return false
}
