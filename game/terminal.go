package game

// IsTerminal reports whether neither player has a placement.
func IsTerminal(b Board) bool {
	return Mobility(b, PlayerOne) == 0 && Mobility(b, PlayerTwo) == 0
}

// Score is PlayerOne's disk count minus PlayerTwo's.
func Score(b Board) int {
	return b.Count(PlayerOne) - b.Count(PlayerTwo)
}

// Winner returns the player ahead on disks, or 0 on a draw. It is only a
// final result once IsTerminal holds.
func Winner(b Board) Player {
	switch s := Score(b); {
	case s > 0:
		return PlayerOne
	case s < 0:
		return PlayerTwo
	}
	return 0
}
