package game

// Standard is the 8x8 rule set with the fixed four-disk start.
type Standard struct{}

// NewStandardRules returns the standard rule set.
func NewStandardRules() *Standard {
	return &Standard{}
}

// Initialize returns the starting position with PlayerOne to move.
func (Standard) Initialize() (Board, Player) {
	return NewBoard(), PlayerOne
}

func (Standard) LegalMoves(b Board, player Player) []Move {
	return LegalMoves(b, player)
}

func (Standard) Apply(b Board, move Move, player Player) Board {
	return Apply(b, move, player)
}

func (Standard) IsTerminal(b Board) bool {
	return IsTerminal(b)
}

func (Standard) Score(b Board) int {
	return Score(b)
}

var _ Rules = Standard{}
