package game

// Player is the side to move: PlayerOne (+1) or PlayerTwo (-1).
type Player int8

const (
	PlayerOne Player = 1
	PlayerTwo Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	}
	return "none"
}

// Move is a cell index in [0, 63] or Pass.
type Move int

// Pass is the forced null move, legal only when no placement exists.
const Pass Move = -1

type StateHash uint64

// Rules is the capability a two-player zero-sum game exposes to a driver or a
// searcher. Boards are values: operations on a Board always return a new copy.
type Rules interface {
	Initialize() (Board, Player)
	LegalMoves(board Board, player Player) []Move
	Apply(board Board, move Move, player Player) Board
	IsTerminal(board Board) bool
	Score(board Board) int
}

// Evaluate scores a position from PlayerOne's perspective (positive favors PlayerOne).
type Evaluate func(Board) float64

// Order returns moves reordered so the most promising are tried first.
type Order func(moves []Move, player Player, board Board) []Move
