package game

import (
	"hash/fnv"
	"strings"
)

const (
	Size  = 8           // Rows and columns
	Cells = Size * Size // Squares on the board
)

// Cell is the content of one square.
type Cell int8

const (
	Empty Cell = 0
	One   Cell = Cell(PlayerOne)
	Two   Cell = Cell(PlayerTwo)
)

// Board is one position, indexed row*8+col. Being an array it is copied on
// assignment, so no two positions ever share cells.
type Board [Cells]Cell

// NewBoard returns the starting position.
func NewBoard() Board {
	var b Board
	b[Index(3, 3)] = One
	b[Index(4, 4)] = One
	b[Index(3, 4)] = Two
	b[Index(4, 3)] = Two
	return b
}

// Index converts a row and column to a cell index.
func Index(row, col int) int {
	return row*Size + col
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Count returns the number of disks owned by player.
func (b Board) Count(player Player) int {
	n := 0
	for _, c := range b {
		if c == Cell(player) {
			n++
		}
	}
	return n
}

// Hash identifies a position together with the side to move.
func (b Board) Hash(player Player) StateHash {
	var buf [Cells + 1]byte
	buf[0] = byte(player)
	for i, c := range b {
		buf[i+1] = byte(c)
	}
	hasher := fnv.New64a()
	hasher.Write(buf[:]) // hash.Hash writes never fail
	return StateHash(hasher.Sum64())
}

// String renders the grid with row and column indices: X for PlayerOne, O for
// PlayerTwo and . for an empty cell.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for row := 0; row < Size; row++ {
		sb.WriteByte(byte('0' + row))
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			switch b[Index(row, col)] {
			case One:
				sb.WriteByte('X')
			case Two:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
