package game

import "errors"

// Standard Connect-Four grid
const (
	Rows      = 6
	Columns   = 7
	WinLength = 4
)

// Coin identifies the occupant of a board cell.
type Coin int8

const (
	Empty     Coin = 0
	PlayerOne Coin = 1
	PlayerTwo Coin = 2
)

func (c Coin) Opponent() Coin {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrIllegalColumn     = errors.New("illegal column")
	ErrInvalidCoin       = errors.New("invalid coin")
	ErrFloatingCoin      = errors.New("coin above an empty cell")
)

// Evaluate scores a non-terminal board from self's point of view. Higher is
// better for self.
type Evaluate func(board *Board, self, opponent Coin) int
