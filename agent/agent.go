package agent

import (
	"connect4/game"
	"errors"
)

var (
	ErrInvalidConfig     = errors.New("invalid agent config")
	ErrDimensionMismatch = errors.New("board dimensions do not match agent")
)

type Agent interface {
	// Predict returns the column to play on board. The board is not modified.
	Predict(board *game.Board) (int, error)
}
