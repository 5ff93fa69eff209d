package game

import (
	"fmt"
	"strings"
)

// Board is a rows x columns Connect-Four grid. Row 0 is the bottom row, so
// dropped coins settle on the lowest empty row of a column.
//
// A Board is never modified in place: Play returns a new board and leaves the
// receiver untouched.
type Board struct {
	rows  int
	cols  int
	cells []Coin // Row-major, cells[row*cols+col]
}

// NewBoard returns an empty board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Board{rows: rows, cols: cols, cells: make([]Coin, rows*cols)}, nil
}

// FromGrid builds a board from a grid whose first row is the bottom row.
func FromGrid(grid [][]Coin) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}
	b, err := NewBoard(len(grid), len(grid[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range grid {
		if len(row) != b.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), b.cols)
		}
		copy(b.cells[r*b.cols:(r+1)*b.cols], row)
	}
	for c := 0; c < b.cols; c++ {
		for r := 1; r < b.rows; r++ {
			if b.At(r, c) != Empty && b.At(r-1, c) == Empty {
				return nil, fmt.Errorf("%w: row %d column %d", ErrFloatingCoin, r, c)
			}
		}
	}
	return b, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Columns() int {
	return b.cols
}

func (b *Board) At(row, col int) Coin {
	return b.cells[row*b.cols+col]
}

// Grid returns a copy of the cells, bottom row first.
func (b *Board) Grid() [][]Coin {
	grid := make([][]Coin, b.rows)
	for r := range grid {
		grid[r] = make([]Coin, b.cols)
		copy(grid[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return grid
}

func (b *Board) Copy() *Board {
	cells := make([]Coin, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

func (b *Board) IsLegal(col int) bool {
	return col >= 0 && col < b.cols && b.At(b.rows-1, col) == Empty
}

// LegalColumns lists the non-full columns in increasing order.
func (b *Board) LegalColumns() []int {
	cols := make([]int, 0, b.cols)
	for c := 0; c < b.cols; c++ {
		if b.IsLegal(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// NextOpenRow returns the lowest empty row of col, or -1 if the column is full.
func (b *Board) NextOpenRow(col int) int {
	for r := 0; r < b.rows; r++ {
		if b.At(r, col) == Empty {
			return r
		}
	}
	return -1
}

// Play drops coin into col on a copy of the board and returns the copy along
// with the row the coin landed on.
func (b *Board) Play(col int, coin Coin) (*Board, int, error) {
	if coin == Empty {
		return nil, -1, fmt.Errorf("%w: cannot play an empty coin", ErrInvalidCoin)
	}
	if !b.IsLegal(col) {
		return nil, -1, fmt.Errorf("%w: %d", ErrIllegalColumn, col)
	}
	row := b.NextOpenRow(col)
	next := b.Copy()
	next.cells[row*b.cols+col] = coin
	return next, row, nil
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.IsLegal(c) {
			return false
		}
	}
	return true
}

// Wins reports whether coin holds WinLength contiguous cells in any direction.
func (b *Board) Wins(coin Coin) bool {
	if coin == Empty {
		return false
	}
	for _, d := range directions {
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.cols; c++ {
				if b.lineOf(r, c, d, coin) {
					return true
				}
			}
		}
	}
	return false
}

// Winner returns the winning coin, or Empty with over set when the board is a
// draw.
func (b *Board) Winner() (winner Coin, over bool) {
	for _, coin := range []Coin{PlayerOne, PlayerTwo} {
		if b.Wins(coin) {
			return coin, true
		}
	}
	return Empty, b.IsFull()
}

// Blocks reports whether col is the cell opponent needed to complete a line,
// i.e. dropping opponent there would have won the game.
func (b *Board) Blocks(col int, opponent Coin) bool {
	next, _, err := b.Play(col, opponent)
	if err != nil {
		return false
	}
	return next.Wins(opponent)
}

// Validate checks that every cell is empty or holds one of coins.
func (b *Board) Validate(coins ...Coin) error {
	for i, cell := range b.cells {
		if cell == Empty {
			continue
		}
		known := false
		for _, coin := range coins {
			if cell == coin {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: %d at row %d column %d", ErrInvalidCoin, cell, i/b.cols, i%b.cols)
		}
	}
	return nil
}

// Key encodes the board exactly, for use as a map or cache key.
func (b *Board) Key() string {
	buf := make([]byte, len(b.cells)+1)
	buf[0] = byte(b.cols)
	for i, cell := range b.cells {
		buf[i+1] = byte(cell)
	}
	return string(buf)
}

// String renders the board top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.rows - 1; r >= 0; r-- {
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch cell := b.At(r, c); cell {
			case Empty:
				sb.WriteByte('.')
			default:
				fmt.Fprintf(&sb, "%d", cell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type direction struct {
	dr, dc int
}

// Horizontal, vertical, rising and falling diagonals
var directions = []direction{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// window returns the WinLength cells starting at (row, col) along d, or false
// if the window leaves the board.
func (b *Board) window(row, col int, d direction, out []Coin) bool {
	endRow := row + d.dr*(WinLength-1)
	endCol := col + d.dc*(WinLength-1)
	if endRow < 0 || endRow >= b.rows || endCol < 0 || endCol >= b.cols {
		return false
	}
	for i := 0; i < WinLength; i++ {
		out[i] = b.At(row+d.dr*i, col+d.dc*i)
	}
	return true
}

func (b *Board) lineOf(row, col int, d direction, coin Coin) bool {
	var cells [WinLength]Coin
	if !b.window(row, col, d, cells[:]) {
		return false
	}
	for _, cell := range cells {
		if cell != coin {
			return false
		}
	}
	return true
}
