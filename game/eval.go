package game

// Weights parameterizes the window heuristic.
type Weights struct {
	Center        int // Per self coin in the middle column
	Four          int // Four self coins
	Three         int // Three self coins and one empty
	Two           int // Two self coins and two empty
	OpponentThree int // Subtracted for three opponent coins and one empty
}

var DefaultWeights = Weights{
	Center:        6,
	Four:          100,
	Three:         5,
	Two:           2,
	OpponentThree: 4,
}

// Score evaluates board for self with DefaultWeights.
func Score(board *Board, self, opponent Coin) int {
	return DefaultWeights.Score(board, self, opponent)
}

// Score sums a center column bonus and the score of every window of WinLength
// cells in each of the four line orientations. Only self's windows and the
// opponent's open threes count, so the result is not a symmetric difference.
func (w Weights) Score(board *Board, self, opponent Coin) int {
	score := 0

	center := board.Columns() / 2
	for r := 0; r < board.Rows(); r++ {
		if board.At(r, center) == self {
			score += w.Center
		}
	}

	var cells [WinLength]Coin
	for _, d := range directions {
		for r := 0; r < board.Rows(); r++ {
			for c := 0; c < board.Columns(); c++ {
				if board.window(r, c, d, cells[:]) {
					score += w.window(cells[:], self, opponent)
				}
			}
		}
	}
	return score
}

func (w Weights) window(cells []Coin, self, opponent Coin) int {
	own, theirs, empty := 0, 0, 0
	for _, cell := range cells {
		switch cell {
		case self:
			own++
		case opponent:
			theirs++
		case Empty:
			empty++
		}
	}

	score := 0
	switch {
	case own == 4:
		score += w.Four
	case own == 3 && empty == 1:
		score += w.Three
	case own == 2 && empty == 2:
		score += w.Two
	}
	if theirs == 3 && empty == 1 {
		score -= w.OpponentThree
	}
	return score
}
