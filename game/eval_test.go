package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("empty board scores zero", func(t *testing.T) {
		b, _ := NewBoard(Rows, Columns)

		require.Equal(t, 0, Score(b, PlayerOne, PlayerTwo))
	})

	t.Run("center coin earns the center bonus", func(t *testing.T) {
		b, _ := NewBoard(Rows, Columns)
		b, _, _ = b.Play(3, PlayerOne)

		// A lone coin builds no scoring windows
		require.Equal(t, DefaultWeights.Center, Score(b, PlayerOne, PlayerTwo))
	})

	t.Run("center bonus only counts self coins", func(t *testing.T) {
		b, _ := NewBoard(Rows, Columns)
		b, _, _ = b.Play(3, PlayerTwo)

		require.Equal(t, 0, Score(b, PlayerOne, PlayerTwo))
	})

	t.Run("two in a row", func(t *testing.T) {
		b := grid(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"11.....",
		)

		// Only window [0,3] holds both coins and two empties
		require.Equal(t, DefaultWeights.Two, Score(b, PlayerOne, PlayerTwo))
	})

	t.Run("open opponent three is penalized", func(t *testing.T) {
		b := grid(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"222....",
		)

		// Windows [0,3] holds three opponent coins; [1,4] only two
		require.Equal(t, -DefaultWeights.OpponentThree, Score(b, PlayerOne, PlayerTwo))
	})

	t.Run("blocked windows score nothing", func(t *testing.T) {
		b := grid(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"1212...",
		)

		require.Equal(t, 0, Score(b, PlayerOne, PlayerTwo))
		// PlayerTwo still owns the center cell
		require.Equal(t, DefaultWeights.Center, Score(b, PlayerTwo, PlayerOne))
	})

	t.Run("four in a row", func(t *testing.T) {
		b := grid(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"1111...",
		)

		// [0,3] four; [1,4] three and one empty; [2,5] two and two empty;
		// column 3 adds the center bonus
		want := DefaultWeights.Four + DefaultWeights.Three + DefaultWeights.Two + DefaultWeights.Center
		require.Equal(t, want, Score(b, PlayerOne, PlayerTwo))
	})

	t.Run("vertical and diagonal windows are scored", func(t *testing.T) {
		vertical := grid(t,
			".......",
			".......",
			".......",
			"1......",
			"1......",
			"1......",
		)
		// Rows 0-3 hold three and one empty; rows 1-4 two and two empty
		require.Equal(t, DefaultWeights.Three+DefaultWeights.Two, Score(vertical, PlayerOne, PlayerTwo))

		diagonal := grid(t,
			".......",
			".......",
			".......",
			"..1....",
			".12....",
			"122....",
		)
		// The rising window from (0,0) holds three and one empty
		score := Score(diagonal, PlayerOne, PlayerTwo)
		require.GreaterOrEqual(t, score, DefaultWeights.Three)
	})

	t.Run("custom weights", func(t *testing.T) {
		b, _ := NewBoard(Rows, Columns)
		b, _, _ = b.Play(3, PlayerOne)

		w := Weights{Center: 1}
		require.Equal(t, 1, w.Score(b, PlayerOne, PlayerTwo))
	})
}

func TestScoreRelabeling(t *testing.T) {
	b := grid(t,
		".......",
		".......",
		"...2...",
		"..112..",
		".2121..",
		"1122121",
	)

	swapped := make([][]Coin, b.Rows())
	for r, row := range b.Grid() {
		swapped[r] = make([]Coin, len(row))
		for c, cell := range row {
			swapped[r][c] = cell.Opponent()
		}
	}
	relabeled, err := FromGrid(swapped)
	require.NoError(t, err)

	require.Equal(t, Score(b, PlayerTwo, PlayerOne), Score(relabeled, PlayerOne, PlayerTwo),
		"Swapping coins and perspective should give the same score")
	require.Equal(t, Score(b, PlayerOne, PlayerTwo), Score(relabeled, PlayerTwo, PlayerOne))
}
