package agent

import (
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal column.
// Agents built with the same seed play the same sequence.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Predict(board *game.Board) (int, error) {
	legal := board.LegalColumns()
	if len(legal) == 0 {
		return searcher.NoColumn, searcher.ErrNoLegalColumns
	}
	return legal[a.rng.Intn(len(legal))], nil
}
