package searcher

import "errors"

// Large is the score of a decided game. It dominates any sum of window scores
// so a forced win or loss always outweighs the heuristic.
const Large int64 = 100_000_000_000_000

// NoColumn marks a position resolved without playing a move.
const NoColumn = -1

var ErrNoLegalColumns = errors.New("no legal columns")

// Result is the outcome of a search from the root position.
type Result struct {
	Column int
	Score  int64
}
