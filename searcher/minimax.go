package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"math"
)

type Option func(m *Minimax)

// Minimax searches the game tree to a fixed depth, maximizing for self and
// minimizing for the opponent.
type Minimax struct {
	self     game.Coin
	opponent game.Coin
	depth    int
	pruning  bool
	evaluate game.Evaluate
	cache    *evalCache
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithoutPruning disables alpha-beta cutoffs. The result is unchanged, only
// slower.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// WithEvalCache memoizes up to size leaf evaluations.
func WithEvalCache(size int) Option {
	return func(m *Minimax) {
		if size > 0 {
			m.cache = newEvalCache(size)
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMinimax(self, opponent game.Coin, depth int, options ...Option) *Minimax {
	if self == game.Empty || opponent == game.Empty || self == opponent {
		panic(fmt.Sprintf("invalid coins: self=%d opponent=%d", self, opponent))
	}
	if depth < 0 {
		panic(fmt.Sprintf("invalid search depth: %d", depth))
	}
	m := &Minimax{ // Default values
		self:     self,
		opponent: opponent,
		depth:    depth,
		pruning:  true,
		evaluate: game.Score,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search picks the column that maximizes self's outcome assuming the opponent
// minimizes it. Ties go to the lowest column. When the root is resolved
// without expansion (depth 0, or the game is already decided) the lowest
// legal column is returned with the root's score.
func (m *Minimax) Search(board *game.Board) (Result, error) {
	if err := board.Validate(m.self, m.opponent); err != nil {
		return Result{}, err
	}
	legal := board.LegalColumns()
	if len(legal) == 0 {
		return Result{}, ErrNoLegalColumns
	}

	m.metrics.Start(m.depth)
	column, score := m.search(board, m.depth, math.MinInt64, math.MaxInt64, true)
	if column == NoColumn {
		column = legal[0]
	}
	return Result{Column: column, Score: score}, nil
}

// Metric returns the metrics of the last search.
func (m *Minimax) Metric() metrics.SearchMetric {
	return m.metrics.Complete()
}

func (m *Minimax) search(board *game.Board, depth int, alpha, beta int64, maximizing bool) (int, int64) {
	m.metrics.AddNode()

	switch {
	case board.Wins(m.self):
		return NoColumn, Large
	case board.Wins(m.opponent):
		return NoColumn, -Large
	case board.IsFull():
		return NoColumn, 0
	case depth == 0:
		return NoColumn, m.leaf(board)
	}

	coin, value := m.opponent, int64(math.MaxInt64)
	if maximizing {
		coin, value = m.self, math.MinInt64
	}

	legal := board.LegalColumns()
	column := legal[0]
	for _, col := range legal {
		child, _, err := board.Play(col, coin)
		if err != nil {
			panic(fmt.Sprintf("legal column %d rejected: %v", col, err))
		}
		_, score := m.search(child, depth-1, alpha, beta, !maximizing)

		if maximizing {
			if score > value {
				value = score
				column = col
			}
			alpha = max(alpha, value)
		} else {
			if score < value {
				value = score
				column = col
			}
			beta = min(beta, value)
		}

		if m.pruning && alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	return column, value
}

func (m *Minimax) leaf(board *game.Board) int64 {
	m.metrics.AddLeaf()
	if m.cache == nil {
		return int64(m.evaluate(board, m.self, m.opponent))
	}

	key := board.Key()
	if score, ok := m.cache.get(key); ok {
		m.metrics.AddCacheHit()
		return score
	}
	score := int64(m.evaluate(board, m.self, m.opponent))
	m.cache.add(key, score)
	return score
}
