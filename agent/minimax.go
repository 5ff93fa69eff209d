package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"fmt"
)

// MiniMaxBot plays the column chosen by a fixed-depth minimax search. A fresh
// search runs on every call; nothing carries over between turns.
type MiniMaxBot struct {
	coin     game.Coin
	opponent game.Coin
	columns  int
	rows     int
	minimax  *searcher.Minimax
	collect  metrics.Collector
	last     searcher.Result
}

// NewMiniMaxBot returns a bot playing coin against opponent on a rows x
// columns board, searching depth plies ahead.
func NewMiniMaxBot(coin, opponent game.Coin, columns, rows, depth int, options ...searcher.Option) (*MiniMaxBot, error) {
	switch {
	case coin == game.Empty || opponent == game.Empty:
		return nil, fmt.Errorf("%w: coins must not be empty", ErrInvalidConfig)
	case coin == opponent:
		return nil, fmt.Errorf("%w: coin and opponent are both %d", ErrInvalidConfig, coin)
	case columns <= 0 || rows <= 0:
		return nil, fmt.Errorf("%w: %dx%d board: %w", ErrInvalidConfig, rows, columns, game.ErrInvalidDimensions)
	case depth < 0:
		return nil, fmt.Errorf("%w: negative depth %d", ErrInvalidConfig, depth)
	}

	collect := metrics.NewCollector()
	options = append([]searcher.Option{searcher.WithMetrics(collect)}, options...)
	return &MiniMaxBot{
		coin:     coin,
		opponent: opponent,
		columns:  columns,
		rows:     rows,
		minimax:  searcher.NewMinimax(coin, opponent, depth, options...),
		collect:  collect,
		last:     searcher.Result{Column: searcher.NoColumn},
	}, nil
}

func (b *MiniMaxBot) Coin() game.Coin {
	return b.coin
}

func (b *MiniMaxBot) Predict(board *game.Board) (int, error) {
	if board.Rows() != b.rows || board.Columns() != b.columns {
		return searcher.NoColumn, fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrDimensionMismatch, board.Rows(), board.Columns(), b.rows, b.columns)
	}
	result, err := b.minimax.Search(board)
	if err != nil {
		return searcher.NoColumn, fmt.Errorf("minimax search: %w", err)
	}
	b.last = result
	return result.Column, nil
}

// LastResult returns the column and score of the last successful search.
func (b *MiniMaxBot) LastResult() searcher.Result {
	return b.last
}

func (b *MiniMaxBot) LastScore() int64 {
	return b.last.Score
}

// LastMetric returns the metrics of the last search.
func (b *MiniMaxBot) LastMetric() metrics.SearchMetric {
	return b.minimax.Metric()
}
