package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type Engine interface {
	// Run plays a game to a win or a draw
	Run() (outcome Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Rewards credited to players after each move.
type Rewards struct {
	Win      float64
	Loss     float64
	Draw     float64
	Move     float64
	Invalid  float64 // Agent errored or chose an illegal column
	Blocking float64 // Move took the cell the opponent needed to win
}

var DefaultRewards = Rewards{
	Win:      10,
	Loss:     -10,
	Draw:     5,
	Move:     0,
	Invalid:  -1,
	Blocking: 0,
}

type Outcome struct {
	Winner  game.Coin // Empty on a draw
	Board   *game.Board
	Rewards map[game.Coin]float64
}
