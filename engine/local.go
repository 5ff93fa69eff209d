package engine

import (
	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrInvalidPlayers = errors.New("invalid players")

type Player struct {
	Name  string
	Coin  game.Coin
	Agent agent.Agent
}

// metered is implemented by agents that report search metrics.
type metered interface {
	LastMetric() metrics.SearchMetric
}

// scored is implemented by agents that report the score of their last move.
type scored interface {
	LastScore() int64
}

type Option func(e *LocalEngine)

func WithRewards(rewards Rewards) Option {
	return func(e *LocalEngine) {
		e.rewards = rewards
	}
}

// WithSeed seeds the fallback column choice for invalid moves.
func WithSeed(seed uint64) Option {
	return func(e *LocalEngine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

type LocalEngine struct {
	ID      string
	Board   *game.Board
	Players []Player
	rewards Rewards
	rng     *rand.Rand
}

// NewLocalEngine sets up a game on an empty rows x cols board. players[0]
// moves first.
func NewLocalEngine(rows, cols int, players []Player, options ...Option) (*LocalEngine, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("%w: need two players, got %d", ErrInvalidPlayers, len(players))
	}
	if players[0].Coin == game.Empty || players[1].Coin == game.Empty || players[0].Coin == players[1].Coin {
		return nil, fmt.Errorf("%w: coins %d and %d", ErrInvalidPlayers, players[0].Coin, players[1].Coin)
	}
	for _, p := range players {
		if p.Agent == nil {
			return nil, fmt.Errorf("%w: %s has no agent", ErrInvalidPlayers, p.Name)
		}
	}

	board, err := game.NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	e := &LocalEngine{
		ID:      uuid.NewString(),
		Board:   board,
		Players: players,
		rewards: DefaultRewards,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the game loop until a player wins or the board is full.
func (e *LocalEngine) Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	outcome := Outcome{Rewards: make(map[game.Coin]float64, len(e.Players))}
	for _, p := range e.Players {
		outcome.Rewards[p.Coin] = 0
	}
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: e.Players[0].Coin,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s (%d) against %s (%d)", e.ID, e.Players[0].Name, e.Players[0].Coin, e.Players[1].Name, e.Players[1].Coin)

	turn := 0
	for {
		current, next := e.Players[turn%2], e.Players[(turn+1)%2]
		moveMetric := e.move(current, next, outcome.Rewards)
		moveMetric.Step = turn + 1
		moveMetrics = append(moveMetrics, moveMetric)
		turn++

		log.Debug().Msgf("game %s step %d: %s played column %d\n%s", e.ID, moveMetric.Step, current.Name, moveMetric.Column, e.Board)

		if e.Board.Wins(current.Coin) {
			outcome.Winner = current.Coin
			outcome.Rewards[current.Coin] += e.rewards.Win
			outcome.Rewards[next.Coin] += e.rewards.Loss
			break
		}
		if e.Board.IsFull() {
			outcome.Rewards[current.Coin] += e.rewards.Draw
			outcome.Rewards[next.Coin] += e.rewards.Draw
			break
		}
		outcome.Rewards[current.Coin] += e.rewards.Move
	}

	outcome.Board = e.Board
	gameMetric.Winner = outcome.Winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turn

	if outcome.Winner == game.Empty {
		log.Info().Msgf("game %s: draw after %d moves", e.ID, turn)
	} else {
		log.Info().Msgf("game %s: %d wins after %d moves", e.ID, outcome.Winner, turn)
	}
	return outcome, gameMetric, moveMetrics
}

// move asks current's agent for a column and plays it. An agent error or an
// illegal column is penalized and replaced by a random legal column.
func (e *LocalEngine) move(current, next Player, rewards map[game.Coin]float64) metrics.MoveMetric {
	metric := metrics.MoveMetric{Player: current.Coin}

	col, err := current.Agent.Predict(e.Board.Copy())
	if m, ok := current.Agent.(metered); ok {
		metric.SearchMetric = m.LastMetric()
	}
	if err == nil && !e.Board.IsLegal(col) {
		err = fmt.Errorf("%w: %d", game.ErrIllegalColumn, col)
	}
	if err != nil {
		legal := e.Board.LegalColumns()
		fallback := legal[e.rng.Intn(len(legal))]
		log.Warn().Msgf("game %s: %s made an invalid move (%v), playing column %d instead", e.ID, current.Name, err, fallback)
		rewards[current.Coin] += e.rewards.Invalid
		metric.Invalid = true
		col = fallback
	} else if s, ok := current.Agent.(scored); ok {
		metric.Score = s.LastScore()
	}

	if e.Board.Blocks(col, next.Coin) {
		rewards[current.Coin] += e.rewards.Blocking
	}

	board, _, err := e.Board.Play(col, current.Coin)
	if err != nil {
		panic(fmt.Sprintf("legal column %d rejected: %v", col, err))
	}
	e.Board = board
	metric.Column = col
	return metric
}
