package experiments

import (
	"connect4/agent"
	"connect4/config"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
)

type Summary struct {
	Dir     string // Where the CSV records were written
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Wins    map[int]int // AgentConfig.ID to games won
	Draws   int
}

// RunDepthExperiment pits a minimax agent for each configured depth against a
// random baseline and against the next deeper agent. Each match-up is played
// cfg.Experiment.Games times, alternating which agent moves first.
func RunDepthExperiment(cfg *config.Config) (*Summary, error) {
	exp := cfg.Experiment
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: exp.Seed}
	configs := []metrics.AgentConfig{baseline}
	for i, depth := range exp.Depths {
		configs = append(configs, metrics.AgentConfig{
			ID:        i + 1,
			Kind:      KindMinimax,
			Depth:     depth,
			EvalCache: cfg.Agent.EvalCacheSize,
		})
	}

	matchUps := [][]metrics.AgentConfig{}
	for i, ac := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{ac, baseline})
		if i+2 < len(configs) {
			matchUps = append(matchUps, []metrics.AgentConfig{ac, configs[i+2]})
		}
	}

	summary := &Summary{Configs: configs, Wins: make(map[int]int, len(configs))}
	log.Info().Msgf("starting %s experiment...", exp.Name)

	count := 0
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < exp.Games; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}
			seed := exp.Seed + uint64(count)
			count++

			outcome, gameMetric, moveMetrics, err := runGame(cfg.Board, first, second, seed)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			summary.Games = append(summary.Games, metrics.GameRecord{
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				summary.Moves = append(summary.Moves, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}
			switch outcome.Winner {
			case game.PlayerOne:
				summary.Wins[first.ID]++
			case game.PlayerTwo:
				summary.Wins[second.ID]++
			default:
				summary.Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %d", mi+1, len(matchUps), i+1, exp.Games, outcome.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(summary.Games); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame plays a single game with first as PlayerOne.
func runGame(board config.BoardConfig, first, second metrics.AgentConfig, seed uint64) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := make([]engine.Player, 0, 2)
	for _, side := range []struct {
		config   metrics.AgentConfig
		coin     game.Coin
		opponent game.Coin
	}{
		{first, game.PlayerOne, game.PlayerTwo},
		{second, game.PlayerTwo, game.PlayerOne},
	} {
		a, err := NewAgent(side.config, side.coin, side.opponent, board, seed)
		if err != nil {
			return engine.Outcome{}, metrics.GameMetric{}, nil, err
		}
		players = append(players, engine.Player{
			Name:  fmt.Sprintf("%s-%d", side.config.Kind, side.config.ID),
			Coin:  side.coin,
			Agent: a,
		})
	}

	e, err := engine.NewLocalEngine(board.Rows, board.Columns, players, engine.WithSeed(seed))
	if err != nil {
		return engine.Outcome{}, metrics.GameMetric{}, nil, err
	}
	outcome, gameMetric, moveMetrics := e.Run()
	return outcome, gameMetric, moveMetrics, nil
}

// NewAgent builds the agent an AgentConfig describes.
func NewAgent(ac metrics.AgentConfig, coin, opponent game.Coin, board config.BoardConfig, seed uint64) (agent.Agent, error) {
	switch ac.Kind {
	case KindRandom:
		return agent.NewRandomAgent(ac.Seed + seed), nil
	case KindMinimax:
		options := []searcher.Option{}
		if ac.EvalCache > 0 {
			options = append(options, searcher.WithEvalCache(ac.EvalCache))
		}
		bot, err := agent.NewMiniMaxBot(coin, opponent, board.Columns, board.Rows, ac.Depth, options...)
		if err != nil {
			return nil, err
		}
		return bot, nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", ac.Kind)
	}
}
