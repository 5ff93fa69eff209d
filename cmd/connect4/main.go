package main

import (
	"connect4/agent"
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/game"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "Path to the YAML config file")
	mode := flag.String("mode", "play", "play a single game or run the depth experiment: play|experiment")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of the random opponent in play mode")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	cfg := config.MustLoad(*configPath)
	zerolog.SetGlobalLevel(cfg.Level())

	switch *mode {
	case "play":
		play(cfg, *seed)
	case "experiment":
		summary, err := experiments.RunDepthExperiment(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		for _, c := range summary.Configs {
			log.Info().Msgf("agent %d (%s depth %d): %d wins", c.ID, c.Kind, c.Depth, summary.Wins[c.ID])
		}
		log.Info().Msgf("%d draws, records in %s", summary.Draws, summary.Dir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// play runs the configured minimax bot against a random agent.
func play(cfg *config.Config, seed uint64) {
	ac := metrics.AgentConfig{
		ID:        1,
		Kind:      experiments.KindMinimax,
		Depth:     cfg.Agent.Depth,
		EvalCache: cfg.Agent.EvalCacheSize,
	}
	bot, err := experiments.NewAgent(ac, game.PlayerOne, game.PlayerTwo, cfg.Board, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create minimax bot")
	}

	e, err := engine.NewLocalEngine(cfg.Board.Rows, cfg.Board.Columns, []engine.Player{
		{Name: "minimax", Coin: game.PlayerOne, Agent: bot},
		{Name: "random", Coin: game.PlayerTwo, Agent: agent.NewRandomAgent(seed)},
	}, engine.WithSeed(seed))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	outcome, gameMetric, _ := e.Run()
	log.Info().Msgf("final board after %d moves in %v:\n%s", gameMetric.TotalMoves, gameMetric.Duration, outcome.Board)
	for coin, reward := range outcome.Rewards {
		log.Info().Msgf("player %d reward: %.1f", coin, reward)
	}
}
