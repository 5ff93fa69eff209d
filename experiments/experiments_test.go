package experiments

import (
	"connect4/agent"
	"connect4/config"
	"connect4/experiments/metrics"
	"connect4/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel: "error",
		Board:    config.BoardConfig{Rows: game.Rows, Columns: game.Columns},
		Agent:    config.AgentConfig{Depth: 2, EvalCacheSize: 64},
		Experiment: config.ExperimentConfig{
			Name:      "test",
			Games:     2,
			Depths:    []int{1, 2},
			Seed:      7,
			OutputDir: t.TempDir(),
		},
	}
}

func TestRunDepthExperiment(t *testing.T) {
	cfg := testConfig(t)

	summary, err := RunDepthExperiment(cfg)

	require.NoError(t, err)
	require.Len(t, summary.Configs, 3)
	require.Equal(t, KindRandom, summary.Configs[0].Kind)
	require.Equal(t, 2, summary.Configs[2].Depth)

	// depth 1 vs random, depth 1 vs depth 2, depth 2 vs random
	require.Len(t, summary.Games, 6)
	total := summary.Draws
	for _, wins := range summary.Wins {
		total += wins
	}
	require.Equal(t, len(summary.Games), total)

	moves := 0
	for i, g := range summary.Games {
		moves += g.TotalMoves
		if i%2 == 1 {
			require.Equal(t, summary.Games[i-1].Agent1, g.Agent2, "First mover should alternate")
		}
	}
	require.Len(t, summary.Moves, moves)

	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(summary.Dir, name))
		require.NoError(t, err, name)
	}
	require.Equal(t, filepath.Join(cfg.Experiment.OutputDir, "test"), filepath.Dir(summary.Dir))
}

func TestNewAgent(t *testing.T) {
	board := config.BoardConfig{Rows: game.Rows, Columns: game.Columns}

	t.Run("minimax", func(t *testing.T) {
		a, err := NewAgent(metrics.AgentConfig{Kind: KindMinimax, Depth: 2, EvalCache: 16}, game.PlayerTwo, game.PlayerOne, board, 0)

		require.NoError(t, err)
		bot, ok := a.(*agent.MiniMaxBot)
		require.True(t, ok)
		require.Equal(t, game.PlayerTwo, bot.Coin())
	})

	t.Run("random", func(t *testing.T) {
		a, err := NewAgent(metrics.AgentConfig{Kind: KindRandom, Seed: 3}, game.PlayerOne, game.PlayerTwo, board, 1)
		require.NoError(t, err)

		empty, err := game.NewBoard(game.Rows, game.Columns)
		require.NoError(t, err)
		col, err := a.Predict(empty)
		require.NoError(t, err)
		require.True(t, empty.IsLegal(col))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewAgent(metrics.AgentConfig{Kind: "mcts"}, game.PlayerOne, game.PlayerTwo, board, 0)
		require.Error(t, err)
	})

	t.Run("invalid depth", func(t *testing.T) {
		_, err := NewAgent(metrics.AgentConfig{Kind: KindMinimax, Depth: -1}, game.PlayerOne, game.PlayerTwo, board, 0)
		require.ErrorIs(t, err, agent.ErrInvalidConfig)
	})
}
