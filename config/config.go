package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string           `yaml:"log_level" env:"CONNECT4_LOG_LEVEL" env-default:"info"`
	Board      BoardConfig      `yaml:"board"`
	Agent      AgentConfig      `yaml:"agent"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

type BoardConfig struct {
	Rows    int `yaml:"rows" env:"CONNECT4_BOARD_ROWS" env-default:"6"`
	Columns int `yaml:"columns" env:"CONNECT4_BOARD_COLUMNS" env-default:"7"`
}

type AgentConfig struct {
	Depth         int `yaml:"depth" env:"CONNECT4_AGENT_DEPTH" env-default:"4"`
	EvalCacheSize int `yaml:"eval_cache_size" env:"CONNECT4_AGENT_EVAL_CACHE_SIZE" env-default:"0"`
}

type ExperimentConfig struct {
	Name      string `yaml:"name" env:"CONNECT4_EXPERIMENT_NAME" env-default:"depth"`
	Games     int    `yaml:"games" env:"CONNECT4_EXPERIMENT_GAMES" env-default:"10"`
	Depths    []int  `yaml:"depths" env:"CONNECT4_EXPERIMENT_DEPTHS" env-default:"1,2,4"`
	Seed      uint64 `yaml:"seed" env:"CONNECT4_EXPERIMENT_SEED" env-default:"1"`
	OutputDir string `yaml:"output_dir" env:"CONNECT4_EXPERIMENT_OUTPUT_DIR" env-default:"experiments"`
}

// Load reads the YAML file at path, then applies environment overrides and
// defaults. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load for program entry points: any error is fatal.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	return cfg
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Board.Rows <= 0 || c.Board.Columns <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Board.Rows, c.Board.Columns)
	}
	if c.Agent.Depth < 0 {
		return fmt.Errorf("%w: agent depth %d", ErrInvalidConfig, c.Agent.Depth)
	}
	if c.Agent.EvalCacheSize < 0 {
		return fmt.Errorf("%w: eval cache size %d", ErrInvalidConfig, c.Agent.EvalCacheSize)
	}
	if c.Experiment.Games <= 0 {
		return fmt.Errorf("%w: %d games per match-up", ErrInvalidConfig, c.Experiment.Games)
	}
	if len(c.Experiment.Depths) == 0 {
		return fmt.Errorf("%w: no experiment depths", ErrInvalidConfig)
	}
	for _, depth := range c.Experiment.Depths {
		if depth < 0 {
			return fmt.Errorf("%w: experiment depth %d", ErrInvalidConfig, depth)
		}
	}
	return nil
}

// Level returns the configured zerolog level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
