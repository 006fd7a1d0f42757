package common

import (
	"fmt"
	"log/slog"

	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/config"
	"github.com/urfave/cli/v2"
)

// Verbosity returns the larger of --verbosity and the -v count.
func Verbosity(c *cli.Context) int {
	return max(c.Int("verbosity"), c.Count("verbose"))
}

// LoadConfig reads the config file named by --config (or the default path)
// and layers the global flags over it.
func LoadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("policy") {
		cfg.Policy = c.String("policy")
	}
	if c.Bool("no-screen") {
		cfg.Screen = false
	}
	return cfg, nil
}

// Settings is what a command runs with once flags and config are merged.
type Settings struct {
	Config    *config.Config
	Policy    models.FailurePolicy
	Verbosity int
	Logger    *slog.Logger
}

// Setup loads the config, parses the batch policy and builds the logger
// for a command.
func Setup(c *cli.Context) (*Settings, error) {
	cfg, err := LoadConfig(c)
	if err != nil {
		return nil, err
	}
	policy, err := cfg.FailurePolicy()
	if err != nil {
		return nil, err
	}
	verbosity := Verbosity(c)
	return &Settings{
		Config:    cfg,
		Policy:    policy,
		Verbosity: verbosity,
		Logger:    NewLogger(verbosity, cfg.LogFormat),
	}, nil
}
