package config

import (
	"fmt"
	"os"

	cfgpkg "github.com/dtnitsch/fpga-survey-extractor/pkg/config"
	"github.com/urfave/cli/v2"
)

// configPath is --config when set, otherwise the XDG default.
func configPath(c *cli.Context) string {
	if p := c.String("config"); p != "" {
		return p
	}
	return cfgpkg.DefaultConfigPath()
}

// InitAction writes the default configuration file.
func InitAction(c *cli.Context) error {
	path := configPath(c)
	if err := cfgpkg.WriteDefaults(path, c.Bool("force")); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote default config -> %s\n", path)
	return nil
}

// PathAction prints where the config file and history database live.
func PathAction(c *cli.Context) error {
	cfg, err := cfgpkg.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	fmt.Printf("config:  %s\n", configPath(c))
	fmt.Printf("history: %s\n", cfg.HistoryDBPath())
	return nil
}
