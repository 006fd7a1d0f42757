package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/assembler"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/db"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "fse"

// SnapshotTimeLayout names snapshot databases, e.g. all_datapoints_2024-03-01_14-05-09.db.
const SnapshotTimeLayout = "2006-01-02_15-04-05"

type Config struct {
	Policy    string               `yaml:"policy"`
	Screen    bool                 `yaml:"screen"`
	OutputDir string               `yaml:"output_dir,omitempty"`
	DBPath    string               `yaml:"db_path,omitempty"`
	LogFormat string               `yaml:"log_format,omitempty"`
	Overrides []assembler.Override `yaml:"overrides,omitempty"`
}

// FailurePolicy returns the parsed batch policy.
func (c *Config) FailurePolicy() (models.FailurePolicy, error) {
	return models.ParseFailurePolicy(c.Policy)
}

// HistoryDBPath returns the run history database path.
func (c *Config) HistoryDBPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(DefaultDataDir(), db.DefaultDBName)
}

// SnapshotPath returns the timestamped snapshot database path for a run started at t.
func (c *Config) SnapshotPath(t time.Time) string {
	dir := c.OutputDir
	if dir == "" {
		dir = DefaultDataDir()
	}
	return filepath.Join(dir, fmt.Sprintf("all_datapoints_%s.db", t.Format(SnapshotTimeLayout)))
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

// Defaults returns the embedded configuration.
func Defaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path, or the default config path when path is
// empty. A missing file at the default path yields the embedded defaults;
// a missing file at an explicit path is an error. Keys absent from the
// file keep their default value.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefaults writes the embedded configuration to path. An existing
// file is left alone unless overwrite is set.
func WriteDefaults(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		}
	}
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return fmt.Errorf("reading embedded config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	if _, err := cfg.FailurePolicy(); err != nil {
		return err
	}
	switch cfg.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("log_format: unknown format %q (valid: json, text)", cfg.LogFormat)
	}
	for i, o := range cfg.Overrides {
		if len(o.Keys) == 0 {
			return fmt.Errorf("override %d: keys are required", i)
		}
		if o.Dataset == "" || o.Task == "" {
			return fmt.Errorf("override %d: dataset and task are required", i)
		}
	}
	return nil
}
