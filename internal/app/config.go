package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"containment/internal/domain"
	"containment/internal/input"
)

// ConfigFilename is the config file looked up inside the home directory.
const ConfigFilename = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home           string `yaml:"home"`            // config and report directory, e.g. $HOME/.containment
	Strategy       string `yaml:"strategy"`        // "linear" or "indexed"
	ParallelCutoff int    `yaml:"parallel_cutoff"` // > 0 enables concurrent sorting
	MaxEntities    int    `yaml:"max_entities"`    // per-side input limit
	LogLevel       string `yaml:"log_level"`       // debug, info, warn, error
	LogFormat      string `yaml:"log_format"`      // text or json
	RemoteURL      string `yaml:"remote_url"`      // containmentd base URL, e.g. http://127.0.0.1:8080

	HTTP *http.Client `yaml:"-"` // optional; defaults to http.DefaultClient
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:    string(domain.StrategyLinear),
		MaxEntities: input.DefaultMaxEntities,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// DefaultHome returns $HOME/.containment.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".containment"), nil
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected. A
// missing file yields an error wrapping os.ErrNotExist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := domain.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.ParallelCutoff < 0 {
		return fmt.Errorf("parallel_cutoff must not be negative, got %d", c.ParallelCutoff)
	}
	if c.MaxEntities < 0 {
		return fmt.Errorf("max_entities must not be negative, got %d", c.MaxEntities)
	}
	return nil
}
