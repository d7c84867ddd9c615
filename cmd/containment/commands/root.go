package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"containment/internal/app"
)

var (
	home       string
	configPath string
	appCtx     *app.Wire

	logLevel       string
	remoteURL      string
	strategy       string
	parallelCutoff int
)

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "containment",
		Short:         "Greedy mote-to-device containment solver",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, cmd.ErrOrStderr())
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config and report dir (default ~/.containment)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "containmentd base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&strategy, "strategy", "", "matching strategy: linear or indexed")
	root.PersistentFlags().IntVar(&parallelCutoff, "parallel-cutoff", 0, "sort concurrently above this many entities (0 = sequential)")

	root.AddCommand(solveCmd(), reportsCmd(), shellCmd(), versionCmd())
	return root
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	if home == "" {
		dir, err := app.DefaultHome()
		if err != nil {
			return app.Config{}, err
		}
		home = dir
	}

	path := configPath
	if path == "" {
		path = filepath.Join(home, app.ConfigFilename)
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		// Only an explicitly requested config file has to exist.
		if configPath != "" || !errors.Is(err, os.ErrNotExist) {
			return app.Config{}, err
		}
		cfg = app.DefaultConfig()
	}

	flags := cmd.Flags()
	if cfg.Home == "" || flags.Changed("home") {
		cfg.Home = home
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("remote") {
		cfg.RemoteURL = remoteURL
	}
	if flags.Changed("strategy") {
		cfg.Strategy = strategy
	}
	if flags.Changed("parallel-cutoff") {
		cfg.ParallelCutoff = parallelCutoff
	}
	return cfg, nil
}
