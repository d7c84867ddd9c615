package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"containment/internal/domain"
	"containment/internal/input"
	"containment/internal/logging"
	"containment/internal/remote"
	"containment/internal/services/containment"
	"containment/internal/services/run"
	"containment/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr           string
		strategy       string
		parallelCutoff int
		maxEntities    int
		logLevel       string
		logFormat      string
	)
	cmd := &cobra.Command{
		Use:          "containmentd",
		Short:        "HTTP solve server for containment problems",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(os.Stderr, logLevel, logFormat)
			if err != nil {
				return err
			}
			s, err := domain.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			solver := containment.New(logger, containment.Options{Strategy: s, ParallelCutoff: parallelCutoff})
			runs := run.New(solver, store.NewMemoryStore(), logger)
			srv := &http.Server{
				Addr:              addr,
				Handler:           remote.NewHandler(runs, logger, maxEntities),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				logger.Info("containmentd listening", "addr", addr, "strategy", s.String())
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return fmt.Errorf("serving on %s: %w", addr, err)
			case <-cmd.Context().Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.StrategyLinear), "matching strategy: linear or indexed")
	cmd.Flags().IntVar(&parallelCutoff, "parallel-cutoff", 0, "sort concurrently above this many entities (0 = sequential)")
	cmd.Flags().IntVar(&maxEntities, "max-entities", input.DefaultMaxEntities, "maximum motes and devices per problem")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	return cmd
}
