package app

import (
	"io"
	"log/slog"
	"net/http"

	"containment/internal/domain"
	"containment/internal/logging"
	"containment/internal/remote"
	"containment/internal/services/containment"
	"containment/internal/services/run"
	"containment/internal/store"
)

// Wire bundles the logger, stores, services and clients for the CLI.
type Wire struct {
	Config  Config
	Log     *slog.Logger
	Solver  domain.ContainmentService
	Reports domain.ReportStore
	Runs    domain.RunService
	Remote  domain.RemoteClient // nil when no remote URL is configured
	HTTP    *http.Client
}

// NewWire constructs the dependency graph from cfg. Log output goes to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := domain.ParseStrategy(cfg.Strategy)

	logger, err := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	// File-based report store under the home directory
	var reports domain.ReportStore
	if cfg.Home != "" {
		reports = store.NewReportFileStore(cfg.Home)
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var rc domain.RemoteClient
	if cfg.RemoteURL != "" {
		rc = remote.NewHTTP(cfg.RemoteURL, httpClient)
	}

	solver := containment.New(logger, containment.Options{
		Strategy:       strategy,
		ParallelCutoff: cfg.ParallelCutoff,
	})

	return &Wire{
		Config:  cfg,
		Log:     logger,
		Solver:  solver,
		Reports: reports,
		Runs:    run.New(solver, reports, logger),
		Remote:  rc,
		HTTP:    httpClient,
	}, nil
}
