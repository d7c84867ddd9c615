package interfaces

import (
	"context"

	domaintypes "containment/internal/domain/types"
)

// ContainmentService computes the uncontained volume for a problem.
type ContainmentService interface {
	Solve(ctx context.Context, p domaintypes.Problem) (domaintypes.Result, error)
}

// RunOptions controls how a run interacts with the report store.
type RunOptions struct {
	// Save persists the resulting report.
	Save bool
	// Cached returns a stored report with the same fingerprint instead of solving.
	Cached bool
}

// RunService solves a problem and produces a report, optionally persisting it.
type RunService interface {
	Run(ctx context.Context, p domaintypes.Problem, opts RunOptions) (domaintypes.Report, error)
	Report(id domaintypes.ReportID) (domaintypes.Report, error)
	Reports() ([]domaintypes.Report, error)
}
