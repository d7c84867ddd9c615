package interfaces

import (
	"context"

	domaintypes "containment/internal/domain/types"
)

// RemoteClient is how we talk to a containmentd solve server.
type RemoteClient interface {
	Solve(ctx context.Context, p domaintypes.Problem) (domaintypes.Report, error)
	FetchReport(ctx context.Context, id domaintypes.ReportID) (domaintypes.Report, error)
}
