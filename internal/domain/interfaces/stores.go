package interfaces

import domaintypes "containment/internal/domain/types"

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(r domaintypes.Report) error
	LoadReport(id domaintypes.ReportID) (domaintypes.Report, bool, error)
	FindReport(fp domaintypes.Fingerprint) (domaintypes.Report, bool, error)
	ListReports() ([]domaintypes.Report, error)
}
