package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"containment/internal/digest"
	"containment/internal/domain"
	"containment/internal/store"
)

var errNoStore = errors.New("no report store configured")

// Service produces reports from problems.
type Service struct {
	solver domain.ContainmentService
	rs     domain.ReportStore
	log    *slog.Logger

	now   func() time.Time
	newID func() domain.ReportID
}

// New returns a Service. rs may be nil when reports are never saved or
// looked up.
func New(solver domain.ContainmentService, rs domain.ReportStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		solver: solver,
		rs:     rs,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() domain.ReportID { return domain.ReportID(uuid.NewString()) },
	}
}

// Run solves p and returns its report.
func (s *Service) Run(ctx context.Context, p domain.Problem, opts domain.RunOptions) (domain.Report, error) {
	if (opts.Save || opts.Cached) && s.rs == nil {
		return domain.Report{}, errNoStore
	}

	fp, err := digest.Fingerprint(p)
	if err != nil {
		return domain.Report{}, err
	}

	if opts.Cached {
		r, ok, err := s.rs.FindReport(fp)
		if err != nil {
			return domain.Report{}, fmt.Errorf("looking up report for %s: %w", fp.Short(), err)
		}
		if ok {
			s.log.Info("reusing stored report", slog.String("id", r.ID.String()), slog.String("fingerprint", fp.Short()))
			return r, nil
		}
	}

	res, err := s.solver.Solve(ctx, p)
	if err != nil {
		return domain.Report{}, err
	}
	r := domain.Report{
		ID:          s.newID(),
		Fingerprint: fp,
		CreatedAt:   s.now(),
		Motes:       len(p.Motes),
		Devices:     len(p.Devices),
		Result:      res,
	}

	if opts.Save {
		if err := s.rs.SaveReport(r); err != nil {
			return domain.Report{}, fmt.Errorf("saving report %s: %w", r.ID, err)
		}
		s.log.Info("saved report", slog.String("id", r.ID.String()))
	}
	return r, nil
}

// Report returns a stored report.
func (s *Service) Report(id domain.ReportID) (domain.Report, error) {
	if s.rs == nil {
		return domain.Report{}, errNoStore
	}
	r, ok, err := s.rs.LoadReport(id)
	if err != nil {
		return domain.Report{}, err
	}
	if !ok {
		return domain.Report{}, fmt.Errorf("%w: %s", store.ErrReportNotFound, id)
	}
	return r, nil
}

// Reports lists stored reports, oldest first.
func (s *Service) Reports() ([]domain.Report, error) {
	if s.rs == nil {
		return nil, errNoStore
	}
	return s.rs.ListReports()
}

var _ domain.RunService = (*Service)(nil)
