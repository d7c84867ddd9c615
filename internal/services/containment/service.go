package containment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"containment/internal/domain"
	"containment/internal/matcher"
	"containment/internal/ranking"
	"containment/internal/volume"
)

// Options tunes the solver.
type Options struct {
	Strategy domain.Strategy
	// ParallelCutoff enables concurrent sorting when positive. Ranges longer
	// than the cutoff are split across goroutines.
	ParallelCutoff int
}

// Service solves containment problems.
type Service struct {
	log  *slog.Logger
	opts Options
}

// New returns a Service. A nil logger discards output.
func New(log *slog.Logger, opts Options) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.Strategy == "" {
		opts.Strategy = domain.StrategyLinear
	}
	return &Service{log: log, opts: opts}
}

// Solve returns the uncontained volume of p together with the mote-to-device
// assignments that produced it.
func (s *Service) Solve(ctx context.Context, p domain.Problem) (domain.Result, error) {
	start := time.Now()

	motes, devices, err := s.rank(ctx, volume.Motes(p.Motes), volume.Devices(p.Devices))
	if err != nil {
		return domain.Result{}, fmt.Errorf("sorting volumes: %w", err)
	}
	out, err := matcher.Match(ctx, motes, devices, s.opts.Strategy)
	if err != nil {
		return domain.Result{}, fmt.Errorf("matching motes: %w", err)
	}

	s.log.Debug("solved",
		slog.Int("motes", len(p.Motes)),
		slog.Int("devices", len(p.Devices)),
		slog.Int("placed", len(out.Assignments)),
		slog.String("strategy", s.opts.Strategy.String()),
		slog.Float64("uncontained", out.Uncontained),
		slog.Duration("elapsed", time.Since(start)),
	)
	return domain.Result{
		Uncontained: out.Uncontained,
		Assignments: out.Assignments,
		Unplaced:    out.Unplaced,
		Strategy:    s.opts.Strategy,
	}, nil
}

func (s *Service) rank(ctx context.Context, motes, devices []domain.VolumeIndex) ([]domain.VolumeIndex, []domain.VolumeIndex, error) {
	if s.opts.ParallelCutoff <= 0 {
		return ranking.Descending(motes), ranking.Descending(devices), nil
	}

	var sortedMotes, sortedDevices []domain.VolumeIndex
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sortedMotes, err = ranking.DescendingParallel(gctx, motes, s.opts.ParallelCutoff)
		return err
	})
	g.Go(func() error {
		var err error
		sortedDevices, err = ranking.DescendingParallel(gctx, devices, s.opts.ParallelCutoff)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sortedMotes, sortedDevices, nil
}

var _ domain.ContainmentService = (*Service)(nil)
