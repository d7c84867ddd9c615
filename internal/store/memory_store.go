package store

import (
	"errors"
	"sync"

	"containment/internal/domain"
)

// MemoryStore keeps reports in memory; state is lost on process exit.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[domain.ReportID]domain.Report
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[domain.ReportID]domain.Report)}
}

func (s *MemoryStore) SaveReport(r domain.Report) error {
	if r.ID == "" {
		return errors.New("report has no id")
	}
	s.mu.Lock()
	s.reports[r.ID] = r
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadReport(id domain.ReportID) (domain.Report, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	return r, ok, nil
}

func (s *MemoryStore) FindReport(fp domain.Fingerprint) (domain.Report, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		best  domain.Report
		found bool
	)
	for _, r := range s.reports {
		if r.Fingerprint != fp {
			continue
		}
		if !found || r.CreatedAt.After(best.CreatedAt) {
			best, found = r, true
		}
	}
	return best, found, nil
}

func (s *MemoryStore) ListReports() ([]domain.Report, error) {
	s.mu.RLock()
	out := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	s.mu.RUnlock()
	sortReports(out)
	return out, nil
}

var _ domain.ReportStore = (*MemoryStore)(nil)
