package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"containment/internal/domain"
)

const (
	indexFilename = "reports.json"
	reportsDir    = "reports"
)

// ErrReportNotFound is returned when an indexed report blob is missing.
var ErrReportNotFound = errors.New("report not found")

type indexEntry struct {
	Fingerprint domain.Fingerprint `json:"fingerprint"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ReportFileStore persists run reports under a directory.
type ReportFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewReportFileStore returns a ReportFileStore rooted at dir.
func NewReportFileStore(dir string) *ReportFileStore {
	return &ReportFileStore{dir: dir}
}

// SaveReport writes the report blob and records it in the index.
func (s *ReportFileStore) SaveReport(r domain.Report) error {
	if r.ID == "" {
		return errors.New("report has no id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Join(s.dir, reportsDir), 0o700); err != nil {
		return err
	}
	b, err := EncodeReport(r)
	if err != nil {
		return fmt.Errorf("encoding report %s: %w", r.ID, err)
	}
	if err := replaceFile(s.blobPath(r.ID), b, 0o600); err != nil {
		return err
	}

	index, err := s.readIndex()
	if err != nil {
		return err
	}
	index[r.ID] = indexEntry{Fingerprint: r.Fingerprint, CreatedAt: r.CreatedAt}
	return storeIndex(filepath.Join(s.dir, indexFilename), index)
}

// LoadReport retrieves a stored report by id.
func (s *ReportFileStore) LoadReport(id domain.ReportID) (domain.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return domain.Report{}, false, err
	}
	if _, ok := index[id]; !ok {
		return domain.Report{}, false, nil
	}
	r, err := s.loadBlob(id)
	if err != nil {
		return domain.Report{}, false, err
	}
	return r, true, nil
}

// FindReport returns the most recent report whose problem has fingerprint fp.
func (s *ReportFileStore) FindReport(fp domain.Fingerprint) (domain.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return domain.Report{}, false, err
	}
	var (
		best   domain.ReportID
		bestAt time.Time
	)
	for id, e := range index {
		if e.Fingerprint != fp {
			continue
		}
		if best == "" || e.CreatedAt.After(bestAt) {
			best, bestAt = id, e.CreatedAt
		}
	}
	if best == "" {
		return domain.Report{}, false, nil
	}
	r, err := s.loadBlob(best)
	if err != nil {
		return domain.Report{}, false, err
	}
	return r, true, nil
}

// ListReports returns all stored reports, oldest first.
func (s *ReportFileStore) ListReports() ([]domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Report, 0, len(index))
	for id := range index {
		r, err := s.loadBlob(id)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	sortReports(out)
	return out, nil
}

func (s *ReportFileStore) readIndex() (reportIndex, error) {
	index, err := loadIndex(filepath.Join(s.dir, indexFilename))
	if err != nil {
		return nil, fmt.Errorf("reading report index: %w", err)
	}
	return index, nil
}

func (s *ReportFileStore) loadBlob(id domain.ReportID) (domain.Report, error) {
	b, ok, err := readOptional(s.blobPath(id))
	if err != nil {
		return domain.Report{}, err
	}
	if !ok {
		return domain.Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	r, err := DecodeReport(b)
	if err != nil {
		return domain.Report{}, fmt.Errorf("decoding report %s: %w", id, err)
	}
	return r, nil
}

func (s *ReportFileStore) blobPath(id domain.ReportID) string {
	return filepath.Join(s.dir, reportsDir, filepath.Base(string(id))+".cbor")
}

func sortReports(rs []domain.Report) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].CreatedAt.Before(rs[j].CreatedAt)
	})
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)
