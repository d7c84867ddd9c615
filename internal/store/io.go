package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"containment/internal/domain"
)

// reportIndex maps report ids to the metadata needed for lookups without
// decoding every blob.
type reportIndex map[domain.ReportID]indexEntry

// loadIndex reads the JSON index at path. A missing index is empty.
func loadIndex(path string) (reportIndex, error) {
	index := reportIndex{}
	b, ok, err := readOptional(path)
	if err != nil || !ok {
		return index, err
	}
	if err := json.Unmarshal(b, &index); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return index, nil
}

// storeIndex rewrites the JSON index at path.
func storeIndex(path string, index reportIndex) error {
	b, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return replaceFile(path, b, 0o600)
}

// readOptional reads path, reporting ok=false when it does not exist.
func readOptional(path string) (b []byte, ok bool, err error) {
	b, err = os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return b, true, nil
}

// replaceFile stages b in a sibling temp file and renames it over path, so
// readers see either the old contents or the new ones.
func replaceFile(path string, b []byte, mode os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(b); err == nil {
		err = f.Chmod(mode)
	}
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
