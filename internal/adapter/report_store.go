package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

// Current schema version - increment when the payload format changes.
const reportSchemaVersion uint16 = 1

const reportFileName = "reports.mp"

type reportPayload struct {
	Schema  uint16
	Reports []m.FileReport
}

// ReportStore persists and retrieves scan reports.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.FileReport) error
	LoadReports(dir m.Path) ([]m.FileReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore backed by msgpack files on disk.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// SaveReports serializes reports into <dir>/reports.mp, creating dir when
// missing.
func (s *reportStore) SaveReports(dir m.Path, reports []m.FileReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("creating reports directory: %w", err)
	}

	payload := reportPayload{Schema: reportSchemaVersion, Reports: reports}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("encoding reports: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// LoadReports reads <dir>/reports.mp and rejects payloads written by another
// schema version.
func (s *reportStore) LoadReports(dir m.Path) ([]m.FileReport, error) {
	path := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var payload reportPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if payload.Schema != reportSchemaVersion {
		return nil, fmt.Errorf("unsupported report schema %d (want %d)", payload.Schema, reportSchemaVersion)
	}

	return payload.Reports, nil
}
