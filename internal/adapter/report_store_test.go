package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

func sampleReports() []m.FileReport {
	return []m.FileReport{
		{
			Path:      "app/main.py",
			Qualifier: []string{"app", "main"},
			Mode:      m.ModeStrict,
			Metadata: m.Metadata{
				Strict:    true,
				Version:   3,
				LineCount: 2,
				Suppressions: []m.Suppression{
					{
						Kind:        m.SuppressionIgnore,
						IgnoredLine: 2,
						Codes:       []int{9},
						Location:    m.NewLocation("app/main.py", 2, 9, 24),
					},
				},
			},
		},
	}
}

func TestReportStore_RoundTrip(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	store := NewReportStore()

	require.NoError(t, store.SaveReports(dir, sampleReports()))

	loaded, err := store.LoadReports(dir)
	require.NoError(t, err)
	assert.Equal(t, sampleReports(), loaded)
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadReports(m.Path(t.TempDir()))
	require.Error(t, err)
}

func TestReportStore_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()

	data, err := msgpack.Marshal(&reportPayload{Schema: reportSchemaVersion + 1})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, reportFileName), data, 0o600))

	store := NewReportStore()

	_, err = store.LoadReports(m.Path(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report schema")
}
