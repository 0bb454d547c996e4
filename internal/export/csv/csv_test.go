package csv_test

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	exportCSV "github.com/arbiterhq/arbiter/internal/export/csv"
	"github.com/arbiterhq/arbiter/internal/export/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyCSVFile reads a CSV file and verifies its contents match the expected records.
func verifyCSVFile(t *testing.T, path string, expected []*types.ArchiveRecord) {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"sequence", "actor_id", "actor_role", "action", "target_id", "details", "created_at"},
		header)

	for _, want := range expected {
		row, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, strconv.FormatInt(want.Sequence, 10), row[0])
		assert.Equal(t, strconv.FormatUint(want.ActorID, 10), row[1])
		assert.Equal(t, want.ActorRole, row[2])
		assert.Equal(t, want.Action, row[3])
		assert.Equal(t, strconv.FormatInt(want.TargetID, 10), row[4])
		assert.Equal(t, want.Details, row[5])
		assert.Equal(t, want.CreatedAt, row[6])
	}

	_, err = reader.Read()
	assert.Equal(t, io.EOF, err, "expected EOF after last record")
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []*types.ArchiveRecord
	}{
		{
			name: "basic export",
			records: []*types.ArchiveRecord{
				{
					Sequence:  1,
					ActorID:   42,
					ActorRole: "Member",
					Action:    "ReportSubmitted",
					TargetID:  100,
					Details:   `{"category":"Spam"}`,
					CreatedAt: "2025-08-12T10:00:00Z",
				},
				{
					Sequence:  2,
					ActorID:   7,
					ActorRole: "Moderator",
					Action:    "ActionApplied",
					TargetID:  5,
					CreatedAt: "2025-08-12T10:05:00Z",
				},
			},
		},
		{
			name:    "empty records",
			records: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tempDir := t.TempDir()
			exporter := exportCSV.New(tempDir)

			err := exporter.Export(tt.records)
			require.NoError(t, err)

			verifyCSVFile(t, filepath.Join(tempDir, exportCSV.FileName), tt.records)
		})
	}
}

func TestExporter_Export_ReplacesExisting(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	exporter := exportCSV.New(tempDir)

	first := []*types.ArchiveRecord{
		{Sequence: 1, ActorRole: "Member", Action: "ReportSubmitted", CreatedAt: "2025-08-12T10:00:00Z"},
		{Sequence: 2, ActorRole: "Member", Action: "ReportSubmitted", CreatedAt: "2025-08-12T10:01:00Z"},
	}
	require.NoError(t, exporter.Export(first))

	second := []*types.ArchiveRecord{
		{Sequence: 3, ActorRole: "Administrator", Action: "ActionReversed", CreatedAt: "2025-08-12T11:00:00Z"},
	}
	require.NoError(t, exporter.Export(second))

	verifyCSVFile(t, filepath.Join(tempDir, exportCSV.FileName), second)
}
