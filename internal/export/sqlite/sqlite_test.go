package sqlite_test

import (
	"path/filepath"
	"testing"

	exportSQLite "github.com/arbiterhq/arbiter/internal/export/sqlite"
	"github.com/arbiterhq/arbiter/internal/export/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// verifySQLiteFile reads an archive database and verifies its contents match
// the expected records.
func verifySQLiteFile(t *testing.T, path string, expected []*types.ArchiveRecord) {
	t.Helper()

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	require.NoError(t, err)
	defer conn.Close()

	var records []*types.ArchiveRecord

	err = sqlitex.ExecuteTransient(conn,
		"SELECT sequence, actor_id, actor_role, action, target_id, details, created_at FROM audit_log ORDER BY sequence",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				records = append(records, &types.ArchiveRecord{
					Sequence:  stmt.ColumnInt64(0),
					ActorID:   uint64(stmt.ColumnInt64(1)),
					ActorRole: stmt.ColumnText(2),
					Action:    stmt.ColumnText(3),
					TargetID:  stmt.ColumnInt64(4),
					Details:   stmt.ColumnText(5),
					CreatedAt: stmt.ColumnText(6),
				})
				return nil
			},
		})
	require.NoError(t, err)

	require.Len(t, records, len(expected))

	for i, want := range expected {
		assert.Equal(t, want, records[i])
	}
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
					Action:    "SanctionCreated",
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
			exporter := exportSQLite.New(tempDir)

			err := exporter.Export(tt.records)
			require.NoError(t, err)

			verifySQLiteFile(t, filepath.Join(tempDir, exportSQLite.FileName), tt.records)
		})
	}
}
