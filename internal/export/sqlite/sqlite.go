package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arbiterhq/arbiter/internal/export/types"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// FileName is the archive file this exporter produces.
const FileName = "audit_log.db"

// Exporter handles exporting audit records to a SQLite database.
type Exporter struct {
	outDir string
}

// New creates a new SQLite exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes the records to a fresh SQLite database, replacing any
// previous archive in the directory.
func (e *Exporter) Export(records []*types.ArchiveRecord) error {
	path := filepath.Join(e.outDir, FileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing file %s: %w", FileName, err)
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate|sqlite.OpenReadWrite)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	defer conn.Close()

	err = sqlitex.Execute(conn, `
		CREATE TABLE audit_log (
			sequence INTEGER PRIMARY KEY,
			actor_id INTEGER NOT NULL,
			actor_role TEXT NOT NULL,
			action TEXT NOT NULL,
			target_id INTEGER NOT NULL,
			details TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	const batchSize = 1000
	for i := 0; i < len(records); i += batchSize {
		end := min(i+batchSize, len(records))

		if err := sqlitex.Execute(conn, "BEGIN TRANSACTION", nil); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		for _, record := range records[i:end] {
			err = sqlitex.Execute(conn,
				"INSERT INTO audit_log (sequence, actor_id, actor_role, action, target_id, details, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
				&sqlitex.ExecOptions{
					Args: []any{
						record.Sequence,
						int64(record.ActorID),
						record.ActorRole,
						record.Action,
						record.TargetID,
						record.Details,
						record.CreatedAt,
					},
				})
			if err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}

		if err := sqlitex.Execute(conn, "COMMIT", nil); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return nil
}
