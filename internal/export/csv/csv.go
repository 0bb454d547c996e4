package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arbiterhq/arbiter/internal/export/types"
)

// FileName is the archive file this exporter produces.
const FileName = "audit_log.csv"

// Exporter handles exporting audit records to a csv file.
type Exporter struct {
	outDir string
}

// New creates a new csv exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes the records to a fresh csv file, replacing any previous
// archive in the directory.
func (e *Exporter) Export(records []*types.ArchiveRecord) error {
	path := filepath.Join(e.outDir, FileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing file %s: %w", FileName, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"sequence", "actor_id", "actor_role", "action", "target_id", "details", "created_at"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.FormatInt(record.Sequence, 10),
			strconv.FormatUint(record.ActorID, 10),
			record.ActorRole,
			record.Action,
			strconv.FormatInt(record.TargetID, 10),
			record.Details,
			record.CreatedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}
