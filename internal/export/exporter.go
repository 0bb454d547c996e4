// Package export builds offline archives of the audit ledger.
package export

import (
	"context"
	"errors"
	"fmt"

	dbTypes "github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/export/csv"
	"github.com/arbiterhq/arbiter/internal/export/sqlite"
	"github.com/arbiterhq/arbiter/internal/export/types"
	"github.com/arbiterhq/arbiter/internal/setup"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format represents a supported archive format.
type Format string

const (
	FormatSQLite Format = "sqlite"
	FormatCSV    Format = "csv"
)

// EngineVersion is the version of the archive layout. Bump on breaking
// changes to the produced files.
const EngineVersion = "1.0.0"

// batchSize is how many audit rows are pulled from the database at a time.
const batchSize = 5000

// Config holds the configuration for an archive run.
type Config struct {
	// Formats to produce; empty means every supported format.
	Formats []Format
	// IncludeDetails carries the structured detail payloads into the
	// archive instead of leaving the column empty.
	IncludeDetails bool
	// Filter restricts which ledger entries are archived.
	Filter dbTypes.AuditFilter
}

// Exporter handles archiving the audit ledger to files.
type Exporter struct {
	app    *setup.App
	outDir string
	config *Config
}

// New creates a new exporter instance.
func New(app *setup.App, outDir string, config *Config) *Exporter {
	if len(config.Formats) == 0 {
		config.Formats = []Format{FormatSQLite, FormatCSV}
	}

	return &Exporter{
		app:    app,
		outDir: outDir,
		config: config,
	}
}

// ExportAll streams the matching ledger entries out of the database and
// writes them in every requested format.
func (e *Exporter) ExportAll(ctx context.Context) error {
	fmt.Printf("Starting audit archive:\n")
	fmt.Printf("  Output Directory: %s\n", e.outDir)
	fmt.Printf("  Engine Version: %s\n", EngineVersion)
	fmt.Printf("  Include Details: %v\n\n", e.config.IncludeDetails)

	fmt.Printf("Fetching audit entries from database...\n")

	var records []*types.ArchiveRecord

	err := e.app.DB.Model().Audit().ExportRange(
		ctx, e.config.Filter, batchSize,
		func(entries []*dbTypes.AuditLogEntry) error {
			for _, entry := range entries {
				record, err := types.FromEntry(entry, e.config.IncludeDetails)
				if err != nil {
					return fmt.Errorf("failed to flatten entry %d: %w", entry.Sequence, err)
				}

				records = append(records, record)
			}

			return nil
		})
	if err != nil {
		return err
	}

	fmt.Printf("Found %d entries to archive\n\n", len(records))

	for _, format := range e.config.Formats {
		fmt.Printf("Writing %s archive...\n", format)

		switch format {
		case FormatSQLite:
			if err := sqlite.New(e.outDir).Export(records); err != nil {
				return fmt.Errorf("sqlite archive failed: %w", err)
			}
		case FormatCSV:
			if err := csv.New(e.outDir).Export(records); err != nil {
				return fmt.Errorf("csv archive failed: %w", err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
		}
	}

	fmt.Printf("\nArchive completed successfully\n")

	return nil
}
