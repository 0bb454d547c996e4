package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/arbiterhq/arbiter/internal/export"
	"github.com/arbiterhq/arbiter/internal/setup"
	"github.com/arbiterhq/arbiter/internal/setup/telemetry"
	"github.com/urfave/cli/v3"
)

// ExportLogDir specifies where export log files are stored.
const ExportLogDir = "logs/export_logs"

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "export",
		Usage: "Archive the audit ledger to file formats",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "exports",
				Usage:   "Base output directory for archive files",
			},
			&cli.StringSliceFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Archive formats to produce (sqlite, csv)",
			},
			&cli.BoolFlag{
				Name:  "details",
				Usage: "Include structured detail payloads in the archive",
			},
			&cli.UintFlag{
				Name:  "actor",
				Usage: "Only archive entries recorded for this actor id",
			},
			&cli.StringFlag{
				Name:  "action",
				Usage: "Only archive entries for this audit action",
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "Start of the archived time range (RFC 3339)",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "End of the archived time range (RFC 3339)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			app, err := setup.InitializeApp(ctx, telemetry.ServiceExport, ExportLogDir, setup.Options{})
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer app.Cleanup(ctx)

			// Each run gets its own timestamped output directory.
			timestamp := time.Now().UTC().Format("2006-01-02_150405")

			outDir := filepath.Join(c.String("output"), timestamp)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			config, err := getExportConfig(c)
			if err != nil {
				return fmt.Errorf("failed to get export configuration: %w", err)
			}

			if err := export.New(app, outDir, config).ExportAll(ctx); err != nil {
				return fmt.Errorf("failed to export data: %w", err)
			}

			return nil
		},
	}

	return app.Run(context.Background(), os.Args)
}

// getExportConfig builds the archive configuration from CLI flags.
func getExportConfig(c *cli.Command) (*export.Config, error) {
	config := &export.Config{
		IncludeDetails: c.Bool("details"),
		Filter: types.AuditFilter{
			ActorID: c.Uint("actor"),
		},
	}

	for flag, date := range map[string]*time.Time{
		"start": &config.Filter.StartDate,
		"end":   &config.Filter.EndDate,
	} {
		value := c.String(flag)
		if value == "" {
			continue
		}

		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s time %q: %w", flag, value, err)
		}

		*date = parsed
	}

	for _, format := range c.StringSlice("format") {
		config.Formats = append(config.Formats, export.Format(format))
	}

	if name := c.String("action"); name != "" {
		action, err := enum.AuditActionString(name)
		if err != nil {
			return nil, fmt.Errorf("unknown audit action %q: %w", name, err)
		}

		config.Filter.Action = action
	}

	return config, nil
}
