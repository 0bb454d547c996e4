package migrations

import (
	"context"
	"fmt"

	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Report)(nil),
			(*types.ModerationAction)(nil),
			(*types.Sanction)(nil),
			(*types.Appeal)(nil),
			(*types.AuditLogEntry)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.AuditLogEntry)(nil),
			(*types.Appeal)(nil),
			(*types.Sanction)(nil),
			(*types.ModerationAction)(nil),
			(*types.Report)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table for %T: %w", model, err)
			}
		}

		return nil
	})
}
