package models

import (
	"context"
	"fmt"

	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// AuditModel handles database operations for the append-only audit log.
type AuditModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewAudit creates a new AuditModel instance.
func NewAudit(db *bun.DB, logger *zap.Logger) *AuditModel {
	return &AuditModel{
		db:     db,
		logger: logger.Named("db_audit"),
	}
}

// Append writes a single audit entry. Entries are never updated or deleted.
func (m *AuditModel) Append(ctx context.Context, entry *types.AuditLogEntry) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		if _, err := m.db.NewInsert().Model(entry).Exec(ctx); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}

		return nil
	})
}

// Search retrieves audit entries matching the filter in ascending sequence
// order, along with the total match count.
func (m *AuditModel) Search(
	ctx context.Context, filter types.AuditFilter, limit, offset int,
) ([]*types.AuditLogEntry, int, error) {
	type searchResult struct {
		entries []*types.AuditLogEntry
		total   int
	}

	result, err := dbretry.Operation(ctx, func(ctx context.Context) (searchResult, error) {
		var entries []*types.AuditLogEntry

		query := m.db.NewSelect().Model(&entries)

		if filter.ActorID != 0 {
			query = query.Where("actor_id = ?", filter.ActorID)
		}
		if filter.Action != enum.AuditActionAll {
			query = query.Where("action = ?", filter.Action)
		}
		if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
			query = query.Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
		}

		total, err := query.
			Order("sequence ASC").
			Limit(limit).
			Offset(offset).
			ScanAndCount(ctx)
		if err != nil {
			return searchResult{}, fmt.Errorf("failed to search audit entries: %w", err)
		}

		return searchResult{entries: entries, total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	return result.entries, result.total, nil
}

// ExportRange streams every audit entry in sequence order in fixed-size
// batches, invoking fn per batch. Used by the archive exporter.
func (m *AuditModel) ExportRange(
	ctx context.Context, filter types.AuditFilter, batchSize int,
	fn func(entries []*types.AuditLogEntry) error,
) error {
	var cursor int64

	for {
		entries, err := dbretry.Operation(ctx, func(ctx context.Context) ([]*types.AuditLogEntry, error) {
			var batch []*types.AuditLogEntry

			query := m.db.NewSelect().
				Model(&batch).
				Where("sequence > ?", cursor)

			if filter.ActorID != 0 {
				query = query.Where("actor_id = ?", filter.ActorID)
			}
			if filter.Action != enum.AuditActionAll {
				query = query.Where("action = ?", filter.Action)
			}
			if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
				query = query.Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
			}

			err := query.
				Order("sequence ASC").
				Limit(batchSize).
				Scan(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to export audit entries: %w", err)
			}

			return batch, nil
		})
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}

		if err := fn(entries); err != nil {
			return err
		}

		cursor = entries[len(entries)-1].Sequence
	}
}
