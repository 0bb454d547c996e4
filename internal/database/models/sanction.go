package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SanctionModel handles database operations for sanctions.
type SanctionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSanction creates a new SanctionModel instance.
func NewSanction(db *bun.DB, logger *zap.Logger) *SanctionModel {
	return &SanctionModel{
		db:     db,
		logger: logger.Named("db_sanction"),
	}
}

// GetByID retrieves a sanction by its id.
func (m *SanctionModel) GetByID(ctx context.Context, id int64) (*types.Sanction, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Sanction, error) {
		var sanction types.Sanction

		err := m.db.NewSelect().
			Model(&sanction).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrSanctionNotFound
			}

			return nil, fmt.Errorf("failed to get sanction: %w", err)
		}

		return &sanction, nil
	})
}

// GetByUser retrieves the sanctions recorded against a user, newest first.
// With activeOnly, overdue bounded sanctions are excluded even when the
// expiry worker has not deactivated them yet; expiry is effective at the end
// date, not at the sweep.
func (m *SanctionModel) GetByUser(ctx context.Context, userID uint64, activeOnly bool) ([]*types.Sanction, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Sanction, error) {
		var sanctions []*types.Sanction

		query := m.db.NewSelect().
			Model(&sanctions).
			Where("user_id = ?", userID).
			Order("created_at DESC")

		if activeOnly {
			query = query.
				Where("is_active = TRUE").
				Where("(is_permanent = TRUE OR end_at > ?)", time.Now())
		}

		if err := query.Scan(ctx); err != nil {
			return nil, fmt.Errorf("failed to get sanctions for user: %w", err)
		}

		return sanctions, nil
	})
}

// GetDueIDs retrieves the ids of active bounded sanctions whose end date has
// passed, oldest first. The expiry worker processes them in batches.
func (m *SanctionModel) GetDueIDs(ctx context.Context, now time.Time, limit int) ([]int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]int64, error) {
		var ids []int64

		err := m.db.NewSelect().
			Model((*types.Sanction)(nil)).
			Column("id").
			Where("is_active = TRUE").
			Where("is_permanent = FALSE").
			Where("end_at <= ?", now).
			Order("end_at ASC").
			Limit(limit).
			Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get due sanctions: %w", err)
		}

		return ids, nil
	})
}
