package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// AppealModel handles database operations for appeals.
type AppealModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewAppeal creates a new AppealModel instance.
func NewAppeal(db *bun.DB, logger *zap.Logger) *AppealModel {
	return &AppealModel{
		db:     db,
		logger: logger.Named("db_appeal"),
	}
}

// GetByID retrieves an appeal by its id.
func (m *AppealModel) GetByID(ctx context.Context, id int64) (*types.Appeal, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Appeal, error) {
		var appeal types.Appeal

		err := m.db.NewSelect().
			Model(&appeal).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrAppealNotFound
			}

			return nil, fmt.Errorf("failed to get appeal: %w", err)
		}

		return &appeal, nil
	})
}

// HasPending checks whether the appellant already has a pending appeal for
// the given target.
func (m *AppealModel) HasPending(ctx context.Context, appellantID uint64, target types.AppealTarget) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		query := m.db.NewSelect().
			Model((*types.Appeal)(nil)).
			Where("appellant_id = ?", appellantID).
			Where("status = ?", enum.AppealStatusPending)

		if target.ActionID != 0 {
			query = query.Where("action_id = ?", target.ActionID)
		} else {
			query = query.Where("sanction_id = ?", target.SanctionID)
		}

		exists, err := query.Exists(ctx)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("failed to check for pending appeal: %w", err)
		}

		return exists, nil
	})
}

// GetPending retrieves pending appeals, oldest first, along with the total
// pending count.
func (m *AppealModel) GetPending(ctx context.Context, limit, offset int) ([]*types.Appeal, int, error) {
	type pendingResult struct {
		appeals []*types.Appeal
		total   int
	}

	result, err := dbretry.Operation(ctx, func(ctx context.Context) (pendingResult, error) {
		var appeals []*types.Appeal

		total, err := m.db.NewSelect().
			Model(&appeals).
			Where("status = ?", enum.AppealStatusPending).
			Order("created_at ASC").
			Limit(limit).
			Offset(offset).
			ScanAndCount(ctx)
		if err != nil {
			return pendingResult{}, fmt.Errorf("failed to get pending appeals: %w", err)
		}

		return pendingResult{appeals: appeals, total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	return result.appeals, result.total, nil
}
