package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ActionModel handles database operations for moderation actions.
type ActionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewAction creates a new ActionModel instance.
func NewAction(db *bun.DB, logger *zap.Logger) *ActionModel {
	return &ActionModel{
		db:     db,
		logger: logger.Named("db_action"),
	}
}

// GetByID retrieves a moderation action by its id.
func (m *ActionModel) GetByID(ctx context.Context, id int64) (*types.ModerationAction, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ModerationAction, error) {
		var action types.ModerationAction

		err := m.db.NewSelect().
			Model(&action).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrActionNotFound
			}

			return nil, fmt.Errorf("failed to get action: %w", err)
		}

		return &action, nil
	})
}

// GetByTargetUser retrieves the actions recorded against a user, newest
// first.
func (m *ActionModel) GetByTargetUser(ctx context.Context, userID uint64, limit int) ([]*types.ModerationAction, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ModerationAction, error) {
		var actions []*types.ModerationAction

		err := m.db.NewSelect().
			Model(&actions).
			Where("target_user_id = ?", userID).
			Order("created_at DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get actions for user: %w", err)
		}

		return actions, nil
	})
}
