package service

import (
	"context"
	"strings"
	"time"

	"github.com/arbiterhq/arbiter/internal/auth"
	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/arbiterhq/arbiter/internal/database/models"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/sourcegraph/conc/pool"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SanctionService handles the sanction lifecycle. The reason text and the
// lifecycle state are independent facets; amending one never touches the
// other.
type SanctionService struct {
	db     *bun.DB
	model  *models.SanctionModel
	logger *zap.Logger
}

// NewSanction creates a new sanction service.
func NewSanction(db *bun.DB, model *models.SanctionModel, logger *zap.Logger) *SanctionService {
	return &SanctionService{
		db:     db,
		model:  model,
		logger: logger.Named("sanction_service"),
	}
}

// Get retrieves a sanction for a staff actor.
func (s *SanctionService) Get(ctx context.Context, actor auth.Actor, sanctionID int64) (*types.Sanction, error) {
	if !actor.Role.IsStaff() {
		return nil, types.ErrForbidden
	}

	return s.model.GetByID(ctx, sanctionID)
}

// GetByUser retrieves the sanctions recorded against a user.
func (s *SanctionService) GetByUser(
	ctx context.Context, actor auth.Actor, userID uint64, activeOnly bool,
) ([]*types.Sanction, error) {
	if !actor.Role.IsStaff() {
		return nil, types.ErrForbidden
	}

	return s.model.GetByUser(ctx, userID, activeOnly)
}

// canManage reports whether the actor may amend or lift a sanction.
// Administrators manage every sanction; a moderator only manages those they
// issued.
func canManage(actor auth.Actor, sanction *types.Sanction) bool {
	if actor.IsAdmin() {
		return true
	}

	return actor.Role == enum.ActorRoleModerator && sanction.IssuerID == actor.ID
}

// AmendReason replaces the sanction's reason text. The lifecycle fields are
// never touched, so an amended lifted sanction stays lifted and an amended
// active one keeps its original end date.
func (s *SanctionService) AmendReason(
	ctx context.Context, actor auth.Actor, sanctionID int64, reason string,
) (*types.Sanction, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, types.ErrReasonRequired
	}

	sanction, err := s.model.GetByID(ctx, sanctionID)
	if err != nil {
		return nil, err
	}

	if !canManage(actor, sanction) {
		return nil, types.ErrForbidden
	}

	now := time.Now()
	previous := sanction.Reason

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*types.Sanction)(nil)).
			Set("reason = ?", reason).
			Set("updated_at = ?", now).
			Where("id = ?", sanctionID).
			Exec(ctx)
		if err != nil {
			return err
		}

		entry := &types.AuditLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    enum.AuditActionSanctionAmended,
			TargetID:  sanctionID,
			Details: map[string]any{
				"previousReason": previous,
				"reason":         reason,
			},
			CreatedAt: now,
		}

		_, err = tx.NewInsert().Model(entry).Exec(ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	sanction.AmendReason(reason, now)

	return sanction, nil
}

// Lift deactivates a sanction ahead of schedule. Lifting an already inactive
// sanction is a no-op success with no audit entry, so retried requests are
// safe. The duration fields keep their original values for history.
func (s *SanctionService) Lift(ctx context.Context, actor auth.Actor, sanctionID int64) (*types.Sanction, error) {
	sanction, err := s.model.GetByID(ctx, sanctionID)
	if err != nil {
		return nil, err
	}

	if !canManage(actor, sanction) {
		return nil, types.ErrForbidden
	}

	if !sanction.IsActive {
		return sanction, nil
	}

	now := time.Now()

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*types.Sanction)(nil)).
			Set("is_active = FALSE").
			Set("lifted_early = TRUE").
			Set("updated_at = ?", now).
			Where("id = ?", sanctionID).
			Where("is_active = TRUE").
			Exec(ctx)
		if err != nil {
			return err
		}

		// Lost the race to another lift or the expiry worker; the sanction
		// is inactive either way, so there is nothing left to record.
		if affected, _ := res.RowsAffected(); affected == 0 {
			return nil
		}

		entry := &types.AuditLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    enum.AuditActionSanctionLifted,
			TargetID:  sanctionID,
			Details: map[string]any{
				"userId": sanction.UserID,
				"type":   sanction.Type.String(),
			},
			CreatedAt: now,
		}

		_, err = tx.NewInsert().Model(entry).Exec(ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	sanction.Lift(now)

	return sanction, nil
}

// ExpireDue deactivates active bounded sanctions whose end date has passed.
// Each sanction expires in its own transaction so one failure never blocks
// the rest of the batch. Returns the number of sanctions expired.
func (s *SanctionService) ExpireDue(ctx context.Context, batchSize, concurrency int) (int, error) {
	now := time.Now()

	ids, err := s.model.GetDueIDs(ctx, now, batchSize)
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	p := pool.NewWithResults[int]().WithContext(ctx).WithMaxGoroutines(concurrency)

	for _, id := range ids {
		p.Go(func(ctx context.Context) (int, error) {
			expired, err := s.expireOne(ctx, id, now)
			if err != nil {
				s.logger.Error("Failed to expire sanction",
					zap.Int64("sanctionID", id),
					zap.Error(err))

				return 0, nil
			}

			if expired {
				return 1, nil
			}

			return 0, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, r := range results {
		expired += r
	}

	if expired > 0 {
		s.logger.Info("Expired due sanctions", zap.Int("count", expired))
	}

	return expired, nil
}

// expireOne deactivates a single due sanction. The conditional update makes
// the expiry idempotent against concurrent lifts and worker overlap.
func (s *SanctionService) expireOne(ctx context.Context, sanctionID int64, now time.Time) (bool, error) {
	var expired bool

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*types.Sanction)(nil)).
			Set("is_active = FALSE").
			Set("updated_at = ?", now).
			Where("id = ?", sanctionID).
			Where("is_active = TRUE").
			Where("is_permanent = FALSE").
			Where("end_at <= ?", now).
			Exec(ctx)
		if err != nil {
			return err
		}

		if affected, _ := res.RowsAffected(); affected == 0 {
			return nil
		}

		expired = true

		// Actor id 0 marks the scheduler itself.
		entry := &types.AuditLogEntry{
			Action:    enum.AuditActionSanctionExpired,
			TargetID:  sanctionID,
			CreatedAt: now,
		}

		_, err = tx.NewInsert().Model(entry).Exec(ctx)

		return err
	})

	return expired, err
}
