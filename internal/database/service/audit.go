package service

import (
	"context"
	"time"

	"github.com/arbiterhq/arbiter/internal/auth"
	"github.com/arbiterhq/arbiter/internal/database/models"
	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/arbiterhq/arbiter/internal/pagination"
	"github.com/arbiterhq/arbiter/internal/setup/config"
	"go.uber.org/zap"
)

// AuditService exposes administrator read access to the append-only ledger.
// Default reads redact the detail payloads; expanded reads are themselves
// written back into the ledger.
type AuditService struct {
	model  *models.AuditModel
	config *config.Moderation
	logger *zap.Logger
}

// NewAudit creates a new audit service.
func NewAudit(model *models.AuditModel, config *config.Moderation, logger *zap.Logger) *AuditService {
	return &AuditService{
		model:  model,
		config: config,
		logger: logger.Named("audit_service"),
	}
}

// Search returns one page of audit entries in ascending sequence order.
// Entries are redacted unless expand is set, and an expanded read is
// recorded in the ledger itself.
func (s *AuditService) Search(
	ctx context.Context, actor auth.Actor, filter types.AuditFilter, params pagination.Params, expand bool,
) (*pagination.Page[*types.AuditLogEntry], error) {
	if !actor.IsAdmin() {
		return nil, types.ErrForbidden
	}

	params = params.Normalize(s.config.MaxPageLimit)

	entries, total, err := s.model.Search(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}

	if !expand {
		for i, entry := range entries {
			entries[i] = entry.Redacted()
		}

		return pagination.NewPage(entries, params, total), nil
	}

	// Expanded access leaves its own trace.
	record := &types.AuditLogEntry{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    enum.AuditActionAuditExpanded,
		Details: map[string]any{
			"filterActorId": filter.ActorID,
			"filterAction":  filter.Action.String(),
			"page":          params.Page,
			"limit":         params.Limit,
		},
		CreatedAt: time.Now(),
	}
	if err := s.model.Append(ctx, record); err != nil {
		s.logger.Error("Failed to record expanded audit access", zap.Error(err))
		return nil, err
	}

	return pagination.NewPage(entries, params, total), nil
}
