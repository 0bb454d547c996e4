package database

import (
	"github.com/arbiterhq/arbiter/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	report   *models.ReportModel
	action   *models.ActionModel
	sanction *models.SanctionModel
	appeal   *models.AppealModel
	audit    *models.AuditModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		report:   models.NewReport(db, logger),
		action:   models.NewAction(db, logger),
		sanction: models.NewSanction(db, logger),
		appeal:   models.NewAppeal(db, logger),
		audit:    models.NewAudit(db, logger),
	}
}

// Report returns the report model repository.
func (r *Repository) Report() *models.ReportModel {
	return r.report
}

// Action returns the moderation action model repository.
func (r *Repository) Action() *models.ActionModel {
	return r.action
}

// Sanction returns the sanction model repository.
func (r *Repository) Sanction() *models.SanctionModel {
	return r.sanction
}

// Appeal returns the appeal model repository.
func (r *Repository) Appeal() *models.AppealModel {
	return r.appeal
}

// Audit returns the audit log model repository.
func (r *Repository) Audit() *models.AuditModel {
	return r.audit
}
