package database

import (
	"github.com/arbiterhq/arbiter/internal/content"
	"github.com/arbiterhq/arbiter/internal/database/service"
	"github.com/arbiterhq/arbiter/internal/notify"
	"github.com/arbiterhq/arbiter/internal/setup/config"
	"github.com/arbiterhq/arbiter/internal/tally"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	report   *service.ReportService
	queue    *service.QueueService
	action   *service.ActionService
	sanction *service.SanctionService
	appeal   *service.AppealService
	audit    *service.AuditService
}

// ServiceDependencies holds the collaborators the services need beyond the
// database itself.
type ServiceDependencies struct {
	Tally    *tally.Tracker
	Content  content.Provider
	Notifier notify.Notifier
	Config   *config.Moderation
}

// NewService creates a new service instance with all services.
func NewService(db *bun.DB, repository *Repository, deps ServiceDependencies, logger *zap.Logger) *Service {
	reportModel := repository.Report()
	actionModel := repository.Action()
	sanctionModel := repository.Sanction()
	appealModel := repository.Appeal()
	auditModel := repository.Audit()

	return &Service{
		report:   service.NewReport(db, reportModel, deps.Tally, deps.Content, logger),
		queue:    service.NewQueue(db, reportModel, deps.Config, logger),
		action:   service.NewAction(db, actionModel, reportModel, deps.Tally, deps.Content, deps.Notifier, deps.Config, logger),
		sanction: service.NewSanction(db, sanctionModel, logger),
		appeal:   service.NewAppeal(db, appealModel, actionModel, sanctionModel, deps.Notifier, deps.Config, logger),
		audit:    service.NewAudit(auditModel, deps.Config, logger),
	}
}

// Report returns the report intake service.
func (s *Service) Report() *service.ReportService {
	return s.report
}

// Queue returns the moderation queue service.
func (s *Service) Queue() *service.QueueService {
	return s.queue
}

// Action returns the action engine service.
func (s *Service) Action() *service.ActionService {
	return s.action
}

// Sanction returns the sanction lifecycle service.
func (s *Service) Sanction() *service.SanctionService {
	return s.sanction
}

// Appeal returns the appeal workflow service.
func (s *Service) Appeal() *service.AppealService {
	return s.appeal
}

// Audit returns the audit log service.
func (s *Service) Audit() *service.AuditService {
	return s.audit
}
