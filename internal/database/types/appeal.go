package types

import (
	"errors"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
)

var (
	ErrAppealNotFound        = errors.New("appeal not found")
	ErrAppealAlreadyResolved = errors.New("appeal is already resolved")
	ErrNotAppealSubject      = errors.New("appellant is not the subject of the contested record")
	ErrDuplicateAppeal       = errors.New("appellant already has a pending appeal for this target")
	ErrInvalidAppealTarget   = errors.New("appeal must target exactly one of action or sanction")
	ErrInvalidAppealDecision = errors.New("appeal decision must be accepted or rejected")
	ErrAppealTextRequired    = errors.New("appeal text must not be empty")
)

// Appeal represents a contestation filed by a sanctioned user against a
// moderation action or sanction. Appeals transition pending to
// accepted/rejected exactly once and are immutable thereafter.
type Appeal struct {
	ID           int64             `bun:",pk,autoincrement"` // Unique numeric identifier
	AppellantID  uint64            `bun:",notnull"`          // User contesting the record
	Type         enum.AppealType   `bun:",notnull"`          // Whether an action or a sanction is contested
	ActionID     int64             `bun:",nullzero"`         // Contested action (0 if sanction appeal)
	SanctionID   int64             `bun:",nullzero"`         // Contested sanction (0 if action appeal)
	Text         string            `bun:",notnull"`          // Appellant's statement
	Status       enum.AppealStatus `bun:",notnull"`          // Pending, accepted or rejected
	ResolvedBy   uint64            `bun:",nullzero"`         // Reviewer who decided the appeal
	ReviewReason string            `bun:",nullzero"`         // Reviewer's justification
	ResolvedAt   time.Time         `bun:",nullzero"`         // When the decision was made
	CreatedAt    time.Time         `bun:",notnull"`          // When the appeal was filed
}

// AppealTarget identifies the single record an appeal contests.
type AppealTarget struct {
	ActionID   int64
	SanctionID int64
}

// Validate enforces the exactly-one-target rule.
func (t AppealTarget) Validate() error {
	if (t.ActionID == 0) == (t.SanctionID == 0) {
		return ErrInvalidAppealTarget
	}

	return nil
}

// Type returns the appeal type implied by the target.
func (t AppealTarget) Type() enum.AppealType {
	if t.ActionID != 0 {
		return enum.AppealTypeAction
	}

	return enum.AppealTypeSanction
}
