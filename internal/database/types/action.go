package types

import (
	"errors"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
)

var (
	ErrActionNotFound        = errors.New("moderation action not found")
	ErrActionAlreadyReversed = errors.New("moderation action is already reversed")
	ErrReasonRequired        = errors.New("action reason must not be empty")
	ErrInvalidActionTarget   = errors.New("action target is missing or inconsistent")
	ErrInvalidDuration       = errors.New("suspension duration is out of bounds")
	ErrForbidden             = errors.New("actor is not permitted to perform this operation")
)

// ContentSnapshot is an immutable copy of the offending content captured at
// decision time. It is evidence and is never mutated, even if the content is
// later edited or removed.
type ContentSnapshot struct {
	ContentID   uint64           `json:"contentId"`
	ContentType enum.ContentType `json:"contentType"`
	AuthorID    uint64           `json:"authorId"`
	CommunityID uint64           `json:"communityId,omitempty"`
	Body        string           `json:"body"`
	CapturedAt  time.Time        `json:"capturedAt"`
}

// ModerationAction is the durable record of a moderator or administrator
// decision. Actions are created exactly once per decision and are never edited
// in place; a mistake is corrected by a separate reversing action.
type ModerationAction struct {
	ID              int64            `bun:",pk,autoincrement"` // Unique numeric identifier
	ActorID         uint64           `bun:",notnull"`          // Acting moderator or administrator
	ActorRole       enum.ActorRole   `bun:",notnull"`          // Role the actor held at decision time
	TargetUserID    uint64           `bun:",nullzero"`         // Sanctioned or warned user
	TargetContentID uint64           `bun:",nullzero"`         // Affected content item
	ReportID        int64            `bun:",nullzero"`         // Report this action resolves
	ActionType      enum.ActionType  `bun:",notnull"`          // Decision kind
	Category        enum.Category    `bun:",notnull"`          // Violation category the decision is based on
	Reason          string           `bun:",notnull"`          // Free-text justification, non-empty
	Snapshot        *ContentSnapshot `bun:",nullzero,type:jsonb"` // Evidence copy of the content at decision time
	IsReversed      bool             `bun:",notnull"`          // Set by a later reversing action
	ReversedBy      int64            `bun:",nullzero"`         // ID of the reversing action
	CreatedAt       time.Time        `bun:",notnull"`          // When the decision was recorded
}
