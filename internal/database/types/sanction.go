package types

import (
	"errors"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
)

var ErrSanctionNotFound = errors.New("sanction not found")

// Sanction represents a suspension or ban applied to a user as the
// consequence of a moderation action.
//
// The lifecycle facet (Type, IsPermanent, DurationDays, StartAt, EndAt,
// IsActive, LiftedEarly) and the reason text are independent: amending the
// reason must never change lifecycle fields, and lifting leaves DurationDays
// and EndAt untouched for historical accuracy. Deactivation is monotonic; a
// lifted sanction can only be superseded by a brand-new sanction.
type Sanction struct {
	ID           int64             `bun:",pk,autoincrement"` // Unique numeric identifier
	Type         enum.SanctionType `bun:",notnull"`          // Suspension or ban
	UserID       uint64            `bun:",notnull"`          // Sanctioned user
	IssuerID     uint64            `bun:",notnull"`          // Actor who issued the originating action (0 if system)
	ReportID     int64             `bun:",nullzero"`         // Originating report, when the action resolved one
	ActionID     int64             `bun:",notnull"`          // Originating moderation action
	Reason       string            `bun:",notnull"`          // Amendable justification text
	DurationDays int               `bun:",nullzero"`         // Bounded duration (0 when permanent)
	IsPermanent  bool              `bun:",notnull"`          // True for bans
	StartAt      time.Time         `bun:",notnull"`          // When enforcement begins
	EndAt        *time.Time        `bun:",nullzero"`         // When enforcement ends (nil iff permanent)
	IsActive     bool              `bun:",notnull"`          // False once lifted or expired
	LiftedEarly  bool              `bun:",notnull"`          // True only for early lifts, not scheduled expiry
	CreatedAt    time.Time         `bun:",notnull"`          // When the record was created
	UpdatedAt    time.Time         `bun:",notnull"`          // When the record was last updated
}

// NewSanction derives a sanction from a suspend/ban moderation action.
// Suspensions get EndAt = StartAt + durationDays; bans are permanent with a
// nil EndAt.
func NewSanction(action *ModerationAction, durationDays int, now time.Time) *Sanction {
	sanction := &Sanction{
		UserID:    action.TargetUserID,
		IssuerID:  action.ActorID,
		ReportID:  action.ReportID,
		ActionID:  action.ID,
		Reason:    action.Reason,
		StartAt:   now,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if action.ActionType == enum.ActionTypeBanUser {
		sanction.Type = enum.SanctionTypeBan
		sanction.IsPermanent = true
	} else {
		sanction.Type = enum.SanctionTypeSuspension
		sanction.DurationDays = durationDays
		endAt := now.Add(time.Duration(durationDays) * 24 * time.Hour)
		sanction.EndAt = &endAt
	}

	return sanction
}

// AmendReason updates the reason text and UpdatedAt only.
func (s *Sanction) AmendReason(reason string, now time.Time) {
	s.Reason = reason
	s.UpdatedAt = now
}

// Lift deactivates the sanction ahead of schedule. It returns false without
// modifying anything when the sanction is already inactive, so retried lift
// requests are a no-op success.
func (s *Sanction) Lift(now time.Time) bool {
	if !s.IsActive {
		return false
	}

	s.IsActive = false
	s.LiftedEarly = true
	s.UpdatedAt = now

	return true
}

// IsExpired checks if a bounded sanction has passed its end date.
func (s *Sanction) IsExpired(now time.Time) bool {
	return s.EndAt != nil && now.After(*s.EndAt)
}
