package types_test

import (
	"testing"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suspensionAction() *types.ModerationAction {
	return &types.ModerationAction{
		ID:           42,
		ActorID:      100,
		ActorRole:    enum.ActorRoleModerator,
		TargetUserID: 200,
		ReportID:     7,
		ActionType:   enum.ActionTypeSuspendUser,
		Category:     enum.CategoryHarassment,
		Reason:       "repeated harassment across threads",
	}
}

func TestNewSanction_Suspension(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	sanction := types.NewSanction(suspensionAction(), 7, now)

	assert.Equal(t, enum.SanctionTypeSuspension, sanction.Type)
	assert.False(t, sanction.IsPermanent)
	assert.Equal(t, 7, sanction.DurationDays)
	require.NotNil(t, sanction.EndAt)
	assert.Equal(t, now.Add(7*24*time.Hour), *sanction.EndAt)
	assert.True(t, sanction.IsActive)
	assert.False(t, sanction.LiftedEarly)
	assert.Equal(t, uint64(200), sanction.UserID)
	assert.Equal(t, uint64(100), sanction.IssuerID)
	assert.Equal(t, int64(42), sanction.ActionID)
	assert.Equal(t, int64(7), sanction.ReportID)
}

func TestNewSanction_Ban(t *testing.T) {
	t.Parallel()

	action := suspensionAction()
	action.ActionType = enum.ActionTypeBanUser
	action.ActorRole = enum.ActorRoleAdministrator

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	sanction := types.NewSanction(action, 0, now)

	assert.Equal(t, enum.SanctionTypeBan, sanction.Type)
	assert.True(t, sanction.IsPermanent)
	assert.Nil(t, sanction.EndAt, "end date must be nil when permanent")
	assert.Zero(t, sanction.DurationDays)
	assert.True(t, sanction.IsActive)
}

func TestSanction_AmendReason_LeavesLifecycleUntouched(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	sanction := types.NewSanction(suspensionAction(), 7, created)

	before := *sanction
	beforeEnd := *sanction.EndAt

	amended := created.Add(2 * time.Hour)
	sanction.AmendReason("amended after appeal discussion", amended)

	assert.Equal(t, "amended after appeal discussion", sanction.Reason)
	assert.Equal(t, amended, sanction.UpdatedAt)

	// Every lifecycle field must be byte-identical to the pre-amend state.
	assert.Equal(t, before.Type, sanction.Type)
	assert.Equal(t, before.DurationDays, sanction.DurationDays)
	assert.Equal(t, before.IsPermanent, sanction.IsPermanent)
	assert.Equal(t, before.StartAt, sanction.StartAt)
	assert.Equal(t, beforeEnd, *sanction.EndAt)
	assert.Equal(t, before.IsActive, sanction.IsActive)
	assert.Equal(t, before.LiftedEarly, sanction.LiftedEarly)
	assert.Equal(t, before.CreatedAt, sanction.CreatedAt)
}

func TestSanction_Lift_Idempotent(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	sanction := types.NewSanction(suspensionAction(), 7, created)
	endAt := *sanction.EndAt

	first := sanction.Lift(created.Add(24 * time.Hour))
	assert.True(t, first)
	assert.False(t, sanction.IsActive)
	assert.True(t, sanction.LiftedEarly)

	// Duration and end date stay untouched for historical accuracy.
	assert.Equal(t, 7, sanction.DurationDays)
	assert.Equal(t, endAt, *sanction.EndAt)

	// A second lift is a no-op success, not an error.
	liftedAt := sanction.UpdatedAt
	second := sanction.Lift(created.Add(48 * time.Hour))
	assert.False(t, second)
	assert.False(t, sanction.IsActive)
	assert.Equal(t, liftedAt, sanction.UpdatedAt)
}

func TestSanction_IsExpired(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	sanction := types.NewSanction(suspensionAction(), 7, created)

	assert.False(t, sanction.IsExpired(created.Add(6*24*time.Hour)))
	assert.True(t, sanction.IsExpired(created.Add(8*24*time.Hour)))

	ban := suspensionAction()
	ban.ActionType = enum.ActionTypeBanUser
	permanent := types.NewSanction(ban, 0, created)
	assert.False(t, permanent.IsExpired(created.Add(100*365*24*time.Hour)))
}
