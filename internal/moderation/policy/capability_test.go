package policy_test

import (
	"testing"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/arbiterhq/arbiter/internal/moderation/policy"
	"github.com/stretchr/testify/assert"
)

func TestAllows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role   enum.ActorRole
		action enum.ActionType
		want   bool
	}{
		{enum.ActorRoleModerator, enum.ActionTypeApproveReport, true},
		{enum.ActorRoleModerator, enum.ActionTypeDismissReport, true},
		{enum.ActorRoleModerator, enum.ActionTypeIssueWarning, true},
		{enum.ActorRoleModerator, enum.ActionTypeRemoveContent, true},
		{enum.ActorRoleModerator, enum.ActionTypeSuspendUser, true},
		{enum.ActorRoleModerator, enum.ActionTypeBanUser, false},
		{enum.ActorRoleModerator, enum.ActionTypeReverseAction, false},
		{enum.ActorRoleAdministrator, enum.ActionTypeBanUser, true},
		{enum.ActorRoleAdministrator, enum.ActionTypeReverseAction, true},
		{enum.ActorRoleAdministrator, enum.ActionTypeSuspendUser, true},
		{enum.ActorRoleMember, enum.ActionTypeApproveReport, false},
		{enum.ActorRoleGuest, enum.ActionTypeDismissReport, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+"_"+tt.action.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, policy.Allows(tt.role, tt.action))
		})
	}
}

func TestRequiresJurisdiction(t *testing.T) {
	t.Parallel()

	// Every moderator capability is community-bound.
	for _, action := range enum.ActionTypeValues() {
		if policy.Allows(enum.ActorRoleModerator, action) {
			assert.True(t, policy.RequiresJurisdiction(enum.ActorRoleModerator, action),
				"moderator use of %s must be scoped", action)
		}
	}

	// Administrators are never community-bound.
	for _, action := range enum.ActionTypeValues() {
		assert.False(t, policy.RequiresJurisdiction(enum.ActorRoleAdministrator, action),
			"administrator use of %s must be unscoped", action)
	}
}
