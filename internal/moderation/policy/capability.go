// Package policy holds the data-driven permission matrix for moderation
// actions. Roles map to allowed action types and their jurisdiction
// requirements; there is no role hierarchy in code, only this table.
package policy

import "github.com/arbiterhq/arbiter/internal/database/types/enum"

// Capability describes how a role may use one action type.
type Capability struct {
	// Scoped requires the target to fall inside the actor's assigned
	// community set.
	Scoped bool
}

var capabilities = map[enum.ActorRole]map[enum.ActionType]Capability{
	enum.ActorRoleModerator: {
		enum.ActionTypeApproveReport: {Scoped: true},
		enum.ActionTypeDismissReport: {Scoped: true},
		enum.ActionTypeIssueWarning:  {Scoped: true},
		enum.ActionTypeRemoveContent: {Scoped: true},
		enum.ActionTypeSuspendUser:   {Scoped: true},
	},
	enum.ActorRoleAdministrator: {
		enum.ActionTypeApproveReport: {},
		enum.ActionTypeDismissReport: {},
		enum.ActionTypeIssueWarning:  {},
		enum.ActionTypeRemoveContent: {},
		enum.ActionTypeSuspendUser:   {},
		enum.ActionTypeBanUser:       {},
		enum.ActionTypeReverseAction: {},
	},
}

// Allows reports whether a role may perform an action type at all.
func Allows(role enum.ActorRole, action enum.ActionType) bool {
	_, ok := capabilities[role][action]
	return ok
}

// RequiresJurisdiction reports whether the role's use of an action type is
// bound to its assigned community set.
func RequiresJurisdiction(role enum.ActorRole, action enum.ActionType) bool {
	capability, ok := capabilities[role][action]
	return ok && capability.Scoped
}
