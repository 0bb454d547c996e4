package types_test

import (
	"testing"

	"github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppealTarget_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  types.AppealTarget
		wantErr error
	}{
		{
			name:   "action target",
			target: types.AppealTarget{ActionID: 5},
		},
		{
			name:   "sanction target",
			target: types.AppealTarget{SanctionID: 8},
		},
		{
			name:    "both set",
			target:  types.AppealTarget{ActionID: 5, SanctionID: 8},
			wantErr: types.ErrInvalidAppealTarget,
		},
		{
			name:    "neither set",
			target:  types.AppealTarget{},
			wantErr: types.ErrInvalidAppealTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.target.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAppealTarget_Type(t *testing.T) {
	t.Parallel()

	assert.Equal(t, enum.AppealTypeAction, types.AppealTarget{ActionID: 5}.Type())
	assert.Equal(t, enum.AppealTypeSanction, types.AppealTarget{SanctionID: 8}.Type())
}

func TestAuditLogEntry_Redacted(t *testing.T) {
	t.Parallel()

	entry := &types.AuditLogEntry{
		Sequence: 1,
		ActorID:  10,
		Action:   enum.AuditActionActionApplied,
		TargetID: 99,
		Details:  map[string]any{"reason": "spam wave"},
	}

	redacted := entry.Redacted()
	assert.Nil(t, redacted.Details)
	assert.Equal(t, entry.Sequence, redacted.Sequence)
	assert.NotNil(t, entry.Details, "original entry must keep its payload")
}
