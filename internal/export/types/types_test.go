package types_test

import (
	"testing"
	"time"

	dbTypes "github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/arbiterhq/arbiter/internal/export/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEntry(t *testing.T) {
	t.Parallel()

	entry := &dbTypes.AuditLogEntry{
		Sequence:  7,
		ActorID:   42,
		ActorRole: enum.ActorRoleModerator,
		Action:    enum.AuditActionActionApplied,
		TargetID:  99,
		Details:   map[string]any{"actionType": "RemoveContent"},
		CreatedAt: time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC),
	}

	t.Run("with details", func(t *testing.T) {
		t.Parallel()

		record, err := types.FromEntry(entry, true)
		require.NoError(t, err)

		assert.Equal(t, int64(7), record.Sequence)
		assert.Equal(t, uint64(42), record.ActorID)
		assert.Equal(t, "Moderator", record.ActorRole)
		assert.Equal(t, "ActionApplied", record.Action)
		assert.Equal(t, int64(99), record.TargetID)
		assert.JSONEq(t, `{"actionType":"RemoveContent"}`, record.Details)
		assert.Equal(t, "2025-08-12T10:00:00Z", record.CreatedAt)
	})

	t.Run("redacted", func(t *testing.T) {
		t.Parallel()

		record, err := types.FromEntry(entry, false)
		require.NoError(t, err)

		assert.Empty(t, record.Details)
	})
}
