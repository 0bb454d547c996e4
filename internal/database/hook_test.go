package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arbiterhq/arbiter/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHook_AfterQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		event   *bun.QueryEvent
		level   zapcore.Level
		message string
	}{
		{
			name: "fast query logs at debug",
			event: &bun.QueryEvent{
				Query:     "SELECT 1",
				StartTime: time.Now(),
			},
			level:   zap.DebugLevel,
			message: "Query executed",
		},
		{
			name: "slow query logs at warn",
			event: &bun.QueryEvent{
				Query:     "SELECT pg_sleep(1)",
				StartTime: time.Now().Add(-time.Second),
			},
			level:   zap.WarnLevel,
			message: "Slow query",
		},
		{
			name: "failed query logs at error",
			event: &bun.QueryEvent{
				Query:     "SELECT nope",
				StartTime: time.Now(),
				Err:       errors.New("relation does not exist"),
			},
			level:   zap.ErrorLevel,
			message: "Query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zap.DebugLevel)
			hook := database.NewHook(zap.New(core))

			hook.AfterQuery(context.Background(), tt.event)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			assert.Equal(t, tt.message, entries[0].Message)
		})
	}
}
