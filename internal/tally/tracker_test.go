package tally_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/arbiterhq/arbiter/internal/tally"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) (*tally.Tracker, func()) {
	t.Helper()

	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	tracker := tally.NewTracker(client, zap.NewNop())

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return tracker, cleanup
}

func TestAdd_DistinctReporters(t *testing.T) {
	t.Parallel()

	tracker, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	for i, reporter := range []uint64{1, 2, 3, 4, 5} {
		count, err := tracker.Add(ctx, 100, reporter)
		require.NoError(t, err)
		assert.Equal(t, i+1, count)
	}
}

func TestAdd_RepeatReporterDoesNotIncrement(t *testing.T) {
	t.Parallel()

	tracker, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	count, err := tracker.Add(ctx, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The same reporter again must not change the distinct count.
	count, err = tracker.Add(ctx, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCount_UnknownContentIsZero(t *testing.T) {
	t.Parallel()

	tracker, cleanup := setupTest(t)
	defer cleanup()

	count, err := tracker.Count(t.Context(), 9999)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestClear(t *testing.T) {
	t.Parallel()

	tracker, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	_, err := tracker.Add(ctx, 100, 1)
	require.NoError(t, err)

	require.NoError(t, tracker.Clear(ctx, 100))

	count, err := tracker.Count(ctx, 100)
	require.NoError(t, err)
	assert.Zero(t, count)
}
