// Package tally tracks distinct reporters per content item in Redis. The set
// membership add is atomic, so concurrent reports on popular content never
// race a read-modify-write counter.
package tally

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// KeyPrefix identifies distinct-reporter sets in Redis.
const KeyPrefix = "report_tally:"

// Tracker counts distinct reporters per content item.
type Tracker struct {
	client rueidis.Client
	logger *zap.Logger
}

// NewTracker initializes the distinct-reporter tracker.
func NewTracker(client rueidis.Client, logger *zap.Logger) *Tracker {
	return &Tracker{
		client: client,
		logger: logger.Named("tally"),
	}
}

// Add records a reporter against a content item and returns the resulting
// distinct count. Re-adding an already-counted reporter leaves the count
// unchanged.
func (t *Tracker) Add(ctx context.Context, contentID, reporterID uint64) (int, error) {
	key := KeyPrefix + strconv.FormatUint(contentID, 10)

	err := t.client.Do(ctx, t.client.B().Sadd().
		Key(key).
		Member(strconv.FormatUint(reporterID, 10)).
		Build()).Error()
	if err != nil {
		return 0, fmt.Errorf("failed to add reporter %d for content %d: %w", reporterID, contentID, err)
	}

	return t.Count(ctx, contentID)
}

// Count returns the current distinct-reporter count for a content item.
func (t *Tracker) Count(ctx context.Context, contentID uint64) (int, error) {
	key := KeyPrefix + strconv.FormatUint(contentID, 10)

	count, err := t.client.Do(ctx, t.client.B().Scard().Key(key).Build()).AsInt64()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to count reporters for content %d: %w", contentID, err)
	}

	return int(count), nil
}

// Clear drops the tally for a content item, used once the content is removed
// and its reports are closed.
func (t *Tracker) Clear(ctx context.Context, contentID uint64) error {
	key := KeyPrefix + strconv.FormatUint(contentID, 10)

	if err := t.client.Do(ctx, t.client.B().Del().Key(key).Build()).Error(); err != nil {
		return fmt.Errorf("failed to clear tally for content %d: %w", contentID, err)
	}

	t.logger.Debug("Cleared reporter tally", zap.Uint64("contentID", contentID))

	return nil
}
