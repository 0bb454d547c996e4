// Package content holds the contract to the externally-owned content store.
// The core only ever takes point-in-time snapshots; it never holds a live
// reference to content.
package content

import (
	"context"
	"errors"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
)

var ErrContentNotFound = errors.New("content not found")

// Snapshot is a point-in-time read of a content item, sufficient for
// jurisdiction checks and for populating action evidence.
type Snapshot struct {
	ContentID   uint64
	ContentType enum.ContentType
	AuthorID    uint64
	CommunityID uint64 // 0 for platform-level content
	Body        string
	CapturedAt  time.Time
}

// Provider resolves content snapshots. Implementations live outside this
// module; tests use StaticProvider.
type Provider interface {
	// Snapshot returns the current state of a content item, or
	// ErrContentNotFound when the id does not resolve.
	Snapshot(ctx context.Context, contentID uint64) (*Snapshot, error)
}

// StaticProvider serves snapshots from a fixed map. It backs tests and local
// tooling that runs without the content collaborator.
type StaticProvider struct {
	Items map[uint64]*Snapshot
}

// Snapshot implements Provider.
func (p *StaticProvider) Snapshot(_ context.Context, contentID uint64) (*Snapshot, error) {
	snapshot, ok := p.Items[contentID]
	if !ok {
		return nil, ErrContentNotFound
	}

	clone := *snapshot
	clone.CapturedAt = time.Now()

	return &clone, nil
}
