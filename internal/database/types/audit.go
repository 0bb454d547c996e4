package types

import (
	"errors"
	"time"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
)

var ErrNoAuditEntriesFound = errors.New("no audit entries found")

// AuditLogEntry is one row of the append-only ledger. Every state-changing
// operation writes exactly one entry in the same transaction as the change it
// records. The autoincrement sequence gives a total order that does not rely
// on wall-clock ties.
type AuditLogEntry struct {
	Sequence  int64            `bun:",pk,autoincrement"`    // Monotonic position in the ledger
	ActorID   uint64           `bun:",notnull"`             // Actor who performed the operation (0 if system)
	ActorRole enum.ActorRole   `bun:",notnull"`             // Role the actor held at the time
	Action    enum.AuditAction `bun:",notnull"`             // Which operation the entry records
	TargetID  int64            `bun:",notnull"`             // Report/action/sanction/appeal id affected
	Details   map[string]any   `bun:",nullzero,type:jsonb"` // Structured payload, redacted on default reads
	CreatedAt time.Time        `bun:",notnull"`             // When the operation happened
}

// Redacted returns a copy of the entry with the detail payload removed.
func (e *AuditLogEntry) Redacted() *AuditLogEntry {
	clone := *e
	clone.Details = nil

	return &clone
}

// AuditFilter restricts an audit log search.
type AuditFilter struct {
	ActorID   uint64           // 0 matches every actor
	Action    enum.AuditAction // AuditActionAll matches every action
	StartDate time.Time
	EndDate   time.Time
}
