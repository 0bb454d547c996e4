package types

import (
	"time"

	dbTypes "github.com/arbiterhq/arbiter/internal/database/types"
	"github.com/bytedance/sonic"
)

// ArchiveRecord is one audit entry flattened for an archive file.
type ArchiveRecord struct {
	Sequence  int64
	ActorID   uint64
	ActorRole string
	Action    string
	TargetID  int64
	Details   string // JSON payload, empty when redacted
	CreatedAt string // RFC 3339
}

// FromEntry flattens an audit entry. Detail payloads are only carried when
// includeDetails is set; redacted archives keep the column empty.
func FromEntry(entry *dbTypes.AuditLogEntry, includeDetails bool) (*ArchiveRecord, error) {
	record := &ArchiveRecord{
		Sequence:  entry.Sequence,
		ActorID:   entry.ActorID,
		ActorRole: entry.ActorRole.String(),
		Action:    entry.Action.String(),
		TargetID:  entry.TargetID,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	}

	if includeDetails && entry.Details != nil {
		data, err := sonic.Marshal(entry.Details)
		if err != nil {
			return nil, err
		}

		record.Details = string(data)
	}

	return record, nil
}
