package ports

import (
	"context"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
)

// AuditEntry is one immutable line in the audit trail. Old and new values
// are recorded as strings so the trail stays readable after enums evolve.
type AuditEntry struct {
	EntityName string
	EntityID   kernel.UUID
	Action     string
	OldValue   string
	NewValue   string
	ActorID    *kernel.UUID
	Note       string
	OccurredAt time.Time
}

// AuditSink records audit entries. Implementations must never fail the
// business operation they observe: a write error is logged and swallowed.
type AuditSink interface {
	// Record appends an entry to the audit trail.
	Record(ctx context.Context, entry AuditEntry)
}
