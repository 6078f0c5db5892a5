// Package auditlog persists the append-only audit trail. The sink is fire
// and forget: audit write failures are logged, never propagated, so the
// business operation that produced the entry is never undone by its own
// paper trail.
package auditlog

import (
	"context"
	"log/slog"
	"time"

	"bottleworks/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEntryDTO represents one row of the audit trail.
type AuditEntryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EntityName string     `gorm:"type:varchar(64);not null;index"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Action     string     `gorm:"type:varchar(64);not null"`
	OldValue   string     `gorm:"type:text"`
	NewValue   string     `gorm:"type:text"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Note       string     `gorm:"type:text"`
	OccurredAt time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for audit entries.
// Overrides GORM's default naming convention to use "audit_log".
func (AuditEntryDTO) TableName() string {
	return "audit_log"
}

// GormAuditSink implements AuditSink on top of a GORM connection. Writes
// go through the main connection, not the caller's transaction: a rolled
// back command may still leave an audit trace of the attempt.
type GormAuditSink struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormAuditSink creates an audit sink writing to the audit_log table.
func NewGormAuditSink(db *gorm.DB, logger *slog.Logger) *GormAuditSink {
	return &GormAuditSink{
		db:     db,
		logger: logger,
	}
}

// Record appends an entry to the audit trail. Failures are logged and
// swallowed.
func (s *GormAuditSink) Record(ctx context.Context, entry ports.AuditEntry) {
	var actorID *uuid.UUID
	if entry.ActorID != nil {
		raw := entry.ActorID.Bytes()
		actorID = &raw
	}

	occurredAt := entry.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	dto := AuditEntryDTO{
		ID:         uuid.New(),
		EntityName: entry.EntityName,
		EntityID:   entry.EntityID.Bytes(),
		Action:     entry.Action,
		OldValue:   entry.OldValue,
		NewValue:   entry.NewValue,
		ActorID:    actorID,
		Note:       entry.Note,
		OccurredAt: occurredAt,
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		s.logger.WarnContext(ctx, "audit entry dropped",
			"entity", entry.EntityName,
			"entity_id", entry.EntityID.String(),
			"action", entry.Action,
			"error", err,
		)
	}
}
