// Package batchrepo provides data transfer objects and mapping functions for batch persistence.
// This package implements the repository pattern for the batch domain aggregate, including
// its owned workflow steps.
package batchrepo

import (
	"sort"
	"time"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting batch aggregates.
// The stored status column is a projection of the step statuses, refreshed
// on every write; reads reconstruct the aggregate and re-derive it.
type BatchDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UID           string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	HumanUID      string    `gorm:"type:varchar(64);not null"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        int       `gorm:"type:int;not null;index"`
	OnHold        bool      `gorm:"not null"`
	QtyPlanned    int       `gorm:"type:int;not null"`
	QtyGood       int       `gorm:"type:int;not null"`
	QtyScrap      int       `gorm:"type:int;not null"`
	ActualStart   *time.Time
	ActualFinish  *time.Time
	PriorityIndex int               `gorm:"type:int;not null;index"`
	Version       int               `gorm:"type:int;not null"`
	Steps         []WorkflowStepDTO `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for batch entities.
// Overrides GORM's default naming convention to use "batches".
func (BatchDTO) TableName() string {
	return "batches"
}

// WorkflowStepDTO represents the database structure for persisting workflow steps.
// Links to its batch via foreign key; the step column holds the pipeline stage.
type WorkflowStepDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Step       int       `gorm:"type:int;not null"`
	Status     int       `gorm:"type:int;not null"`
	StartedAt  *time.Time
	FinishedAt *time.Time
	OperatorID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for workflow step entities.
// Overrides GORM's default naming convention to use "workflow_steps".
func (WorkflowStepDTO) TableName() string {
	return "workflow_steps"
}

// fromDomain converts a batch domain aggregate to its database representation.
// Maps the aggregate with all four workflow steps.
func fromDomain(aggregate *batch.Batch) BatchDTO {
	batchID := aggregate.ID().Bytes()
	steps := make([]WorkflowStepDTO, 0, len(aggregate.Steps()))

	for _, s := range aggregate.Steps() {
		var operatorID *uuid.UUID
		if s.OperatorID() != nil {
			raw := s.OperatorID().Bytes()
			operatorID = &raw
		}

		steps = append(steps, WorkflowStepDTO{
			ID:         s.ID().Bytes(),
			BatchID:    batchID,
			Step:       int(s.StepName()),
			Status:     int(s.Status()),
			StartedAt:  s.StartedAt(),
			FinishedAt: s.FinishedAt(),
			OperatorID: operatorID,
		})
	}

	return BatchDTO{
		ID:            batchID,
		UID:           aggregate.UID(),
		HumanUID:      aggregate.HumanUID(),
		OrderID:       aggregate.OrderID().Bytes(),
		Status:        int(aggregate.Status()),
		OnHold:        aggregate.OnHold(),
		QtyPlanned:    aggregate.QtyPlanned(),
		QtyGood:       aggregate.QtyGood(),
		QtyScrap:      aggregate.QtyScrap(),
		ActualStart:   aggregate.ActualStart(),
		ActualFinish:  aggregate.ActualFinish(),
		PriorityIndex: aggregate.PriorityIndex(),
		Version:       aggregate.Version(),
		Steps:         steps,
	}
}

// toDomain converts a database DTO to a batch domain aggregate using RestoreBatch.
// Steps come back in pipeline order regardless of row order.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	steps := make([]*batch.WorkflowStep, 0, len(dto.Steps))
	for _, stepDto := range sortSteps(dto.Steps) {
		s, stepErr := stepToDomain(stepDto)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, s)
	}

	return batch.RestoreBatch(
		id,
		orderID,
		dto.UID,
		dto.HumanUID,
		dto.OnHold,
		dto.QtyPlanned,
		dto.QtyGood,
		dto.QtyScrap,
		dto.ActualStart,
		dto.ActualFinish,
		dto.PriorityIndex,
		dto.Version,
		steps,
	)
}

// stepToDomain converts a workflow step DTO to its domain entity.
func stepToDomain(dto WorkflowStepDTO) (*batch.WorkflowStep, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var operatorID *kernel.UUID
	if dto.OperatorID != nil {
		opID, opErr := kernel.UUIDFromBytes((*dto.OperatorID)[:])
		if opErr != nil {
			return nil, opErr
		}
		operatorID = &opID
	}

	return batch.RestoreWorkflowStep(
		id,
		batch.Step(dto.Step),
		batch.StepStatus(dto.Status),
		dto.StartedAt,
		dto.FinishedAt,
		operatorID,
	)
}

// sortSteps orders step rows by pipeline stage.
func sortSteps(steps []WorkflowStepDTO) []WorkflowStepDTO {
	sorted := append([]WorkflowStepDTO(nil), steps...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Step < sorted[j].Step
	})
	return sorted
}
