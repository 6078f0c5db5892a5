package batchrepo

import (
	"context"
	"errors"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch with its workflow steps to the database.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing batch to the database.
// The batch row write is conditional on the loaded version; the step rows
// are saved unconditionally afterwards since they are only ever mutated
// through their batch.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	steps := dto.Steps
	dto.Steps = nil

	result := r.db.WithContext(ctx).
		Model(&BatchDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictingUpdateError("batch", aggregate.ID().String())
	}

	for i := range steps {
		if err := r.db.WithContext(ctx).Save(&steps[i]).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch by ID with its workflow steps.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).Preload("Steps").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUID retrieves a batch by its traveler scan code.
func (r *GormBatchRepository) GetByUID(ctx context.Context, uid string) (*batch.Batch, error) {
	var dto BatchDTO
	if err := r.db.WithContext(ctx).Preload("Steps").First(&dto, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", uid)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves all batches of one order in priority order.
func (r *GormBatchRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*batch.Batch, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BatchDTO
	err := r.db.WithContext(ctx).
		Preload("Steps").
		Order("priority_index, human_uid").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	batches := make([]*batch.Batch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, nil
}

// Delete removes a batch and its workflow steps. Used by split and merge
// to retire consumed batches inside the surrounding transaction.
func (r *GormBatchRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", id.Bytes()).
		Delete(&WorkflowStepDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BatchDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("batch", id.String())
	}

	return nil
}
