package paymentrepo

import (
	"context"
	"errors"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/payment"
	"bottleworks/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment record to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
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

// GetByCaptureID retrieves a payment by the gateway's capture identifier.
func (r *GormPaymentRepository) GetByCaptureID(ctx context.Context, captureID string) (*payment.Payment, error) {
	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "capture_id = ?", captureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", captureID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves all payments recorded against one order, oldest first.
func (r *GormPaymentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("captured_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// SumForOrder returns the total amount captured against one order.
func (r *GormPaymentRepository) SumForOrder(ctx context.Context, orderID kernel.UUID) (kernel.Money, error) {
	if err := orderID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var totalCents int64
	err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&totalCents).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoney(totalCents)
}
