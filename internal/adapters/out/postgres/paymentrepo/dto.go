// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
// The capture_id unique index is the database-level idempotency barrier
// for replayed gateway confirmations.
package paymentrepo

import (
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment records.
type PaymentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CaptureID   string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	PaymentType int       `gorm:"type:int;not null"`
	AmountCents int64     `gorm:"type:bigint;not null"`
	CapturedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for payment entities.
// Overrides GORM's default naming convention to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment record to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CaptureID:   aggregate.CaptureID(),
		PaymentType: int(aggregate.PaymentType()),
		AmountCents: aggregate.Amount().Cents(),
		CapturedAt:  aggregate.CapturedAt(),
	}
}

// toDomain converts a database DTO to a payment record using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		dto.CaptureID,
		payment.Type(dto.PaymentType),
		amount,
		dto.CapturedAt,
	)
}
