// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column carries the optimistic concurrency token; every
// successful update increments it.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HumanUID           string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	QuoteLinkToken     string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status             int        `gorm:"type:int;not null;index"`
	SubtotalCents      int64      `gorm:"type:bigint;not null"`
	DepositRequired    bool       `gorm:"not null"`
	DepositAmountCents int64      `gorm:"type:bigint;not null"`
	DepositStatus      int        `gorm:"type:int;not null"`
	QuoteExpiresAt     *time.Time `gorm:"index"`
	PromisedDate       *time.Time
	ETADate            *time.Time
	Version            int `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		HumanUID:           aggregate.HumanUID(),
		QuoteLinkToken:     aggregate.QuoteLinkToken(),
		Status:             int(aggregate.Status()),
		SubtotalCents:      aggregate.Subtotal().Cents(),
		DepositRequired:    aggregate.DepositRequired(),
		DepositAmountCents: aggregate.DepositAmount().Cents(),
		DepositStatus:      int(aggregate.DepositStatus()),
		QuoteExpiresAt:     aggregate.QuoteExpiresAt(),
		PromisedDate:       aggregate.PromisedDate(),
		ETADate:            aggregate.ETADate(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}

	depositAmount, err := kernel.NewMoney(dto.DepositAmountCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.HumanUID,
		dto.QuoteLinkToken,
		order.Status(dto.Status),
		subtotal,
		dto.DepositRequired,
		depositAmount,
		order.DepositStatus(dto.DepositStatus),
		dto.QuoteExpiresAt,
		dto.PromisedDate,
		dto.ETADate,
		dto.Version,
	)
}
