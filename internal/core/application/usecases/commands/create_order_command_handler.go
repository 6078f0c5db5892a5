package commands

import (
	"context"
	"errors"
	"fmt"

	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Creates and persists a draft order carrying its quote figures. Display
// codes are unique: a second order with the same human UID is rejected.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Creates a new draft order and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	_, err := orderRepo.GetByHumanUID(ctx, cmd.HumanUID())
	if err == nil {
		return errs.NewValueIsInvalidErrorWithCause("humanUID",
			fmt.Errorf("order %q already exists", cmd.HumanUID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	orderEntity, err := order.NewOrder(
		cmd.OrderID(),
		cmd.HumanUID(),
		cmd.QuoteLinkToken(),
		cmd.Subtotal(),
		cmd.DepositRequired(),
		cmd.DepositAmount(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
