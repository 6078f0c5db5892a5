package commands

import (
	"errors"
	"strings"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/pkg/guard"
)

var ErrRequestOrderTransitionCommandIsNotConstructed = errors.New(
	"RequestOrderTransitionCommand must be created via NewRequestOrderTransitionCommand constructor",
)

// RequestOrderTransitionCommand represents a request to move an order to a
// new lifecycle status. The transition itself is decided by the remote
// validator; this command only carries the request and an optional
// override note.
//
// Example:
//
//	cmd, err := NewRequestOrderTransitionCommand(orderID, order.StatusInProduction, "", &staffID)
//	if err != nil {
//	    return err
//	}
//
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrTransitionBlocked):
//	    // surface blockers to the operator
//	case errors.Is(err, errs.ErrOverrideRequired):
//	    // re-submit with a justification note
//	}
type RequestOrderTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	newStatus    order.Status
	overrideNote string
	actorID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestOrderTransitionCommand creates a transition request.
// The override note may be empty; it is only consulted when the validator
// demands an override. The actor is optional: system jobs transition
// orders without a staff identity.
func NewRequestOrderTransitionCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	overrideNote string,
	actorID *kernel.UUID,
) (RequestOrderTransitionCommand, error) {
	command := RequestOrderTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
		command.setActorID(actorID),
	); err != nil {
		return RequestOrderTransitionCommand{}, err
	}

	command.overrideNote = strings.TrimSpace(overrideNote)

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestOrderTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestOrderTransitionCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c RequestOrderTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c RequestOrderTransitionCommand) NewStatus() order.Status {
	return c.newStatus
}

// OverrideNote returns the justification note, empty when none was given.
func (c RequestOrderTransitionCommand) OverrideNote() string {
	return c.overrideNote
}

// ActorID returns the requesting staff member, nil for system actions.
func (c RequestOrderTransitionCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *RequestOrderTransitionCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *RequestOrderTransitionCommand) setNewStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.newStatus = status
	return nil
}

func (c *RequestOrderTransitionCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
