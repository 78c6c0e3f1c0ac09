package commands

import (
	"errors"

	"solarstore/internal/core/domain/model/kernel"
	"solarstore/internal/core/domain/model/order"
	"solarstore/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The target status is parsed and validated at construction,
// so an invalid status never reaches the store.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// rawStatus must be one of "pending", "shipped", "canceled".
func NewUpdateOrderStatusCommand(orderID kernel.UUID, rawStatus string) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	newStatus, err := order.StatusFromString(rawStatus)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:   orderID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the validated target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status { return c.newStatus }
