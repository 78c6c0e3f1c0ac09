package commands

import (
	"context"

	"solarstore/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a status transition to a stored
// order and notifies the customer. The status graph is unrestricted: any
// valid status may move to any other, including reopening a canceled order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   OrderNotifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier OrderNotifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the order, overwrites its status, and persists the change.
// On success a best-effort status-change mail goes to the customer; mail
// failure never rolls back or fails the update.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.StatusChanged(ctx, aggregate)

	return aggregate, nil
}
