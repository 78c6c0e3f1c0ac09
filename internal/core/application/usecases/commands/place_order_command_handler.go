package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"solarstore/internal/core/domain/model/kernel"
	"solarstore/internal/core/domain/model/order"
	"solarstore/internal/core/ports"
	"solarstore/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement:
// validate the request, verify the submitted total, allocate the next order
// number, persist the pending order, and trigger best-effort notifications.
//
// Ordering matters: the total is verified before allocation so that a
// rejected request never consumes a sequence value, and notifications run
// only after the order has committed so that a mail-transport outage can
// never fail or roll back a valid order.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	allocator  ports.SequenceAllocator
	notifier   OrderNotifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	allocator ports.SequenceAllocator,
	notifier OrderNotifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		notifier:   notifier,
		logger:     logger.With("component", "place_order"),
	}
}

// Handle processes the order placement command and returns the persisted
// pending order. A failure after allocation but before commit burns the
// allocated number; gaps are acceptable, duplicates are not.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address())
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, raw := range cmd.Items() {
		item, itemErr := order.NewItem(raw.Name, raw.UnitPrice, raw.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	// Verify the submitted total before touching the counter, so a mismatch
	// consumes no sequence value.
	if total := order.TotalOf(items); !total.Equal(cmd.TotalPrice()) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalPrice",
			fmt.Errorf("submitted total %s does not match cart total %s", cmd.TotalPrice(), total),
		)
	}

	sequence, err := h.allocator.Next(ctx, order.NumberSeries)
	if err != nil {
		return nil, fmt.Errorf("allocating order number: %w", err)
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.FormatNumber(sequence),
		customer,
		items,
		cmd.TotalPrice(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			// Allocator invariant breach: the unique index caught a reused
			// number. Surface it, do not retry with a fresh number.
			h.logger.ErrorContext(ctx, "duplicate order number on insert",
				"orderNumber", aggregate.Number(), "error", err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderPlaced(ctx, aggregate)

	return aggregate, nil
}
