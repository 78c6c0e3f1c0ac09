package ports

import (
	"context"

	"solarstore/internal/core/domain/model/kernel"
	"solarstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its caller-supplied order number.
	// Returns an errs.ObjectAlreadyExistsError if the order number is already
	// taken; that situation indicates an allocator invariant breach and must
	// never be silently retried with a fresh number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the status is mutable after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
