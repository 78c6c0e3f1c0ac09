package commands

import (
	"context"

	"solarstore/internal/core/domain/model/order"
)

// OrderNotifier delivers best-effort notifications after an order mutation has
// committed. Implementations log and swallow their own failures; the methods
// return nothing so a handler cannot accidentally fail an already-successful
// write on a notification error.
type OrderNotifier interface {
	// OrderPlaced dispatches the customer invoice mail (with the ephemeral
	// PDF artifact) and the admin alert for a freshly committed order.
	OrderPlaced(ctx context.Context, aggregate *order.Order)

	// StatusChanged notifies the customer that their order changed status.
	StatusChanged(ctx context.Context, aggregate *order.Order)
}
